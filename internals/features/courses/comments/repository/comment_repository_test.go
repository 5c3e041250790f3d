package repository

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"learnhub_backend/internals/features/courses/comments/model"
	studentModel "learnhub_backend/internals/features/users/students/model"
)

var testDBSeq int

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	testDBSeq++
	dsn := fmt.Sprintf("file:comments_test_%d?mode=memory&cache=shared", testDBSeq)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&model.CommentModel{},
		&model.ReplyModel{},
		&studentModel.StudentModel{},
	))
	return db
}

func seedStudent(t *testing.T, db *gorm.DB, name string) *studentModel.StudentModel {
	t.Helper()
	student := &studentModel.StudentModel{
		StudentName:     name,
		StudentEmail:    name + "@example.com",
		StudentPassword: "x",
	}
	require.NoError(t, db.Create(student).Error)
	return student
}

func TestDeletedCreatorSurfacesAsNullSentinel(t *testing.T) {
	db := newTestDB(t)
	repo := NewCommentRepository(db)
	student := seedStudent(t, db, "alice")
	classID := uuid.New()

	comment := &model.CommentModel{
		CommentClassID:   classID,
		CommentStudentID: &student.StudentID,
		CommentContent:   "Why does the loop stop at n-1?",
	}
	_, err := repo.Add(comment)
	require.NoError(t, err)

	comments, err := repo.GetAllFromClass(classID)
	require.NoError(t, err)
	require.Len(t, comments, 1)
	require.NotNil(t, comments[0].AuthorName)
	assert.Equal(t, "alice", *comments[0].AuthorName)

	// Soft-deleting the student keeps the thread but nulls the author.
	require.NoError(t, db.Delete(student).Error)

	comments, err = repo.GetAllFromClass(classID)
	require.NoError(t, err)
	require.Len(t, comments, 1)
	assert.Nil(t, comments[0].AuthorName)
	assert.Equal(t, "Why does the loop stop at n-1?", comments[0].CommentContent)
}

func TestAddReplyReturnsThread(t *testing.T) {
	db := newTestDB(t)
	repo := NewCommentRepository(db)
	author := seedStudent(t, db, "bob")
	replier := seedStudent(t, db, "carol")
	classID := uuid.New()

	comment := &model.CommentModel{
		CommentClassID:   classID,
		CommentStudentID: &author.StudentID,
		CommentContent:   "question",
	}
	_, err := repo.Add(comment)
	require.NoError(t, err)

	thread, err := repo.AddReply(&model.ReplyModel{
		ReplyCommentID: comment.CommentID,
		ReplyStudentID: &replier.StudentID,
		ReplyContent:   "answer",
	})
	require.NoError(t, err)
	require.NotNil(t, thread)
	assert.Equal(t, author.StudentID, *thread.CommentStudentID)

	replies, err := repo.GetReplies(comment.CommentID)
	require.NoError(t, err)
	require.Len(t, replies, 1)
	require.NotNil(t, replies[0].AuthorName)
	assert.Equal(t, "carol", *replies[0].AuthorName)
}

func TestReplyToMissingCommentIsNil(t *testing.T) {
	db := newTestDB(t)
	repo := NewCommentRepository(db)
	student := seedStudent(t, db, "dave")

	thread, err := repo.AddReply(&model.ReplyModel{
		ReplyCommentID: uuid.New(),
		ReplyStudentID: &student.StudentID,
		ReplyContent:   "into the void",
	})
	require.NoError(t, err)
	assert.Nil(t, thread)
}

func TestDeleteOwnCommentCascadesReplies(t *testing.T) {
	db := newTestDB(t)
	repo := NewCommentRepository(db)
	author := seedStudent(t, db, "erin")
	classID := uuid.New()

	comment := &model.CommentModel{
		CommentClassID:   classID,
		CommentStudentID: &author.StudentID,
		CommentContent:   "question",
	}
	_, err := repo.Add(comment)
	require.NoError(t, err)
	_, err = repo.AddReply(&model.ReplyModel{
		ReplyCommentID: comment.CommentID,
		ReplyStudentID: &author.StudentID,
		ReplyContent:   "self follow-up",
	})
	require.NoError(t, err)

	// A stranger cannot delete the thread.
	deleted, err := repo.DeleteOwn(uuid.New(), comment.CommentID)
	require.NoError(t, err)
	assert.False(t, deleted)

	deleted, err = repo.DeleteOwn(author.StudentID, comment.CommentID)
	require.NoError(t, err)
	assert.True(t, deleted)

	var replyCount int64
	require.NoError(t, db.Model(&model.ReplyModel{}).Count(&replyCount).Error)
	assert.Zero(t, replyCount)
}
