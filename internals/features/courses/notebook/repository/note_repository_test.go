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

	classModel "learnhub_backend/internals/features/courses/classes/model"
	"learnhub_backend/internals/features/courses/notebook/model"
	helper "learnhub_backend/internals/helpers"
)

var testDBSeq int

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	testDBSeq++
	dsn := fmt.Sprintf("file:notebook_test_%d?mode=memory&cache=shared", testDBSeq)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.NoteModel{}, &classModel.ClassModel{}))
	return db
}

func seedClass(t *testing.T, db *gorm.DB, classType string) *classModel.ClassModel {
	t.Helper()
	title, videoID := "Intro", "yt-1"
	question, answer := "q?", 2
	class := &classModel.ClassModel{
		ClassModuleID: uuid.New(),
		ClassOrder:    1,
		ClassType:     classType,
	}
	if classType == classModel.ClassTypeVideo {
		class.ClassTitle = &title
		class.ClassVideoID = &videoID
	} else {
		class.ClassQuestion = &question
		class.ClassAnswer = &answer
	}
	require.NoError(t, db.Create(class).Error)
	return class
}

func TestNoteRequiresVideoClass(t *testing.T) {
	db := newTestDB(t)
	repo := NewNoteRepository(db)
	studentID := uuid.New()

	quiz := seedClass(t, db, classModel.ClassTypeQuestionnaire)
	ok, err := repo.Add(&model.NoteModel{
		NoteStudentID: studentID,
		NoteClassID:   quiz.ClassID,
		NoteTitle:     "quiz note",
	})
	assert.ErrorIs(t, err, helper.ErrInvalidArgument)
	assert.False(t, ok)

	// Dangling class reference is rejected too.
	ok, err = repo.Add(&model.NoteModel{
		NoteStudentID: studentID,
		NoteClassID:   uuid.New(),
		NoteTitle:     "orphan note",
	})
	assert.ErrorIs(t, err, helper.ErrInvalidArgument)
	assert.False(t, ok)

	video := seedClass(t, db, classModel.ClassTypeVideo)
	ok, err = repo.Add(&model.NoteModel{
		NoteStudentID: studentID,
		NoteClassID:   video.ClassID,
		NoteTitle:     "timestamps",
		NoteContent:   "02:30 important",
	})
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestNoteOwnershipScoping(t *testing.T) {
	db := newTestDB(t)
	repo := NewNoteRepository(db)
	owner := uuid.New()
	video := seedClass(t, db, classModel.ClassTypeVideo)

	note := &model.NoteModel{
		NoteStudentID: owner,
		NoteClassID:   video.ClassID,
		NoteTitle:     "mine",
	}
	_, err := repo.Add(note)
	require.NoError(t, err)

	got, err := repo.GetOwn(owner, note.NoteID)
	require.NoError(t, err)
	assert.NotNil(t, got)

	got, err = repo.GetOwn(uuid.New(), note.NoteID)
	require.NoError(t, err)
	assert.Nil(t, got)

	updated, err := repo.UpdateOwn(uuid.New(), note.NoteID, "stolen", "")
	require.NoError(t, err)
	assert.False(t, updated)

	deleted, err := repo.DeleteOwn(uuid.New(), note.NoteID)
	require.NoError(t, err)
	assert.False(t, deleted)

	deleted, err = repo.DeleteOwn(owner, note.NoteID)
	require.NoError(t, err)
	assert.True(t, deleted)
}

func TestNoteListsByStudentAndClass(t *testing.T) {
	db := newTestDB(t)
	repo := NewNoteRepository(db)
	studentID := uuid.New()
	video := seedClass(t, db, classModel.ClassTypeVideo)

	for i := 0; i < 2; i++ {
		_, err := repo.Add(&model.NoteModel{
			NoteStudentID: studentID,
			NoteClassID:   video.ClassID,
			NoteTitle:     fmt.Sprintf("note %d", i),
		})
		require.NoError(t, err)
	}

	notes, err := repo.GetAllFromStudent(studentID)
	require.NoError(t, err)
	assert.Len(t, notes, 2)

	notes, err = repo.GetAllFromClass(studentID, video.ClassID)
	require.NoError(t, err)
	assert.Len(t, notes, 2)

	notes, err = repo.GetAllFromStudent(uuid.New())
	require.NoError(t, err)
	assert.Empty(t, notes)
	assert.NotNil(t, notes)
}
