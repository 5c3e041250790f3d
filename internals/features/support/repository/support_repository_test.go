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

	"learnhub_backend/internals/features/support/model"
	helper "learnhub_backend/internals/helpers"
)

var testDBSeq int

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	testDBSeq++
	dsn := fmt.Sprintf("file:support_test_%d?mode=memory&cache=shared", testDBSeq)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.SupportTopicModel{}, &model.SupportMessageModel{}))
	return db
}

func newTopic(t *testing.T, repo *SupportRepository, studentID uuid.UUID) *model.SupportTopicModel {
	t.Helper()
	topic := &model.SupportTopicModel{
		TopicStudentID: studentID,
		TopicTitle:     "Video will not play",
		TopicCategory:  "technical",
		TopicContent:   "The player shows a black screen.",
	}
	ok, err := repo.AddTopic(topic)
	require.NoError(t, err)
	require.True(t, ok)
	return topic
}

func TestReplyToClosedTopicForbidden(t *testing.T) {
	db := newTestDB(t)
	repo := NewSupportRepository(db)
	studentID := uuid.New()
	topic := newTopic(t, repo, studentID)

	ok, err := repo.SetClosedOwn(studentID, topic.TopicID, true)
	require.NoError(t, err)
	require.True(t, ok)

	_, err = repo.AddMessage(&model.SupportMessageModel{
		MessageTopicID:   topic.TopicID,
		MessageStudentID: &studentID,
		MessageContent:   "Still broken.",
	})
	assert.ErrorIs(t, err, ErrTopicClosed)

	messages, err := repo.GetMessages(topic.TopicID)
	require.NoError(t, err)
	assert.Empty(t, messages)
}

func TestReopenedTopicAcceptsReplies(t *testing.T) {
	repo := NewSupportRepository(newTestDB(t))
	studentID := uuid.New()
	topic := newTopic(t, repo, studentID)

	_, err := repo.SetClosedOwn(studentID, topic.TopicID, true)
	require.NoError(t, err)
	_, err = repo.SetClosedOwn(studentID, topic.TopicID, false)
	require.NoError(t, err)

	got, err := repo.AddMessage(&model.SupportMessageModel{
		MessageTopicID:   topic.TopicID,
		MessageStudentID: &studentID,
		MessageContent:   "Any update?",
	})
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, topic.TopicID, got.TopicID)
}

func TestMessageRequiresExactlyOneAuthor(t *testing.T) {
	repo := NewSupportRepository(newTestDB(t))
	studentID := uuid.New()
	adminID := uuid.New()
	topic := newTopic(t, repo, studentID)

	_, err := repo.AddMessage(&model.SupportMessageModel{
		MessageTopicID: topic.TopicID,
		MessageContent: "ghost message",
	})
	assert.ErrorIs(t, err, helper.ErrInvalidArgument)

	_, err = repo.AddMessage(&model.SupportMessageModel{
		MessageTopicID:   topic.TopicID,
		MessageStudentID: &studentID,
		MessageAdminID:   &adminID,
		MessageContent:   "double author",
	})
	assert.ErrorIs(t, err, helper.ErrInvalidArgument)
}

func TestStudentCannotCloseForeignTopic(t *testing.T) {
	repo := NewSupportRepository(newTestDB(t))
	owner := uuid.New()
	topic := newTopic(t, repo, owner)

	ok, err := repo.SetClosedOwn(uuid.New(), topic.TopicID, true)
	require.NoError(t, err)
	assert.False(t, ok)

	got, err := repo.GetTopic(topic.TopicID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.False(t, got.TopicClosed)
}

func TestGetOwnTopicScopesToCreator(t *testing.T) {
	repo := NewSupportRepository(newTestDB(t))
	owner := uuid.New()
	topic := newTopic(t, repo, owner)

	got, err := repo.GetOwnTopic(owner, topic.TopicID)
	require.NoError(t, err)
	assert.NotNil(t, got)

	got, err = repo.GetOwnTopic(uuid.New(), topic.TopicID)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestTopicSearchAndPaging(t *testing.T) {
	repo := NewSupportRepository(newTestDB(t))
	studentID := uuid.New()

	for i := 0; i < 3; i++ {
		_, err := repo.AddTopic(&model.SupportTopicModel{
			TopicStudentID: studentID,
			TopicTitle:     fmt.Sprintf("Billing question %d", i),
			TopicCategory:  "billing",
			TopicContent:   "content",
		})
		require.NoError(t, err)
	}
	newTopic(t, repo, studentID)

	topics, total, err := repo.GetAllFromStudent(studentID, 0, 10, "Billing")
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.Len(t, topics, 3)

	topics, total, err = repo.GetAllFromStudent(studentID, 0, 2, "")
	require.NoError(t, err)
	assert.Equal(t, int64(4), total)
	assert.Len(t, topics, 2)
}
