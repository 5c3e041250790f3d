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

	"learnhub_backend/internals/features/notifications/model"
	helper "learnhub_backend/internals/helpers"
)

var testDBSeq int

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	testDBSeq++
	dsn := fmt.Sprintf("file:notifications_test_%d?mode=memory&cache=shared", testDBSeq)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.NotificationModel{}))
	return db
}

func TestNotifyAndUnreadLifecycle(t *testing.T) {
	repo := NewNotificationRepository(newTestDB(t))
	studentID := uuid.New()

	commentID := uuid.New()
	ok, err := repo.Notify(studentID, model.KindCommentReply,
		"New reply to your question", "see this",
		map[string]any{"comment_id": commentID})
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.Notify(studentID, model.KindSupportReply,
		"Support answered your ticket", "fixed",
		map[string]any{"topic_id": uuid.New()})
	require.NoError(t, err)
	assert.True(t, ok)

	unread, err := repo.CountUnread(studentID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), unread)

	notifications, total, err := repo.GetAllFromStudent(studentID, 0, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	require.Len(t, notifications, 2)

	marked, err := repo.MarkRead(studentID, notifications[0].NotificationID)
	require.NoError(t, err)
	assert.True(t, marked)

	unread, err = repo.CountUnread(studentID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), unread)

	updated, err := repo.MarkAllRead(studentID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), updated)

	unread, err = repo.CountUnread(studentID)
	require.NoError(t, err)
	assert.Zero(t, unread)
}

func TestMarkReadScopedToOwner(t *testing.T) {
	repo := NewNotificationRepository(newTestDB(t))
	owner := uuid.New()

	_, err := repo.Notify(owner, model.KindAnnouncement, "Welcome", "", nil)
	require.NoError(t, err)

	notifications, _, err := repo.GetAllFromStudent(owner, 0, 10)
	require.NoError(t, err)
	require.Len(t, notifications, 1)

	marked, err := repo.MarkRead(uuid.New(), notifications[0].NotificationID)
	require.NoError(t, err)
	assert.False(t, marked)

	unread, err := repo.CountUnread(owner)
	require.NoError(t, err)
	assert.Equal(t, int64(1), unread)
}

func TestNotifyValidation(t *testing.T) {
	repo := NewNotificationRepository(newTestDB(t))

	_, err := repo.Notify(uuid.Nil, model.KindAnnouncement, "x", "", nil)
	assert.ErrorIs(t, err, helper.ErrInvalidArgument)

	_, err = repo.Notify(uuid.New(), "", "x", "", nil)
	assert.ErrorIs(t, err, helper.ErrInvalidArgument)

	_, err = repo.Notify(uuid.New(), model.KindAnnouncement, "", "", nil)
	assert.ErrorIs(t, err, helper.ErrInvalidArgument)
}
