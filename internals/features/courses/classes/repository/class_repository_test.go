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

	"learnhub_backend/internals/features/courses/classes/model"
	adminModel "learnhub_backend/internals/features/users/admins/model"
	helper "learnhub_backend/internals/helpers"
)

var testDBSeq int

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	testDBSeq++
	dsn := fmt.Sprintf("file:classes_test_%d?mode=memory&cache=shared", testDBSeq)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.ClassModel{}, &model.HistoricModel{}))
	return db
}

func rootAdmin() *adminModel.AdminModel {
	return &adminModel.AdminModel{
		AdminID:       uuid.New(),
		Authorization: adminModel.AuthorizationModel{AuthorizationLevel: adminModel.LevelRoot},
	}
}

func supportAdmin() *adminModel.AdminModel {
	return &adminModel.AdminModel{
		AdminID:       uuid.New(),
		Authorization: adminModel.AuthorizationModel{AuthorizationLevel: adminModel.LevelSupport},
	}
}

func strptr(s string) *string { return &s }
func intptr(i int) *int       { return &i }

func videoClass(moduleID uuid.UUID, order int) *model.ClassModel {
	return &model.ClassModel{
		ClassModuleID: moduleID,
		ClassOrder:    order,
		ClassType:     model.ClassTypeVideo,
		ClassTitle:    strptr(fmt.Sprintf("Video %d", order)),
		ClassVideoID:  strptr("yt-abc123"),
		ClassLength:   intptr(300),
	}
}

func questionnaireClass(moduleID uuid.UUID, order, answer int) *model.ClassModel {
	return &model.ClassModel{
		ClassModuleID: moduleID,
		ClassOrder:    order,
		ClassType:     model.ClassTypeQuestionnaire,
		ClassQuestion: strptr("What does HTTP stand for?"),
		ClassQ1:       strptr("a"),
		ClassQ2:       strptr("b"),
		ClassQ3:       strptr("c"),
		ClassQ4:       strptr("d"),
		ClassAnswer:   intptr(answer),
	}
}

func TestClassGetByCompositeKey(t *testing.T) {
	repo := NewClassRepository(newTestDB(t))
	moduleID := uuid.New()

	_, err := repo.Add(rootAdmin(), videoClass(moduleID, 1))
	require.NoError(t, err)

	class, err := repo.Get(moduleID, 1)
	require.NoError(t, err)
	require.NotNil(t, class)
	assert.Equal(t, model.ClassTypeVideo, class.ClassType)
	assert.Equal(t, "Video 1", *class.ClassTitle)

	missing, err := repo.Get(moduleID, 99)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestClassGetRejectsBadIdentifiers(t *testing.T) {
	repo := NewClassRepository(newTestDB(t))

	_, err := repo.Get(uuid.Nil, 1)
	assert.ErrorIs(t, err, helper.ErrInvalidArgument)

	_, err = repo.Get(uuid.New(), 0)
	assert.ErrorIs(t, err, helper.ErrInvalidArgument)

	_, err = repo.Get(uuid.New(), -3)
	assert.ErrorIs(t, err, helper.ErrInvalidArgument)
}

func TestClassAddRequiresContentLevel(t *testing.T) {
	db := newTestDB(t)
	repo := NewClassRepository(db)
	moduleID := uuid.New()

	ok, err := repo.Add(supportAdmin(), videoClass(moduleID, 1))
	assert.ErrorIs(t, err, helper.ErrIllegalAccess)
	assert.False(t, ok)

	var count int64
	require.NoError(t, db.Model(&model.ClassModel{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestQuestionnaireAnswerRoundTrip(t *testing.T) {
	repo := NewClassRepository(newTestDB(t))
	moduleID := uuid.New()

	_, err := repo.Add(rootAdmin(), questionnaireClass(moduleID, 2, 3))
	require.NoError(t, err)

	answer, err := repo.GetAnswer(moduleID, 2)
	require.NoError(t, err)
	assert.Equal(t, 3, answer)
}

func TestGetAnswerOnVideoClassIsNotFound(t *testing.T) {
	repo := NewClassRepository(newTestDB(t))
	moduleID := uuid.New()

	_, err := repo.Add(rootAdmin(), videoClass(moduleID, 1))
	require.NoError(t, err)

	_, err = repo.GetAnswer(moduleID, 1)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestQuestionnaireAnswerRange(t *testing.T) {
	repo := NewClassRepository(newTestDB(t))
	moduleID := uuid.New()

	ok, err := repo.Add(rootAdmin(), questionnaireClass(moduleID, 1, 5))
	assert.ErrorIs(t, err, helper.ErrInvalidArgument)
	assert.False(t, ok)
}

func TestMoveClassBetweenModules(t *testing.T) {
	repo := NewClassRepository(newTestDB(t))
	moduleA := uuid.New()
	moduleB := uuid.New()

	_, err := repo.Add(rootAdmin(), videoClass(moduleA, 1))
	require.NoError(t, err)

	moved, err := repo.UpdateModule(rootAdmin(), moduleA, 1, moduleB, 4)
	require.NoError(t, err)
	assert.True(t, moved)

	class, err := repo.Get(moduleB, 4)
	require.NoError(t, err)
	require.NotNil(t, class)
	assert.Equal(t, "Video 1", *class.ClassTitle)

	old, err := repo.Get(moduleA, 1)
	require.NoError(t, err)
	assert.Nil(t, old)
}

func TestMoveClassMissingSourceIsNoop(t *testing.T) {
	repo := NewClassRepository(newTestDB(t))

	moved, err := repo.UpdateModule(rootAdmin(), uuid.New(), 1, uuid.New(), 2)
	require.NoError(t, err)
	assert.False(t, moved)
}

func TestMoveClassToOccupiedSlotRollsBack(t *testing.T) {
	repo := NewClassRepository(newTestDB(t))
	moduleID := uuid.New()

	_, err := repo.Add(rootAdmin(), videoClass(moduleID, 1))
	require.NoError(t, err)
	_, err = repo.Add(rootAdmin(), videoClass(moduleID, 2))
	require.NoError(t, err)

	_, err = repo.UpdateModule(rootAdmin(), moduleID, 1, moduleID, 2)
	require.Error(t, err)

	// The failed move must leave the original placement untouched, not
	// strand the row on the sentinel order.
	class, err := repo.Get(moduleID, 1)
	require.NoError(t, err)
	require.NotNil(t, class)
	assert.Equal(t, "Video 1", *class.ClassTitle)
}

func TestDeleteClassByCompositeKey(t *testing.T) {
	repo := NewClassRepository(newTestDB(t))
	moduleID := uuid.New()

	_, err := repo.Add(rootAdmin(), videoClass(moduleID, 1))
	require.NoError(t, err)

	deleted, err := repo.Delete(rootAdmin(), moduleID, 1)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = repo.Delete(rootAdmin(), moduleID, 1)
	require.NoError(t, err)
	assert.False(t, deleted)
}
