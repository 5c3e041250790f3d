package repository

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	moduleModel "learnhub_backend/internals/features/courses/modules/model"
	helper "learnhub_backend/internals/helpers"
)

func TestMarkAsWatchedIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	repo := NewHistoricRepository(db)
	studentID := uuid.New()
	moduleID := uuid.New()

	ok, err := repo.MarkAsWatched(studentID, moduleID, 1)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.MarkAsWatched(studentID, moduleID, 1)
	require.NoError(t, err)
	assert.True(t, ok)

	records, err := repo.GetAllFromStudent(studentID)
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestRemoveWatched(t *testing.T) {
	repo := NewHistoricRepository(newTestDB(t))
	studentID := uuid.New()
	moduleID := uuid.New()

	_, err := repo.MarkAsWatched(studentID, moduleID, 2)
	require.NoError(t, err)

	removed, err := repo.RemoveWatched(studentID, moduleID, 2)
	require.NoError(t, err)
	assert.True(t, removed)

	removed, err = repo.RemoveWatched(studentID, moduleID, 2)
	require.NoError(t, err)
	assert.False(t, removed)
}

func TestHistoricRejectsBadKey(t *testing.T) {
	repo := NewHistoricRepository(newTestDB(t))

	_, err := repo.MarkAsWatched(uuid.Nil, uuid.New(), 1)
	assert.ErrorIs(t, err, helper.ErrInvalidArgument)

	_, err = repo.MarkAsWatched(uuid.New(), uuid.New(), 0)
	assert.ErrorIs(t, err, helper.ErrInvalidArgument)
}

func TestCountWatchedInCourse(t *testing.T) {
	db := newTestDB(t)
	require.NoError(t, db.AutoMigrate(&moduleModel.ModuleModel{}))

	courseID := uuid.New()
	moduleA := moduleModel.ModuleModel{ModuleCourseID: courseID, ModuleName: "Basics", ModuleOrder: 1}
	moduleB := moduleModel.ModuleModel{ModuleCourseID: courseID, ModuleName: "Advanced", ModuleOrder: 2}
	require.NoError(t, db.Create(&moduleA).Error)
	require.NoError(t, db.Create(&moduleB).Error)

	repo := NewHistoricRepository(db)
	studentID := uuid.New()

	_, err := repo.MarkAsWatched(studentID, moduleA.ModuleID, 1)
	require.NoError(t, err)
	_, err = repo.MarkAsWatched(studentID, moduleA.ModuleID, 2)
	require.NoError(t, err)
	_, err = repo.MarkAsWatched(studentID, moduleB.ModuleID, 1)
	require.NoError(t, err)
	// Different course, must not count.
	_, err = repo.MarkAsWatched(studentID, uuid.New(), 1)
	require.NoError(t, err)

	count, err := repo.CountWatchedInCourse(studentID, courseID)
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)
}
