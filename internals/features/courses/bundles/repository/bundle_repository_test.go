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

	"learnhub_backend/internals/features/courses/bundles/model"
	classModel "learnhub_backend/internals/features/courses/classes/model"
	moduleModel "learnhub_backend/internals/features/courses/modules/model"
	purchaseModel "learnhub_backend/internals/features/purchases/model"
	adminModel "learnhub_backend/internals/features/users/admins/model"
	helper "learnhub_backend/internals/helpers"
)

var testDBSeq int

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	testDBSeq++
	dsn := fmt.Sprintf("file:bundles_test_%d?mode=memory&cache=shared", testDBSeq)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&model.BundleModel{},
		&model.BundleCourseModel{},
		&moduleModel.ModuleModel{},
		&classModel.ClassModel{},
		&purchaseModel.PurchaseModel{},
	))
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

func TestBundleNegativePriceRejected(t *testing.T) {
	repo := NewBundleRepository(newTestDB(t))

	ok, err := repo.Add(rootAdmin(), &model.BundleModel{BundleName: "Starter", BundlePrice: -1})
	assert.ErrorIs(t, err, helper.ErrInvalidArgument)
	assert.False(t, ok)
}

func TestBundleMutationsRequireContentLevel(t *testing.T) {
	db := newTestDB(t)
	repo := NewBundleRepository(db)

	ok, err := repo.Add(supportAdmin(), &model.BundleModel{BundleName: "Starter", BundlePrice: 100})
	assert.ErrorIs(t, err, helper.ErrIllegalAccess)
	assert.False(t, ok)

	var count int64
	require.NoError(t, db.Model(&model.BundleModel{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestBundleAggregates(t *testing.T) {
	db := newTestDB(t)
	repo := NewBundleRepository(db)
	actor := rootAdmin()

	bundle := &model.BundleModel{BundleName: "Full Stack", BundlePrice: 500}
	_, err := repo.Add(actor, bundle)
	require.NoError(t, err)

	// Empty bundle reports zeros, never NULL.
	agg, err := repo.GetAggregates(bundle.BundleID)
	require.NoError(t, err)
	assert.Zero(t, agg.TotalClasses)
	assert.Zero(t, agg.TotalLength)

	courseID := uuid.New()
	mod := moduleModel.ModuleModel{ModuleCourseID: courseID, ModuleName: "Intro", ModuleOrder: 1}
	require.NoError(t, db.Create(&mod).Error)

	length1, length2 := 120, 240
	title, videoID := "a", "yt"
	require.NoError(t, db.Create(&classModel.ClassModel{
		ClassModuleID: mod.ModuleID, ClassOrder: 1, ClassType: classModel.ClassTypeVideo,
		ClassTitle: &title, ClassVideoID: &videoID, ClassLength: &length1,
	}).Error)
	require.NoError(t, db.Create(&classModel.ClassModel{
		ClassModuleID: mod.ModuleID, ClassOrder: 2, ClassType: classModel.ClassTypeVideo,
		ClassTitle: &title, ClassVideoID: &videoID, ClassLength: &length2,
	}).Error)

	_, err = repo.AttachCourse(actor, bundle.BundleID, courseID)
	require.NoError(t, err)

	agg, err = repo.GetAggregates(bundle.BundleID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), agg.TotalClasses)
	assert.Equal(t, int64(360), agg.TotalLength)
}

func TestAttachCourseIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	repo := NewBundleRepository(db)
	actor := rootAdmin()

	bundle := &model.BundleModel{BundleName: "Starter", BundlePrice: 100}
	_, err := repo.Add(actor, bundle)
	require.NoError(t, err)

	courseID := uuid.New()
	_, err = repo.AttachCourse(actor, bundle.BundleID, courseID)
	require.NoError(t, err)
	_, err = repo.AttachCourse(actor, bundle.BundleID, courseID)
	require.NoError(t, err)

	var count int64
	require.NoError(t, db.Model(&model.BundleCourseModel{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestGetUnpurchasedByStudent(t *testing.T) {
	db := newTestDB(t)
	repo := NewBundleRepository(db)
	actor := rootAdmin()

	owned := &model.BundleModel{BundleName: "Owned", BundlePrice: 100}
	other := &model.BundleModel{BundleName: "Other", BundlePrice: 200}
	_, err := repo.Add(actor, owned)
	require.NoError(t, err)
	_, err = repo.Add(actor, other)
	require.NoError(t, err)

	studentID := uuid.New()
	require.NoError(t, db.Create(&purchaseModel.PurchaseModel{
		PurchaseStudentID: studentID,
		PurchaseBundleID:  owned.BundleID,
		PurchasePrice:     100,
		PurchaseStatus:    purchaseModel.StatusPaid,
		PurchaseOrderID:   "LH-test-1",
	}).Error)
	// a failed checkout does not grant the bundle
	require.NoError(t, db.Create(&purchaseModel.PurchaseModel{
		PurchaseStudentID: studentID,
		PurchaseBundleID:  other.BundleID,
		PurchasePrice:     200,
		PurchaseStatus:    purchaseModel.StatusFailed,
		PurchaseOrderID:   "LH-test-2",
	}).Error)

	bundles, err := repo.GetUnpurchasedByStudent(studentID)
	require.NoError(t, err)
	require.Len(t, bundles, 1)
	assert.Equal(t, "Other", bundles[0].BundleName)
}

func TestBundleGetNotFoundIsNil(t *testing.T) {
	repo := NewBundleRepository(newTestDB(t))

	bundle, err := repo.Get(uuid.New())
	require.NoError(t, err)
	assert.Nil(t, bundle)

	_, err = repo.Get(uuid.Nil)
	assert.ErrorIs(t, err, helper.ErrInvalidArgument)
}
