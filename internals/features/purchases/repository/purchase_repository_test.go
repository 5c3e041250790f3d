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

	"learnhub_backend/internals/features/purchases/model"
	adminModel "learnhub_backend/internals/features/users/admins/model"
	helper "learnhub_backend/internals/helpers"
)

var testDBSeq int

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	testDBSeq++
	dsn := fmt.Sprintf("file:purchases_test_%d?mode=memory&cache=shared", testDBSeq)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.PurchaseModel{}))
	return db
}

func managerAdmin() *adminModel.AdminModel {
	return &adminModel.AdminModel{
		AdminID:       uuid.New(),
		Authorization: adminModel.AuthorizationModel{AuthorizationLevel: adminModel.LevelManager},
	}
}

func supportAdmin() *adminModel.AdminModel {
	return &adminModel.AdminModel{
		AdminID:       uuid.New(),
		Authorization: adminModel.AuthorizationModel{AuthorizationLevel: adminModel.LevelSupport},
	}
}

func pendingPurchase(t *testing.T, repo *PurchaseRepository, orderID string) *model.PurchaseModel {
	t.Helper()
	p := &model.PurchaseModel{
		PurchaseStudentID: uuid.New(),
		PurchaseBundleID:  uuid.New(),
		PurchasePrice:     250,
		PurchaseStatus:    model.StatusPending,
		PurchaseOrderID:   orderID,
	}
	ok, err := repo.Add(p)
	require.NoError(t, err)
	require.True(t, ok)
	return p
}

func TestSettleByOrderIDTransitions(t *testing.T) {
	repo := NewPurchaseRepository(newTestDB(t))
	p := pendingPurchase(t, repo, "LH-1")

	settled, err := repo.SettleByOrderID("LH-1", model.StatusPaid)
	require.NoError(t, err)
	assert.True(t, settled)

	got, err := repo.GetByOrderID("LH-1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, model.StatusPaid, got.PurchaseStatus)
	assert.Equal(t, p.PurchasePrice, got.PurchasePrice)

	// Settling twice is a no-op: only pending rows transition.
	settled, err = repo.SettleByOrderID("LH-1", model.StatusFailed)
	require.NoError(t, err)
	assert.False(t, settled)

	got, err = repo.GetByOrderID("LH-1")
	require.NoError(t, err)
	assert.Equal(t, model.StatusPaid, got.PurchaseStatus)
}

func TestSettleRejectsBadStatus(t *testing.T) {
	repo := NewPurchaseRepository(newTestDB(t))
	pendingPurchase(t, repo, "LH-2")

	_, err := repo.SettleByOrderID("LH-2", "refunded")
	assert.ErrorIs(t, err, helper.ErrInvalidArgument)

	_, err = repo.SettleByOrderID("", model.StatusPaid)
	assert.ErrorIs(t, err, helper.ErrInvalidArgument)
}

func TestSettleUnknownOrderIsFalse(t *testing.T) {
	repo := NewPurchaseRepository(newTestDB(t))

	settled, err := repo.SettleByOrderID("LH-missing", model.StatusPaid)
	require.NoError(t, err)
	assert.False(t, settled)
}

func TestHasPaidPurchase(t *testing.T) {
	repo := NewPurchaseRepository(newTestDB(t))
	p := pendingPurchase(t, repo, "LH-3")

	owned, err := repo.HasPaidPurchase(p.PurchaseStudentID, p.PurchaseBundleID)
	require.NoError(t, err)
	assert.False(t, owned)

	_, err = repo.SettleByOrderID("LH-3", model.StatusPaid)
	require.NoError(t, err)

	owned, err = repo.HasPaidPurchase(p.PurchaseStudentID, p.PurchaseBundleID)
	require.NoError(t, err)
	assert.True(t, owned)
}

func TestGrantAndRevokeAreLevelGated(t *testing.T) {
	db := newTestDB(t)
	repo := NewPurchaseRepository(db)

	p := &model.PurchaseModel{
		PurchaseStudentID: uuid.New(),
		PurchaseBundleID:  uuid.New(),
		PurchasePrice:     100,
		PurchaseOrderID:   "GRANT-1",
	}
	_, err := repo.Grant(supportAdmin(), p)
	assert.ErrorIs(t, err, helper.ErrIllegalAccess)

	var count int64
	require.NoError(t, db.Model(&model.PurchaseModel{}).Count(&count).Error)
	assert.Zero(t, count)

	ok, err := repo.Grant(managerAdmin(), p)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, model.StatusPaid, p.PurchaseStatus)

	_, err = repo.Revoke(supportAdmin(), p.PurchaseID)
	assert.ErrorIs(t, err, helper.ErrIllegalAccess)

	revoked, err := repo.Revoke(managerAdmin(), p.PurchaseID)
	require.NoError(t, err)
	assert.True(t, revoked)
}
