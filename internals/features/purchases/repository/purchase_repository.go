package repository

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"learnhub_backend/internals/features/purchases/model"
	adminModel "learnhub_backend/internals/features/users/admins/model"
	helper "learnhub_backend/internals/helpers"
)

var purchaseMutationLevels = []int{adminModel.LevelRoot, adminModel.LevelManager}

type PurchaseRepository struct {
	DB *gorm.DB
}

func NewPurchaseRepository(db *gorm.DB) *PurchaseRepository {
	return &PurchaseRepository{DB: db}
}

func (r *PurchaseRepository) GetByOrderID(orderID string) (*model.PurchaseModel, error) {
	if orderID == "" {
		return nil, fmt.Errorf("%w: order id", helper.ErrInvalidArgument)
	}
	var purchase model.PurchaseModel
	if err := r.DB.Where("purchase_order_id = ?", orderID).First(&purchase).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &purchase, nil
}

// GetAllFromStudent lists a student's purchase history, newest first.
func (r *PurchaseRepository) GetAllFromStudent(studentID uuid.UUID) ([]model.PurchaseModel, error) {
	if studentID == uuid.Nil {
		return nil, fmt.Errorf("%w: student id", helper.ErrInvalidArgument)
	}
	purchases := make([]model.PurchaseModel, 0)
	err := r.DB.
		Where("purchase_student_id = ?", studentID).
		Order("purchase_date DESC").
		Find(&purchases).Error
	if err != nil {
		return nil, err
	}
	return purchases, nil
}

// HasPaidPurchase reports whether a student already owns a bundle.
func (r *PurchaseRepository) HasPaidPurchase(studentID, bundleID uuid.UUID) (bool, error) {
	if studentID == uuid.Nil || bundleID == uuid.Nil {
		return false, fmt.Errorf("%w: student/bundle id", helper.ErrInvalidArgument)
	}
	var count int64
	err := r.DB.Model(&model.PurchaseModel{}).
		Where("purchase_student_id = ? AND purchase_bundle_id = ? AND purchase_status = ?",
			studentID, bundleID, model.StatusPaid).
		Count(&count).Error
	return count > 0, err
}

func (r *PurchaseRepository) Add(purchase *model.PurchaseModel) (bool, error) {
	if purchase == nil || purchase.PurchaseStudentID == uuid.Nil || purchase.PurchaseBundleID == uuid.Nil {
		return false, fmt.Errorf("%w: student/bundle id", helper.ErrInvalidArgument)
	}
	if purchase.PurchasePrice < 0 {
		return false, fmt.Errorf("%w: purchase price", helper.ErrInvalidArgument)
	}
	res := r.DB.Create(purchase)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// SettleByOrderID transitions a pending purchase to its final status.
func (r *PurchaseRepository) SettleByOrderID(orderID, status string) (bool, error) {
	if orderID == "" {
		return false, fmt.Errorf("%w: order id", helper.ErrInvalidArgument)
	}
	if status != model.StatusPaid && status != model.StatusFailed {
		return false, fmt.Errorf("%w: settlement status", helper.ErrInvalidArgument)
	}
	res := r.DB.Model(&model.PurchaseModel{}).
		Where("purchase_order_id = ? AND purchase_status = ?", orderID, model.StatusPending).
		Update("purchase_status", status)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// Grant records a settled purchase directly, bypassing checkout. Panel use
// only.
func (r *PurchaseRepository) Grant(actor *adminModel.AdminModel, purchase *model.PurchaseModel) (bool, error) {
	if !actor.HasLevel(purchaseMutationLevels...) {
		return false, fmt.Errorf("%w: purchase grant", helper.ErrIllegalAccess)
	}
	purchase.PurchaseStatus = model.StatusPaid
	return r.Add(purchase)
}

func (r *PurchaseRepository) Revoke(actor *adminModel.AdminModel, id uuid.UUID) (bool, error) {
	if !actor.HasLevel(purchaseMutationLevels...) {
		return false, fmt.Errorf("%w: purchase revoke", helper.ErrIllegalAccess)
	}
	if id == uuid.Nil {
		return false, fmt.Errorf("%w: purchase id", helper.ErrInvalidArgument)
	}
	res := r.DB.Delete(&model.PurchaseModel{}, "purchase_id = ?", id)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
