package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	StatusPending = "pending"
	StatusPaid    = "paid"
	StatusFailed  = "failed"
)

// PurchaseModel is an immutable historical record of a bundle purchase:
// price is captured at checkout time and never re-read from the bundle.
// Only the settlement status transitions (pending -> paid/failed).
type PurchaseModel struct {
	PurchaseID        uuid.UUID `gorm:"column:purchase_id;type:uuid;primaryKey" json:"purchase_id"`
	PurchaseStudentID uuid.UUID `gorm:"column:purchase_student_id;type:uuid;not null;index" json:"purchase_student_id"`
	PurchaseBundleID  uuid.UUID `gorm:"column:purchase_bundle_id;type:uuid;not null;index" json:"purchase_bundle_id"`
	PurchasePrice     int64     `gorm:"column:purchase_price;not null" json:"purchase_price"`
	PurchaseStatus    string    `gorm:"column:purchase_status;type:varchar(20);not null;default:'pending'" json:"purchase_status"`
	PurchaseOrderID   string    `gorm:"column:purchase_order_id;type:varchar(64);uniqueIndex;not null" json:"purchase_order_id"`
	PurchaseDate      time.Time `gorm:"column:purchase_date;autoCreateTime" json:"purchase_date"`
}

func (PurchaseModel) TableName() string {
	return "purchases"
}

func (m *PurchaseModel) BeforeCreate(tx *gorm.DB) error {
	if m.PurchaseID == uuid.Nil {
		m.PurchaseID = uuid.New()
	}
	return nil
}
