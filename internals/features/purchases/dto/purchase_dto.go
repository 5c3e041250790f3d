package dto

import (
	"time"

	"github.com/google/uuid"

	"learnhub_backend/internals/features/purchases/model"
)

type CheckoutRequest struct {
	BundleID uuid.UUID `json:"bundle_id" validate:"required"`
}

type CheckoutResponse struct {
	PurchaseOrderID string `json:"purchase_order_id"`
	SnapToken       string `json:"snap_token"`
	Price           int64  `json:"price"`
}

type GrantRequest struct {
	StudentID uuid.UUID `json:"student_id" validate:"required"`
	BundleID  uuid.UUID `json:"bundle_id" validate:"required"`
}

// MidtransNotification carries the fields of the payment gateway's HTTP
// notification that settlement depends on. Extra fields are ignored.
type MidtransNotification struct {
	OrderID           string `json:"order_id"`
	StatusCode        string `json:"status_code"`
	GrossAmount       string `json:"gross_amount"`
	SignatureKey      string `json:"signature_key"`
	TransactionStatus string `json:"transaction_status"`
	FraudStatus       string `json:"fraud_status"`
}

type PurchaseResponse struct {
	PurchaseID   uuid.UUID `json:"purchase_id"`
	BundleID     uuid.UUID `json:"bundle_id"`
	OrderID      string    `json:"order_id"`
	Price        int64     `json:"price"`
	Status       string    `json:"status"`
	PurchaseDate time.Time `json:"purchase_date"`
}

func ToPurchaseResponse(m *model.PurchaseModel) PurchaseResponse {
	return PurchaseResponse{
		PurchaseID:   m.PurchaseID,
		BundleID:     m.PurchaseBundleID,
		OrderID:      m.PurchaseOrderID,
		Price:        m.PurchasePrice,
		Status:       m.PurchaseStatus,
		PurchaseDate: m.PurchaseDate,
	}
}

func ToPurchaseResponses(ms []model.PurchaseModel) []PurchaseResponse {
	out := make([]PurchaseResponse, 0, len(ms))
	for i := range ms {
		out = append(out, ToPurchaseResponse(&ms[i]))
	}
	return out
}
