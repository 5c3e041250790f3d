package service

import (
	"crypto/sha512"
	"encoding/hex"

	midtrans "github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"

	"learnhub_backend/internals/features/purchases/model"
)

var SnapClient snap.Client

var serverKey string

func InitMidtrans(key string) {
	serverKey = key
	SnapClient.New(key, midtrans.Sandbox)
}

// GenerateSnapToken creates a Midtrans Snap token for a pending purchase.
func GenerateSnapToken(p *model.PurchaseModel, name, email string) (string, error) {
	req := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  p.PurchaseOrderID,
			GrossAmt: p.PurchasePrice,
		},
		CustomerDetail: &midtrans.CustomerDetails{
			FName: name,
			Email: email,
		},
	}

	resp, err := SnapClient.CreateTransaction(req)
	if err != nil {
		return "", err
	}
	return resp.Token, nil
}

// VerifyNotificationSignature checks the sha512 signature Midtrans sends
// with settlement webhooks: sha512(order_id + status_code + gross_amount +
// server_key).
func VerifyNotificationSignature(orderID, statusCode, grossAmount, signatureKey string) bool {
	sum := sha512.Sum512([]byte(orderID + statusCode + grossAmount + serverKey))
	return hex.EncodeToString(sum[:]) == signatureKey
}

// SettlementStatus maps a Midtrans transaction_status to the purchase
// status it should settle to; empty string means "keep pending".
func SettlementStatus(transactionStatus string) string {
	switch transactionStatus {
	case "capture", "settlement":
		return model.StatusPaid
	case "deny", "cancel", "expire", "failure":
		return model.StatusFailed
	default:
		return ""
	}
}
