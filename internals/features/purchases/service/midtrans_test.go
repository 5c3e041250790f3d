package service

import (
	"crypto/sha512"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"

	"learnhub_backend/internals/features/purchases/model"
)

func TestSettlementStatus(t *testing.T) {
	assert.Equal(t, model.StatusPaid, SettlementStatus("settlement"))
	assert.Equal(t, model.StatusPaid, SettlementStatus("capture"))
	assert.Equal(t, model.StatusFailed, SettlementStatus("deny"))
	assert.Equal(t, model.StatusFailed, SettlementStatus("cancel"))
	assert.Equal(t, model.StatusFailed, SettlementStatus("expire"))
	assert.Equal(t, model.StatusFailed, SettlementStatus("failure"))
	assert.Equal(t, "", SettlementStatus("pending"))
	assert.Equal(t, "", SettlementStatus(""))
}

func TestVerifyNotificationSignature(t *testing.T) {
	InitMidtrans("SB-test-key")

	orderID, statusCode, gross := "LH-42", "200", "250.00"
	sum := sha512.Sum512([]byte(orderID + statusCode + gross + "SB-test-key"))
	valid := hex.EncodeToString(sum[:])

	assert.True(t, VerifyNotificationSignature(orderID, statusCode, gross, valid))
	assert.False(t, VerifyNotificationSignature(orderID, statusCode, gross, "forged"))
	assert.False(t, VerifyNotificationSignature("LH-43", statusCode, gross, valid))
}
