package controller

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"learnhub_backend/internals/features/purchases/dto"
	"learnhub_backend/internals/features/purchases/repository"
	"learnhub_backend/internals/features/purchases/service"
	helper "learnhub_backend/internals/helpers"
)

type PurchaseWebhookController struct {
	DB *gorm.DB
}

func NewPurchaseWebhookController(db *gorm.DB) *PurchaseWebhookController {
	return &PurchaseWebhookController{DB: db}
}

// HandleNotification settles a purchase from a Midtrans HTTP notification.
// The endpoint is unauthenticated; the signature key proves the sender.
// It always answers 200 once the signature checks out so the gateway stops
// retrying.
func (ctrl *PurchaseWebhookController) HandleNotification(c *fiber.Ctx) error {
	var notif dto.MidtransNotification
	if err := c.BodyParser(&notif); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid notification body")
	}

	if !service.VerifyNotificationSignature(notif.OrderID, notif.StatusCode, notif.GrossAmount, notif.SignatureKey) {
		log.Printf("[WEBHOOK] rejected notification for order %s: bad signature", notif.OrderID)
		return helper.JsonError(c, fiber.StatusForbidden, "Invalid signature")
	}

	status := service.SettlementStatus(notif.TransactionStatus)
	if notif.TransactionStatus == "capture" && notif.FraudStatus == "challenge" {
		status = ""
	}
	if status == "" {
		return helper.JsonOK(c, "Notification acknowledged", nil)
	}

	settled, err := repository.NewPurchaseRepository(ctrl.DB).SettleByOrderID(notif.OrderID, status)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	if !settled {
		// Unknown order or already settled; acknowledge either way.
		log.Printf("[WEBHOOK] order %s not settled (status %s)", notif.OrderID, status)
	}
	return helper.JsonOK(c, "Notification processed", nil)
}
