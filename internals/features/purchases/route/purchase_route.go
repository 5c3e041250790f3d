package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"learnhub_backend/internals/features/purchases/controller"
)

// PurchaseWebhookRoutes is mounted unauthenticated; the payment gateway
// signs its notifications instead of carrying a bearer token.
func PurchaseWebhookRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewPurchaseWebhookController(db)

	api.Post("/purchases/notification", ctrl.HandleNotification)
}

func PurchaseUserRoutes(user fiber.Router, db *gorm.DB) {
	ctrl := controller.NewPurchaseUserController(db)

	purchases := user.Group("/purchases")
	purchases.Post("/checkout", ctrl.Checkout)
	purchases.Get("/", ctrl.History)
}

func PurchaseAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := controller.NewPurchaseAdminController(db)

	purchases := admin.Group("/purchases")
	purchases.Post("/grant", ctrl.Grant)
	purchases.Delete("/:purchaseId", ctrl.Revoke)
	purchases.Get("/student/:studentId", ctrl.ListByStudent)
}
