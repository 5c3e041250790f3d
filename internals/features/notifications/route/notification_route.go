package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"learnhub_backend/internals/features/notifications/controller"
)

func NotificationUserRoutes(user fiber.Router, db *gorm.DB) {
	ctrl := controller.NewNotificationController(db)

	notifications := user.Group("/notifications")
	notifications.Get("/", ctrl.List)
	notifications.Get("/unread-count", ctrl.UnreadCount)
	notifications.Post("/:notificationId/read", ctrl.MarkRead)
	notifications.Post("/read-all", ctrl.MarkAllRead)
}
