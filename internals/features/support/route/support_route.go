package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"learnhub_backend/internals/features/support/controller"
)

func SupportUserRoutes(user fiber.Router, db *gorm.DB) {
	ctrl := controller.NewSupportUserController(db)

	support := user.Group("/support")
	support.Get("/", ctrl.List)
	support.Post("/new", ctrl.New)
	support.Get("/open/:topicId", ctrl.Open)
	support.Post("/open/:topicId/reply", ctrl.Reply)
	support.Post("/open/:topicId/close", ctrl.Close)
	support.Post("/open/:topicId/reopen", ctrl.Reopen)
}

func SupportAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := controller.NewSupportAdminController(db)

	support := admin.Group("/support")
	support.Get("/", ctrl.List)
	support.Get("/open/:topicId", ctrl.Open)
	support.Post("/open/:topicId/answer", ctrl.Answer)
	support.Post("/open/:topicId/close", ctrl.Close)
	support.Post("/open/:topicId/reopen", ctrl.Reopen)
}
