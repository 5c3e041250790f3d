package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"learnhub_backend/internals/features/courses/modules/controller"
)

func ModuleAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := controller.NewModuleAdminController(db)

	modules := admin.Group("/modules")
	modules.Get("/by-course/:courseId", ctrl.ListByCourse)
	modules.Post("/", ctrl.Create)
	modules.Put("/:id", ctrl.Update)
	modules.Delete("/:id", ctrl.Delete)
}
