package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"learnhub_backend/internals/features/users/students/controller"
)

func StudentUserRoutes(user fiber.Router, db *gorm.DB) {
	ctrl := controller.NewStudentSettingsController(db)

	settings := user.Group("/settings")
	settings.Get("/", ctrl.Show)
	settings.Post("/edit", ctrl.UpdateProfile)
	settings.Post("/update-password", ctrl.UpdatePassword)
	settings.Post("/update-profile-photo", ctrl.UpdatePhoto)
}

func StudentAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := controller.NewStudentAdminController(db)

	students := admin.Group("/students")
	students.Get("/", ctrl.List)
	students.Get("/:studentId", ctrl.Detail)
	students.Post("/", ctrl.Create)
	students.Put("/:studentId", ctrl.Update)
	students.Delete("/:studentId", ctrl.Delete)
}
