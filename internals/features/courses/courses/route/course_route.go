package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"learnhub_backend/internals/features/courses/courses/controller"
)

func CourseUserRoutes(user fiber.Router, db *gorm.DB) {
	ctrl := controller.NewCourseUserController(db)

	user.Get("/home", ctrl.Home)
	courses := user.Group("/courses")
	courses.Get("/open/:courseId/:classId?", ctrl.Open)
}

func CourseAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := controller.NewCourseAdminController(db)

	courses := admin.Group("/courses")
	courses.Get("/", ctrl.List)
	courses.Get("/:id", ctrl.Detail)
	courses.Post("/", ctrl.Create)
	courses.Put("/:id", ctrl.Update)
	courses.Delete("/:id", ctrl.Delete)
}
