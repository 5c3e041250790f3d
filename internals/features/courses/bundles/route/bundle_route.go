package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"learnhub_backend/internals/features/courses/bundles/controller"
)

func BundlePublicRoutes(public fiber.Router, db *gorm.DB) {
	ctrl := controller.NewBundleUserController(db)

	bundles := public.Group("/bundles")
	bundles.Get("/", ctrl.Catalog)
	bundles.Get("/:id", ctrl.Detail)
}

func BundleUserRoutes(user fiber.Router, db *gorm.DB) {
	ctrl := controller.NewBundleUserController(db)

	bundles := user.Group("/bundles")
	bundles.Get("/available", ctrl.Available)
}

func BundleAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := controller.NewBundleAdminController(db)

	bundles := admin.Group("/bundles")
	bundles.Get("/", ctrl.List)
	bundles.Post("/", ctrl.Create)
	bundles.Put("/:id", ctrl.Update)
	bundles.Delete("/:id", ctrl.Delete)
	bundles.Post("/:id/courses", ctrl.AttachCourse)
	bundles.Delete("/:id/courses/:courseId", ctrl.DetachCourse)
}
