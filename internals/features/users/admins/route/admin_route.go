package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"learnhub_backend/internals/features/users/admins/controller"
	authMiddleware "learnhub_backend/internals/middlewares/auth"
)

// AdminManagementRoutes is mounted behind the panel group; listing is
// open to every admin, mutations are additionally gated at repository
// level to root only.
func AdminManagementRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := controller.NewAdminController(db)

	admins := admin.Group("/admins")
	admins.Get("/", ctrl.List)
	admins.Get("/:adminId", ctrl.Detail)

	mutations := admins.Group("/", authMiddleware.MaxAdminLevel(0))
	mutations.Post("/", ctrl.Create)
	mutations.Put("/:adminId", ctrl.Update)
	mutations.Delete("/:adminId", ctrl.Delete)
}
