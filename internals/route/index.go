package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	bundleRoute "learnhub_backend/internals/features/courses/bundles/route"
	classRoute "learnhub_backend/internals/features/courses/classes/route"
	commentRoute "learnhub_backend/internals/features/courses/comments/route"
	courseRoute "learnhub_backend/internals/features/courses/courses/route"
	moduleRoute "learnhub_backend/internals/features/courses/modules/route"
	notebookRoute "learnhub_backend/internals/features/courses/notebook/route"
	notificationRoute "learnhub_backend/internals/features/notifications/route"
	purchaseRoute "learnhub_backend/internals/features/purchases/route"
	supportRoute "learnhub_backend/internals/features/support/route"
	adminRoute "learnhub_backend/internals/features/users/admins/route"
	authRoute "learnhub_backend/internals/features/users/auth/route"
	studentRoute "learnhub_backend/internals/features/users/students/route"
	helper "learnhub_backend/internals/helpers"
	authMiddleware "learnhub_backend/internals/middlewares/auth"
)

var startTime time.Time

// SetupRoutes mounts the three surfaces: /api/public (no token),
// /api/u (student site) and /api/a (admin panel). The payment gateway
// webhook lives outside all of them.
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	BaseRoutes(app, db)

	log.Println("[INFO] Setting up AuthRoutes...")
	authRoute.AuthRoutes(app, db)

	log.Println("[INFO] Setting up webhook routes...")
	api := app.Group("/api")
	purchaseRoute.PurchaseWebhookRoutes(api, db)

	log.Println("[INFO] Setting up PUBLIC group...")
	public := app.Group("/api/public")
	bundleRoute.BundlePublicRoutes(public, db)

	log.Println("[INFO] Setting up USER group...")
	user := app.Group("/api/u",
		authMiddleware.AuthMiddleware(db),
		authMiddleware.OnlyStudents(),
	)
	courseRoute.CourseUserRoutes(user, db)
	classRoute.ClassUserRoutes(user, db)
	commentRoute.CommentUserRoutes(user, db)
	notebookRoute.NotebookUserRoutes(user, db)
	bundleRoute.BundleUserRoutes(user, db)
	purchaseRoute.PurchaseUserRoutes(user, db)
	supportRoute.SupportUserRoutes(user, db)
	notificationRoute.NotificationUserRoutes(user, db)
	studentRoute.StudentUserRoutes(user, db)

	log.Println("[INFO] Setting up ADMIN group...")
	admin := app.Group("/api/a",
		authMiddleware.AuthMiddleware(db),
		authMiddleware.OnlyAdmins(),
	)
	courseRoute.CourseAdminRoutes(admin, db)
	moduleRoute.ModuleAdminRoutes(admin, db)
	classRoute.ClassAdminRoutes(admin, db)
	bundleRoute.BundleAdminRoutes(admin, db)
	purchaseRoute.PurchaseAdminRoutes(admin, db)
	supportRoute.SupportAdminRoutes(admin, db)
	studentRoute.StudentAdminRoutes(admin, db)
	adminRoute.AdminManagementRoutes(admin, db)

	// Unknown paths get the JSON envelope instead of fiber's plain 404.
	app.Use(func(c *fiber.Ctx) error {
		return helper.JsonError(c, fiber.StatusNotFound, "Route not found")
	})
}
