package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"learnhub_backend/internals/features/users/auth/controller"
	"learnhub_backend/internals/middlewares"
	authmw "learnhub_backend/internals/middlewares/auth"
)

func AuthRoutes(app fiber.Router, db *gorm.DB) {
	ctrl := controller.NewAuthController(db)

	auth := app.Group("/api/auth")
	auth.Post("/register", middlewares.RegisterRateLimiter(), ctrl.Register)
	auth.Post("/login", middlewares.LoginRateLimiter(), ctrl.Login)
	auth.Post("/admin/login", middlewares.LoginRateLimiter(), ctrl.AdminLogin)
	auth.Post("/login-google", middlewares.LoginRateLimiter(), ctrl.GoogleLogin)
	auth.Post("/refresh-token", ctrl.RefreshToken)

	// token required from here on
	auth.Post("/logout", authmw.AuthMiddleware(db), ctrl.Logout)
	auth.Get("/me", authmw.AuthMiddleware(db), ctrl.Me)
}
