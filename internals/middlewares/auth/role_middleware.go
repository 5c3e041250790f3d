package auth

import (
	"github.com/gofiber/fiber/v2"

	helper "learnhub_backend/internals/helpers"
)

// OnlyStudents guards the student surface (/api/u).
func OnlyStudents() fiber.Handler {
	return requireRole(helper.RoleStudent, "students only")
}

// OnlyAdmins guards the panel surface (/api/a).
func OnlyAdmins() fiber.Handler {
	return requireRole(helper.RoleAdmin, "admins only")
}

func requireRole(role, message string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		actual := helper.GetUserRole(c)
		if actual == "" {
			return helper.JsonError(c, fiber.StatusUnauthorized, "missing role information")
		}
		if actual != role {
			return helper.JsonError(c, fiber.StatusForbidden, message)
		}
		return c.Next()
	}
}

// MaxAdminLevel rejects admins whose authorization level is above the
// given rank; lower level means broader access.
func MaxAdminLevel(max int) fiber.Handler {
	return func(c *fiber.Ctx) error {
		lvl := helper.GetAdminLevel(c)
		if lvl < 0 {
			return helper.JsonError(c, fiber.StatusUnauthorized, "missing authorization level")
		}
		if lvl > max {
			return helper.JsonError(c, fiber.StatusForbidden, "insufficient authorization level")
		}
		return c.Next()
	}
}
