package helper

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// The auth middleware stores the authenticated actor in fiber Locals,
// which is the only request-scoped carrier domain code reads from:
// no ambient session state anywhere below the controllers.

const (
	LocalsUserID     = "user_id"
	LocalsUserRole   = "user_role"
	LocalsAdminLevel = "admin_level"
)

const (
	RoleStudent = "student"
	RoleAdmin   = "admin"
)

var ErrNoActor = errors.New("no authenticated actor in request context")

func GetUserID(c *fiber.Ctx) (uuid.UUID, error) {
	raw, ok := c.Locals(LocalsUserID).(string)
	if !ok || raw == "" {
		return uuid.Nil, ErrNoActor
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, ErrNoActor
	}
	return id, nil
}

func GetUserRole(c *fiber.Ctx) string {
	role, _ := c.Locals(LocalsUserRole).(string)
	return role
}

// GetAdminLevel returns the acting admin's authorization level, or -1 when
// the request is not carried by an admin token.
func GetAdminLevel(c *fiber.Ctx) int {
	lvl, ok := c.Locals(LocalsAdminLevel).(int)
	if !ok {
		return -1
	}
	return lvl
}
