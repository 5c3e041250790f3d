package helper

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// Failure taxonomy shared by every repository. Repositories raise these
// BEFORE any SQL is issued; controllers translate them with JsonFromError.
var (
	// ErrInvalidArgument marks a caller contract violation: a required
	// identifier was missing, nil, empty or non-positive.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrIllegalAccess marks an authenticated admin whose authorization
	// level is outside the allowed set for the requested mutation.
	ErrIllegalAccess = errors.New("illegal access")
)

// JsonFromError maps repository/service failures to the JSON envelope.
// Not-found is soft everywhere (repositories return nil, nil), so a
// gorm.ErrRecordNotFound reaching this point means a controller chose to
// let it propagate as a 404.
func JsonFromError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, ErrInvalidArgument):
		return JsonError(c, fiber.StatusBadRequest, err.Error())
	case errors.Is(err, ErrIllegalAccess):
		return JsonError(c, fiber.StatusForbidden, err.Error())
	case errors.Is(err, gorm.ErrRecordNotFound):
		return JsonError(c, fiber.StatusNotFound, "record not found")
	case IsUniqueViolation(err):
		return JsonError(c, fiber.StatusConflict, "record already exists")
	default:
		return JsonError(c, fiber.StatusInternalServerError, "internal server error")
	}
}

// IsUniqueViolation reports whether err is a Postgres unique-constraint
// violation (SQLSTATE 23505).
func IsUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505"
	}
	return false
}
