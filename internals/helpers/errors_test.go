package helper

import (
	"errors"
	"fmt"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func statusFor(t *testing.T, err error) int {
	t.Helper()
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		return JsonFromError(c, err)
	})
	resp, reqErr := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, reqErr)
	return resp.StatusCode
}

func TestJsonFromErrorMapping(t *testing.T) {
	assert.Equal(t, fiber.StatusBadRequest,
		statusFor(t, fmt.Errorf("%w: course id", ErrInvalidArgument)))
	assert.Equal(t, fiber.StatusForbidden,
		statusFor(t, fmt.Errorf("%w: bundle add", ErrIllegalAccess)))
	assert.Equal(t, fiber.StatusNotFound,
		statusFor(t, gorm.ErrRecordNotFound))
	assert.Equal(t, fiber.StatusConflict,
		statusFor(t, &pq.Error{Code: "23505"}))
	assert.Equal(t, fiber.StatusInternalServerError,
		statusFor(t, errors.New("boom")))
}

func TestIsUniqueViolation(t *testing.T) {
	assert.True(t, IsUniqueViolation(&pq.Error{Code: "23505"}))
	assert.False(t, IsUniqueViolation(&pq.Error{Code: "23503"}))
	assert.False(t, IsUniqueViolation(errors.New("other")))
	assert.False(t, IsUniqueViolation(nil))
}
