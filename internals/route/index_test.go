package routes

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"learnhub_backend/internals/configs"
	bundleModel "learnhub_backend/internals/features/courses/bundles/model"
	classModel "learnhub_backend/internals/features/courses/classes/model"
	moduleModel "learnhub_backend/internals/features/courses/modules/model"
	purchaseModel "learnhub_backend/internals/features/purchases/model"
	authModel "learnhub_backend/internals/features/users/auth/model"
	studentModel "learnhub_backend/internals/features/users/students/model"
)

var testAppSeq int

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()
	configs.JWTSecret = "test-secret"
	configs.JWTRefreshSecret = "test-refresh-secret"

	testAppSeq++
	dsn := fmt.Sprintf("file:routes_test_%d?mode=memory&cache=shared", testAppSeq)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&studentModel.StudentModel{},
		&authModel.TokenBlacklist{},
		&authModel.RefreshToken{},
		&bundleModel.BundleModel{},
		&bundleModel.BundleCourseModel{},
		&moduleModel.ModuleModel{},
		&classModel.ClassModel{},
		&purchaseModel.PurchaseModel{},
	))

	app := fiber.New()
	SetupRoutes(app, db)
	return app
}

func TestUnknownRouteGetsJSONEnvelope(t *testing.T) {
	app := newTestApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/nope", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "error", body["status"])
	assert.Equal(t, "Route not found", body["message"])
}

func TestStudentSurfaceRequiresToken(t *testing.T) {
	app := newTestApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/u/home", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestPublicCatalogIsOpen(t *testing.T) {
	app := newTestApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/public/bundles/", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestRegisterLoginAndMe(t *testing.T) {
	app := newTestApp(t)

	register := map[string]interface{}{
		"name":     "Test Student",
		"email":    "student@example.com",
		"password": "secret-password",
	}
	payload, _ := json.Marshal(register)

	req := httptest.NewRequest("POST", "/api/auth/register", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	login, _ := json.Marshal(map[string]string{
		"email":    "student@example.com",
		"password": "secret-password",
	})
	req = httptest.NewRequest("POST", "/api/auth/login", bytes.NewReader(login))
	req.Header.Set("Content-Type", "application/json")
	resp, err = app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body struct {
		Data struct {
			AccessToken string `json:"access_token"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.NotEmpty(t, body.Data.AccessToken)

	req = httptest.NewRequest("GET", "/api/auth/me", nil)
	req.Header.Set("Authorization", "Bearer "+body.Data.AccessToken)
	resp, err = app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var me struct {
		Data struct {
			Email string `json:"email"`
			Role  string `json:"role"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&me))
	assert.Equal(t, "student@example.com", me.Data.Email)
	assert.Equal(t, "student", me.Data.Role)
}

func TestWrongPasswordRejected(t *testing.T) {
	app := newTestApp(t)

	register, _ := json.Marshal(map[string]string{
		"name":     "Another Student",
		"email":    "other@example.com",
		"password": "secret-password",
	})
	req := httptest.NewRequest("POST", "/api/auth/register", bytes.NewReader(register))
	req.Header.Set("Content-Type", "application/json")
	_, err := app.Test(req)
	require.NoError(t, err)

	login, _ := json.Marshal(map[string]string{
		"email":    "other@example.com",
		"password": "wrong-password",
	})
	req = httptest.NewRequest("POST", "/api/auth/login", bytes.NewReader(login))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}
