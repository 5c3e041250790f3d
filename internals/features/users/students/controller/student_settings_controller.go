package controller

import (
	"os"
	"path/filepath"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"learnhub_backend/internals/configs"
	"learnhub_backend/internals/features/users/auth/service"
	"learnhub_backend/internals/features/users/students/dto"
	"learnhub_backend/internals/features/users/students/repository"
	helper "learnhub_backend/internals/helpers"
)

type StudentSettingsController struct {
	DB *gorm.DB
}

func NewStudentSettingsController(db *gorm.DB) *StudentSettingsController {
	return &StudentSettingsController{DB: db}
}

// Show returns the caller's own profile.
func (ctrl *StudentSettingsController) Show(c *fiber.Ctx) error {
	studentID, err := helper.GetUserID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	student, err := repository.NewStudentRepository(ctrl.DB).Get(studentID)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	if student == nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	return helper.JsonOK(c, "Profile fetched", student)
}

func (ctrl *StudentSettingsController) UpdateProfile(c *fiber.Ctx) error {
	studentID, err := helper.GetUserID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var req dto.UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	updated, err := repository.NewStudentRepository(ctrl.DB).
		UpdateProfile(studentID, req.Name, req.Genre, req.Birthdate)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	if !updated {
		return helper.JsonError(c, fiber.StatusNotFound, "Student not found")
	}
	return helper.JsonOK(c, "Profile updated", nil)
}

// UpdatePassword requires the current password before setting a new one.
func (ctrl *StudentSettingsController) UpdatePassword(c *fiber.Ctx) error {
	studentID, err := helper.GetUserID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var req dto.UpdatePasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	repo := repository.NewStudentRepository(ctrl.DB)
	student, err := repo.Get(studentID)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	if student == nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	if err := service.CheckPasswordHash(student.StudentPassword, req.CurrentPassword); err != nil {
		return helper.JsonError(c, fiber.StatusForbidden, "Current password is incorrect")
	}

	hashed, err := service.HashPassword(req.NewPassword)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	if _, err := repo.UpdatePassword(studentID, hashed); err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonOK(c, "Password updated", nil)
}

// UpdatePhoto accepts a multipart upload, re-encodes it, and stores it
// under the local upload directory.
func (ctrl *StudentSettingsController) UpdatePhoto(c *fiber.Ctx) error {
	studentID, err := helper.GetUserID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	fileHeader, err := c.FormFile("photo")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Missing photo file")
	}

	data, filename, err := helper.ProcessProfilePhoto(fileHeader)
	if err != nil {
		return helper.JsonFromError(c, err)
	}

	uploadDir := configs.GetEnv("UPLOAD_DIR", "./uploads/profile")
	if err := os.MkdirAll(uploadDir, 0o755); err != nil {
		return helper.JsonFromError(c, err)
	}
	if err := os.WriteFile(filepath.Join(uploadDir, filename), data, 0o644); err != nil {
		return helper.JsonFromError(c, err)
	}

	url := "/uploads/profile/" + filename
	if _, err := repository.NewStudentRepository(ctrl.DB).UpdatePhotoURL(studentID, url); err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonOK(c, "Profile photo updated", fiber.Map{"photo_url": url})
}
