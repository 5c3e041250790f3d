package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"learnhub_backend/internals/features/courses/classes/dto"
	"learnhub_backend/internals/features/courses/classes/repository"
	helper "learnhub_backend/internals/helpers"
)

var validate = validator.New()

// ClassUserController serves the student-side class endpoints: answer
// lookup and watch-history toggling.
type ClassUserController struct {
	DB        *gorm.DB
	Classes   *repository.ClassRepository
	Historics *repository.HistoricRepository
}

func NewClassUserController(db *gorm.DB) *ClassUserController {
	return &ClassUserController{
		DB:        db,
		Classes:   repository.NewClassRepository(db),
		Historics: repository.NewHistoricRepository(db),
	}
}

// POST /api/u/class/get-answer — reveals a questionnaire's correct option.
func (ctrl *ClassUserController) GetAnswer(c *fiber.Ctx) error {
	var req dto.ClassKeyRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	answer, err := ctrl.Classes.GetAnswer(req.ClassModuleID, req.ClassOrder)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "questionnaire not found")
		}
		return helper.JsonFromError(c, err)
	}
	return helper.JsonOK(c, "answer", fiber.Map{"answer": answer})
}

// POST /api/u/class/mark-watched
func (ctrl *ClassUserController) MarkWatched(c *fiber.Ctx) error {
	studentID, err := helper.GetUserID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	var req dto.ClassKeyRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	// only existing classes can be marked
	class, err := ctrl.Classes.Get(req.ClassModuleID, req.ClassOrder)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	if class == nil {
		return helper.JsonError(c, fiber.StatusNotFound, "class not found")
	}

	if _, err := ctrl.Historics.MarkAsWatched(studentID, req.ClassModuleID, req.ClassOrder); err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonOK(c, "class marked as watched", nil)
}

// POST /api/u/class/remove-watched
func (ctrl *ClassUserController) RemoveWatched(c *fiber.Ctx) error {
	studentID, err := helper.GetUserID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	var req dto.ClassKeyRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	removed, err := ctrl.Historics.RemoveWatched(studentID, req.ClassModuleID, req.ClassOrder)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	if !removed {
		return helper.JsonError(c, fiber.StatusNotFound, "watch record not found")
	}
	return helper.JsonOK(c, "watch record removed", nil)
}
