package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"learnhub_backend/internals/features/courses/modules/dto"
	"learnhub_backend/internals/features/courses/modules/repository"
	adminRepo "learnhub_backend/internals/features/users/admins/repository"
	helper "learnhub_backend/internals/helpers"
)

var validate = validator.New()

type ModuleAdminController struct {
	DB      *gorm.DB
	Modules *repository.ModuleRepository
}

func NewModuleAdminController(db *gorm.DB) *ModuleAdminController {
	return &ModuleAdminController{DB: db, Modules: repository.NewModuleRepository(db)}
}

// GET /api/a/modules/by-course/:courseId
func (ctrl *ModuleAdminController) ListByCourse(c *fiber.Ctx) error {
	courseID, err := uuid.Parse(c.Params("courseId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid course id")
	}
	modules, err := ctrl.Modules.GetAllFromCourse(courseID)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	responses := make([]dto.ModuleResponse, 0, len(modules))
	for i := range modules {
		responses = append(responses, *dto.ToModuleResponse(&modules[i]))
	}
	return helper.JsonOK(c, "modules", responses)
}

// POST /api/a/modules
func (ctrl *ModuleAdminController) Create(c *fiber.Ctx) error {
	actor, err := adminRepo.GetActingAdmin(ctrl.DB, c)
	if err != nil || actor == nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	var req dto.ModuleRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	module := req.ToModel()
	if _, err := ctrl.Modules.Add(actor, module); err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonCreated(c, "module created", dto.ToModuleResponse(module))
}

// PUT /api/a/modules/:id
func (ctrl *ModuleAdminController) Update(c *fiber.Ctx) error {
	actor, err := adminRepo.GetActingAdmin(ctrl.DB, c)
	if err != nil || actor == nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid module id")
	}

	var req dto.ModuleRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	module := req.ToModel()
	module.ModuleID = id
	updated, err := ctrl.Modules.Update(actor, module)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	if !updated {
		return helper.JsonError(c, fiber.StatusNotFound, "module not found")
	}
	return helper.JsonOK(c, "module updated", nil)
}

// DELETE /api/a/modules/:id
func (ctrl *ModuleAdminController) Delete(c *fiber.Ctx) error {
	actor, err := adminRepo.GetActingAdmin(ctrl.DB, c)
	if err != nil || actor == nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid module id")
	}
	deleted, err := ctrl.Modules.Delete(actor, id)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	if !deleted {
		return helper.JsonError(c, fiber.StatusNotFound, "module not found")
	}
	return helper.JsonOK(c, "module deleted", nil)
}
