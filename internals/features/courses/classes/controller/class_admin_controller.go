package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"learnhub_backend/internals/features/courses/classes/dto"
	"learnhub_backend/internals/features/courses/classes/repository"
	adminRepo "learnhub_backend/internals/features/users/admins/repository"
	helper "learnhub_backend/internals/helpers"
)

type ClassAdminController struct {
	DB      *gorm.DB
	Classes *repository.ClassRepository
}

func NewClassAdminController(db *gorm.DB) *ClassAdminController {
	return &ClassAdminController{DB: db, Classes: repository.NewClassRepository(db)}
}

// GET /api/a/classes/by-module/:moduleId
func (ctrl *ClassAdminController) ListByModule(c *fiber.Ctx) error {
	moduleID, err := uuid.Parse(c.Params("moduleId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid module id")
	}
	classes, err := ctrl.Classes.GetAllFromModule(moduleID)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	responses := make([]dto.ClassResponse, 0, len(classes))
	for i := range classes {
		responses = append(responses, *dto.ToClassResponse(&classes[i]))
	}
	return helper.JsonOK(c, "classes", responses)
}

// POST /api/a/classes/video
func (ctrl *ClassAdminController) CreateVideo(c *fiber.Ctx) error {
	actor, err := adminRepo.GetActingAdmin(ctrl.DB, c)
	if err != nil || actor == nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	var req dto.VideoRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	class := req.ToModel()
	if _, err := ctrl.Classes.Add(actor, class); err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonCreated(c, "video class created", dto.ToClassResponse(class))
}

// POST /api/a/classes/questionnaire
func (ctrl *ClassAdminController) CreateQuestionnaire(c *fiber.Ctx) error {
	actor, err := adminRepo.GetActingAdmin(ctrl.DB, c)
	if err != nil || actor == nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	var req dto.QuestionnaireRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	class := req.ToModel()
	if _, err := ctrl.Classes.Add(actor, class); err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonCreated(c, "questionnaire class created", dto.ToClassResponse(class))
}

// PUT /api/a/classes/video/:id
func (ctrl *ClassAdminController) UpdateVideo(c *fiber.Ctx) error {
	actor, err := adminRepo.GetActingAdmin(ctrl.DB, c)
	if err != nil || actor == nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid class id")
	}

	var req dto.VideoRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	class := req.ToModel()
	class.ClassID = id
	updated, err := ctrl.Classes.Update(actor, class)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	if !updated {
		return helper.JsonError(c, fiber.StatusNotFound, "class not found")
	}
	return helper.JsonOK(c, "class updated", nil)
}

// PUT /api/a/classes/questionnaire/:id
func (ctrl *ClassAdminController) UpdateQuestionnaire(c *fiber.Ctx) error {
	actor, err := adminRepo.GetActingAdmin(ctrl.DB, c)
	if err != nil || actor == nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid class id")
	}

	var req dto.QuestionnaireRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	class := req.ToModel()
	class.ClassID = id
	updated, err := ctrl.Classes.Update(actor, class)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	if !updated {
		return helper.JsonError(c, fiber.StatusNotFound, "class not found")
	}
	return helper.JsonOK(c, "class updated", nil)
}

// POST /api/a/classes/move — relocate a class to another module/slot.
func (ctrl *ClassAdminController) Move(c *fiber.Ctx) error {
	actor, err := adminRepo.GetActingAdmin(ctrl.DB, c)
	if err != nil || actor == nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	var req dto.MoveClassRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	moved, err := ctrl.Classes.UpdateModule(actor, req.ClassModuleID, req.ClassOrder, req.TargetModuleID, req.TargetClassOrder)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	if !moved {
		return helper.JsonError(c, fiber.StatusNotFound, "class not found")
	}
	return helper.JsonOK(c, "class moved", nil)
}

// DELETE /api/a/classes — addressed by composite key in the body.
func (ctrl *ClassAdminController) Delete(c *fiber.Ctx) error {
	actor, err := adminRepo.GetActingAdmin(ctrl.DB, c)
	if err != nil || actor == nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	var req dto.ClassKeyRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	deleted, err := ctrl.Classes.Delete(actor, req.ClassModuleID, req.ClassOrder)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	if !deleted {
		return helper.JsonError(c, fiber.StatusNotFound, "class not found")
	}
	return helper.JsonOK(c, "class deleted", nil)
}
