package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"learnhub_backend/internals/features/courses/bundles/dto"
	"learnhub_backend/internals/features/courses/bundles/repository"
	adminRepo "learnhub_backend/internals/features/users/admins/repository"
	helper "learnhub_backend/internals/helpers"
)

var validate = validator.New()

type BundleAdminController struct {
	DB      *gorm.DB
	Bundles *repository.BundleRepository
}

func NewBundleAdminController(db *gorm.DB) *BundleAdminController {
	return &BundleAdminController{DB: db, Bundles: repository.NewBundleRepository(db)}
}

// GET /api/a/bundles
func (ctrl *BundleAdminController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 25, 200)
	bundles, total, err := ctrl.Bundles.GetAll(paging.Offset, paging.Limit, c.Query("q"))
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	responses := make([]dto.BundleResponse, 0, len(bundles))
	for i := range bundles {
		agg, err := ctrl.Bundles.GetAggregates(bundles[i].BundleID)
		if err != nil {
			return helper.JsonFromError(c, err)
		}
		responses = append(responses, *dto.ToBundleResponse(&bundles[i], agg.TotalClasses, agg.TotalLength))
	}
	return helper.JsonList(c, "bundles", responses, helper.BuildPagination(total, paging, len(responses)))
}

// POST /api/a/bundles
func (ctrl *BundleAdminController) Create(c *fiber.Ctx) error {
	actor, err := adminRepo.GetActingAdmin(ctrl.DB, c)
	if err != nil || actor == nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	var req dto.BundleRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	bundle := req.ToModel()
	if _, err := ctrl.Bundles.Add(actor, bundle); err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonCreated(c, "bundle created", dto.ToBundleResponse(bundle, 0, 0))
}

// PUT /api/a/bundles/:id
func (ctrl *BundleAdminController) Update(c *fiber.Ctx) error {
	actor, err := adminRepo.GetActingAdmin(ctrl.DB, c)
	if err != nil || actor == nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid bundle id")
	}

	var req dto.BundleRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	bundle := req.ToModel()
	bundle.BundleID = id
	updated, err := ctrl.Bundles.Update(actor, bundle)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	if !updated {
		return helper.JsonError(c, fiber.StatusNotFound, "bundle not found")
	}
	return helper.JsonOK(c, "bundle updated", nil)
}

// DELETE /api/a/bundles/:id
func (ctrl *BundleAdminController) Delete(c *fiber.Ctx) error {
	actor, err := adminRepo.GetActingAdmin(ctrl.DB, c)
	if err != nil || actor == nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid bundle id")
	}
	deleted, err := ctrl.Bundles.Delete(actor, id)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	if !deleted {
		return helper.JsonError(c, fiber.StatusNotFound, "bundle not found")
	}
	return helper.JsonOK(c, "bundle deleted", nil)
}

// POST /api/a/bundles/:id/courses — attach a course.
func (ctrl *BundleAdminController) AttachCourse(c *fiber.Ctx) error {
	actor, err := adminRepo.GetActingAdmin(ctrl.DB, c)
	if err != nil || actor == nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	bundleID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid bundle id")
	}

	var req dto.BundleCourseRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	if _, err := ctrl.Bundles.AttachCourse(actor, bundleID, req.CourseID); err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonOK(c, "course attached", nil)
}

// DELETE /api/a/bundles/:id/courses/:courseId — detach a course.
func (ctrl *BundleAdminController) DetachCourse(c *fiber.Ctx) error {
	actor, err := adminRepo.GetActingAdmin(ctrl.DB, c)
	if err != nil || actor == nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	bundleID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid bundle id")
	}
	courseID, err := uuid.Parse(c.Params("courseId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid course id")
	}

	detached, err := ctrl.Bundles.DetachCourse(actor, bundleID, courseID)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	if !detached {
		return helper.JsonError(c, fiber.StatusNotFound, "bundle course not found")
	}
	return helper.JsonOK(c, "course detached", nil)
}
