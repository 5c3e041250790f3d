package controller

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	bundleRepo "learnhub_backend/internals/features/courses/bundles/repository"
	"learnhub_backend/internals/features/purchases/dto"
	"learnhub_backend/internals/features/purchases/model"
	"learnhub_backend/internals/features/purchases/repository"
	adminRepo "learnhub_backend/internals/features/users/admins/repository"
	helper "learnhub_backend/internals/helpers"
)

type PurchaseAdminController struct {
	DB *gorm.DB
}

func NewPurchaseAdminController(db *gorm.DB) *PurchaseAdminController {
	return &PurchaseAdminController{DB: db}
}

// Grant records a paid purchase for a student without going through the
// payment gateway. Used for manual settlements and promos.
func (ctrl *PurchaseAdminController) Grant(c *fiber.Ctx) error {
	actor, err := adminRepo.GetActingAdmin(ctrl.DB, c)
	if err != nil || actor == nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var req dto.GrantRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	bundle, err := bundleRepo.NewBundleRepository(ctrl.DB).Get(req.BundleID)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	if bundle == nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Bundle not found")
	}

	purchase := &model.PurchaseModel{
		PurchaseStudentID: req.StudentID,
		PurchaseBundleID:  req.BundleID,
		PurchasePrice:     bundle.BundlePrice,
		PurchaseOrderID:   fmt.Sprintf("GRANT-%s", uuid.NewString()),
	}
	if _, err := repository.NewPurchaseRepository(ctrl.DB).Grant(actor, purchase); err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonCreated(c, "Purchase granted", dto.ToPurchaseResponse(purchase))
}

// Revoke deletes a purchase record, removing the student's access.
func (ctrl *PurchaseAdminController) Revoke(c *fiber.Ctx) error {
	actor, err := adminRepo.GetActingAdmin(ctrl.DB, c)
	if err != nil || actor == nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	id, err := uuid.Parse(c.Params("purchaseId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid purchase id")
	}

	deleted, err := repository.NewPurchaseRepository(ctrl.DB).Revoke(actor, id)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	if !deleted {
		return helper.JsonError(c, fiber.StatusNotFound, "Purchase not found")
	}
	return helper.JsonOK(c, "Purchase revoked", nil)
}

// ListByStudent shows a student's purchase history in the panel.
func (ctrl *PurchaseAdminController) ListByStudent(c *fiber.Ctx) error {
	studentID, err := uuid.Parse(c.Params("studentId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid student id")
	}

	purchases, err := repository.NewPurchaseRepository(ctrl.DB).GetAllFromStudent(studentID)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonOK(c, "Purchases fetched", dto.ToPurchaseResponses(purchases))
}
