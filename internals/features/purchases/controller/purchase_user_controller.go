package controller

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	bundleRepo "learnhub_backend/internals/features/courses/bundles/repository"
	"learnhub_backend/internals/features/purchases/dto"
	"learnhub_backend/internals/features/purchases/model"
	"learnhub_backend/internals/features/purchases/repository"
	"learnhub_backend/internals/features/purchases/service"
	authRepo "learnhub_backend/internals/features/users/auth/repository"
	helper "learnhub_backend/internals/helpers"
)

var validate = validator.New()

type PurchaseUserController struct {
	DB *gorm.DB
}

func NewPurchaseUserController(db *gorm.DB) *PurchaseUserController {
	return &PurchaseUserController{DB: db}
}

// Checkout creates a pending purchase for a bundle and returns a Snap
// token the client hands to the Midtrans widget.
func (ctrl *PurchaseUserController) Checkout(c *fiber.Ctx) error {
	studentID, err := helper.GetUserID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var req dto.CheckoutRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	bundles := bundleRepo.NewBundleRepository(ctrl.DB)
	bundle, err := bundles.Get(req.BundleID)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	if bundle == nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Bundle not found")
	}

	purchases := repository.NewPurchaseRepository(ctrl.DB)
	owned, err := purchases.HasPaidPurchase(studentID, bundle.BundleID)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	if owned {
		return helper.JsonError(c, fiber.StatusConflict, "Bundle already purchased")
	}

	student, err := authRepo.FindStudentByID(ctrl.DB, studentID)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	if student == nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	purchase := &model.PurchaseModel{
		PurchaseStudentID: studentID,
		PurchaseBundleID:  bundle.BundleID,
		PurchasePrice:     bundle.BundlePrice,
		PurchaseStatus:    model.StatusPending,
		PurchaseOrderID:   newOrderID(),
	}
	if _, err := purchases.Add(purchase); err != nil {
		return helper.JsonFromError(c, err)
	}

	token, err := service.GenerateSnapToken(purchase, student.StudentName, student.StudentEmail)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadGateway, "Payment gateway unavailable")
	}

	return helper.JsonCreated(c, "Checkout created", dto.CheckoutResponse{
		PurchaseOrderID: purchase.PurchaseOrderID,
		SnapToken:       token,
		Price:           purchase.PurchasePrice,
	})
}

// History lists the authenticated student's purchases, newest first.
func (ctrl *PurchaseUserController) History(c *fiber.Ctx) error {
	studentID, err := helper.GetUserID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	purchases, err := repository.NewPurchaseRepository(ctrl.DB).GetAllFromStudent(studentID)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonOK(c, "Purchases fetched", dto.ToPurchaseResponses(purchases))
}

func newOrderID() string {
	return fmt.Sprintf("LH-%d-%s", time.Now().Unix(), uuid.NewString()[:8])
}
