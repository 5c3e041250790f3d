package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"learnhub_backend/internals/features/users/auth/service"
	"learnhub_backend/internals/features/users/admins/dto"
	"learnhub_backend/internals/features/users/admins/model"
	"learnhub_backend/internals/features/users/admins/repository"
	helper "learnhub_backend/internals/helpers"
)

var validate = validator.New()

type AdminController struct {
	DB *gorm.DB
}

func NewAdminController(db *gorm.DB) *AdminController {
	return &AdminController{DB: db}
}

func (ctrl *AdminController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 10, 100)
	admins, total, err := repository.NewAdminRepository(ctrl.DB).
		GetAll(paging.Offset, paging.Limit, c.Query("search"))
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonList(c, "Admins fetched", admins,
		helper.BuildPagination(total, paging, len(admins)))
}

func (ctrl *AdminController) Detail(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("adminId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid admin id")
	}

	admin, err := repository.NewAdminRepository(ctrl.DB).Get(id)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	if admin == nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Admin not found")
	}
	return helper.JsonOK(c, "Admin fetched", admin)
}

func (ctrl *AdminController) Create(c *fiber.Ctx) error {
	actor, err := repository.GetActingAdmin(ctrl.DB, c)
	if err != nil {
		return helper.JsonFromError(c, err)
	}

	var req dto.AdminRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}
	if req.Password == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Password is required")
	}

	repo := repository.NewAdminRepository(ctrl.DB)
	auth, err := repo.GetAuthorizationByLevel(req.Level)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	if auth == nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Unknown authorization level")
	}

	hashed, err := service.HashPassword(req.Password)
	if err != nil {
		return helper.JsonFromError(c, err)
	}

	admin := &model.AdminModel{
		AdminName:            req.Name,
		AdminGenre:           req.Genre,
		AdminBirthdate:       req.Birthdate,
		AdminEmail:           req.Email,
		AdminPassword:        hashed,
		AdminAuthorizationID: auth.AuthorizationID,
	}
	if _, err := repo.Add(actor, admin); err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonCreated(c, "Admin created", admin)
}

func (ctrl *AdminController) Update(c *fiber.Ctx) error {
	actor, err := repository.GetActingAdmin(ctrl.DB, c)
	if err != nil {
		return helper.JsonFromError(c, err)
	}

	id, err := uuid.Parse(c.Params("adminId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid admin id")
	}

	var req dto.AdminRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	repo := repository.NewAdminRepository(ctrl.DB)
	auth, err := repo.GetAuthorizationByLevel(req.Level)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	if auth == nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Unknown authorization level")
	}

	admin := &model.AdminModel{
		AdminID:              id,
		AdminName:            req.Name,
		AdminGenre:           req.Genre,
		AdminBirthdate:       req.Birthdate,
		AdminEmail:           req.Email,
		AdminAuthorizationID: auth.AuthorizationID,
	}
	if req.Password != "" {
		hashed, err := service.HashPassword(req.Password)
		if err != nil {
			return helper.JsonFromError(c, err)
		}
		admin.AdminPassword = hashed
	}

	updated, err := repo.Update(actor, admin)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	if !updated {
		return helper.JsonError(c, fiber.StatusNotFound, "Admin not found")
	}
	return helper.JsonOK(c, "Admin updated", nil)
}

func (ctrl *AdminController) Delete(c *fiber.Ctx) error {
	actor, err := repository.GetActingAdmin(ctrl.DB, c)
	if err != nil {
		return helper.JsonFromError(c, err)
	}

	id, err := uuid.Parse(c.Params("adminId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid admin id")
	}

	deleted, err := repository.NewAdminRepository(ctrl.DB).Delete(actor, id)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	if !deleted {
		return helper.JsonError(c, fiber.StatusNotFound, "Admin not found")
	}
	return helper.JsonOK(c, "Admin deleted", nil)
}
