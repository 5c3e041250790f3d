package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"learnhub_backend/internals/features/users/auth/service"
	adminRepo "learnhub_backend/internals/features/users/admins/repository"
	"learnhub_backend/internals/features/users/students/dto"
	"learnhub_backend/internals/features/users/students/model"
	"learnhub_backend/internals/features/users/students/repository"
	helper "learnhub_backend/internals/helpers"
)

var validate = validator.New()

type StudentAdminController struct {
	DB *gorm.DB
}

func NewStudentAdminController(db *gorm.DB) *StudentAdminController {
	return &StudentAdminController{DB: db}
}

func (ctrl *StudentAdminController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 10, 100)
	students, total, err := repository.NewStudentRepository(ctrl.DB).
		GetAll(paging.Offset, paging.Limit, c.Query("search"))
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonList(c, "Students fetched", students,
		helper.BuildPagination(total, paging, len(students)))
}

func (ctrl *StudentAdminController) Detail(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("studentId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid student id")
	}

	student, err := repository.NewStudentRepository(ctrl.DB).Get(id)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	if student == nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Student not found")
	}
	return helper.JsonOK(c, "Student fetched", student)
}

func (ctrl *StudentAdminController) Create(c *fiber.Ctx) error {
	actor, err := adminRepo.GetActingAdmin(ctrl.DB, c)
	if err != nil {
		return helper.JsonFromError(c, err)
	}

	var req dto.StudentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}
	if req.Password == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Password is required")
	}

	hashed, err := service.HashPassword(req.Password)
	if err != nil {
		return helper.JsonFromError(c, err)
	}

	student := &model.StudentModel{
		StudentName:      req.Name,
		StudentGenre:     req.Genre,
		StudentBirthdate: req.Birthdate,
		StudentEmail:     req.Email,
		StudentPassword:  hashed,
	}
	if _, err := repository.NewStudentRepository(ctrl.DB).Add(actor, student); err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonCreated(c, "Student created", student)
}

func (ctrl *StudentAdminController) Update(c *fiber.Ctx) error {
	actor, err := adminRepo.GetActingAdmin(ctrl.DB, c)
	if err != nil {
		return helper.JsonFromError(c, err)
	}

	id, err := uuid.Parse(c.Params("studentId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid student id")
	}

	var req dto.StudentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	student := &model.StudentModel{
		StudentID:        id,
		StudentName:      req.Name,
		StudentGenre:     req.Genre,
		StudentBirthdate: req.Birthdate,
		StudentEmail:     req.Email,
	}
	updated, err := repository.NewStudentRepository(ctrl.DB).Update(actor, student)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	if !updated {
		return helper.JsonError(c, fiber.StatusNotFound, "Student not found")
	}
	return helper.JsonOK(c, "Student updated", nil)
}

func (ctrl *StudentAdminController) Delete(c *fiber.Ctx) error {
	actor, err := adminRepo.GetActingAdmin(ctrl.DB, c)
	if err != nil {
		return helper.JsonFromError(c, err)
	}

	id, err := uuid.Parse(c.Params("studentId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid student id")
	}

	deleted, err := repository.NewStudentRepository(ctrl.DB).Delete(actor, id)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	if !deleted {
		return helper.JsonError(c, fiber.StatusNotFound, "Student not found")
	}
	return helper.JsonOK(c, "Student deleted", nil)
}
