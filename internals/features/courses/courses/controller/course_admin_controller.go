package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"learnhub_backend/internals/features/courses/courses/dto"
	"learnhub_backend/internals/features/courses/courses/repository"
	adminRepo "learnhub_backend/internals/features/users/admins/repository"
	helper "learnhub_backend/internals/helpers"
)

var validate = validator.New()

type CourseAdminController struct {
	DB      *gorm.DB
	Courses *repository.CourseRepository
}

func NewCourseAdminController(db *gorm.DB) *CourseAdminController {
	return &CourseAdminController{DB: db, Courses: repository.NewCourseRepository(db)}
}

// GET /api/a/courses
func (ctrl *CourseAdminController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 25, 200)
	courses, total, err := ctrl.Courses.GetAll(paging.Offset, paging.Limit, c.Query("q"))
	if err != nil {
		return helper.JsonFromError(c, err)
	}

	responses := make([]dto.CourseResponse, 0, len(courses))
	for i := range courses {
		agg, err := ctrl.Courses.GetAggregates(courses[i].CourseID)
		if err != nil {
			return helper.JsonFromError(c, err)
		}
		responses = append(responses, *dto.ToCourseResponse(&courses[i], agg.TotalClasses, agg.TotalLength))
	}
	return helper.JsonList(c, "courses", responses, helper.BuildPagination(total, paging, len(responses)))
}

// GET /api/a/courses/:id
func (ctrl *CourseAdminController) Detail(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid course id")
	}
	course, err := ctrl.Courses.Get(id)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	if course == nil {
		return helper.JsonError(c, fiber.StatusNotFound, "course not found")
	}
	agg, err := ctrl.Courses.GetAggregates(id)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonOK(c, "course", dto.ToCourseResponse(course, agg.TotalClasses, agg.TotalLength))
}

// POST /api/a/courses
func (ctrl *CourseAdminController) Create(c *fiber.Ctx) error {
	actor, err := adminRepo.GetActingAdmin(ctrl.DB, c)
	if err != nil || actor == nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	var req dto.CourseRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	course := req.ToModel()
	if _, err := ctrl.Courses.Add(actor, course); err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonCreated(c, "course created", dto.ToCourseResponse(course, 0, 0))
}

// PUT /api/a/courses/:id
func (ctrl *CourseAdminController) Update(c *fiber.Ctx) error {
	actor, err := adminRepo.GetActingAdmin(ctrl.DB, c)
	if err != nil || actor == nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid course id")
	}

	var req dto.CourseRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	course := req.ToModel()
	course.CourseID = id
	updated, err := ctrl.Courses.Update(actor, course)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	if !updated {
		return helper.JsonError(c, fiber.StatusNotFound, "course not found")
	}
	return helper.JsonOK(c, "course updated", nil)
}

// DELETE /api/a/courses/:id
func (ctrl *CourseAdminController) Delete(c *fiber.Ctx) error {
	actor, err := adminRepo.GetActingAdmin(ctrl.DB, c)
	if err != nil || actor == nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid course id")
	}
	deleted, err := ctrl.Courses.Delete(actor, id)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	if !deleted {
		return helper.JsonError(c, fiber.StatusNotFound, "course not found")
	}
	return helper.JsonOK(c, "course deleted", nil)
}
