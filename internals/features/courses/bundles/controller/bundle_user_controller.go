package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"learnhub_backend/internals/features/courses/bundles/dto"
	"learnhub_backend/internals/features/courses/bundles/model"
	"learnhub_backend/internals/features/courses/bundles/repository"
	courseDTO "learnhub_backend/internals/features/courses/courses/dto"
	courseRepo "learnhub_backend/internals/features/courses/courses/repository"
	helper "learnhub_backend/internals/helpers"
)

// BundleUserController serves the store pages: the public catalog and the
// signed-in "bundles you don't own yet" listing.
type BundleUserController struct {
	DB      *gorm.DB
	Bundles *repository.BundleRepository
	Courses *courseRepo.CourseRepository
}

func NewBundleUserController(db *gorm.DB) *BundleUserController {
	return &BundleUserController{
		DB:      db,
		Bundles: repository.NewBundleRepository(db),
		Courses: courseRepo.NewCourseRepository(db),
	}
}

// GET /api/public/bundles — anonymous catalog browsing.
func (ctrl *BundleUserController) Catalog(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 25, 200)
	bundles, total, err := ctrl.Bundles.GetAll(paging.Offset, paging.Limit, c.Query("q"))
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	responses, err := ctrl.withAggregates(bundles)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonList(c, "bundles", responses, helper.BuildPagination(total, paging, len(responses)))
}

// GET /api/public/bundles/:id — bundle detail with its courses.
func (ctrl *BundleUserController) Detail(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid bundle id")
	}
	bundle, err := ctrl.Bundles.Get(id)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	if bundle == nil {
		return helper.JsonError(c, fiber.StatusNotFound, "bundle not found")
	}

	agg, err := ctrl.Bundles.GetAggregates(id)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	courses, err := ctrl.Courses.GetAllFromBundle(id)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	courseResponses := make([]courseDTO.CourseResponse, 0, len(courses))
	for i := range courses {
		cagg, err := ctrl.Courses.GetAggregates(courses[i].CourseID)
		if err != nil {
			return helper.JsonFromError(c, err)
		}
		courseResponses = append(courseResponses, *courseDTO.ToCourseResponse(&courses[i], cagg.TotalClasses, cagg.TotalLength))
	}

	return helper.JsonOK(c, "bundle", fiber.Map{
		"bundle":  dto.ToBundleResponse(bundle, agg.TotalClasses, agg.TotalLength),
		"courses": courseResponses,
	})
}

// GET /api/u/bundles/available — bundles the student has not purchased.
func (ctrl *BundleUserController) Available(c *fiber.Ctx) error {
	studentID, err := helper.GetUserID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	bundles, err := ctrl.Bundles.GetUnpurchasedByStudent(studentID)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	responses, err := ctrl.withAggregates(bundles)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonOK(c, "bundles", responses)
}

func (ctrl *BundleUserController) withAggregates(bundles []model.BundleModel) ([]dto.BundleResponse, error) {
	responses := make([]dto.BundleResponse, 0, len(bundles))
	for i := range bundles {
		agg, err := ctrl.Bundles.GetAggregates(bundles[i].BundleID)
		if err != nil {
			return nil, err
		}
		responses = append(responses, *dto.ToBundleResponse(&bundles[i], agg.TotalClasses, agg.TotalLength))
	}
	return responses, nil
}
