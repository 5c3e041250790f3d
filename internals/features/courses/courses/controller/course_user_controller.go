package controller

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	classDTO "learnhub_backend/internals/features/courses/classes/dto"
	classRepo "learnhub_backend/internals/features/courses/classes/repository"
	"learnhub_backend/internals/features/courses/courses/dto"
	"learnhub_backend/internals/features/courses/courses/repository"
	moduleDTO "learnhub_backend/internals/features/courses/modules/dto"
	moduleRepo "learnhub_backend/internals/features/courses/modules/repository"
	helper "learnhub_backend/internals/helpers"
)

// CourseUserController serves the student-facing course pages: the home
// listing of owned courses and the course/class open view.
type CourseUserController struct {
	DB        *gorm.DB
	Courses   *repository.CourseRepository
	Modules   *moduleRepo.ModuleRepository
	Classes   *classRepo.ClassRepository
	Historics *classRepo.HistoricRepository
}

func NewCourseUserController(db *gorm.DB) *CourseUserController {
	return &CourseUserController{
		DB:        db,
		Courses:   repository.NewCourseRepository(db),
		Modules:   moduleRepo.NewModuleRepository(db),
		Classes:   classRepo.NewClassRepository(db),
		Historics: classRepo.NewHistoricRepository(db),
	}
}

// GET /api/u/home — the student's course listing with watch progress.
func (ctrl *CourseUserController) Home(c *fiber.Ctx) error {
	studentID, err := helper.GetUserID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	courses, err := ctrl.Courses.GetAllPurchasedByStudent(studentID)
	if err != nil {
		return helper.JsonFromError(c, err)
	}

	responses := make([]dto.CourseResponse, 0, len(courses))
	for i := range courses {
		agg, err := ctrl.Courses.GetAggregates(courses[i].CourseID)
		if err != nil {
			return helper.JsonFromError(c, err)
		}
		watched, err := ctrl.Historics.CountWatchedInCourse(studentID, courses[i].CourseID)
		if err != nil {
			return helper.JsonFromError(c, err)
		}
		resp := dto.ToCourseResponse(&courses[i], agg.TotalClasses, agg.TotalLength)
		resp.WatchedClasses = &watched
		responses = append(responses, *resp)
	}

	return helper.JsonOK(c, "courses", responses)
}

// GET /api/u/courses/open/:courseId/:classId? — renders a course with its
// module tree and the addressed (or first) class.
func (ctrl *CourseUserController) Open(c *fiber.Ctx) error {
	studentID, err := helper.GetUserID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	courseID, err := uuid.Parse(c.Params("courseId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid course id")
	}
	course, err := ctrl.Courses.Get(courseID)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	if course == nil {
		return helper.JsonError(c, fiber.StatusNotFound, "course not found")
	}

	modules, err := ctrl.Modules.GetAllFromCourse(courseID)
	if err != nil {
		return helper.JsonFromError(c, err)
	}

	watchedSet, err := ctrl.watchedSet(studentID)
	if err != nil {
		return helper.JsonFromError(c, err)
	}

	type moduleWithClasses struct {
		Module  *moduleDTO.ModuleResponse `json:"module"`
		Classes []classDTO.ClassResponse  `json:"classes"`
	}
	tree := make([]moduleWithClasses, 0, len(modules))
	for i := range modules {
		classes, err := ctrl.Classes.GetAllFromModule(modules[i].ModuleID)
		if err != nil {
			return helper.JsonFromError(c, err)
		}
		items := make([]classDTO.ClassResponse, 0, len(classes))
		for j := range classes {
			resp := classDTO.ToClassResponse(&classes[j])
			w := watchedSet[watchKey(classes[j].ClassModuleID, classes[j].ClassOrder)]
			resp.Watched = &w
			items = append(items, *resp)
		}
		tree = append(tree, moduleWithClasses{
			Module:  moduleDTO.ToModuleResponse(&modules[i]),
			Classes: items,
		})
	}

	// the addressed class, or the course's first class
	var current *classDTO.ClassResponse
	if classParam := c.Params("classId"); classParam != "" {
		classID, err := uuid.Parse(classParam)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "invalid class id")
		}
		class, err := ctrl.Classes.GetByID(classID)
		if err != nil {
			return helper.JsonFromError(c, err)
		}
		if class == nil {
			return helper.JsonError(c, fiber.StatusNotFound, "class not found")
		}
		current = classDTO.ToClassResponse(class)
	} else {
		class, err := ctrl.Classes.GetFirstOfCourse(courseID)
		if err != nil {
			return helper.JsonFromError(c, err)
		}
		if class != nil {
			current = classDTO.ToClassResponse(class)
		}
	}

	agg, err := ctrl.Courses.GetAggregates(courseID)
	if err != nil {
		return helper.JsonFromError(c, err)
	}

	return helper.JsonOK(c, "course", fiber.Map{
		"course":        dto.ToCourseResponse(course, agg.TotalClasses, agg.TotalLength),
		"modules":       tree,
		"current_class": current,
	})
}

func (ctrl *CourseUserController) watchedSet(studentID uuid.UUID) (map[string]bool, error) {
	records, err := ctrl.Historics.GetAllFromStudent(studentID)
	if err != nil {
		return nil, err
	}
	set := make(map[string]bool, len(records))
	for i := range records {
		set[watchKey(records[i].HistoricModuleID, records[i].HistoricClassOrder)] = true
	}
	return set, nil
}

func watchKey(moduleID uuid.UUID, order int) string {
	return moduleID.String() + "/" + strconv.Itoa(order)
}
