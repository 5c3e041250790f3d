package repository

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"learnhub_backend/internals/features/courses/courses/model"
	adminModel "learnhub_backend/internals/features/users/admins/model"
	helper "learnhub_backend/internals/helpers"
)

// Levels allowed to mutate the course catalog.
var contentMutationLevels = []int{adminModel.LevelRoot, adminModel.LevelManager}

type CourseRepository struct {
	DB *gorm.DB
}

func NewCourseRepository(db *gorm.DB) *CourseRepository {
	return &CourseRepository{DB: db}
}

// Aggregates computed per course by a single grouped query; the source
// recomputed these on every page load, so they are derived, never stored.
type CourseAggregates struct {
	TotalClasses int64 `json:"total_classes"`
	TotalLength  int64 `json:"total_length"`
}

// Get returns nil, nil when the course does not exist.
func (r *CourseRepository) Get(id uuid.UUID) (*model.CourseModel, error) {
	if id == uuid.Nil {
		return nil, fmt.Errorf("%w: course id", helper.ErrInvalidArgument)
	}
	var course model.CourseModel
	if err := r.DB.First(&course, "course_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &course, nil
}

// GetAll returns an empty slice, never nil, when there are no courses.
func (r *CourseRepository) GetAll(offset, limit int, search string) ([]model.CourseModel, int64, error) {
	courses := make([]model.CourseModel, 0)
	q := r.DB.Model(&model.CourseModel{})
	if search != "" {
		q = q.Where("course_name LIKE ?", "%"+search+"%")
	}
	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if err := q.Order("course_name ASC").Offset(offset).Limit(limit).Find(&courses).Error; err != nil {
		return nil, 0, err
	}
	return courses, total, nil
}

// GetAllFromBundle lists the courses attached to a bundle.
func (r *CourseRepository) GetAllFromBundle(bundleID uuid.UUID) ([]model.CourseModel, error) {
	if bundleID == uuid.Nil {
		return nil, fmt.Errorf("%w: bundle id", helper.ErrInvalidArgument)
	}
	courses := make([]model.CourseModel, 0)
	err := r.DB.
		Joins("JOIN bundle_courses bc ON bc.course_id = courses.course_id").
		Where("bc.bundle_id = ?", bundleID).
		Order("courses.course_name ASC").
		Find(&courses).Error
	if err != nil {
		return nil, err
	}
	return courses, nil
}

// GetAllPurchasedByStudent lists the courses reachable through the
// student's settled bundle purchases.
func (r *CourseRepository) GetAllPurchasedByStudent(studentID uuid.UUID) ([]model.CourseModel, error) {
	if studentID == uuid.Nil {
		return nil, fmt.Errorf("%w: student id", helper.ErrInvalidArgument)
	}
	courses := make([]model.CourseModel, 0)
	err := r.DB.Distinct("courses.*").
		Joins("JOIN bundle_courses bc ON bc.course_id = courses.course_id").
		Joins("JOIN purchases p ON p.purchase_bundle_id = bc.bundle_id").
		Where("p.purchase_student_id = ? AND p.purchase_status = ?", studentID, "paid").
		Order("courses.course_name ASC").
		Find(&courses).Error
	if err != nil {
		return nil, err
	}
	return courses, nil
}

// GetAggregates computes total classes and total video length for a course.
func (r *CourseRepository) GetAggregates(courseID uuid.UUID) (CourseAggregates, error) {
	if courseID == uuid.Nil {
		return CourseAggregates{}, fmt.Errorf("%w: course id", helper.ErrInvalidArgument)
	}
	var agg CourseAggregates
	err := r.DB.Raw(`
		SELECT COUNT(c.class_id)              AS total_classes,
		       COALESCE(SUM(c.class_length), 0) AS total_length
		FROM classes c
		JOIN modules m ON c.class_module_id = m.module_id
		WHERE m.module_course_id = ?`, courseID).Scan(&agg).Error
	return agg, err
}

func (r *CourseRepository) Add(actor *adminModel.AdminModel, course *model.CourseModel) (bool, error) {
	if !actor.HasLevel(contentMutationLevels...) {
		return false, fmt.Errorf("%w: course add", helper.ErrIllegalAccess)
	}
	if course == nil || course.CourseName == "" {
		return false, fmt.Errorf("%w: course name", helper.ErrInvalidArgument)
	}
	res := r.DB.Create(course)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *CourseRepository) Update(actor *adminModel.AdminModel, course *model.CourseModel) (bool, error) {
	if !actor.HasLevel(contentMutationLevels...) {
		return false, fmt.Errorf("%w: course update", helper.ErrIllegalAccess)
	}
	if course == nil || course.CourseID == uuid.Nil {
		return false, fmt.Errorf("%w: course id", helper.ErrInvalidArgument)
	}
	res := r.DB.Model(&model.CourseModel{}).
		Where("course_id = ?", course.CourseID).
		Updates(map[string]interface{}{
			"course_name":        course.CourseName,
			"course_logo_url":    course.CourseLogoURL,
			"course_description": course.CourseDescription,
		})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *CourseRepository) Delete(actor *adminModel.AdminModel, id uuid.UUID) (bool, error) {
	if !actor.HasLevel(contentMutationLevels...) {
		return false, fmt.Errorf("%w: course delete", helper.ErrIllegalAccess)
	}
	if id == uuid.Nil {
		return false, fmt.Errorf("%w: course id", helper.ErrInvalidArgument)
	}
	res := r.DB.Delete(&model.CourseModel{}, "course_id = ?", id)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
