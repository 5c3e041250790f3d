package repository

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"learnhub_backend/internals/features/courses/bundles/model"
	adminModel "learnhub_backend/internals/features/users/admins/model"
	helper "learnhub_backend/internals/helpers"
)

var contentMutationLevels = []int{adminModel.LevelRoot, adminModel.LevelManager}

type BundleRepository struct {
	DB *gorm.DB
}

func NewBundleRepository(db *gorm.DB) *BundleRepository {
	return &BundleRepository{DB: db}
}

type BundleAggregates struct {
	TotalClasses int64 `json:"total_classes"`
	TotalLength  int64 `json:"total_length"`
}

func (r *BundleRepository) Get(id uuid.UUID) (*model.BundleModel, error) {
	if id == uuid.Nil {
		return nil, fmt.Errorf("%w: bundle id", helper.ErrInvalidArgument)
	}
	var bundle model.BundleModel
	if err := r.DB.First(&bundle, "bundle_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &bundle, nil
}

func (r *BundleRepository) GetAll(offset, limit int, search string) ([]model.BundleModel, int64, error) {
	bundles := make([]model.BundleModel, 0)
	q := r.DB.Model(&model.BundleModel{})
	if search != "" {
		q = q.Where("bundle_name LIKE ?", "%"+search+"%")
	}
	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if err := q.Order("bundle_name ASC").Offset(offset).Limit(limit).Find(&bundles).Error; err != nil {
		return nil, 0, err
	}
	return bundles, total, nil
}

// GetUnpurchasedByStudent lists bundles the student has not bought yet,
// ordered by how many classes they would add on top of what the student
// already owns.
func (r *BundleRepository) GetUnpurchasedByStudent(studentID uuid.UUID) ([]model.BundleModel, error) {
	if studentID == uuid.Nil {
		return nil, fmt.Errorf("%w: student id", helper.ErrInvalidArgument)
	}
	bundles := make([]model.BundleModel, 0)
	err := r.DB.
		Where("bundle_id NOT IN (?)",
			r.DB.Table("purchases").
				Select("purchase_bundle_id").
				Where("purchase_student_id = ? AND purchase_status = ?", studentID, "paid")).
		Order("bundle_price ASC").
		Find(&bundles).Error
	if err != nil {
		return nil, err
	}
	return bundles, nil
}

// GetAggregates sums classes and video length across the bundle's courses.
// An empty bundle reports zero for both.
func (r *BundleRepository) GetAggregates(bundleID uuid.UUID) (BundleAggregates, error) {
	if bundleID == uuid.Nil {
		return BundleAggregates{}, fmt.Errorf("%w: bundle id", helper.ErrInvalidArgument)
	}
	var agg BundleAggregates
	err := r.DB.Raw(`
		SELECT COUNT(c.class_id)                AS total_classes,
		       COALESCE(SUM(c.class_length), 0) AS total_length
		FROM bundle_courses bc
		JOIN modules m ON m.module_course_id = bc.course_id
		JOIN classes c ON c.class_module_id = m.module_id
		WHERE bc.bundle_id = ?`, bundleID).Scan(&agg).Error
	return agg, err
}

func (r *BundleRepository) Add(actor *adminModel.AdminModel, bundle *model.BundleModel) (bool, error) {
	if !actor.HasLevel(contentMutationLevels...) {
		return false, fmt.Errorf("%w: bundle add", helper.ErrIllegalAccess)
	}
	if bundle == nil || bundle.BundleName == "" {
		return false, fmt.Errorf("%w: bundle name", helper.ErrInvalidArgument)
	}
	if bundle.BundlePrice < 0 {
		return false, fmt.Errorf("%w: bundle price must be non-negative", helper.ErrInvalidArgument)
	}
	res := r.DB.Create(bundle)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *BundleRepository) Update(actor *adminModel.AdminModel, bundle *model.BundleModel) (bool, error) {
	if !actor.HasLevel(contentMutationLevels...) {
		return false, fmt.Errorf("%w: bundle update", helper.ErrIllegalAccess)
	}
	if bundle == nil || bundle.BundleID == uuid.Nil {
		return false, fmt.Errorf("%w: bundle id", helper.ErrInvalidArgument)
	}
	if bundle.BundlePrice < 0 {
		return false, fmt.Errorf("%w: bundle price must be non-negative", helper.ErrInvalidArgument)
	}
	res := r.DB.Model(&model.BundleModel{}).
		Where("bundle_id = ?", bundle.BundleID).
		Updates(map[string]interface{}{
			"bundle_name":        bundle.BundleName,
			"bundle_price":       bundle.BundlePrice,
			"bundle_logo_url":    bundle.BundleLogoURL,
			"bundle_description": bundle.BundleDescription,
		})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *BundleRepository) Delete(actor *adminModel.AdminModel, id uuid.UUID) (bool, error) {
	if !actor.HasLevel(contentMutationLevels...) {
		return false, fmt.Errorf("%w: bundle delete", helper.ErrIllegalAccess)
	}
	if id == uuid.Nil {
		return false, fmt.Errorf("%w: bundle id", helper.ErrInvalidArgument)
	}
	res := r.DB.Delete(&model.BundleModel{}, "bundle_id = ?", id)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *BundleRepository) AttachCourse(actor *adminModel.AdminModel, bundleID, courseID uuid.UUID) (bool, error) {
	if !actor.HasLevel(contentMutationLevels...) {
		return false, fmt.Errorf("%w: bundle course attach", helper.ErrIllegalAccess)
	}
	if bundleID == uuid.Nil || courseID == uuid.Nil {
		return false, fmt.Errorf("%w: bundle/course id", helper.ErrInvalidArgument)
	}
	var count int64
	if err := r.DB.Model(&model.BundleCourseModel{}).
		Where("bundle_id = ? AND course_id = ?", bundleID, courseID).
		Count(&count).Error; err != nil {
		return false, err
	}
	if count > 0 {
		return true, nil
	}
	res := r.DB.Create(&model.BundleCourseModel{BundleID: bundleID, CourseID: courseID})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *BundleRepository) DetachCourse(actor *adminModel.AdminModel, bundleID, courseID uuid.UUID) (bool, error) {
	if !actor.HasLevel(contentMutationLevels...) {
		return false, fmt.Errorf("%w: bundle course detach", helper.ErrIllegalAccess)
	}
	if bundleID == uuid.Nil || courseID == uuid.Nil {
		return false, fmt.Errorf("%w: bundle/course id", helper.ErrInvalidArgument)
	}
	res := r.DB.
		Where("bundle_id = ? AND course_id = ?", bundleID, courseID).
		Delete(&model.BundleCourseModel{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
