package repository

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"learnhub_backend/internals/features/courses/modules/model"
	adminModel "learnhub_backend/internals/features/users/admins/model"
	helper "learnhub_backend/internals/helpers"
)

var contentMutationLevels = []int{adminModel.LevelRoot, adminModel.LevelManager}

type ModuleRepository struct {
	DB *gorm.DB
}

func NewModuleRepository(db *gorm.DB) *ModuleRepository {
	return &ModuleRepository{DB: db}
}

func (r *ModuleRepository) Get(id uuid.UUID) (*model.ModuleModel, error) {
	if id == uuid.Nil {
		return nil, fmt.Errorf("%w: module id", helper.ErrInvalidArgument)
	}
	var module model.ModuleModel
	if err := r.DB.First(&module, "module_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &module, nil
}

// GetAllFromCourse lists a course's modules in display order.
func (r *ModuleRepository) GetAllFromCourse(courseID uuid.UUID) ([]model.ModuleModel, error) {
	if courseID == uuid.Nil {
		return nil, fmt.Errorf("%w: course id", helper.ErrInvalidArgument)
	}
	modules := make([]model.ModuleModel, 0)
	err := r.DB.
		Where("module_course_id = ?", courseID).
		Order("module_order ASC").
		Find(&modules).Error
	if err != nil {
		return nil, err
	}
	return modules, nil
}

func (r *ModuleRepository) Add(actor *adminModel.AdminModel, module *model.ModuleModel) (bool, error) {
	if !actor.HasLevel(contentMutationLevels...) {
		return false, fmt.Errorf("%w: module add", helper.ErrIllegalAccess)
	}
	if module == nil || module.ModuleCourseID == uuid.Nil {
		return false, fmt.Errorf("%w: module course id", helper.ErrInvalidArgument)
	}
	if module.ModuleName == "" {
		return false, fmt.Errorf("%w: module name", helper.ErrInvalidArgument)
	}
	res := r.DB.Create(module)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *ModuleRepository) Update(actor *adminModel.AdminModel, module *model.ModuleModel) (bool, error) {
	if !actor.HasLevel(contentMutationLevels...) {
		return false, fmt.Errorf("%w: module update", helper.ErrIllegalAccess)
	}
	if module == nil || module.ModuleID == uuid.Nil {
		return false, fmt.Errorf("%w: module id", helper.ErrInvalidArgument)
	}
	res := r.DB.Model(&model.ModuleModel{}).
		Where("module_id = ?", module.ModuleID).
		Updates(map[string]interface{}{
			"module_name":  module.ModuleName,
			"module_order": module.ModuleOrder,
		})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *ModuleRepository) Delete(actor *adminModel.AdminModel, id uuid.UUID) (bool, error) {
	if !actor.HasLevel(contentMutationLevels...) {
		return false, fmt.Errorf("%w: module delete", helper.ErrIllegalAccess)
	}
	if id == uuid.Nil {
		return false, fmt.Errorf("%w: module id", helper.ErrInvalidArgument)
	}
	res := r.DB.Delete(&model.ModuleModel{}, "module_id = ?", id)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
