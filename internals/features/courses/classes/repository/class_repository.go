package repository

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"learnhub_backend/internals/features/courses/classes/model"
	adminModel "learnhub_backend/internals/features/users/admins/model"
	helper "learnhub_backend/internals/helpers"
)

var contentMutationLevels = []int{adminModel.LevelRoot, adminModel.LevelManager}

type ClassRepository struct {
	DB *gorm.DB
}

func NewClassRepository(db *gorm.DB) *ClassRepository {
	return &ClassRepository{DB: db}
}

// Get resolves a class by its (module, order) composite identity.
// Returns nil, nil when the pair does not exist.
func (r *ClassRepository) Get(moduleID uuid.UUID, classOrder int) (*model.ClassModel, error) {
	if moduleID == uuid.Nil {
		return nil, fmt.Errorf("%w: module id", helper.ErrInvalidArgument)
	}
	if classOrder <= 0 {
		return nil, fmt.Errorf("%w: class order", helper.ErrInvalidArgument)
	}
	var class model.ClassModel
	err := r.DB.
		Where("class_module_id = ? AND class_order = ?", moduleID, classOrder).
		First(&class).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &class, nil
}

func (r *ClassRepository) GetByID(id uuid.UUID) (*model.ClassModel, error) {
	if id == uuid.Nil {
		return nil, fmt.Errorf("%w: class id", helper.ErrInvalidArgument)
	}
	var class model.ClassModel
	if err := r.DB.First(&class, "class_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &class, nil
}

// GetAllFromModule lists a module's classes in display order.
func (r *ClassRepository) GetAllFromModule(moduleID uuid.UUID) ([]model.ClassModel, error) {
	if moduleID == uuid.Nil {
		return nil, fmt.Errorf("%w: module id", helper.ErrInvalidArgument)
	}
	classes := make([]model.ClassModel, 0)
	err := r.DB.
		Where("class_module_id = ?", moduleID).
		Order("class_order ASC").
		Find(&classes).Error
	if err != nil {
		return nil, err
	}
	return classes, nil
}

// GetFirstOfCourse resolves the class a course page opens on when no class
// was addressed explicitly.
func (r *ClassRepository) GetFirstOfCourse(courseID uuid.UUID) (*model.ClassModel, error) {
	if courseID == uuid.Nil {
		return nil, fmt.Errorf("%w: course id", helper.ErrInvalidArgument)
	}
	var class model.ClassModel
	err := r.DB.
		Joins("JOIN modules m ON m.module_id = classes.class_module_id").
		Where("m.module_course_id = ?", courseID).
		Order("m.module_order ASC, classes.class_order ASC").
		First(&class).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &class, nil
}

// GetAnswer returns the correct option (1..4) of a questionnaire class.
func (r *ClassRepository) GetAnswer(moduleID uuid.UUID, classOrder int) (int, error) {
	class, err := r.Get(moduleID, classOrder)
	if err != nil {
		return 0, err
	}
	if class == nil || !class.IsQuestionnaire() || class.ClassAnswer == nil {
		return 0, gorm.ErrRecordNotFound
	}
	return *class.ClassAnswer, nil
}

func (r *ClassRepository) Add(actor *adminModel.AdminModel, class *model.ClassModel) (bool, error) {
	if !actor.HasLevel(contentMutationLevels...) {
		return false, fmt.Errorf("%w: class add", helper.ErrIllegalAccess)
	}
	if err := validateClass(class); err != nil {
		return false, err
	}
	res := r.DB.Create(class)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *ClassRepository) Update(actor *adminModel.AdminModel, class *model.ClassModel) (bool, error) {
	if !actor.HasLevel(contentMutationLevels...) {
		return false, fmt.Errorf("%w: class update", helper.ErrIllegalAccess)
	}
	if class == nil || class.ClassID == uuid.Nil {
		return false, fmt.Errorf("%w: class id", helper.ErrInvalidArgument)
	}
	if err := validateClass(class); err != nil {
		return false, err
	}
	res := r.DB.Model(&model.ClassModel{}).
		Where("class_id = ?", class.ClassID).
		Updates(map[string]interface{}{
			"class_title":       class.ClassTitle,
			"class_description": class.ClassDescription,
			"class_video_id":    class.ClassVideoID,
			"class_length":      class.ClassLength,
			"class_question":    class.ClassQuestion,
			"class_q1":          class.ClassQ1,
			"class_q2":          class.ClassQ2,
			"class_q3":          class.ClassQ3,
			"class_q4":          class.ClassQ4,
			"class_answer":      class.ClassAnswer,
		})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *ClassRepository) Delete(actor *adminModel.AdminModel, moduleID uuid.UUID, classOrder int) (bool, error) {
	if !actor.HasLevel(contentMutationLevels...) {
		return false, fmt.Errorf("%w: class delete", helper.ErrIllegalAccess)
	}
	if moduleID == uuid.Nil {
		return false, fmt.Errorf("%w: module id", helper.ErrInvalidArgument)
	}
	if classOrder <= 0 {
		return false, fmt.Errorf("%w: class order", helper.ErrInvalidArgument)
	}
	res := r.DB.
		Where("class_module_id = ? AND class_order = ?", moduleID, classOrder).
		Delete(&model.ClassModel{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// UpdateModule moves a class to another module and/or order slot. The move
// needs three statements because of the (module, order) uniqueness
// constraint: park the row on the sentinel order, switch modules, then land
// on the final order. All three run in one transaction so a failure at any
// step restores the original placement instead of stranding the row on the
// sentinel.
func (r *ClassRepository) UpdateModule(actor *adminModel.AdminModel, moduleID uuid.UUID, classOrder int, newModuleID uuid.UUID, newOrder int) (bool, error) {
	if !actor.HasLevel(contentMutationLevels...) {
		return false, fmt.Errorf("%w: class move", helper.ErrIllegalAccess)
	}
	if moduleID == uuid.Nil || newModuleID == uuid.Nil {
		return false, fmt.Errorf("%w: module id", helper.ErrInvalidArgument)
	}
	if classOrder <= 0 || newOrder <= 0 {
		return false, fmt.Errorf("%w: class order", helper.ErrInvalidArgument)
	}

	moved := false
	err := r.DB.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&model.ClassModel{}).
			Where("class_module_id = ? AND class_order = ?", moduleID, classOrder).
			Update("class_order", model.SentinelOrder)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}

		if err := tx.Model(&model.ClassModel{}).
			Where("class_module_id = ? AND class_order = ?", moduleID, model.SentinelOrder).
			Update("class_module_id", newModuleID).Error; err != nil {
			return err
		}

		res = tx.Model(&model.ClassModel{}).
			Where("class_module_id = ? AND class_order = ?", newModuleID, model.SentinelOrder).
			Update("class_order", newOrder)
		if res.Error != nil {
			return res.Error
		}
		moved = res.RowsAffected > 0
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return moved, nil
}

func validateClass(class *model.ClassModel) error {
	if class == nil {
		return fmt.Errorf("%w: class", helper.ErrInvalidArgument)
	}
	if class.ClassModuleID == uuid.Nil {
		return fmt.Errorf("%w: module id", helper.ErrInvalidArgument)
	}
	if class.ClassOrder <= 0 {
		return fmt.Errorf("%w: class order", helper.ErrInvalidArgument)
	}
	switch class.ClassType {
	case model.ClassTypeVideo:
		if class.ClassTitle == nil || *class.ClassTitle == "" {
			return fmt.Errorf("%w: video title", helper.ErrInvalidArgument)
		}
		if class.ClassVideoID == nil || *class.ClassVideoID == "" {
			return fmt.Errorf("%w: video id", helper.ErrInvalidArgument)
		}
		if class.ClassLength != nil && *class.ClassLength < 0 {
			return fmt.Errorf("%w: video length", helper.ErrInvalidArgument)
		}
	case model.ClassTypeQuestionnaire:
		if class.ClassQuestion == nil || *class.ClassQuestion == "" {
			return fmt.Errorf("%w: question", helper.ErrInvalidArgument)
		}
		if class.ClassAnswer == nil || *class.ClassAnswer < 1 || *class.ClassAnswer > 4 {
			return fmt.Errorf("%w: answer must be 1..4", helper.ErrInvalidArgument)
		}
	default:
		return fmt.Errorf("%w: class type", helper.ErrInvalidArgument)
	}
	return nil
}
