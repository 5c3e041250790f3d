package repository

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"learnhub_backend/internals/features/courses/classes/model"
	helper "learnhub_backend/internals/helpers"
)

type HistoricRepository struct {
	DB *gorm.DB
}

func NewHistoricRepository(db *gorm.DB) *HistoricRepository {
	return &HistoricRepository{DB: db}
}

// MarkAsWatched appends a watch record; marking an already-watched class
// again is a no-op success.
func (r *HistoricRepository) MarkAsWatched(studentID, moduleID uuid.UUID, classOrder int) (bool, error) {
	if err := validateHistoricKey(studentID, moduleID, classOrder); err != nil {
		return false, err
	}
	var count int64
	if err := r.DB.Model(&model.HistoricModel{}).
		Where("historic_student_id = ? AND historic_module_id = ? AND historic_class_order = ?",
			studentID, moduleID, classOrder).
		Count(&count).Error; err != nil {
		return false, err
	}
	if count > 0 {
		return true, nil
	}
	res := r.DB.Create(&model.HistoricModel{
		HistoricStudentID:  studentID,
		HistoricModuleID:   moduleID,
		HistoricClassOrder: classOrder,
	})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *HistoricRepository) RemoveWatched(studentID, moduleID uuid.UUID, classOrder int) (bool, error) {
	if err := validateHistoricKey(studentID, moduleID, classOrder); err != nil {
		return false, err
	}
	res := r.DB.
		Where("historic_student_id = ? AND historic_module_id = ? AND historic_class_order = ?",
			studentID, moduleID, classOrder).
		Delete(&model.HistoricModel{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// GetAllFromStudent returns every watch record of a student.
func (r *HistoricRepository) GetAllFromStudent(studentID uuid.UUID) ([]model.HistoricModel, error) {
	if studentID == uuid.Nil {
		return nil, fmt.Errorf("%w: student id", helper.ErrInvalidArgument)
	}
	records := make([]model.HistoricModel, 0)
	err := r.DB.
		Where("historic_student_id = ?", studentID).
		Order("historic_date DESC").
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

// CountWatchedInCourse returns how many classes of a course the student has
// watched, for progress bars.
func (r *HistoricRepository) CountWatchedInCourse(studentID, courseID uuid.UUID) (int64, error) {
	if studentID == uuid.Nil {
		return 0, fmt.Errorf("%w: student id", helper.ErrInvalidArgument)
	}
	if courseID == uuid.Nil {
		return 0, fmt.Errorf("%w: course id", helper.ErrInvalidArgument)
	}
	var count int64
	err := r.DB.Model(&model.HistoricModel{}).
		Joins("JOIN modules m ON m.module_id = historic.historic_module_id").
		Where("historic.historic_student_id = ? AND m.module_course_id = ?", studentID, courseID).
		Count(&count).Error
	return count, err
}

func validateHistoricKey(studentID, moduleID uuid.UUID, classOrder int) error {
	if studentID == uuid.Nil {
		return fmt.Errorf("%w: student id", helper.ErrInvalidArgument)
	}
	if moduleID == uuid.Nil {
		return fmt.Errorf("%w: module id", helper.ErrInvalidArgument)
	}
	if classOrder <= 0 {
		return fmt.Errorf("%w: class order", helper.ErrInvalidArgument)
	}
	return nil
}
