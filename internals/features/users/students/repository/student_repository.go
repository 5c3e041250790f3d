package repository

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	adminModel "learnhub_backend/internals/features/users/admins/model"
	"learnhub_backend/internals/features/users/students/model"
	helper "learnhub_backend/internals/helpers"
)

var studentMutationLevels = []int{adminModel.LevelRoot, adminModel.LevelManager}

type StudentRepository struct {
	DB *gorm.DB
}

func NewStudentRepository(db *gorm.DB) *StudentRepository {
	return &StudentRepository{DB: db}
}

func (r *StudentRepository) Get(id uuid.UUID) (*model.StudentModel, error) {
	if id == uuid.Nil {
		return nil, fmt.Errorf("%w: student id", helper.ErrInvalidArgument)
	}
	var student model.StudentModel
	if err := r.DB.First(&student, "student_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &student, nil
}

// GetAll lists students for the panel with name/email search.
func (r *StudentRepository) GetAll(offset, limit int, search string) ([]model.StudentModel, int64, error) {
	query := r.DB.Model(&model.StudentModel{})
	if search != "" {
		query = query.Where("student_name LIKE ? OR student_email LIKE ?",
			"%"+search+"%", "%"+search+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	students := make([]model.StudentModel, 0)
	err := query.
		Order("student_created_at DESC").
		Offset(offset).Limit(limit).
		Find(&students).Error
	if err != nil {
		return nil, 0, err
	}
	return students, total, nil
}

func (r *StudentRepository) Add(actor *adminModel.AdminModel, student *model.StudentModel) (bool, error) {
	if !actor.HasLevel(studentMutationLevels...) {
		return false, fmt.Errorf("%w: student create", helper.ErrIllegalAccess)
	}
	if student == nil || student.StudentName == "" || student.StudentEmail == "" {
		return false, fmt.Errorf("%w: student name/email", helper.ErrInvalidArgument)
	}
	res := r.DB.Create(student)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *StudentRepository) Update(actor *adminModel.AdminModel, student *model.StudentModel) (bool, error) {
	if !actor.HasLevel(studentMutationLevels...) {
		return false, fmt.Errorf("%w: student update", helper.ErrIllegalAccess)
	}
	if student == nil || student.StudentID == uuid.Nil {
		return false, fmt.Errorf("%w: student id", helper.ErrInvalidArgument)
	}
	res := r.DB.Model(&model.StudentModel{}).
		Where("student_id = ?", student.StudentID).
		Updates(map[string]interface{}{
			"student_name":      student.StudentName,
			"student_genre":     student.StudentGenre,
			"student_birthdate": student.StudentBirthdate,
			"student_email":     student.StudentEmail,
		})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// Delete soft-deletes a student; comments keep rendering with a deleted
// user placeholder.
func (r *StudentRepository) Delete(actor *adminModel.AdminModel, id uuid.UUID) (bool, error) {
	if !actor.HasLevel(studentMutationLevels...) {
		return false, fmt.Errorf("%w: student delete", helper.ErrIllegalAccess)
	}
	if id == uuid.Nil {
		return false, fmt.Errorf("%w: student id", helper.ErrInvalidArgument)
	}
	res := r.DB.Delete(&model.StudentModel{}, "student_id = ?", id)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// UpdateProfile edits the caller's own display fields.
func (r *StudentRepository) UpdateProfile(studentID uuid.UUID, name, genre string, birthdate *time.Time) (bool, error) {
	if studentID == uuid.Nil {
		return false, fmt.Errorf("%w: student id", helper.ErrInvalidArgument)
	}
	if name == "" {
		return false, fmt.Errorf("%w: student name", helper.ErrInvalidArgument)
	}
	res := r.DB.Model(&model.StudentModel{}).
		Where("student_id = ?", studentID).
		Updates(map[string]interface{}{
			"student_name":      name,
			"student_genre":     genre,
			"student_birthdate": birthdate,
		})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *StudentRepository) UpdatePassword(studentID uuid.UUID, hashed string) (bool, error) {
	if studentID == uuid.Nil || hashed == "" {
		return false, fmt.Errorf("%w: student id/password", helper.ErrInvalidArgument)
	}
	res := r.DB.Model(&model.StudentModel{}).
		Where("student_id = ?", studentID).
		Update("student_password", hashed)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *StudentRepository) UpdatePhotoURL(studentID uuid.UUID, url string) (bool, error) {
	if studentID == uuid.Nil || url == "" {
		return false, fmt.Errorf("%w: student id/photo", helper.ErrInvalidArgument)
	}
	res := r.DB.Model(&model.StudentModel{}).
		Where("student_id = ?", studentID).
		Update("student_photo_url", url)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
