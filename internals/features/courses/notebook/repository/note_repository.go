package repository

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	classModel "learnhub_backend/internals/features/courses/classes/model"
	"learnhub_backend/internals/features/courses/notebook/model"
	helper "learnhub_backend/internals/helpers"
)

type NoteRepository struct {
	DB *gorm.DB
}

func NewNoteRepository(db *gorm.DB) *NoteRepository {
	return &NoteRepository{DB: db}
}

// GetOwn fetches a note only when the caller owns it.
func (r *NoteRepository) GetOwn(studentID, noteID uuid.UUID) (*model.NoteModel, error) {
	if studentID == uuid.Nil || noteID == uuid.Nil {
		return nil, fmt.Errorf("%w: student/note id", helper.ErrInvalidArgument)
	}
	var note model.NoteModel
	err := r.DB.First(&note, "note_id = ? AND note_student_id = ?", noteID, studentID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &note, nil
}

func (r *NoteRepository) GetAllFromStudent(studentID uuid.UUID) ([]model.NoteModel, error) {
	if studentID == uuid.Nil {
		return nil, fmt.Errorf("%w: student id", helper.ErrInvalidArgument)
	}
	notes := make([]model.NoteModel, 0)
	err := r.DB.
		Where("note_student_id = ?", studentID).
		Order("created_at DESC").
		Find(&notes).Error
	if err != nil {
		return nil, err
	}
	return notes, nil
}

// GetAllFromClass lists the caller's notes on one class.
func (r *NoteRepository) GetAllFromClass(studentID, classID uuid.UUID) ([]model.NoteModel, error) {
	if studentID == uuid.Nil || classID == uuid.Nil {
		return nil, fmt.Errorf("%w: student/class id", helper.ErrInvalidArgument)
	}
	notes := make([]model.NoteModel, 0)
	err := r.DB.
		Where("note_student_id = ? AND note_class_id = ?", studentID, classID).
		Order("created_at DESC").
		Find(&notes).Error
	if err != nil {
		return nil, err
	}
	return notes, nil
}

// Add stores a note after checking it points at an existing video class.
// Notes on questionnaires are rejected.
func (r *NoteRepository) Add(note *model.NoteModel) (bool, error) {
	if note == nil || note.NoteStudentID == uuid.Nil || note.NoteClassID == uuid.Nil {
		return false, fmt.Errorf("%w: student/class id", helper.ErrInvalidArgument)
	}
	if note.NoteTitle == "" {
		return false, fmt.Errorf("%w: note title", helper.ErrInvalidArgument)
	}

	var count int64
	err := r.DB.Model(&classModel.ClassModel{}).
		Where("class_id = ? AND class_type = ?", note.NoteClassID, classModel.ClassTypeVideo).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	if count == 0 {
		return false, fmt.Errorf("%w: class is not a video", helper.ErrInvalidArgument)
	}

	res := r.DB.Create(note)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// UpdateOwn edits title/content of a note owned by the caller.
func (r *NoteRepository) UpdateOwn(studentID, noteID uuid.UUID, title, content string) (bool, error) {
	if studentID == uuid.Nil || noteID == uuid.Nil {
		return false, fmt.Errorf("%w: student/note id", helper.ErrInvalidArgument)
	}
	if title == "" {
		return false, fmt.Errorf("%w: note title", helper.ErrInvalidArgument)
	}
	res := r.DB.Model(&model.NoteModel{}).
		Where("note_id = ? AND note_student_id = ?", noteID, studentID).
		Updates(map[string]interface{}{
			"note_title":   title,
			"note_content": content,
		})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *NoteRepository) DeleteOwn(studentID, noteID uuid.UUID) (bool, error) {
	if studentID == uuid.Nil || noteID == uuid.Nil {
		return false, fmt.Errorf("%w: student/note id", helper.ErrInvalidArgument)
	}
	res := r.DB.Delete(&model.NoteModel{},
		"note_id = ? AND note_student_id = ?", noteID, studentID)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
