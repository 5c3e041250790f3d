package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// NoteModel is a student's private annotation on a video class.
type NoteModel struct {
	NoteID        uuid.UUID `gorm:"column:note_id;type:uuid;primaryKey" json:"note_id"`
	NoteStudentID uuid.UUID `gorm:"column:note_student_id;type:uuid;not null;index" json:"note_student_id"`
	NoteClassID   uuid.UUID `gorm:"column:note_class_id;type:uuid;not null;index" json:"note_class_id"`
	NoteTitle     string    `gorm:"column:note_title;type:varchar(150);not null" json:"note_title"`
	NoteContent   string    `gorm:"column:note_content;type:text" json:"note_content"`
	CreatedAt     time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (NoteModel) TableName() string {
	return "notes"
}

func (m *NoteModel) BeforeCreate(tx *gorm.DB) error {
	if m.NoteID == uuid.Nil {
		m.NoteID = uuid.New()
	}
	return nil
}
