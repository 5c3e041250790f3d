package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type StudentModel struct {
	StudentID        uuid.UUID  `gorm:"column:student_id;type:uuid;primaryKey" json:"student_id"`
	StudentName      string     `gorm:"column:student_name;type:varchar(100);not null" json:"student_name"`
	StudentGenre     string     `gorm:"column:student_genre;type:varchar(1)" json:"student_genre"`
	StudentBirthdate *time.Time `gorm:"column:student_birthdate;type:date" json:"student_birthdate,omitempty"`
	StudentEmail     string     `gorm:"column:student_email;type:varchar(255);uniqueIndex;not null" json:"student_email"`
	StudentPassword  string     `gorm:"column:student_password;not null" json:"-"`
	StudentPhotoURL  *string    `gorm:"column:student_photo_url;type:text" json:"student_photo_url,omitempty"`

	StudentCreatedAt time.Time      `gorm:"column:student_created_at;autoCreateTime" json:"student_created_at"`
	StudentUpdatedAt time.Time      `gorm:"column:student_updated_at;autoUpdateTime" json:"student_updated_at"`
	StudentDeletedAt gorm.DeletedAt `gorm:"column:student_deleted_at" json:"-"`
}

func (StudentModel) TableName() string {
	return "students"
}

func (m *StudentModel) BeforeCreate(tx *gorm.DB) error {
	if m.StudentID == uuid.Nil {
		m.StudentID = uuid.New()
	}
	return nil
}
