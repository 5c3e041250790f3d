package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	ClassTypeVideo         = "video"
	ClassTypeQuestionnaire = "questionnaire"
)

// SentinelOrder is the temporary order value a row holds mid-reorder so the
// (module, order) uniqueness constraint never fires against the target slot.
// Reorders run inside one transaction, so the sentinel is never visible to
// other readers.
const SentinelOrder = -1

// ClassModel is the closed variant type of the catalog: a class is either
// a video or a questionnaire, discriminated by ClassType. Identity for the
// student surface is the (module, order) pair; the surrogate uuid exists so
// notes and comments can reference a class with a plain foreign key.
type ClassModel struct {
	ClassID       uuid.UUID `gorm:"column:class_id;type:uuid;primaryKey" json:"class_id"`
	ClassModuleID uuid.UUID `gorm:"column:class_module_id;type:uuid;not null;uniqueIndex:uq_classes_module_order" json:"class_module_id"`
	ClassOrder    int       `gorm:"column:class_order;not null;uniqueIndex:uq_classes_module_order" json:"class_order"`
	ClassType     string    `gorm:"column:class_type;type:varchar(20);not null" json:"class_type"`

	// video payload
	ClassTitle       *string `gorm:"column:class_title;type:varchar(255)" json:"class_title,omitempty"`
	ClassDescription *string `gorm:"column:class_description;type:text" json:"class_description,omitempty"`
	ClassVideoID     *string `gorm:"column:class_video_id;type:varchar(100)" json:"class_video_id,omitempty"`
	ClassLength      *int    `gorm:"column:class_length" json:"class_length,omitempty"`

	// questionnaire payload
	ClassQuestion *string `gorm:"column:class_question;type:text" json:"class_question,omitempty"`
	ClassQ1       *string `gorm:"column:class_q1;type:text" json:"class_q1,omitempty"`
	ClassQ2       *string `gorm:"column:class_q2;type:text" json:"class_q2,omitempty"`
	ClassQ3       *string `gorm:"column:class_q3;type:text" json:"class_q3,omitempty"`
	ClassQ4       *string `gorm:"column:class_q4;type:text" json:"class_q4,omitempty"`
	ClassAnswer   *int    `gorm:"column:class_answer" json:"-"`

	ClassCreatedAt time.Time `gorm:"column:class_created_at;autoCreateTime" json:"class_created_at"`
	ClassUpdatedAt time.Time `gorm:"column:class_updated_at;autoUpdateTime" json:"class_updated_at"`
}

func (ClassModel) TableName() string {
	return "classes"
}

func (m *ClassModel) BeforeCreate(tx *gorm.DB) error {
	if m.ClassID == uuid.Nil {
		m.ClassID = uuid.New()
	}
	return nil
}

func (m *ClassModel) IsVideo() bool {
	return m.ClassType == ClassTypeVideo
}

func (m *ClassModel) IsQuestionnaire() bool {
	return m.ClassType == ClassTypeQuestionnaire
}
