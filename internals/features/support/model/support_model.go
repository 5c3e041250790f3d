package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SupportTopicModel is a ticket-style thread a student opens with staff.
type SupportTopicModel struct {
	TopicID        uuid.UUID `gorm:"column:topic_id;type:uuid;primaryKey" json:"topic_id"`
	TopicStudentID uuid.UUID `gorm:"column:topic_student_id;type:uuid;not null;index" json:"topic_student_id"`
	TopicTitle     string    `gorm:"column:topic_title;type:varchar(150);not null" json:"topic_title"`
	TopicCategory  string    `gorm:"column:topic_category;type:varchar(50);not null" json:"topic_category"`
	TopicContent   string    `gorm:"column:topic_content;type:text;not null" json:"topic_content"`
	TopicClosed    bool      `gorm:"column:topic_closed;not null;default:false" json:"topic_closed"`
	CreatedAt      time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (SupportTopicModel) TableName() string {
	return "support_topics"
}

func (m *SupportTopicModel) BeforeCreate(tx *gorm.DB) error {
	if m.TopicID == uuid.Nil {
		m.TopicID = uuid.New()
	}
	return nil
}

// SupportMessageModel is one reply in a topic. Exactly one of the author
// columns is set depending on which side wrote it.
type SupportMessageModel struct {
	MessageID        uuid.UUID  `gorm:"column:message_id;type:uuid;primaryKey" json:"message_id"`
	MessageTopicID   uuid.UUID  `gorm:"column:message_topic_id;type:uuid;not null;index" json:"message_topic_id"`
	MessageStudentID *uuid.UUID `gorm:"column:message_student_id;type:uuid" json:"message_student_id"`
	MessageAdminID   *uuid.UUID `gorm:"column:message_admin_id;type:uuid" json:"message_admin_id"`
	MessageContent   string     `gorm:"column:message_content;type:text;not null" json:"message_content"`
	CreatedAt        time.Time  `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (SupportMessageModel) TableName() string {
	return "support_messages"
}

func (m *SupportMessageModel) BeforeCreate(tx *gorm.DB) error {
	if m.MessageID == uuid.Nil {
		m.MessageID = uuid.New()
	}
	return nil
}
