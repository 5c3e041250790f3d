package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	KindCommentReply = "comment_reply"
	KindSupportReply = "support_reply"
	KindAnnouncement = "announcement"
)

// NotificationModel is a per-student inbox entry. Reference holds a JSON
// pointer to whatever the notification is about (comment id, topic id)
// so the client can deep-link without extra lookups.
type NotificationModel struct {
	NotificationID        uuid.UUID      `gorm:"column:notification_id;type:uuid;primaryKey" json:"notification_id"`
	NotificationStudentID uuid.UUID      `gorm:"column:notification_student_id;type:uuid;not null;index" json:"notification_student_id"`
	NotificationKind      string         `gorm:"column:notification_kind;type:varchar(30);not null" json:"notification_kind"`
	NotificationTitle     string         `gorm:"column:notification_title;type:varchar(150);not null" json:"notification_title"`
	NotificationBody      string         `gorm:"column:notification_body;type:text" json:"notification_body"`
	NotificationReference datatypes.JSON `gorm:"column:notification_reference;type:jsonb" json:"notification_reference"`
	NotificationRead      bool           `gorm:"column:notification_read;not null;default:false" json:"notification_read"`
	CreatedAt             time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (NotificationModel) TableName() string {
	return "notifications"
}

func (m *NotificationModel) BeforeCreate(tx *gorm.DB) error {
	if m.NotificationID == uuid.Nil {
		m.NotificationID = uuid.New()
	}
	return nil
}
