package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CommentModel is a student question on a class. The creator column is
// nullable: deleting a student account nulls it out and the thread keeps
// rendering with a "deleted user" placeholder instead of disappearing.
type CommentModel struct {
	CommentID        uuid.UUID  `gorm:"column:comment_id;type:uuid;primaryKey" json:"comment_id"`
	CommentClassID   uuid.UUID  `gorm:"column:comment_class_id;type:uuid;not null;index" json:"comment_class_id"`
	CommentStudentID *uuid.UUID `gorm:"column:comment_student_id;type:uuid;index" json:"comment_student_id"`
	CommentContent   string     `gorm:"column:comment_content;type:text;not null" json:"comment_content"`
	CreatedAt        time.Time  `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (CommentModel) TableName() string {
	return "comments"
}

func (m *CommentModel) BeforeCreate(tx *gorm.DB) error {
	if m.CommentID == uuid.Nil {
		m.CommentID = uuid.New()
	}
	return nil
}

// ReplyModel is an ordered message under a comment.
type ReplyModel struct {
	ReplyID        uuid.UUID  `gorm:"column:reply_id;type:uuid;primaryKey" json:"reply_id"`
	ReplyCommentID uuid.UUID  `gorm:"column:reply_comment_id;type:uuid;not null;index" json:"reply_comment_id"`
	ReplyStudentID *uuid.UUID `gorm:"column:reply_student_id;type:uuid;index" json:"reply_student_id"`
	ReplyContent   string     `gorm:"column:reply_content;type:text;not null" json:"reply_content"`
	CreatedAt      time.Time  `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (ReplyModel) TableName() string {
	return "comment_replies"
}

func (m *ReplyModel) BeforeCreate(tx *gorm.DB) error {
	if m.ReplyID == uuid.Nil {
		m.ReplyID = uuid.New()
	}
	return nil
}
