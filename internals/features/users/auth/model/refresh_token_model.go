package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RefreshToken stores an HMAC of the issued refresh JWT, never the raw
// token. Rotation deletes the consumed row and inserts the replacement.
type RefreshToken struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uuid.UUID `gorm:"column:user_id;type:uuid;not null;index" json:"user_id"`
	UserRole  string    `gorm:"column:user_role;type:varchar(20);not null" json:"user_role"`
	Token     string    `gorm:"type:text;not null;uniqueIndex" json:"-"`
	ExpiresAt time.Time `gorm:"column:expires_at;not null" json:"expires_at"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (RefreshToken) TableName() string {
	return "refresh_tokens"
}

func (m *RefreshToken) BeforeCreate(tx *gorm.DB) error {
	if m.UserID == uuid.Nil {
		return gorm.ErrInvalidValue
	}
	return nil
}
