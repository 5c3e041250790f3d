package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Authorization levels; lower value means broader access.
const (
	LevelRoot    = 0
	LevelManager = 1
	LevelSupport = 2
)

type AuthorizationModel struct {
	AuthorizationID    uuid.UUID `gorm:"column:authorization_id;type:uuid;primaryKey" json:"authorization_id"`
	AuthorizationName  string    `gorm:"column:authorization_name;type:varchar(50);uniqueIndex;not null" json:"authorization_name"`
	AuthorizationLevel int       `gorm:"column:authorization_level;not null" json:"authorization_level"`
}

func (AuthorizationModel) TableName() string {
	return "authorizations"
}

func (m *AuthorizationModel) BeforeCreate(tx *gorm.DB) error {
	if m.AuthorizationID == uuid.Nil {
		m.AuthorizationID = uuid.New()
	}
	return nil
}

type AdminModel struct {
	AdminID              uuid.UUID  `gorm:"column:admin_id;type:uuid;primaryKey" json:"admin_id"`
	AdminName            string     `gorm:"column:admin_name;type:varchar(100);not null" json:"admin_name"`
	AdminGenre           string     `gorm:"column:admin_genre;type:varchar(1)" json:"admin_genre"`
	AdminBirthdate       *time.Time `gorm:"column:admin_birthdate;type:date" json:"admin_birthdate,omitempty"`
	AdminEmail           string     `gorm:"column:admin_email;type:varchar(255);uniqueIndex;not null" json:"admin_email"`
	AdminPassword        string     `gorm:"column:admin_password;not null" json:"-"`
	AdminAuthorizationID uuid.UUID  `gorm:"column:admin_authorization_id;type:uuid;not null" json:"admin_authorization_id"`

	Authorization AuthorizationModel `gorm:"foreignKey:AdminAuthorizationID;references:AuthorizationID" json:"authorization"`

	AdminCreatedAt time.Time      `gorm:"column:admin_created_at;autoCreateTime" json:"admin_created_at"`
	AdminUpdatedAt time.Time      `gorm:"column:admin_updated_at;autoUpdateTime" json:"admin_updated_at"`
	AdminDeletedAt gorm.DeletedAt `gorm:"column:admin_deleted_at" json:"-"`
}

func (AdminModel) TableName() string {
	return "admins"
}

func (m *AdminModel) BeforeCreate(tx *gorm.DB) error {
	if m.AdminID == uuid.Nil {
		m.AdminID = uuid.New()
	}
	return nil
}

// HasLevel reports whether the admin's authorization level is within the
// allowed set for a gated mutation.
func (m *AdminModel) HasLevel(allowed ...int) bool {
	if m == nil {
		return false
	}
	for _, lvl := range allowed {
		if m.Authorization.AuthorizationLevel == lvl {
			return true
		}
	}
	return false
}
