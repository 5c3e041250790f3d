package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ModuleModel struct {
	ModuleID       uuid.UUID `gorm:"column:module_id;type:uuid;primaryKey" json:"module_id"`
	ModuleCourseID uuid.UUID `gorm:"column:module_course_id;type:uuid;not null;index" json:"module_course_id"`
	ModuleName     string    `gorm:"column:module_name;type:varchar(100);not null" json:"module_name"`
	ModuleOrder    int       `gorm:"column:module_order;not null;default:0" json:"module_order"`

	ModuleCreatedAt time.Time      `gorm:"column:module_created_at;autoCreateTime" json:"module_created_at"`
	ModuleUpdatedAt time.Time      `gorm:"column:module_updated_at;autoUpdateTime" json:"module_updated_at"`
	ModuleDeletedAt gorm.DeletedAt `gorm:"column:module_deleted_at" json:"-"`
}

func (ModuleModel) TableName() string {
	return "modules"
}

func (m *ModuleModel) BeforeCreate(tx *gorm.DB) error {
	if m.ModuleID == uuid.Nil {
		m.ModuleID = uuid.New()
	}
	return nil
}
