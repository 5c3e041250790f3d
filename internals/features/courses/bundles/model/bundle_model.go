package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	courseModel "learnhub_backend/internals/features/courses/courses/model"
)

type BundleModel struct {
	BundleID          uuid.UUID `gorm:"column:bundle_id;type:uuid;primaryKey" json:"bundle_id"`
	BundleName        string    `gorm:"column:bundle_name;type:varchar(100);not null" json:"bundle_name"`
	BundlePrice       int64     `gorm:"column:bundle_price;not null;check:bundle_price >= 0" json:"bundle_price"`
	BundleLogoURL     *string   `gorm:"column:bundle_logo_url;type:text" json:"bundle_logo_url,omitempty"`
	BundleDescription string    `gorm:"column:bundle_description;type:text" json:"bundle_description"`

	Courses []courseModel.CourseModel `gorm:"many2many:bundle_courses;foreignKey:BundleID;joinForeignKey:bundle_id;References:CourseID;joinReferences:course_id" json:"courses,omitempty"`

	BundleCreatedAt time.Time      `gorm:"column:bundle_created_at;autoCreateTime" json:"bundle_created_at"`
	BundleUpdatedAt time.Time      `gorm:"column:bundle_updated_at;autoUpdateTime" json:"bundle_updated_at"`
	BundleDeletedAt gorm.DeletedAt `gorm:"column:bundle_deleted_at" json:"-"`
}

func (BundleModel) TableName() string {
	return "bundles"
}

func (m *BundleModel) BeforeCreate(tx *gorm.DB) error {
	if m.BundleID == uuid.Nil {
		m.BundleID = uuid.New()
	}
	return nil
}

// BundleCourseModel is the explicit join table so attach/detach can be
// addressed directly.
type BundleCourseModel struct {
	BundleID uuid.UUID `gorm:"column:bundle_id;type:uuid;primaryKey" json:"bundle_id"`
	CourseID uuid.UUID `gorm:"column:course_id;type:uuid;primaryKey" json:"course_id"`
}

func (BundleCourseModel) TableName() string {
	return "bundle_courses"
}
