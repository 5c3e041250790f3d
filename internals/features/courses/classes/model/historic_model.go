package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// HistoricModel records a student having watched a class. Append/delete
// only, never updated.
type HistoricModel struct {
	HistoricID         uuid.UUID `gorm:"column:historic_id;type:uuid;primaryKey" json:"historic_id"`
	HistoricStudentID  uuid.UUID `gorm:"column:historic_student_id;type:uuid;not null;uniqueIndex:uq_historic_student_class" json:"historic_student_id"`
	HistoricModuleID   uuid.UUID `gorm:"column:historic_module_id;type:uuid;not null;uniqueIndex:uq_historic_student_class" json:"historic_module_id"`
	HistoricClassOrder int       `gorm:"column:historic_class_order;not null;uniqueIndex:uq_historic_student_class" json:"historic_class_order"`
	HistoricDate       time.Time `gorm:"column:historic_date;autoCreateTime" json:"historic_date"`
}

func (HistoricModel) TableName() string {
	return "historic"
}

func (m *HistoricModel) BeforeCreate(tx *gorm.DB) error {
	if m.HistoricID == uuid.Nil {
		m.HistoricID = uuid.New()
	}
	return nil
}
