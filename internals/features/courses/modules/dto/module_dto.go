package dto

import (
	"github.com/google/uuid"

	"learnhub_backend/internals/features/courses/modules/model"
)

type ModuleRequest struct {
	ModuleCourseID uuid.UUID `json:"module_course_id" validate:"required"`
	ModuleName     string    `json:"module_name" validate:"required,min=2,max=100"`
	ModuleOrder    int       `json:"module_order" validate:"gte=0"`
}

type ModuleResponse struct {
	ModuleID       uuid.UUID `json:"module_id"`
	ModuleCourseID uuid.UUID `json:"module_course_id"`
	ModuleName     string    `json:"module_name"`
	ModuleOrder    int       `json:"module_order"`
}

func (r *ModuleRequest) ToModel() *model.ModuleModel {
	return &model.ModuleModel{
		ModuleCourseID: r.ModuleCourseID,
		ModuleName:     r.ModuleName,
		ModuleOrder:    r.ModuleOrder,
	}
}

func ToModuleResponse(m *model.ModuleModel) *ModuleResponse {
	return &ModuleResponse{
		ModuleID:       m.ModuleID,
		ModuleCourseID: m.ModuleCourseID,
		ModuleName:     m.ModuleName,
		ModuleOrder:    m.ModuleOrder,
	}
}
