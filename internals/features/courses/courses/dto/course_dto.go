package dto

import (
	"github.com/google/uuid"

	"learnhub_backend/internals/features/courses/courses/model"
)

type CourseRequest struct {
	CourseName        string  `json:"course_name" validate:"required,min=2,max=100"`
	CourseLogoURL     *string `json:"course_logo_url"`
	CourseDescription string  `json:"course_description"`
}

type CourseResponse struct {
	CourseID          uuid.UUID `json:"course_id"`
	CourseName        string    `json:"course_name"`
	CourseLogoURL     *string   `json:"course_logo_url,omitempty"`
	CourseDescription string    `json:"course_description"`
	TotalClasses      int64     `json:"total_classes"`
	TotalLength       int64     `json:"total_length"`
	WatchedClasses    *int64    `json:"watched_classes,omitempty"`
}

func (r *CourseRequest) ToModel() *model.CourseModel {
	return &model.CourseModel{
		CourseName:        r.CourseName,
		CourseLogoURL:     r.CourseLogoURL,
		CourseDescription: r.CourseDescription,
	}
}

func ToCourseResponse(m *model.CourseModel, totalClasses, totalLength int64) *CourseResponse {
	return &CourseResponse{
		CourseID:          m.CourseID,
		CourseName:        m.CourseName,
		CourseLogoURL:     m.CourseLogoURL,
		CourseDescription: m.CourseDescription,
		TotalClasses:      totalClasses,
		TotalLength:       totalLength,
	}
}
