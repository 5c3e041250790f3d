package dto

import (
	"github.com/google/uuid"

	"learnhub_backend/internals/features/courses/bundles/model"
)

type BundleRequest struct {
	BundleName        string  `json:"bundle_name" validate:"required,min=2,max=100"`
	BundlePrice       int64   `json:"bundle_price" validate:"gte=0"`
	BundleLogoURL     *string `json:"bundle_logo_url"`
	BundleDescription string  `json:"bundle_description"`
}

type BundleCourseRequest struct {
	CourseID uuid.UUID `json:"course_id" validate:"required"`
}

type BundleResponse struct {
	BundleID          uuid.UUID `json:"bundle_id"`
	BundleName        string    `json:"bundle_name"`
	BundlePrice       int64     `json:"bundle_price"`
	BundleLogoURL     *string   `json:"bundle_logo_url,omitempty"`
	BundleDescription string    `json:"bundle_description"`
	TotalClasses      int64     `json:"total_classes"`
	TotalLength       int64     `json:"total_length"`
}

func (r *BundleRequest) ToModel() *model.BundleModel {
	return &model.BundleModel{
		BundleName:        r.BundleName,
		BundlePrice:       r.BundlePrice,
		BundleLogoURL:     r.BundleLogoURL,
		BundleDescription: r.BundleDescription,
	}
}

func ToBundleResponse(m *model.BundleModel, totalClasses, totalLength int64) *BundleResponse {
	return &BundleResponse{
		BundleID:          m.BundleID,
		BundleName:        m.BundleName,
		BundlePrice:       m.BundlePrice,
		BundleLogoURL:     m.BundleLogoURL,
		BundleDescription: m.BundleDescription,
		TotalClasses:      totalClasses,
		TotalLength:       totalLength,
	}
}
