package dto

import (
	"time"

	"github.com/google/uuid"

	"learnhub_backend/internals/features/courses/classes/model"
)

// VideoRequest and QuestionnaireRequest are the two create/update shapes;
// a class is exactly one of the two variants.
type VideoRequest struct {
	ClassModuleID    uuid.UUID `json:"class_module_id" validate:"required"`
	ClassOrder       int       `json:"class_order" validate:"required,gt=0"`
	ClassTitle       string    `json:"class_title" validate:"required,min=2,max=255"`
	ClassDescription string    `json:"class_description"`
	ClassVideoID     string    `json:"class_video_id" validate:"required"`
	ClassLength      int       `json:"class_length" validate:"gte=0"`
}

type QuestionnaireRequest struct {
	ClassModuleID uuid.UUID `json:"class_module_id" validate:"required"`
	ClassOrder    int       `json:"class_order" validate:"required,gt=0"`
	ClassQuestion string    `json:"class_question" validate:"required"`
	ClassQ1       string    `json:"class_q1" validate:"required"`
	ClassQ2       string    `json:"class_q2" validate:"required"`
	ClassQ3       string    `json:"class_q3" validate:"required"`
	ClassQ4       string    `json:"class_q4" validate:"required"`
	ClassAnswer   int       `json:"class_answer" validate:"required,min=1,max=4"`
}

type MoveClassRequest struct {
	ClassModuleID    uuid.UUID `json:"class_module_id" validate:"required"`
	ClassOrder       int       `json:"class_order" validate:"required,gt=0"`
	TargetModuleID   uuid.UUID `json:"target_module_id" validate:"required"`
	TargetClassOrder int       `json:"target_class_order" validate:"required,gt=0"`
}

type ClassKeyRequest struct {
	ClassModuleID uuid.UUID `json:"class_module_id" validate:"required"`
	ClassOrder    int       `json:"class_order" validate:"required,gt=0"`
}

// ClassResponse is the tagged union rendered to clients: exactly one of
// Video / Questionnaire is set, matching ClassType.
type ClassResponse struct {
	ClassID       uuid.UUID             `json:"class_id"`
	ClassModuleID uuid.UUID             `json:"class_module_id"`
	ClassOrder    int                   `json:"class_order"`
	ClassType     string                `json:"class_type"`
	Video         *VideoPayload         `json:"video,omitempty"`
	Questionnaire *QuestionnairePayload `json:"questionnaire,omitempty"`
	Watched       *bool                 `json:"watched,omitempty"`
	CreatedAt     time.Time             `json:"created_at"`
}

type VideoPayload struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	VideoID     string `json:"video_id"`
	Length      int    `json:"length"`
}

// QuestionnairePayload never carries the correct answer; clients fetch it
// through the dedicated get-answer endpoint after answering.
type QuestionnairePayload struct {
	Question string `json:"question"`
	Q1       string `json:"q1"`
	Q2       string `json:"q2"`
	Q3       string `json:"q3"`
	Q4       string `json:"q4"`
}

func (r *VideoRequest) ToModel() *model.ClassModel {
	return &model.ClassModel{
		ClassModuleID:    r.ClassModuleID,
		ClassOrder:       r.ClassOrder,
		ClassType:        model.ClassTypeVideo,
		ClassTitle:       &r.ClassTitle,
		ClassDescription: &r.ClassDescription,
		ClassVideoID:     &r.ClassVideoID,
		ClassLength:      &r.ClassLength,
	}
}

func (r *QuestionnaireRequest) ToModel() *model.ClassModel {
	return &model.ClassModel{
		ClassModuleID: r.ClassModuleID,
		ClassOrder:    r.ClassOrder,
		ClassType:     model.ClassTypeQuestionnaire,
		ClassQuestion: &r.ClassQuestion,
		ClassQ1:       &r.ClassQ1,
		ClassQ2:       &r.ClassQ2,
		ClassQ3:       &r.ClassQ3,
		ClassQ4:       &r.ClassQ4,
		ClassAnswer:   &r.ClassAnswer,
	}
}

func ToClassResponse(m *model.ClassModel) *ClassResponse {
	resp := &ClassResponse{
		ClassID:       m.ClassID,
		ClassModuleID: m.ClassModuleID,
		ClassOrder:    m.ClassOrder,
		ClassType:     m.ClassType,
		CreatedAt:     m.ClassCreatedAt,
	}
	switch {
	case m.IsVideo():
		resp.Video = &VideoPayload{
			Title:       deref(m.ClassTitle),
			Description: deref(m.ClassDescription),
			VideoID:     deref(m.ClassVideoID),
			Length:      derefInt(m.ClassLength),
		}
	case m.IsQuestionnaire():
		resp.Questionnaire = &QuestionnairePayload{
			Question: deref(m.ClassQuestion),
			Q1:       deref(m.ClassQ1),
			Q2:       deref(m.ClassQ2),
			Q3:       deref(m.ClassQ3),
			Q4:       deref(m.ClassQ4),
		}
	}
	return resp
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func derefInt(i *int) int {
	if i == nil {
		return 0
	}
	return *i
}
