package dto

import "github.com/google/uuid"

type NewNoteRequest struct {
	ClassID uuid.UUID `json:"class_id" validate:"required"`
	Title   string    `json:"title" validate:"required,max=150"`
	Content string    `json:"content" validate:"max=10000"`
}

type EditNoteRequest struct {
	Title   string `json:"title" validate:"required,max=150"`
	Content string `json:"content" validate:"max=10000"`
}
