package dto

import "github.com/google/uuid"

type NewCommentRequest struct {
	ClassID  uuid.UUID `json:"class_id" validate:"required"`
	Question string    `json:"question" validate:"required,max=2000"`
}

type NewReplyRequest struct {
	CommentID uuid.UUID `json:"comment_id" validate:"required"`
	Content   string    `json:"content" validate:"required,max=2000"`
}

type DeleteCommentRequest struct {
	CommentID uuid.UUID `json:"comment_id" validate:"required"`
}

type DeleteReplyRequest struct {
	ReplyID uuid.UUID `json:"reply_id" validate:"required"`
}
