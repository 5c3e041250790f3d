package repository

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"learnhub_backend/internals/features/courses/comments/model"
	helper "learnhub_backend/internals/helpers"
)

type CommentRepository struct {
	DB *gorm.DB
}

func NewCommentRepository(db *gorm.DB) *CommentRepository {
	return &CommentRepository{DB: db}
}

// CommentWithAuthor carries the creator's display name resolved with a
// LEFT JOIN so threads with a deleted creator still come back (the name
// pointer is nil then).
type CommentWithAuthor struct {
	model.CommentModel
	AuthorName *string `json:"author_name"`
}

type ReplyWithAuthor struct {
	model.ReplyModel
	AuthorName *string `json:"author_name"`
}

func (r *CommentRepository) Get(id uuid.UUID) (*model.CommentModel, error) {
	if id == uuid.Nil {
		return nil, fmt.Errorf("%w: comment id", helper.ErrInvalidArgument)
	}
	var comment model.CommentModel
	if err := r.DB.First(&comment, "comment_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &comment, nil
}

// GetAllFromClass lists a class's comment threads oldest first, with the
// creator's name joined in.
func (r *CommentRepository) GetAllFromClass(classID uuid.UUID) ([]CommentWithAuthor, error) {
	if classID == uuid.Nil {
		return nil, fmt.Errorf("%w: class id", helper.ErrInvalidArgument)
	}
	comments := make([]CommentWithAuthor, 0)
	err := r.DB.Model(&model.CommentModel{}).
		Select("comments.*, students.student_name AS author_name").
		Joins("LEFT JOIN students ON students.student_id = comments.comment_student_id AND students.student_deleted_at IS NULL").
		Where("comments.comment_class_id = ?", classID).
		Order("comments.created_at ASC").
		Scan(&comments).Error
	if err != nil {
		return nil, err
	}
	return comments, nil
}

// GetReplies lists a comment's replies in posting order.
func (r *CommentRepository) GetReplies(commentID uuid.UUID) ([]ReplyWithAuthor, error) {
	if commentID == uuid.Nil {
		return nil, fmt.Errorf("%w: comment id", helper.ErrInvalidArgument)
	}
	replies := make([]ReplyWithAuthor, 0)
	err := r.DB.Model(&model.ReplyModel{}).
		Select("comment_replies.*, students.student_name AS author_name").
		Joins("LEFT JOIN students ON students.student_id = comment_replies.reply_student_id AND students.student_deleted_at IS NULL").
		Where("comment_replies.reply_comment_id = ?", commentID).
		Order("comment_replies.created_at ASC").
		Scan(&replies).Error
	if err != nil {
		return nil, err
	}
	return replies, nil
}

func (r *CommentRepository) Add(comment *model.CommentModel) (bool, error) {
	if comment == nil || comment.CommentClassID == uuid.Nil {
		return false, fmt.Errorf("%w: class id", helper.ErrInvalidArgument)
	}
	if comment.CommentContent == "" {
		return false, fmt.Errorf("%w: comment content", helper.ErrInvalidArgument)
	}
	res := r.DB.Create(comment)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// AddReply appends a message to an existing thread and returns the thread
// so the caller can notify its author.
func (r *CommentRepository) AddReply(reply *model.ReplyModel) (*model.CommentModel, error) {
	if reply == nil || reply.ReplyCommentID == uuid.Nil {
		return nil, fmt.Errorf("%w: comment id", helper.ErrInvalidArgument)
	}
	if reply.ReplyContent == "" {
		return nil, fmt.Errorf("%w: reply content", helper.ErrInvalidArgument)
	}

	comment, err := r.Get(reply.ReplyCommentID)
	if err != nil {
		return nil, err
	}
	if comment == nil {
		return nil, nil
	}
	if err := r.DB.Create(reply).Error; err != nil {
		return nil, err
	}
	return comment, nil
}

// DeleteOwn removes a comment (and its replies) only when the caller
// created it.
func (r *CommentRepository) DeleteOwn(studentID, commentID uuid.UUID) (bool, error) {
	if studentID == uuid.Nil || commentID == uuid.Nil {
		return false, fmt.Errorf("%w: student/comment id", helper.ErrInvalidArgument)
	}
	var deleted bool
	err := r.DB.Transaction(func(tx *gorm.DB) error {
		res := tx.Delete(&model.CommentModel{},
			"comment_id = ? AND comment_student_id = ?", commentID, studentID)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return nil
		}
		deleted = true
		return tx.Delete(&model.ReplyModel{}, "reply_comment_id = ?", commentID).Error
	})
	return deleted, err
}

func (r *CommentRepository) DeleteOwnReply(studentID, replyID uuid.UUID) (bool, error) {
	if studentID == uuid.Nil || replyID == uuid.Nil {
		return false, fmt.Errorf("%w: student/reply id", helper.ErrInvalidArgument)
	}
	res := r.DB.Delete(&model.ReplyModel{},
		"reply_id = ? AND reply_student_id = ?", replyID, studentID)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
