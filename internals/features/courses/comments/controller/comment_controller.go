package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	classRepo "learnhub_backend/internals/features/courses/classes/repository"
	"learnhub_backend/internals/features/courses/comments/dto"
	"learnhub_backend/internals/features/courses/comments/model"
	"learnhub_backend/internals/features/courses/comments/repository"
	notifModel "learnhub_backend/internals/features/notifications/model"
	notifRepo "learnhub_backend/internals/features/notifications/repository"
	helper "learnhub_backend/internals/helpers"
)

var validate = validator.New()

type CommentController struct {
	DB *gorm.DB
}

func NewCommentController(db *gorm.DB) *CommentController {
	return &CommentController{DB: db}
}

// ListByClass renders a class's threads with their replies.
func (ctrl *CommentController) ListByClass(c *fiber.Ctx) error {
	classID, err := uuid.Parse(c.Params("classId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid class id")
	}

	repo := repository.NewCommentRepository(ctrl.DB)
	comments, err := repo.GetAllFromClass(classID)
	if err != nil {
		return helper.JsonFromError(c, err)
	}

	threads := make([]fiber.Map, 0, len(comments))
	for i := range comments {
		replies, err := repo.GetReplies(comments[i].CommentID)
		if err != nil {
			return helper.JsonFromError(c, err)
		}
		threads = append(threads, fiber.Map{
			"comment": comments[i],
			"replies": replies,
		})
	}
	return helper.JsonOK(c, "Comments fetched", threads)
}

// NewComment posts a question on a class.
func (ctrl *CommentController) NewComment(c *fiber.Ctx) error {
	studentID, err := helper.GetUserID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var req dto.NewCommentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	class, err := classRepo.NewClassRepository(ctrl.DB).GetByID(req.ClassID)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	if class == nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Class not found")
	}

	comment := &model.CommentModel{
		CommentClassID:   req.ClassID,
		CommentStudentID: &studentID,
		CommentContent:   req.Question,
	}
	if _, err := repository.NewCommentRepository(ctrl.DB).Add(comment); err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonCreated(c, "Comment posted", comment)
}

// AddReply appends a message to a thread and notifies the thread's author.
func (ctrl *CommentController) AddReply(c *fiber.Ctx) error {
	studentID, err := helper.GetUserID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var req dto.NewReplyRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	reply := &model.ReplyModel{
		ReplyCommentID: req.CommentID,
		ReplyStudentID: &studentID,
		ReplyContent:   req.Content,
	}
	comment, err := repository.NewCommentRepository(ctrl.DB).AddReply(reply)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	if comment == nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Comment not found")
	}

	// Replying to your own thread is not news.
	if comment.CommentStudentID != nil && *comment.CommentStudentID != studentID {
		if _, err := notifRepo.NewNotificationRepository(ctrl.DB).Notify(
			*comment.CommentStudentID,
			notifModel.KindCommentReply,
			"New reply to your question",
			reply.ReplyContent,
			fiber.Map{"comment_id": comment.CommentID, "class_id": comment.CommentClassID},
		); err != nil {
			return helper.JsonFromError(c, err)
		}
	}
	return helper.JsonCreated(c, "Reply posted", reply)
}

func (ctrl *CommentController) DeleteComment(c *fiber.Ctx) error {
	studentID, err := helper.GetUserID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var req dto.DeleteCommentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	deleted, err := repository.NewCommentRepository(ctrl.DB).DeleteOwn(studentID, req.CommentID)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	if !deleted {
		return helper.JsonError(c, fiber.StatusNotFound, "Comment not found")
	}
	return helper.JsonOK(c, "Comment deleted", nil)
}

func (ctrl *CommentController) DeleteReply(c *fiber.Ctx) error {
	studentID, err := helper.GetUserID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var req dto.DeleteReplyRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	deleted, err := repository.NewCommentRepository(ctrl.DB).DeleteOwnReply(studentID, req.ReplyID)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	if !deleted {
		return helper.JsonError(c, fiber.StatusNotFound, "Reply not found")
	}
	return helper.JsonOK(c, "Reply deleted", nil)
}
