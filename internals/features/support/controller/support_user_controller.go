package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"learnhub_backend/internals/features/support/dto"
	"learnhub_backend/internals/features/support/model"
	"learnhub_backend/internals/features/support/repository"
	helper "learnhub_backend/internals/helpers"
)

var validate = validator.New()

type SupportUserController struct {
	DB *gorm.DB
}

func NewSupportUserController(db *gorm.DB) *SupportUserController {
	return &SupportUserController{DB: db}
}

// List shows the caller's topics, paginated, with optional title search.
func (ctrl *SupportUserController) List(c *fiber.Ctx) error {
	studentID, err := helper.GetUserID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	paging := helper.ResolvePaging(c, 10, 50)
	topics, total, err := repository.NewSupportRepository(ctrl.DB).
		GetAllFromStudent(studentID, paging.Offset, paging.Limit, c.Query("search"))
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonList(c, "Support topics fetched", topics,
		helper.BuildPagination(total, paging, len(topics)))
}

func (ctrl *SupportUserController) New(c *fiber.Ctx) error {
	studentID, err := helper.GetUserID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var req dto.NewTopicRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	topic := &model.SupportTopicModel{
		TopicStudentID: studentID,
		TopicTitle:     req.Title,
		TopicCategory:  req.Category,
		TopicContent:   req.Content,
	}
	if _, err := repository.NewSupportRepository(ctrl.DB).AddTopic(topic); err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonCreated(c, "Support topic created", topic)
}

// Open shows one of the caller's topics with its thread.
func (ctrl *SupportUserController) Open(c *fiber.Ctx) error {
	studentID, err := helper.GetUserID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	topicID, err := uuid.Parse(c.Params("topicId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid topic id")
	}

	repo := repository.NewSupportRepository(ctrl.DB)
	topic, err := repo.GetOwnTopic(studentID, topicID)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	if topic == nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Topic not found")
	}

	messages, err := repo.GetMessages(topicID)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonOK(c, "Support topic fetched", fiber.Map{
		"topic":    topic,
		"messages": messages,
	})
}

// Reply appends a student message to one of the caller's open topics.
func (ctrl *SupportUserController) Reply(c *fiber.Ctx) error {
	studentID, err := helper.GetUserID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	topicID, err := uuid.Parse(c.Params("topicId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid topic id")
	}

	var req dto.ReplyRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	repo := repository.NewSupportRepository(ctrl.DB)
	own, err := repo.GetOwnTopic(studentID, topicID)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	if own == nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Topic not found")
	}

	message := &model.SupportMessageModel{
		MessageTopicID:   topicID,
		MessageStudentID: &studentID,
		MessageContent:   req.Content,
	}
	if _, err := repo.AddMessage(message); err != nil {
		if errors.Is(err, repository.ErrTopicClosed) {
			return helper.JsonError(c, fiber.StatusConflict, "Topic is closed")
		}
		return helper.JsonFromError(c, err)
	}
	return helper.JsonCreated(c, "Reply posted", message)
}

func (ctrl *SupportUserController) Close(c *fiber.Ctx) error {
	return ctrl.setClosed(c, true, "Topic closed")
}

func (ctrl *SupportUserController) Reopen(c *fiber.Ctx) error {
	return ctrl.setClosed(c, false, "Topic reopened")
}

func (ctrl *SupportUserController) setClosed(c *fiber.Ctx, closed bool, message string) error {
	studentID, err := helper.GetUserID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	topicID, err := uuid.Parse(c.Params("topicId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid topic id")
	}

	updated, err := repository.NewSupportRepository(ctrl.DB).
		SetClosedOwn(studentID, topicID, closed)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	if !updated {
		return helper.JsonError(c, fiber.StatusNotFound, "Topic not found")
	}
	return helper.JsonOK(c, message, nil)
}
