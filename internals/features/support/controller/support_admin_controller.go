package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	notifModel "learnhub_backend/internals/features/notifications/model"
	notifRepo "learnhub_backend/internals/features/notifications/repository"
	"learnhub_backend/internals/features/support/dto"
	"learnhub_backend/internals/features/support/model"
	"learnhub_backend/internals/features/support/repository"
	adminRepo "learnhub_backend/internals/features/users/admins/repository"
	helper "learnhub_backend/internals/helpers"
)

type SupportAdminController struct {
	DB *gorm.DB
}

func NewSupportAdminController(db *gorm.DB) *SupportAdminController {
	return &SupportAdminController{DB: db}
}

// List shows every topic in the panel, open ones first.
func (ctrl *SupportAdminController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 10, 50)
	topics, total, err := repository.NewSupportRepository(ctrl.DB).
		GetAll(paging.Offset, paging.Limit, c.Query("search"))
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonList(c, "Support topics fetched", topics,
		helper.BuildPagination(total, paging, len(topics)))
}

func (ctrl *SupportAdminController) Open(c *fiber.Ctx) error {
	topicID, err := uuid.Parse(c.Params("topicId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid topic id")
	}

	repo := repository.NewSupportRepository(ctrl.DB)
	topic, err := repo.GetTopic(topicID)
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

// Answer posts a staff reply and notifies the topic's creator.
func (ctrl *SupportAdminController) Answer(c *fiber.Ctx) error {
	actor, err := adminRepo.GetActingAdmin(ctrl.DB, c)
	if err != nil || actor == nil {
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

	message := &model.SupportMessageModel{
		MessageTopicID: topicID,
		MessageAdminID: &actor.AdminID,
		MessageContent: req.Content,
	}
	topic, err := repository.NewSupportRepository(ctrl.DB).AddMessage(message)
	if err != nil {
		if errors.Is(err, repository.ErrTopicClosed) {
			return helper.JsonError(c, fiber.StatusConflict, "Topic is closed")
		}
		return helper.JsonFromError(c, err)
	}
	if topic == nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Topic not found")
	}

	if _, err := notifRepo.NewNotificationRepository(ctrl.DB).Notify(
		topic.TopicStudentID,
		notifModel.KindSupportReply,
		"Support answered your ticket",
		req.Content,
		fiber.Map{"topic_id": topic.TopicID},
	); err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonCreated(c, "Answer posted", message)
}

func (ctrl *SupportAdminController) Close(c *fiber.Ctx) error {
	return ctrl.setClosed(c, true, "Topic closed")
}

func (ctrl *SupportAdminController) Reopen(c *fiber.Ctx) error {
	return ctrl.setClosed(c, false, "Topic reopened")
}

func (ctrl *SupportAdminController) setClosed(c *fiber.Ctx, closed bool, message string) error {
	topicID, err := uuid.Parse(c.Params("topicId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid topic id")
	}

	updated, err := repository.NewSupportRepository(ctrl.DB).SetClosed(topicID, closed)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	if !updated {
		return helper.JsonError(c, fiber.StatusNotFound, "Topic not found")
	}
	return helper.JsonOK(c, message, nil)
}
