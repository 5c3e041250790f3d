package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"learnhub_backend/internals/features/notifications/repository"
	helper "learnhub_backend/internals/helpers"
)

type NotificationController struct {
	DB *gorm.DB
}

func NewNotificationController(db *gorm.DB) *NotificationController {
	return &NotificationController{DB: db}
}

func (ctrl *NotificationController) List(c *fiber.Ctx) error {
	studentID, err := helper.GetUserID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	paging := helper.ResolvePaging(c, 20, 100)
	notifications, total, err := repository.NewNotificationRepository(ctrl.DB).
		GetAllFromStudent(studentID, paging.Offset, paging.Limit)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonList(c, "Notifications fetched", notifications,
		helper.BuildPagination(total, paging, len(notifications)))
}

func (ctrl *NotificationController) UnreadCount(c *fiber.Ctx) error {
	studentID, err := helper.GetUserID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	count, err := repository.NewNotificationRepository(ctrl.DB).CountUnread(studentID)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonOK(c, "Unread count fetched", fiber.Map{"unread": count})
}

func (ctrl *NotificationController) MarkRead(c *fiber.Ctx) error {
	studentID, err := helper.GetUserID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	id, err := uuid.Parse(c.Params("notificationId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid notification id")
	}

	updated, err := repository.NewNotificationRepository(ctrl.DB).MarkRead(studentID, id)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	if !updated {
		return helper.JsonError(c, fiber.StatusNotFound, "Notification not found")
	}
	return helper.JsonOK(c, "Notification marked as read", nil)
}

func (ctrl *NotificationController) MarkAllRead(c *fiber.Ctx) error {
	studentID, err := helper.GetUserID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	updated, err := repository.NewNotificationRepository(ctrl.DB).MarkAllRead(studentID)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonOK(c, "Notifications marked as read", fiber.Map{"updated": updated})
}
