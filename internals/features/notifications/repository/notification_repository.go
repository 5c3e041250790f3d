package repository

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"learnhub_backend/internals/features/notifications/model"
	helper "learnhub_backend/internals/helpers"
)

type NotificationRepository struct {
	DB *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) *NotificationRepository {
	return &NotificationRepository{DB: db}
}

// Notify creates an inbox entry for a student. reference is marshalled
// into the JSON column; a nil reference stores JSON null.
func (r *NotificationRepository) Notify(studentID uuid.UUID, kind, title, body string, reference any) (bool, error) {
	if studentID == uuid.Nil {
		return false, fmt.Errorf("%w: student id", helper.ErrInvalidArgument)
	}
	if kind == "" || title == "" {
		return false, fmt.Errorf("%w: notification kind/title", helper.ErrInvalidArgument)
	}

	raw, err := json.Marshal(reference)
	if err != nil {
		return false, err
	}
	notif := model.NotificationModel{
		NotificationStudentID: studentID,
		NotificationKind:      kind,
		NotificationTitle:     title,
		NotificationBody:      body,
		NotificationReference: datatypes.JSON(raw),
	}
	res := r.DB.Create(&notif)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// GetAllFromStudent lists a student's notifications, newest first.
func (r *NotificationRepository) GetAllFromStudent(studentID uuid.UUID, offset, limit int) ([]model.NotificationModel, int64, error) {
	if studentID == uuid.Nil {
		return nil, 0, fmt.Errorf("%w: student id", helper.ErrInvalidArgument)
	}

	var total int64
	base := r.DB.Model(&model.NotificationModel{}).
		Where("notification_student_id = ?", studentID)
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	notifications := make([]model.NotificationModel, 0)
	err := r.DB.
		Where("notification_student_id = ?", studentID).
		Order("created_at DESC").
		Offset(offset).Limit(limit).
		Find(&notifications).Error
	if err != nil {
		return nil, 0, err
	}
	return notifications, total, nil
}

func (r *NotificationRepository) CountUnread(studentID uuid.UUID) (int64, error) {
	if studentID == uuid.Nil {
		return 0, fmt.Errorf("%w: student id", helper.ErrInvalidArgument)
	}
	var count int64
	err := r.DB.Model(&model.NotificationModel{}).
		Where("notification_student_id = ? AND notification_read = ?", studentID, false).
		Count(&count).Error
	return count, err
}

// MarkRead flips a single notification; scoped to the owner so students
// cannot touch each other's inboxes.
func (r *NotificationRepository) MarkRead(studentID, notificationID uuid.UUID) (bool, error) {
	if studentID == uuid.Nil || notificationID == uuid.Nil {
		return false, fmt.Errorf("%w: student/notification id", helper.ErrInvalidArgument)
	}
	res := r.DB.Model(&model.NotificationModel{}).
		Where("notification_id = ? AND notification_student_id = ?", notificationID, studentID).
		Update("notification_read", true)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *NotificationRepository) MarkAllRead(studentID uuid.UUID) (int64, error) {
	if studentID == uuid.Nil {
		return 0, fmt.Errorf("%w: student id", helper.ErrInvalidArgument)
	}
	res := r.DB.Model(&model.NotificationModel{}).
		Where("notification_student_id = ? AND notification_read = ?", studentID, false).
		Update("notification_read", true)
	return res.RowsAffected, res.Error
}
