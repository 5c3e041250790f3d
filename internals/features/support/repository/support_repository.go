package repository

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"learnhub_backend/internals/features/support/model"
	helper "learnhub_backend/internals/helpers"
)

// ErrTopicClosed is returned when a reply targets a closed topic.
var ErrTopicClosed = errors.New("support topic is closed")

type SupportRepository struct {
	DB *gorm.DB
}

func NewSupportRepository(db *gorm.DB) *SupportRepository {
	return &SupportRepository{DB: db}
}

func (r *SupportRepository) GetTopic(id uuid.UUID) (*model.SupportTopicModel, error) {
	if id == uuid.Nil {
		return nil, fmt.Errorf("%w: topic id", helper.ErrInvalidArgument)
	}
	var topic model.SupportTopicModel
	if err := r.DB.First(&topic, "topic_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &topic, nil
}

// GetOwnTopic fetches a topic only when the caller opened it.
func (r *SupportRepository) GetOwnTopic(studentID, topicID uuid.UUID) (*model.SupportTopicModel, error) {
	if studentID == uuid.Nil {
		return nil, fmt.Errorf("%w: student id", helper.ErrInvalidArgument)
	}
	topic, err := r.GetTopic(topicID)
	if err != nil || topic == nil {
		return nil, err
	}
	if topic.TopicStudentID != studentID {
		return nil, nil
	}
	return topic, nil
}

func (r *SupportRepository) GetAllFromStudent(studentID uuid.UUID, offset, limit int, search string) ([]model.SupportTopicModel, int64, error) {
	if studentID == uuid.Nil {
		return nil, 0, fmt.Errorf("%w: student id", helper.ErrInvalidArgument)
	}
	query := r.DB.Model(&model.SupportTopicModel{}).
		Where("topic_student_id = ?", studentID)
	if search != "" {
		query = query.Where("topic_title LIKE ?", "%"+search+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	topics := make([]model.SupportTopicModel, 0)
	err := query.
		Order("created_at DESC").
		Offset(offset).Limit(limit).
		Find(&topics).Error
	if err != nil {
		return nil, 0, err
	}
	return topics, total, nil
}

// GetAll lists every topic for the panel, open ones first.
func (r *SupportRepository) GetAll(offset, limit int, search string) ([]model.SupportTopicModel, int64, error) {
	query := r.DB.Model(&model.SupportTopicModel{})
	if search != "" {
		query = query.Where("topic_title LIKE ?", "%"+search+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	topics := make([]model.SupportTopicModel, 0)
	err := query.
		Order("topic_closed ASC, created_at DESC").
		Offset(offset).Limit(limit).
		Find(&topics).Error
	if err != nil {
		return nil, 0, err
	}
	return topics, total, nil
}

// GetMessages lists a topic's replies in posting order.
func (r *SupportRepository) GetMessages(topicID uuid.UUID) ([]model.SupportMessageModel, error) {
	if topicID == uuid.Nil {
		return nil, fmt.Errorf("%w: topic id", helper.ErrInvalidArgument)
	}
	messages := make([]model.SupportMessageModel, 0)
	err := r.DB.
		Where("message_topic_id = ?", topicID).
		Order("created_at ASC").
		Find(&messages).Error
	if err != nil {
		return nil, err
	}
	return messages, nil
}

func (r *SupportRepository) AddTopic(topic *model.SupportTopicModel) (bool, error) {
	if topic == nil || topic.TopicStudentID == uuid.Nil {
		return false, fmt.Errorf("%w: student id", helper.ErrInvalidArgument)
	}
	if topic.TopicTitle == "" || topic.TopicContent == "" {
		return false, fmt.Errorf("%w: topic title/content", helper.ErrInvalidArgument)
	}
	res := r.DB.Create(topic)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// AddMessage appends a reply and returns the topic so the caller can
// notify the other side. Closed topics reject replies.
func (r *SupportRepository) AddMessage(message *model.SupportMessageModel) (*model.SupportTopicModel, error) {
	if message == nil || message.MessageTopicID == uuid.Nil {
		return nil, fmt.Errorf("%w: topic id", helper.ErrInvalidArgument)
	}
	if message.MessageContent == "" {
		return nil, fmt.Errorf("%w: message content", helper.ErrInvalidArgument)
	}
	if (message.MessageStudentID == nil) == (message.MessageAdminID == nil) {
		return nil, fmt.Errorf("%w: message author", helper.ErrInvalidArgument)
	}

	topic, err := r.GetTopic(message.MessageTopicID)
	if err != nil {
		return nil, err
	}
	if topic == nil {
		return nil, nil
	}
	if topic.TopicClosed {
		return nil, ErrTopicClosed
	}
	if err := r.DB.Create(message).Error; err != nil {
		return nil, err
	}
	return topic, nil
}

// SetClosedOwn toggles a topic's closed flag, scoped to its creator.
func (r *SupportRepository) SetClosedOwn(studentID, topicID uuid.UUID, closed bool) (bool, error) {
	if studentID == uuid.Nil || topicID == uuid.Nil {
		return false, fmt.Errorf("%w: student/topic id", helper.ErrInvalidArgument)
	}
	res := r.DB.Model(&model.SupportTopicModel{}).
		Where("topic_id = ? AND topic_student_id = ?", topicID, studentID).
		Update("topic_closed", closed)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *SupportRepository) SetClosed(topicID uuid.UUID, closed bool) (bool, error) {
	if topicID == uuid.Nil {
		return false, fmt.Errorf("%w: topic id", helper.ErrInvalidArgument)
	}
	res := r.DB.Model(&model.SupportTopicModel{}).
		Where("topic_id = ?", topicID).
		Update("topic_closed", closed)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
