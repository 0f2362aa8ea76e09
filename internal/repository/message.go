package repository

import (
	"context"

	"skillswap/internal/models"

	"gorm.io/gorm"
)

// MessageRepository defines persistence operations for admin broadcasts.
type MessageRepository interface {
	Create(ctx context.Context, message *models.AdminMessage) error
	List(ctx context.Context, offset, limit int) ([]models.AdminMessage, error)
}

type messageRepository struct {
	db *gorm.DB
}

// NewMessageRepository returns a new MessageRepository implementation.
func NewMessageRepository(db *gorm.DB) MessageRepository {
	return &messageRepository{db: db}
}

func (r *messageRepository) Create(ctx context.Context, message *models.AdminMessage) error {
	if err := r.db.WithContext(ctx).Create(message).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

// List returns broadcasts newest first.
func (r *messageRepository) List(ctx context.Context, offset, limit int) ([]models.AdminMessage, error) {
	var messages []models.AdminMessage
	if err := r.db.WithContext(ctx).
		Order("created_at DESC, id DESC").
		Offset(offset).
		Limit(limit).
		Find(&messages).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return messages, nil
}
