package service

import (
	"context"
	"strings"

	"skillswap/internal/models"
	"skillswap/internal/observability"
	"skillswap/internal/repository"

	"github.com/google/uuid"
)

// MessageService provides platform-wide broadcast business logic.
type MessageService struct {
	messageRepo repository.MessageRepository
}

// NewMessageService returns a new MessageService.
func NewMessageService(messageRepo repository.MessageRepository) *MessageService {
	return &MessageService{messageRepo: messageRepo}
}

const maxBroadcastLen = 2000

// Broadcast publishes a platform-wide message. The author is always the
// authenticated admin making the call, never a client-supplied identity.
func (s *MessageService) Broadcast(ctx context.Context, adminID uuid.UUID, content string) (*models.AdminMessage, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, models.NewValidationError("Message content cannot be empty")
	}
	if len(content) > maxBroadcastLen {
		return nil, models.NewValidationError("Message content too long (max 2000 characters)")
	}

	message := &models.AdminMessage{
		AdminID: adminID,
		Content: content,
	}
	if err := s.messageRepo.Create(ctx, message); err != nil {
		return nil, err
	}

	observability.AdminBroadcasts.Inc()
	return message, nil
}

// ListMessages returns broadcasts newest first.
func (s *MessageService) ListMessages(ctx context.Context, offset, limit int) ([]models.AdminMessage, error) {
	return s.messageRepo.List(ctx, offset, limit)
}
