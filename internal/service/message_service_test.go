package service

import (
	"context"
	"strings"
	"testing"

	"skillswap/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMessageService_Broadcast(t *testing.T) {
	t.Parallel()

	adminID := uuid.New()
	var created *models.AdminMessage
	repo := &messageRepoStub{
		createFn: func(_ context.Context, message *models.AdminMessage) error {
			message.ID = uuid.New()
			created = message
			return nil
		},
	}
	svc := NewMessageService(repo)

	msg, err := svc.Broadcast(context.Background(), adminID, "  Maintenance tonight  ")
	require.NoError(t, err)
	require.NotNil(t, created)
	// The author is the caller, whitespace is trimmed.
	assert.Equal(t, adminID, msg.AdminID)
	assert.Equal(t, "Maintenance tonight", msg.Content)
}

func TestMessageService_Broadcast_Validation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
	}{
		{"Empty", ""},
		{"Whitespace Only", "   \t\n"},
		{"Too Long", strings.Repeat("a", 2001)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			svc := NewMessageService(&messageRepoStub{})

			_, err := svc.Broadcast(context.Background(), uuid.New(), tt.content)
			require.Error(t, err)
			assert.Equal(t, "VALIDATION_ERROR", appErrCode(t, err))
		})
	}
}

func TestMessageService_ListMessages(t *testing.T) {
	t.Parallel()

	repo := &messageRepoStub{
		listFn: func(_ context.Context, offset, limit int) ([]models.AdminMessage, error) {
			assert.Equal(t, 0, offset)
			assert.Equal(t, 20, limit)
			return []models.AdminMessage{{Content: "hello"}}, nil
		},
	}
	svc := NewMessageService(repo)

	messages, err := svc.ListMessages(context.Background(), 0, 20)
	require.NoError(t, err)
	require.Len(t, messages, 1)
	assert.Equal(t, "hello", messages[0].Content)
}
