package repository

import (
	"context"

	"sweets/internal/domain/entity"

	"github.com/google/uuid"
)

// ChatRepository persists chat messages.
type ChatRepository interface {
	Create(ctx context.Context, message *entity.ChatMessage) error

	// ListConversation returns the messages exchanged by the two users ordered by (created_at, id).
	ListConversation(ctx context.Context, userA, userB uuid.UUID) ([]*entity.ChatMessage, error)

	// MarkRead flags every unread message from sender to recipient as read and returns the count.
	MarkRead(ctx context.Context, recipientID, senderID uuid.UUID) (int64, error)

	// DeleteConversation removes every message between the two users and returns the count.
	DeleteConversation(ctx context.Context, userA, userB uuid.UUID) (int64, error)

	// ListConversations returns one summary per customer who exchanged messages with adminID.
	ListConversations(ctx context.Context, adminID uuid.UUID) ([]*entity.ConversationSummary, error)
}
