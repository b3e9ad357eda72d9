package usecase

import (
	"context"

	"sweets/internal/domain/entity"

	"github.com/google/uuid"
)

// MessageInput is the content of a chat message.
type MessageInput struct {
	Text       string
	Attachment *FileUpload
}

// ChatUsecase covers the customer and administrator conversation.
type ChatUsecase interface {
	// Post sends a message. Customers may only write to the administrator and
	// the administrator may only write to existing customers.
	Post(ctx context.Context, sender entity.Principal, recipientID uuid.UUID, input *MessageInput) (*entity.ChatMessage, error)

	// PostToAdmin is Post with the administrator as recipient.
	PostToAdmin(ctx context.Context, sender entity.Principal, input *MessageInput) (*entity.ChatMessage, error)

	// Conversation returns the messages between viewer and counterpart and marks
	// the ones addressed to viewer as read.
	Conversation(ctx context.Context, viewer entity.Principal, counterpartID uuid.UUID) ([]*entity.ChatMessage, error)

	// ConversationWithAdmin is Conversation with the administrator as counterpart.
	ConversationWithAdmin(ctx context.Context, viewer entity.Principal) ([]*entity.ChatMessage, error)

	MarkRead(ctx context.Context, recipientID uuid.UUID, counterpartID uuid.UUID) (int64, error)
	DeleteConversation(ctx context.Context, admin entity.Principal, customerID uuid.UUID) (int64, error)
	Inbox(ctx context.Context, admin entity.Principal) ([]*entity.ConversationSummary, error)
}
