package entity

import (
	"strings"
	"time"

	domainerrors "sweets/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ChatMessage is one entry of the conversation between a customer and the administrator.
type ChatMessage struct {
	ID            uuid.UUID `json:"id"`
	SenderID      uuid.UUID `json:"sender_id"`
	RecipientID   uuid.UUID `json:"recipient_id"`
	Text          string    `json:"text,omitempty"`
	AttachmentKey string    `json:"attachment_key,omitempty"`
	Read          bool      `json:"read"`
	CreatedAt     time.Time `json:"created_at"`
}

// NewChatMessage trims text and requires text or an attachment.
func NewChatMessage(senderID, recipientID uuid.UUID, text, attachmentKey string, now time.Time) (*ChatMessage, error) {
	text = strings.TrimSpace(text)
	if text == "" && attachmentKey == "" {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "message needs text or an attachment")
	}
	if senderID == recipientID {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "cannot send a message to yourself")
	}

	return &ChatMessage{
		ID:            uuid.New(),
		SenderID:      senderID,
		RecipientID:   recipientID,
		Text:          text,
		AttachmentKey: attachmentKey,
		CreatedAt:     now,
	}, nil
}

// ConversationSummary is one row of the admin inbox.
type ConversationSummary struct {
	CustomerID    uuid.UUID `json:"customer_id"`
	Username      string    `json:"username"`
	UnreadCount   int64     `json:"unread_count"`
	LastMessageAt time.Time `json:"last_message_at"`
}
