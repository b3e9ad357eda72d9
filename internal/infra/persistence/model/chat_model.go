package model

import (
	"time"

	"github.com/google/uuid"
)

// ChatMessageModel mirrors the 'chat_messages' table.
type ChatMessageModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key"`
	SenderID      uuid.UUID `gorm:"type:uuid;not null;index:idx_chat_pair"`
	RecipientID   uuid.UUID `gorm:"type:uuid;not null;index:idx_chat_pair"`
	Text          string    `gorm:"type:text"`
	AttachmentKey string    `gorm:"type:varchar(255)"`
	Read          bool      `gorm:"not null;default:false"`
	CreatedAt     time.Time `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (ChatMessageModel) TableName() string {
	return "chat_messages"
}

// ConversationRow is the scan target of the admin inbox query.
type ConversationRow struct {
	CustomerID    uuid.UUID
	Username      string
	UnreadCount   int64
	LastMessageAt time.Time
}
