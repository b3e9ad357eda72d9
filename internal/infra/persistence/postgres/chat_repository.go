package postgres

import (
	"context"

	"sweets/internal/domain/entity"
	domainerrors "sweets/internal/domain/errors"
	"sweets/internal/domain/repository"
	"sweets/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type chatRepository struct {
	db *gorm.DB
}

// NewChatRepository is the constructor for chatRepository.
func NewChatRepository(db *gorm.DB) repository.ChatRepository {
	return &chatRepository{db: db}
}

func (repo *chatRepository) Create(ctx context.Context, message *entity.ChatMessage) error {
	if err := repo.db.WithContext(ctx).Create(fromChatMessageDomain(message)).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound.WrapMessage("invalid chat participant")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create chat message")
	}

	return nil
}

// pair scopes a query to the messages exchanged between two users, in either direction.
func pair(db *gorm.DB, userA, userB uuid.UUID) *gorm.DB {
	return db.Where("(sender_id = ? AND recipient_id = ?) OR (sender_id = ? AND recipient_id = ?)",
		userA, userB, userB, userA)
}

// ListConversation returns the messages of a pair ordered by (created_at, id).
func (repo *chatRepository) ListConversation(ctx context.Context, userA, userB uuid.UUID) ([]*entity.ChatMessage, error) {
	var messageModels []*model.ChatMessageModel
	err := pair(repo.db.WithContext(ctx), userA, userB).
		Order("created_at ASC").
		Order("id ASC").
		Find(&messageModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list conversation")
	}

	messages := make([]*entity.ChatMessage, 0, len(messageModels))
	for _, messageM := range messageModels {
		messages = append(messages, toChatMessageDomain(messageM))
	}

	return messages, nil
}

// MarkRead flags every unread message from sender to recipient in one statement.
func (repo *chatRepository) MarkRead(ctx context.Context, recipientID, senderID uuid.UUID) (int64, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.ChatMessageModel{}).
		Where("recipient_id = ? AND sender_id = ? AND read = ?", recipientID, senderID, false).
		Update("read", true)
	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to mark messages read")
	}

	return result.RowsAffected, nil
}

func (repo *chatRepository) DeleteConversation(ctx context.Context, userA, userB uuid.UUID) (int64, error) {
	result := pair(repo.db.WithContext(ctx), userA, userB).Delete(&model.ChatMessageModel{})
	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to delete conversation")
	}

	return result.RowsAffected, nil
}

const conversationsQuery = `
SELECT u.id AS customer_id,
       u.username,
       COUNT(*) FILTER (WHERE m.recipient_id = @admin AND NOT m.read) AS unread_count,
       MAX(m.created_at) AS last_message_at
FROM chat_messages m
JOIN users u ON u.id = CASE WHEN m.sender_id = @admin THEN m.recipient_id ELSE m.sender_id END
WHERE m.sender_id = @admin OR m.recipient_id = @admin
GROUP BY u.id, u.username
ORDER BY last_message_at DESC`

// ListConversations builds the admin inbox: one row per customer who has exchanged messages with the admin.
func (repo *chatRepository) ListConversations(ctx context.Context, adminID uuid.UUID) ([]*entity.ConversationSummary, error) {
	var rows []model.ConversationRow
	if err := repo.db.WithContext(ctx).
		Raw(conversationsQuery, map[string]any{"admin": adminID}).
		Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list conversations")
	}

	summaries := make([]*entity.ConversationSummary, 0, len(rows))
	for _, row := range rows {
		summaries = append(summaries, &entity.ConversationSummary{
			CustomerID:    row.CustomerID,
			Username:      row.Username,
			UnreadCount:   row.UnreadCount,
			LastMessageAt: row.LastMessageAt,
		})
	}

	return summaries, nil
}

func toChatMessageDomain(data *model.ChatMessageModel) *entity.ChatMessage {
	return &entity.ChatMessage{
		ID:            data.ID,
		SenderID:      data.SenderID,
		RecipientID:   data.RecipientID,
		Text:          data.Text,
		AttachmentKey: data.AttachmentKey,
		Read:          data.Read,
		CreatedAt:     data.CreatedAt,
	}
}

func fromChatMessageDomain(data *entity.ChatMessage) *model.ChatMessageModel {
	return &model.ChatMessageModel{
		ID:            data.ID,
		SenderID:      data.SenderID,
		RecipientID:   data.RecipientID,
		Text:          data.Text,
		AttachmentKey: data.AttachmentKey,
		Read:          data.Read,
		CreatedAt:     data.CreatedAt,
	}
}
