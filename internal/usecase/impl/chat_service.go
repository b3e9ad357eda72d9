package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"sweets/config"
	deliverycontext "sweets/internal/delivery/context"
	"sweets/internal/domain/constants"
	"sweets/internal/domain/entity"
	domainerrors "sweets/internal/domain/errors"
	"sweets/internal/domain/repository"
	"sweets/internal/domain/service"
	"sweets/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type chatService struct {
	chatRepo      repository.ChatRepository
	userRepo      repository.UserRepository
	storage       service.BlobStorage
	gate          usecase.AccessGate
	events        *eventEmitter
	adminUsername string
	now           func() time.Time
	logger        *slog.Logger
}

// ChatServiceParams holds dependencies for chatService, injected by Fx.
type ChatServiceParams struct {
	fx.In

	ChatRepo  repository.ChatRepository
	UserRepo  repository.UserRepository
	Storage   service.BlobStorage
	Gate      usecase.AccessGate
	Publisher service.EventPublisher `optional:"true"`
	Config    *config.Config
	Logger    *slog.Logger
}

// NewChatService is the constructor for chatService.
func NewChatService(params ChatServiceParams) usecase.ChatUsecase {
	srv := &chatService{
		chatRepo: params.ChatRepo,
		userRepo: params.UserRepo,
		storage:  params.Storage,
		gate:     params.Gate,
		events:   newEventEmitter(params.Publisher, params.UserRepo, params.Config, params.Logger),
		now:      time.Now,
		logger:   params.Logger,
	}
	if params.Config != nil && params.Config.Admin != nil {
		srv.adminUsername = params.Config.Admin.Username
	}

	return srv
}

func (srv *chatService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Post sends a message from sender to recipient.
func (srv *chatService) Post(ctx context.Context, sender entity.Principal, recipientID uuid.UUID, input *usecase.MessageInput) (*entity.ChatMessage, error) {
	if input == nil || (strings.TrimSpace(input.Text) == "" && input.Attachment == nil) {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "message needs text or an attachment")
	}

	if err := srv.checkRecipient(ctx, sender, recipientID); err != nil {
		return nil, err
	}

	media := newUploads(srv.storage, srv.logger)
	attachmentKey, err := media.save(ctx, constants.MediaPrefixChat, input.Attachment, false)
	if err != nil {
		return nil, err
	}

	message, err := entity.NewChatMessage(sender.UserID, recipientID, input.Text, attachmentKey, srv.now())
	if err != nil {
		media.discard(ctx)

		return nil, err
	}
	if err := srv.chatRepo.Create(ctx, message); err != nil {
		media.discard(ctx)

		return nil, errors.Wrap(err, "failed to store chat message")
	}
	srv.log(ctx).Debug("Chat message posted", slog.Any("messageID", message.ID), slog.Any("recipientID", recipientID))

	srv.events.emit(ctx, service.EventChatMessage, recipientID, message.ID, "")

	return message, nil
}

// checkRecipient enforces that every conversation has the administrator on one side.
func (srv *chatService) checkRecipient(ctx context.Context, sender entity.Principal, recipientID uuid.UUID) error {
	if srv.gate.IsAdmin(ctx, sender) {
		if recipientID == sender.UserID {
			return errors.Wrap(domainerrors.ErrValidationFailed, "the administrator can only write to customers")
		}
		recipient, err := srv.userRepo.FindByID(ctx, recipientID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return domainerrors.ErrUserNotFound
			}

			return errors.Wrap(err, "failed to find recipient")
		}
		if recipient.Username == srv.adminUsername {
			return errors.Wrap(domainerrors.ErrValidationFailed, "the administrator can only write to customers")
		}

		return nil
	}

	admin, err := srv.admin(ctx)
	if err != nil {
		return err
	}
	if recipientID != admin.ID {
		return errors.Wrap(domainerrors.ErrAccessDenied, "customers may only write to the administrator")
	}

	return nil
}

func (srv *chatService) PostToAdmin(ctx context.Context, sender entity.Principal, input *usecase.MessageInput) (*entity.ChatMessage, error) {
	admin, err := srv.admin(ctx)
	if err != nil {
		return nil, err
	}

	return srv.Post(ctx, sender, admin.ID, input)
}

// Conversation returns the messages between viewer and counterpart, oldest
// first, after marking the ones addressed to viewer as read.
func (srv *chatService) Conversation(ctx context.Context, viewer entity.Principal, counterpartID uuid.UUID) ([]*entity.ChatMessage, error) {
	if viewer.Username == srv.adminUsername {
		if err := srv.gate.RequireAdmin(ctx, viewer); err != nil {
			return nil, err
		}
	} else {
		admin, err := srv.admin(ctx)
		if err != nil {
			return nil, err
		}
		if counterpartID != admin.ID {
			return nil, errors.Wrap(domainerrors.ErrAccessDenied, "customers may only read their conversation with the administrator")
		}
	}

	if _, err := srv.MarkRead(ctx, viewer.UserID, counterpartID); err != nil {
		return nil, err
	}

	messages, err := srv.chatRepo.ListConversation(ctx, viewer.UserID, counterpartID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list conversation")
	}

	return messages, nil
}

func (srv *chatService) ConversationWithAdmin(ctx context.Context, viewer entity.Principal) ([]*entity.ChatMessage, error) {
	admin, err := srv.admin(ctx)
	if err != nil {
		return nil, err
	}

	return srv.Conversation(ctx, viewer, admin.ID)
}

// MarkRead flags every unread message from counterpart to recipient as read.
func (srv *chatService) MarkRead(ctx context.Context, recipientID uuid.UUID, counterpartID uuid.UUID) (int64, error) {
	marked, err := srv.chatRepo.MarkRead(ctx, recipientID, counterpartID)
	if err != nil {
		return 0, errors.Wrap(err, "failed to mark messages read")
	}

	return marked, nil
}

// DeleteConversation removes every message between the administrator and customer.
func (srv *chatService) DeleteConversation(ctx context.Context, admin entity.Principal, customerID uuid.UUID) (int64, error) {
	if err := srv.gate.RequireAdmin(ctx, admin); err != nil {
		return 0, err
	}

	messages, err := srv.chatRepo.ListConversation(ctx, admin.UserID, customerID)
	if err != nil {
		return 0, errors.Wrap(err, "failed to list conversation")
	}

	deleted, err := srv.chatRepo.DeleteConversation(ctx, admin.UserID, customerID)
	if err != nil {
		return 0, errors.Wrap(err, "failed to delete conversation")
	}
	srv.log(ctx).Warn("Conversation deleted", slog.Any("customerID", customerID), slog.Int64("messages", deleted))

	for _, message := range messages {
		if message.AttachmentKey == "" {
			continue
		}
		if err := srv.storage.Delete(ctx, message.AttachmentKey); err != nil {
			srv.log(ctx).Warn("Failed to delete chat attachment", slog.String("key", message.AttachmentKey), slog.Any("error", err))
		}
	}

	return deleted, nil
}

func (srv *chatService) Inbox(ctx context.Context, admin entity.Principal) ([]*entity.ConversationSummary, error) {
	if err := srv.gate.RequireAdmin(ctx, admin); err != nil {
		return nil, err
	}

	conversations, err := srv.chatRepo.ListConversations(ctx, admin.UserID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list conversations")
	}

	return conversations, nil
}

func (srv *chatService) admin(ctx context.Context) (*entity.User, error) {
	if srv.adminUsername == "" {
		return nil, errors.Wrap(domainerrors.ErrUserNotFound, "administrator not configured")
	}

	admin, err := srv.userRepo.FindByUsername(ctx, srv.adminUsername)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUserNotFound, "administrator account missing")
		}

		return nil, errors.Wrap(err, "failed to find administrator")
	}

	return admin, nil
}
