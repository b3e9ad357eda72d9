package impl

import (
	"context"
	"log/slog"

	"sweets/config"
	deliverycontext "sweets/internal/delivery/context"
	"sweets/internal/domain/repository"
	"sweets/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// eventEmitter publishes storefront events after a unit of work has committed.
// Failures are logged and swallowed: a lost notification never fails the request.
type eventEmitter struct {
	publisher     service.EventPublisher
	userRepo      repository.UserRepository
	adminUsername string
	logger        *slog.Logger
}

func newEventEmitter(publisher service.EventPublisher, userRepo repository.UserRepository, cfg *config.Config, logger *slog.Logger) *eventEmitter {
	emitter := &eventEmitter{
		publisher: publisher,
		userRepo:  userRepo,
		logger:    logger,
	}
	if cfg != nil && cfg.Admin != nil {
		emitter.adminUsername = cfg.Admin.Username
	}

	return emitter
}

func (e *eventEmitter) emit(ctx context.Context, eventType service.StorefrontEventType, recipientID, subjectID uuid.UUID, status string) {
	if e == nil || e.publisher == nil {
		return
	}

	event := &service.StorefrontEvent{
		RequestID:   deliverycontext.GetRequestIDFromContext(ctx),
		Type:        eventType,
		RecipientID: recipientID.String(),
		SubjectID:   subjectID.String(),
		Status:      status,
	}
	if err := e.publisher.PublishEvent(ctx, event); err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, e.logger).Warn("Failed to publish storefront event",
			slog.String("event_type", string(eventType)),
			slog.String("subject_id", event.SubjectID),
			slog.Any("error", err),
		)
	}
}

// emitToAdmin resolves the administrator account and publishes to it.
func (e *eventEmitter) emitToAdmin(ctx context.Context, eventType service.StorefrontEventType, subjectID uuid.UUID, status string) {
	if e == nil || e.publisher == nil {
		return
	}

	admin, err := e.userRepo.FindByUsername(ctx, e.adminUsername)
	if err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, e.logger).Warn("Cannot notify administrator",
			slog.String("event_type", string(eventType)),
			slog.Any("error", errors.Wrap(err, "failed to find admin user")),
		)

		return
	}

	e.emit(ctx, eventType, admin.ID, subjectID, status)
}
