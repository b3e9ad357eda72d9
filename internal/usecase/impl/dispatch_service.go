package impl

import (
	"context"
	"fmt"
	"log/slog"

	deliverycontext "sweets/internal/delivery/context"
	"sweets/internal/domain/entity"
	domainerrors "sweets/internal/domain/errors"
	"sweets/internal/domain/repository"
	"sweets/internal/domain/service"
	"sweets/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type dispatchService struct {
	deviceRepo repository.DeviceRepository
	sender     service.PushSender
	logger     *slog.Logger
}

// NewDispatchService creates the service that fans storefront events out to devices.
func NewDispatchService(
	deviceRepo repository.DeviceRepository,
	sender service.PushSender,
	logger *slog.Logger,
) usecase.DispatchUsecase {
	return &dispatchService{
		deviceRepo: deviceRepo,
		sender:     sender,
		logger:     logger,
	}
}

func (s *dispatchService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// Dispatch sends event to every active device of its recipient.
func (s *dispatchService) Dispatch(ctx context.Context, event *service.StorefrontEvent) (*usecase.DispatchResult, error) {
	if event == nil {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "event is required")
	}

	msg, ok := renderEvent(event)
	if !ok {
		return nil, errors.Wrapf(domainerrors.ErrValidationFailed, "unknown event type %q", event.Type)
	}

	recipientID, err := uuid.Parse(event.RecipientID)
	if err != nil {
		return nil, errors.Wrapf(domainerrors.ErrValidationFailed, "invalid recipient %q", event.RecipientID)
	}

	devices, err := s.deviceRepo.FindActiveDevicesByUser(ctx, recipientID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch devices")
	}

	result := &usecase.DispatchResult{}
	if len(devices) == 0 {
		s.log(ctx).Debug("Recipient has no active devices", slog.Any("recipientID", recipientID))

		return result, nil
	}

	tokens := make([]string, 0, len(devices))
	deviceByToken := make(map[string]*entity.UserDevice, len(devices))
	for _, device := range devices {
		tokens = append(tokens, device.FCMToken)
		deviceByToken[device.FCMToken] = device
	}

	var staleTokens []string
	for i := 0; i < len(tokens); i += service.MaxPushBatch {
		batch := tokens[i:min(i+service.MaxPushBatch, len(tokens))]

		report, err := s.sender.Push(ctx, batch, msg)
		if err != nil {
			// Continue with the other batches.
			s.log(ctx).Error("Failed to send notification batch", slog.Int("batch_size", len(batch)), slog.Any("error", err))
			result.Failed += len(batch)

			continue
		}

		result.Sent += report.Delivered
		result.Failed += report.Failed
		staleTokens = append(staleTokens, report.StaleTokens...)
	}

	for _, token := range staleTokens {
		device, ok := deviceByToken[token]
		if !ok {
			continue
		}
		if err := s.deviceRepo.DeleteDevice(ctx, device.ID); err != nil {
			s.log(ctx).Warn("Failed to delete invalid device", slog.Any("deviceID", device.ID), slog.Any("error", err))

			continue
		}
		result.InvalidTokens++
	}

	s.log(ctx).Info("Event dispatched",
		slog.String("event_type", string(event.Type)),
		slog.Int("sent", result.Sent),
		slog.Int("failed", result.Failed),
		slog.Int("invalid_tokens", result.InvalidTokens),
	)

	return result, nil
}

// renderEvent builds the push shown to the customer or administrator.
// The data payload lets the app open the order, proof or conversation the event is about.
func renderEvent(event *service.StorefrontEvent) (*service.PushMessage, bool) {
	title, body, ok := eventText(event)
	if !ok {
		return nil, false
	}

	data := map[string]string{
		"type":       string(event.Type),
		"subject_id": event.SubjectID,
	}
	if event.Status != "" {
		data["status"] = event.Status
	}

	return &service.PushMessage{Title: title, Body: body, Data: data}, true
}

func eventText(event *service.StorefrontEvent) (string, string, bool) {
	switch event.Type {
	case service.EventOrderPlaced:
		return "Nova encomenda", "Foi recebida uma nova encomenda.", true
	case service.EventOrderStatusChanged:
		return "Encomenda actualizada", fmt.Sprintf("A sua encomenda está agora: %s.", statusLabel(event.Status)), true
	case service.EventPaymentSubmitted:
		return "Novo comprovativo", "Foi submetido um comprovativo de pagamento para validação.", true
	case service.EventPaymentApproved:
		return "Pagamento aprovado", "O seu pagamento foi aprovado.", true
	case service.EventPaymentRejected:
		return "Pagamento rejeitado", "O seu comprovativo de pagamento foi rejeitado.", true
	case service.EventComplaintAnswered:
		return "Reclamação respondida", "A sua reclamação recebeu uma resposta.", true
	case service.EventChatMessage:
		return "Nova mensagem", "Tem uma nova mensagem.", true
	default:
		return "", "", false
	}
}

func statusLabel(status string) string {
	switch entity.OrderStatus(status) {
	case entity.OrderStatusPending:
		return "pendente"
	case entity.OrderStatusConfirmed:
		return "confirmada"
	case entity.OrderStatusPreparing:
		return "em preparo"
	case entity.OrderStatusReady:
		return "pronta"
	case entity.OrderStatusDelivered:
		return "entregue"
	case entity.OrderStatusCancelled:
		return "cancelada"
	default:
		return status
	}
}
