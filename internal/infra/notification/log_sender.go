package notification

import (
	"context"
	"log/slog"

	deliverycontext "sweets/internal/delivery/context"
	"sweets/internal/domain/service"
)

// logSender records notifications instead of sending them. Used in local development.
type logSender struct {
	logger *slog.Logger
}

// NewLogSender returns a PushSender that only logs and reports every token as delivered.
func NewLogSender(logger *slog.Logger) service.PushSender {
	return &logSender{logger: logger}
}

func (n *logSender) Push(ctx context.Context, tokens []string, msg *service.PushMessage) (*service.PushReport, error) {
	if err := checkBatch(tokens, msg); err != nil {
		return nil, err
	}

	deliverycontext.GetLoggerOrDefault(ctx, n.logger).Info("Push notification batch (not sent)",
		slog.Int("tokens", len(tokens)),
		slog.String("title", msg.Title),
		slog.String("body", msg.Body),
		slog.Any("data", msg.Data),
	)

	return &service.PushReport{Delivered: len(tokens)}, nil
}
