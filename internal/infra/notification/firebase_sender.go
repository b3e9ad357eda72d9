// Package notification delivers push notifications to customer and admin devices.
package notification

import (
	"context"
	"log/slog"

	"sweets/config"
	"sweets/internal/domain/service"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"github.com/pkg/errors"
	"google.golang.org/api/option"
)

type firebaseSender struct {
	client *messaging.Client
}

// NewFirebaseSender connects to Firebase Cloud Messaging.
func NewFirebaseSender(ctx context.Context, cfg *config.FirebaseConfig) (service.PushSender, error) {
	var opts []option.ClientOption
	if cfg.CredentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsPath))
	}

	var appConfig *firebase.Config
	if cfg.ProjectID != "" {
		appConfig = &firebase.Config{ProjectID: cfg.ProjectID}
	}

	app, err := firebase.NewApp(ctx, appConfig, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get messaging client")
	}

	return &firebaseSender{client: client}, nil
}

// NewPushSender picks Firebase when configured and a logging sender otherwise.
func NewPushSender(cfg *config.Config, logger *slog.Logger) (service.PushSender, error) {
	if cfg.Firebase == nil || (cfg.Firebase.ProjectID == "" && cfg.Firebase.CredentialsPath == "") {
		logger.Warn("Firebase is not configured, push notifications will only be logged")

		return NewLogSender(logger), nil
	}

	return NewFirebaseSender(context.Background(), cfg.Firebase)
}

func (s *firebaseSender) Push(ctx context.Context, tokens []string, msg *service.PushMessage) (*service.PushReport, error) {
	if err := checkBatch(tokens, msg); err != nil {
		return nil, err
	}
	if len(tokens) == 0 {
		return &service.PushReport{}, nil
	}

	response, err := s.client.SendEachForMulticast(ctx, &messaging.MulticastMessage{
		Tokens:       tokens,
		Notification: &messaging.Notification{Title: msg.Title, Body: msg.Body},
		Data:         msg.Data,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to send multicast notification")
	}

	report := &service.PushReport{Delivered: response.SuccessCount, Failed: response.FailureCount}
	for idx, sent := range response.Responses {
		if sent.Error != nil && isStaleToken(sent.Error) {
			report.StaleTokens = append(report.StaleTokens, tokens[idx])
		}
	}

	return report, nil
}

func isStaleToken(err error) bool {
	return messaging.IsInvalidArgument(err) || messaging.IsUnregistered(err)
}

func checkBatch(tokens []string, msg *service.PushMessage) error {
	if msg == nil {
		return errors.New("push message is required")
	}
	if len(tokens) > service.MaxPushBatch {
		return errors.Errorf("token count exceeds limit: %d (max %d)", len(tokens), service.MaxPushBatch)
	}

	return nil
}
