// Package pubsub publishes storefront events for the notifier worker.
package pubsub

import (
	"encoding/json"

	"sweets/internal/domain/service"

	"github.com/pkg/errors"
)

// Attribute keys set on every published message.
const (
	AttrEventType   = "event_type"
	AttrRecipientID = "recipient_id"
	AttrRequestID   = "request_id"
)

func encodeEvent(event *service.StorefrontEvent) ([]byte, map[string]string, error) {
	if event == nil {
		return nil, nil, errors.New("event is nil")
	}

	data, err := json.Marshal(event)
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to marshal storefront event")
	}

	attributes := map[string]string{
		AttrEventType:   string(event.Type),
		AttrRecipientID: event.RecipientID,
	}
	if event.RequestID != "" {
		attributes[AttrRequestID] = event.RequestID
	}

	return data, attributes, nil
}
