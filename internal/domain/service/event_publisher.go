package service

import (
	"context"
)

// StorefrontEventType names what happened in the shop.
type StorefrontEventType string

const (
	EventOrderPlaced        StorefrontEventType = "order.placed"
	EventOrderStatusChanged StorefrontEventType = "order.status_changed"
	EventPaymentSubmitted   StorefrontEventType = "payment.submitted"
	EventPaymentApproved    StorefrontEventType = "payment.approved"
	EventPaymentRejected    StorefrontEventType = "payment.rejected"
	EventComplaintAnswered  StorefrontEventType = "complaint.answered"
	EventChatMessage        StorefrontEventType = "chat.message"
)

// StorefrontEvent is published after a committed state change and fanned
// out to the recipient's devices by the notifier worker.
type StorefrontEvent struct {
	RequestID   string              `json:"request_id,omitempty"` // For distributed tracing
	Type        StorefrontEventType `json:"type"`
	RecipientID string              `json:"recipient_id"`
	SubjectID   string              `json:"subject_id"` // Order, complaint or message the event is about
	Status      string              `json:"status,omitempty"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishEvent publishes an event for async processing
	PublishEvent(ctx context.Context, event *StorefrontEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
