package service

import (
	"context"
)

// MaxPushBatch is the most device tokens a single Push call accepts.
const MaxPushBatch = 500

// PushMessage is what a device shows for a storefront event.
type PushMessage struct {
	Title string
	Body  string
	Data  map[string]string
}

// PushReport is the outcome of one Push call.
// StaleTokens lists tokens the provider no longer recognises; their devices should be forgotten.
type PushReport struct {
	Delivered   int
	Failed      int
	StaleTokens []string
}

// PushSender delivers a message to a batch of device tokens.
type PushSender interface {
	Push(ctx context.Context, tokens []string, msg *PushMessage) (*PushReport, error)
}
