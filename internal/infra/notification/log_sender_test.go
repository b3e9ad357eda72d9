package notification

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"sweets/config"
	"sweets/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogSender_CountsEveryTokenAsDelivered(t *testing.T) {
	var buf bytes.Buffer
	sender := NewLogSender(slog.New(slog.NewTextHandler(&buf, nil)))

	report, err := sender.Push(context.Background(), []string{"a", "b", "c"}, &service.PushMessage{Title: "Encomenda", Body: "Pronta"})

	require.NoError(t, err)
	assert.Equal(t, 3, report.Delivered)
	assert.Zero(t, report.Failed)
	assert.Empty(t, report.StaleTokens)
	assert.Contains(t, buf.String(), "Push notification batch")
	assert.Contains(t, buf.String(), "title=Encomenda")
}

func TestLogSender_RejectsBadBatches(t *testing.T) {
	sender := NewLogSender(slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)))
	oversized := strings.Split(strings.Repeat("t,", service.MaxPushBatch), ",")

	tests := []struct {
		name   string
		tokens []string
		msg    *service.PushMessage
	}{
		{name: "no message", tokens: []string{"a"}, msg: nil},
		{name: "too many tokens", tokens: oversized, msg: &service.PushMessage{Title: "Encomenda"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report, err := sender.Push(context.Background(), tt.tokens, tt.msg)
			require.Error(t, err)
			assert.Nil(t, report)
		})
	}
}

func TestNewPushSender_FallsBackToLogSender(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))

	sender, err := NewPushSender(&config.Config{}, logger)

	require.NoError(t, err)
	_, ok := sender.(*logSender)
	assert.True(t, ok)
}
