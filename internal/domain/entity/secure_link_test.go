package entity

import (
	"testing"
	"time"

	domainerrors "sweets/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSecureLink_IsValid(t *testing.T) {
	now := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
	ttl := time.Hour
	link := NewSecureLink(nil, &ttl, now)

	assert.True(t, link.IsValid(now))
	assert.True(t, link.IsValid(now.Add(ttl-time.Nanosecond)))
	assert.False(t, link.IsValid(now.Add(ttl)))

	forever := NewSecureLink(nil, nil, now)
	assert.True(t, forever.IsValid(now.AddDate(50, 0, 0)))
}

func TestSecureLink_RefreshKeepsToken(t *testing.T) {
	now := time.Now()
	ttl := time.Hour
	link := NewSecureLink(nil, &ttl, now)
	token := link.Token

	link.Refresh(nil, now.Add(2*time.Hour))
	assert.Equal(t, token, link.Token)
	assert.Nil(t, link.ExpiresAt)
}

func TestTTLFromHours(t *testing.T) {
	hours := func(n int) *int { return &n }

	tests := []struct {
		name    string
		hours   *int
		want    *time.Duration
		wantErr bool
	}{
		{name: "absent", hours: nil},
		{name: "zero", hours: hours(0)},
		{name: "negative", hours: hours(-3)},
		{name: "two hours", hours: hours(2), want: durationPtr(2 * time.Hour)},
		{name: "at the cap", hours: hours(MaxLinkTTLHours), want: durationPtr(MaxLinkTTL)},
		{name: "above the cap", hours: hours(MaxLinkTTLHours + 1), wantErr: true},
		{name: "would overflow a duration", hours: hours(2562048), wantErr: true},
		{name: "would wrap to minutes", hours: hours(5124096), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ttl, err := TTLFromHours(tt.hours)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
				assert.Nil(t, ttl)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, ttl)
		})
	}
}

func TestSecureLink_LongestLifetimeStaysInTheFuture(t *testing.T) {
	now := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
	longest := MaxLinkTTLHours
	ttl, err := TTLFromHours(&longest)
	require.NoError(t, err)

	link := NewSecureLink(nil, ttl, now)
	require.NotNil(t, link.ExpiresAt)
	assert.True(t, link.ExpiresAt.After(now.AddDate(9, 11, 0)))
	assert.True(t, link.IsValid(now.Add(time.Hour)))
}

func durationPtr(d time.Duration) *time.Duration {
	return &d
}

func TestNewSecureOrderView_HidesCustomer(t *testing.T) {
	order := &Order{ID: uuid.New(), OwnerID: uuid.New(), Status: OrderStatusReady, Total: decimal.RequireFromString("7.5")}
	link := NewSecureLink(&order.ID, nil, time.Now())

	view := NewSecureOrderView(order, link)
	assert.Equal(t, order.ID, view.OrderID)
	assert.Equal(t, "7.50", view.Total)
	assert.Equal(t, OrderStatusReady, view.Status)
}
