package entity

import (
	"time"

	"github.com/google/uuid"
)

// UserDevice is a phone registered to receive push notifications about orders,
// payments, complaints and chat messages.
type UserDevice struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	FCMToken  string    `json:"fcm_token"`
	DeviceID  string    `json:"device_id"` // Client-side identifier, stable across token rotations.
	Platform  string    `json:"platform"`  // One of ios, android, web.
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
