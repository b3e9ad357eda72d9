package entity

import "github.com/google/uuid"

// DashboardStats is the admin landing page summary.
type DashboardStats struct {
	Products      int64    `json:"products"`
	Orders        int64    `json:"orders"`
	Customers     int64    `json:"customers"`
	PendingProofs int64    `json:"pending_proofs"`
	Reviews       int64    `json:"reviews"`
	RecentOrders  []*Order `json:"recent_orders"`
}

// CustomerStats summarises one customer's activity for the admin.
type CustomerStats struct {
	UserID       uuid.UUID `json:"user_id"`
	Username     string    `json:"username"`
	Email        string    `json:"email,omitempty"`
	OrderCount   int64     `json:"order_count"`
	ReviewCount  int64     `json:"review_count"`
	AverageStars float64   `json:"average_stars"`
}
