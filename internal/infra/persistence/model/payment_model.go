package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentProofModel mirrors the 'payment_proofs' table.
type PaymentProofModel struct {
	ID              uuid.UUID       `gorm:"type:uuid;primary_key"`
	OrderID         uuid.UUID       `gorm:"type:uuid;not null;index"`
	Order           *OrderModel     `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	OwnerID         uuid.UUID       `gorm:"type:uuid;not null;index"`
	Method          string          `gorm:"type:varchar(20);not null"`
	ReferenceNumber string          `gorm:"type:varchar(100);not null"`
	Amount          decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	EvidenceKey     string          `gorm:"type:varchar(255);not null"`
	Notes           string          `gorm:"type:text"`
	Status          string          `gorm:"type:varchar(20);not null;index"`
	ProcessedBy     *uuid.UUID      `gorm:"type:uuid"`
	ProcessedAt     *time.Time
	RejectionReason string    `gorm:"type:text"`
	CreatedAt       time.Time `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (PaymentProofModel) TableName() string {
	return "payment_proofs"
}
