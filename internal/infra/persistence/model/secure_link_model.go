package model

import (
	"time"

	"github.com/google/uuid"
)

// SecureLinkModel mirrors the 'secure_links' table. order_id is unique when set,
// which backs the one-link-per-order rule.
type SecureLinkModel struct {
	ID        uuid.UUID   `gorm:"type:uuid;primary_key"`
	OrderID   *uuid.UUID  `gorm:"type:uuid;uniqueIndex"`
	Order     *OrderModel `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	Token     string      `gorm:"type:varchar(64);uniqueIndex;not null"`
	CreatedAt time.Time
	ExpiresAt *time.Time
}

// TableName explicitly sets the table name for GORM.
func (SecureLinkModel) TableName() string {
	return "secure_links"
}
