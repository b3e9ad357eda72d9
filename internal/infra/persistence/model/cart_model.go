package model

import (
	"time"

	"github.com/google/uuid"
)

// CartModel mirrors the 'carts' table. A partial unique index keeps one open cart per owner.
type CartModel struct {
	ID        uuid.UUID        `gorm:"type:uuid;primary_key"`
	OwnerID   uuid.UUID        `gorm:"type:uuid;not null;index"`
	Ordered   bool             `gorm:"not null;default:false"`
	Items     []*CartItemModel `gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (CartModel) TableName() string {
	return "carts"
}

// CartItemModel mirrors the 'cart_items' table.
type CartItemModel struct {
	ID        uuid.UUID     `gorm:"type:uuid;primary_key"`
	CartID    uuid.UUID     `gorm:"type:uuid;not null;uniqueIndex:idx_cart_items_cart_product"`
	ProductID uuid.UUID     `gorm:"type:uuid;not null;uniqueIndex:idx_cart_items_cart_product"`
	Product   *ProductModel `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
	Quantity  int           `gorm:"not null;check:quantity >= 1"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (CartItemModel) TableName() string {
	return "cart_items"
}
