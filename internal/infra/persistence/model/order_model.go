package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderModel mirrors the 'orders' table.
type OrderModel struct {
	ID                 uuid.UUID       `gorm:"type:uuid;primary_key"`
	OwnerID            uuid.UUID       `gorm:"type:uuid;not null;index"`
	CartID             uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex"`
	Status             string          `gorm:"type:varchar(20);not null;index"`
	Total              decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Paid               bool            `gorm:"not null;default:false"`
	PaidAt             *time.Time
	Description        string            `gorm:"type:text"`
	ReferenceImage1Key string            `gorm:"column:reference_image_1_key;type:varchar(255)"`
	ReferenceImage2Key string            `gorm:"column:reference_image_2_key;type:varchar(255)"`
	ReceiptDate        *time.Time        `gorm:"type:date"`
	Items              []*OrderItemModel `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	CreatedAt          time.Time         `gorm:"index"`
	UpdatedAt          time.Time
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}

// OrderItemModel mirrors the 'order_items' table. Rows are written once at checkout.
type OrderItemModel struct {
	ID          uuid.UUID       `gorm:"type:uuid;primary_key"`
	OrderID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	CartItemID  uuid.UUID       `gorm:"type:uuid;not null"`
	ProductID   uuid.UUID       `gorm:"type:uuid;not null"`
	ProductName string          `gorm:"type:varchar(200);not null"`
	UnitPrice   decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Quantity    int             `gorm:"not null"`
	Subtotal    decimal.Decimal `gorm:"type:numeric(12,2);not null"`
}

// TableName explicitly sets the table name for GORM.
func (OrderItemModel) TableName() string {
	return "order_items"
}
