package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CategoryModel mirrors the 'categories' table.
type CategoryModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key"`
	Name        string    `gorm:"type:varchar(100);uniqueIndex;not null"`
	Description string    `gorm:"type:text"`
	CreatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (CategoryModel) TableName() string {
	return "categories"
}

// ProductModel mirrors the 'products' table. Deleting a category leaves its products uncategorised.
type ProductModel struct {
	ID          uuid.UUID       `gorm:"type:uuid;primary_key"`
	CategoryID  *uuid.UUID      `gorm:"type:uuid;index"`
	Category    *CategoryModel  `gorm:"foreignKey:CategoryID;constraint:OnDelete:SET NULL"`
	Name        string          `gorm:"type:varchar(200);not null"`
	Description string          `gorm:"type:text"`
	Price       decimal.Decimal `gorm:"type:numeric(12,2);not null;check:price >= 0"`
	Available   bool            `gorm:"not null;default:true"`
	ImageKey    string          `gorm:"type:varchar(255)"`
	CreatedAt   time.Time       `gorm:"index"`
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}
