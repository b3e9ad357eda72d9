package model

import (
	"time"

	"github.com/google/uuid"
)

// ReviewModel mirrors the 'reviews' table.
type ReviewModel struct {
	ID         uuid.UUID     `gorm:"type:uuid;primary_key"`
	ProductID  uuid.UUID     `gorm:"type:uuid;not null;uniqueIndex:idx_reviews_product_customer"`
	Product    *ProductModel `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
	CustomerID uuid.UUID     `gorm:"type:uuid;not null;uniqueIndex:idx_reviews_product_customer"`
	Customer   *UserModel    `gorm:"foreignKey:CustomerID;constraint:OnDelete:CASCADE"`
	Stars      int           `gorm:"not null;check:stars BETWEEN 1 AND 5"`
	Comment    string        `gorm:"type:text"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (ReviewModel) TableName() string {
	return "reviews"
}

// RatingSummaryRow is the scan target of the rating aggregate.
type RatingSummaryRow struct {
	Average float64
	Count   int64
}
