// Package model holds the GORM persistence structs. They mirror the tables one to one
// and never leave the persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table.
type UserModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key"`
	Username  string    `gorm:"type:varchar(150);uniqueIndex;not null"`
	Email     string    `gorm:"type:varchar(255)"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Authentications []AuthenticationModel `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	RefreshTokens   []RefreshTokenModel   `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

// CustomerStatsRow is the scan target of the per-customer admin report.
type CustomerStatsRow struct {
	UserID       uuid.UUID
	Username     string
	Email        string
	OrderCount   int64
	ReviewCount  int64
	AverageStars float64
}
