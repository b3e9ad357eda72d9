package model

import (
	"time"

	"github.com/google/uuid"
)

// ComplaintModel mirrors the 'complaints' table.
type ComplaintModel struct {
	ID          uuid.UUID  `gorm:"type:uuid;primary_key"`
	CustomerID  uuid.UUID  `gorm:"type:uuid;not null;index"`
	Subject     string     `gorm:"type:varchar(200);not null"`
	Message     string     `gorm:"type:text;not null"`
	Status      string     `gorm:"type:varchar(20);not null;index"`
	Response    string     `gorm:"type:text"`
	RespondedBy *uuid.UUID `gorm:"type:uuid"`
	RespondedAt *time.Time
	CreatedAt   time.Time `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (ComplaintModel) TableName() string {
	return "complaints"
}
