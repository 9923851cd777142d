package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Withdrawal struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	UserID        uuid.UUID `gorm:"type:uuid;not null;index"`
	Bank          string    `gorm:"type:varchar(100);not null"`
	AccountName   string    `gorm:"type:varchar(100);not null"`
	AccountNumber string    `gorm:"type:varchar(50);not null"`
	Amount        float64   `gorm:"not null"`
	ReceiptID     string    `gorm:"type:varchar(32);not null"`
	Status        string    `gorm:"type:varchar(20);not null;default:'pending';index"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
	DeletedAt     gorm.DeletedAt `gorm:"index"`
}
