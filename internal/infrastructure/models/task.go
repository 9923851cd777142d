package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Task struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	TaskID      string    `gorm:"type:varchar(100);uniqueIndex;not null"`
	Title       string    `gorm:"type:varchar(255);not null"`
	Reward      float64   `gorm:"not null"`
	Frequency   string    `gorm:"type:varchar(50)"`
	Description string    `gorm:"type:text"`
	Link        string    `gorm:"type:varchar(512)"`
	ImageURL    string    `gorm:"type:varchar(512)"`
	IsActive    bool      `gorm:"not null;default:true"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   gorm.DeletedAt `gorm:"index"`
}
