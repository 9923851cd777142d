package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID                 uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	FullName           string    `gorm:"type:varchar(100);not null"`
	Email              string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash       string    `gorm:"type:varchar(255)"`
	GoogleID           *string   `gorm:"type:varchar(255);index"`
	ProfilePicture     string    `gorm:"type:varchar(512)"`
	Role               string    `gorm:"type:varchar(50);not null;default:'USER'"`
	ReferralCode       string    `gorm:"type:varchar(16);uniqueIndex;not null"`
	ReferredByCode     *string   `gorm:"type:varchar(16)"`
	Balance            float64   `gorm:"not null;default:0"`
	FreezeBalance      float64   `gorm:"not null;default:0"`
	ReferralBalance    float64   `gorm:"not null;default:0"`
	ReferralBonusTotal float64   `gorm:"not null;default:0"`
	KYCStatus          string    `gorm:"type:varchar(20);not null;default:'pending';index"`
	KYCFullName        string    `gorm:"type:varchar(100)"`
	KYCIDType          string    `gorm:"type:varchar(50)"`
	KYCIDNumber        string    `gorm:"type:varchar(100)"`
	KYCIDDocument      string    `gorm:"type:varchar(512)"`
	KYCSubmittedAt     *time.Time
	IsBlocked          bool    `gorm:"not null;default:false"`
	TodayDate          string  `gorm:"type:varchar(10);index"`
	TodaysProfit       float64 `gorm:"not null;default:0"`
	TotalProfit        float64 `gorm:"not null;default:0"`
	TaskCount          int     `gorm:"not null;default:0"`
	CompletedTasks     string  `gorm:"type:text"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
	DeletedAt          gorm.DeletedAt `gorm:"index"`
}
