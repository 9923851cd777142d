package models

import "time"

type Setting struct {
	Key       string `gorm:"type:varchar(100);primaryKey"`
	Value     string `gorm:"type:text;not null"`
	UpdatedAt time.Time
}
