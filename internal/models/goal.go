package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Goal is a long-term target measured in completed days. Progress is derived
// from CompletedDays/TargetDays and is never set directly.
type Goal struct {
	ID            string `gorm:"type:text;primaryKey"`
	UserID        uint   `gorm:"not null;index"`
	Title         string `gorm:"not null"`
	TargetDays    int    `gorm:"not null"`
	CompletedDays int    `gorm:"not null;default:0"`
	Progress      int    `gorm:"not null;default:0"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (goal *Goal) BeforeCreate(tx *gorm.DB) error {
	if goal.ID == "" {
		goal.ID = uuid.NewString()
	}
	return nil
}
