package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CompletedGoal is the immutable archive record written when a goal reaches
// 100% progress. Exactly one record exists per archived goal.
type CompletedGoal struct {
	ID                string    `gorm:"type:text;primaryKey"`
	UserID            uint      `gorm:"not null;index:idx_completed_goals_user"`
	GoalID            string    `gorm:"not null;uniqueIndex"`
	Title             string    `gorm:"not null"`
	TargetDays        int       `gorm:"not null"`
	CompletedAt       time.Time `gorm:"not null;index:idx_completed_goals_user"`
	OriginalCreatedAt time.Time `gorm:"not null"`
}

func (record *CompletedGoal) BeforeCreate(tx *gorm.DB) error {
	if record.ID == "" {
		record.ID = uuid.NewString()
	}
	return nil
}
