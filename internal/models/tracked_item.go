package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	KindGoalTask = "goal_task"
	KindWorkout  = "workout"
	KindToday    = "today"
)

// TrackedItem is a recurring checklist entry: a daily task bound to a goal,
// or a standalone workout. Streak counts consecutive completion days and may
// change at most once per calendar day.
type TrackedItem struct {
	ID              string  `gorm:"type:text;primaryKey"`
	UserID          uint    `gorm:"not null;index:idx_tracked_items_user_kind"`
	GoalID          *string `gorm:"index"`
	Kind            string  `gorm:"not null;index:idx_tracked_items_user_kind"`
	Title           string  `gorm:"not null"`
	Completed       bool    `gorm:"not null;default:false"`
	Streak          int     `gorm:"not null;default:0"`
	LastCompletedAt *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func (item *TrackedItem) BeforeCreate(tx *gorm.DB) error {
	if item.ID == "" {
		item.ID = uuid.NewString()
	}
	return nil
}

func IsTrackableKind(kind string) bool {
	return kind == KindGoalTask || kind == KindWorkout
}
