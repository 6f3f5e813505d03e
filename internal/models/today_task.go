package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TodayTask is a miscellaneous one-off for the current day. It carries no
// streak and earns a reduced XP rate.
type TodayTask struct {
	ID        string    `gorm:"type:text;primaryKey"`
	UserID    uint      `gorm:"not null;index:idx_today_tasks_user_created"`
	Title     string    `gorm:"not null"`
	Completed bool      `gorm:"not null;default:false"`
	IsPrimary bool      `gorm:"not null;default:false"`
	CreatedAt time.Time `gorm:"not null;index:idx_today_tasks_user_created"`
}

func (task *TodayTask) BeforeCreate(tx *gorm.DB) error {
	if task.ID == "" {
		task.ID = uuid.NewString()
	}
	return nil
}
