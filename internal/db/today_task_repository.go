package db

import (
	"time"

	"github.com/amolwaghmare05/trackify/internal/models"
	"gorm.io/gorm"
)

type TodayTaskRepository struct {
	database *gorm.DB
}

func NewTodayTaskRepository(database *gorm.DB) *TodayTaskRepository {
	return &TodayTaskRepository{database: database}
}

func (repo *TodayTaskRepository) ListForDay(userID uint, dayStart time.Time, dayEnd time.Time) ([]models.TodayTask, error) {
	tasks := make([]models.TodayTask, 0)
	if err := repo.database.
		Where("user_id = ? AND created_at >= ? AND created_at < ?", userID, dayStart, dayEnd).
		Order("is_primary DESC, created_at DESC, id DESC").
		Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

func (repo *TodayTaskRepository) FindByID(userID uint, taskID string) (models.TodayTask, bool, error) {
	var task models.TodayTask
	result := repo.database.
		Where("user_id = ? AND id = ?", userID, taskID).
		Limit(1).
		Find(&task)
	if result.Error != nil {
		return models.TodayTask{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.TodayTask{}, false, nil
	}
	return task, true, nil
}

func (repo *TodayTaskRepository) Create(task *models.TodayTask) error {
	return repo.database.Create(task).Error
}

func (repo *TodayTaskRepository) UpdatePrimary(userID uint, taskID string, isPrimary bool) error {
	return repo.database.Model(&models.TodayTask{}).
		Where("user_id = ? AND id = ?", userID, taskID).
		Update("is_primary", isPrimary).Error
}
