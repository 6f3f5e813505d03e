package db

import (
	"github.com/amolwaghmare05/trackify/internal/models"
	"gorm.io/gorm"
)

type CompletedGoalRepository struct {
	database *gorm.DB
}

func NewCompletedGoalRepository(database *gorm.DB) *CompletedGoalRepository {
	return &CompletedGoalRepository{database: database}
}

func (repo *CompletedGoalRepository) ListByUser(userID uint) ([]models.CompletedGoal, error) {
	records := make([]models.CompletedGoal, 0)
	if err := repo.database.
		Where("user_id = ?", userID).
		Order("completed_at DESC, id DESC").
		Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (repo *CompletedGoalRepository) CountByUser(userID uint) (int, error) {
	var count int64
	if err := repo.database.Model(&models.CompletedGoal{}).
		Where("user_id = ?", userID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return int(count), nil
}
