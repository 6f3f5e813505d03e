package db

import (
	"github.com/amolwaghmare05/trackify/internal/models"
	"gorm.io/gorm"
)

type ItemRepository struct {
	database *gorm.DB
}

func NewItemRepository(database *gorm.DB) *ItemRepository {
	return &ItemRepository{database: database}
}

func (repo *ItemRepository) ListByUserAndKind(userID uint, kind string) ([]models.TrackedItem, error) {
	items := make([]models.TrackedItem, 0)
	if err := repo.database.
		Where("user_id = ? AND kind = ?", userID, kind).
		Order("created_at ASC, id ASC").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (repo *ItemRepository) Create(item *models.TrackedItem) error {
	return repo.database.Create(item).Error
}
