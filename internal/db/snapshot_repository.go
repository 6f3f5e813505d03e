package db

import (
	"time"

	"github.com/amolwaghmare05/trackify/internal/models"
	"gorm.io/gorm"
)

type SnapshotRepository struct {
	database *gorm.DB
}

func NewSnapshotRepository(database *gorm.DB) *SnapshotRepository {
	return &SnapshotRepository{database: database}
}

func (repo *SnapshotRepository) ListByUserAndKind(userID uint, kind string) ([]models.HistorySnapshot, error) {
	snapshots := make([]models.HistorySnapshot, 0)
	if err := repo.database.
		Where("user_id = ? AND kind = ?", userID, kind).
		Order("date ASC, id ASC").
		Find(&snapshots).Error; err != nil {
		return nil, err
	}
	return snapshots, nil
}

func (repo *SnapshotRepository) ListByUserKindRange(userID uint, kind string, fromStart time.Time, toEnd time.Time) ([]models.HistorySnapshot, error) {
	snapshots := make([]models.HistorySnapshot, 0)
	if err := repo.database.
		Where("user_id = ? AND kind = ? AND date >= ? AND date < ?", userID, kind, fromStart, toEnd).
		Order("date ASC, id ASC").
		Find(&snapshots).Error; err != nil {
		return nil, err
	}
	return snapshots, nil
}

func (repo *SnapshotRepository) SumCompletedByKind(userID uint, kind string) (int, error) {
	var total int64
	if err := repo.database.Model(&models.HistorySnapshot{}).
		Where("user_id = ? AND kind = ?", userID, kind).
		Select("COALESCE(SUM(completed), 0)").
		Scan(&total).Error; err != nil {
		return 0, err
	}
	return int(total), nil
}
