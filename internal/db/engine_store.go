package db

import (
	"time"

	"github.com/amolwaghmare05/trackify/internal/models"
	"github.com/amolwaghmare05/trackify/internal/services"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Engine adapts gorm to the transactional store the services layer writes
// through. Every mutation of shared counters is a guarded UPDATE whose WHERE
// clause pins the value the caller read; zero rows affected means another
// writer got there first and the caller retries.
type Engine struct {
	database *gorm.DB
}

func NewEngine(database *gorm.DB) *Engine {
	return &Engine{database: database}
}

func (engine *Engine) InTransaction(fn func(store services.EngineStore) error) error {
	return engine.database.Transaction(func(tx *gorm.DB) error {
		return fn(&engineStore{tx: tx})
	})
}

type engineStore struct {
	tx *gorm.DB
}

func (store *engineStore) FindTrackedItem(userID uint, itemID string) (models.TrackedItem, bool, error) {
	var item models.TrackedItem
	result := store.tx.Where("user_id = ? AND id = ?", userID, itemID).Limit(1).Find(&item)
	if result.Error != nil {
		return models.TrackedItem{}, false, result.Error
	}
	return item, result.RowsAffected > 0, nil
}

func (store *engineStore) UpdateTrackedItemState(item *models.TrackedItem, prior services.ItemState) (bool, error) {
	result := store.tx.Model(&models.TrackedItem{}).
		Where("id = ? AND user_id = ? AND completed = ? AND streak = ?",
			item.ID, item.UserID, prior.Completed, prior.Streak).
		Updates(map[string]any{
			"completed":         item.Completed,
			"streak":            item.Streak,
			"last_completed_at": item.LastCompletedAt,
			"updated_at":        time.Now(),
		})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (store *engineStore) DeleteTrackedItem(userID uint, itemID string) error {
	return store.tx.Where("user_id = ? AND id = ?", userID, itemID).Delete(&models.TrackedItem{}).Error
}

func (store *engineStore) ListGoalItems(userID uint, goalID string) ([]models.TrackedItem, error) {
	var items []models.TrackedItem
	err := store.tx.Where("user_id = ? AND goal_id = ?", userID, goalID).Find(&items).Error
	return items, err
}

func (store *engineStore) DeleteGoalItems(userID uint, goalID string) error {
	return store.tx.Where("user_id = ? AND goal_id = ?", userID, goalID).Delete(&models.TrackedItem{}).Error
}

func (store *engineStore) CountTrackedItems(userID uint, kind string) (int, int, error) {
	var total int64
	if err := store.tx.Model(&models.TrackedItem{}).
		Where("user_id = ? AND kind = ?", userID, kind).
		Count(&total).Error; err != nil {
		return 0, 0, err
	}
	var completed int64
	if err := store.tx.Model(&models.TrackedItem{}).
		Where("user_id = ? AND kind = ? AND completed = ?", userID, kind, true).
		Count(&completed).Error; err != nil {
		return 0, 0, err
	}
	return int(completed), int(total), nil
}

func (store *engineStore) FindGoal(userID uint, goalID string) (models.Goal, bool, error) {
	var goal models.Goal
	result := store.tx.Where("user_id = ? AND id = ?", userID, goalID).Limit(1).Find(&goal)
	if result.Error != nil {
		return models.Goal{}, false, result.Error
	}
	return goal, result.RowsAffected > 0, nil
}

func (store *engineStore) UpdateGoalCounters(goal *models.Goal, priorCompletedDays int) (bool, error) {
	result := store.tx.Model(&models.Goal{}).
		Where("id = ? AND user_id = ? AND completed_days = ?", goal.ID, goal.UserID, priorCompletedDays).
		Updates(map[string]any{
			"completed_days": goal.CompletedDays,
			"progress":       goal.Progress,
			"updated_at":     time.Now(),
		})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (store *engineStore) UpdateGoalDefinition(goal *models.Goal, priorCompletedDays int) (bool, error) {
	result := store.tx.Model(&models.Goal{}).
		Where("id = ? AND user_id = ? AND completed_days = ?", goal.ID, goal.UserID, priorCompletedDays).
		Updates(map[string]any{
			"title":       goal.Title,
			"target_days": goal.TargetDays,
			"progress":    goal.Progress,
			"updated_at":  time.Now(),
		})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (store *engineStore) DeleteGoal(userID uint, goalID string) error {
	return store.tx.Where("user_id = ? AND id = ?", userID, goalID).Delete(&models.Goal{}).Error
}

func (store *engineStore) CreateCompletedGoal(record *models.CompletedGoal) error {
	return store.tx.Create(record).Error
}

func (store *engineStore) UserXP(userID uint) (int, error) {
	var user models.User
	if err := store.tx.Select("xp").First(&user, userID).Error; err != nil {
		return 0, err
	}
	return user.XP, nil
}

func (store *engineStore) UpdateUserXP(userID uint, newXP int, priorXP int) (bool, error) {
	result := store.tx.Model(&models.User{}).
		Where("id = ? AND xp = ?", userID, priorXP).
		Update("xp", newXP)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (store *engineStore) FindTodayTask(userID uint, taskID string) (models.TodayTask, bool, error) {
	var task models.TodayTask
	result := store.tx.Where("user_id = ? AND id = ?", userID, taskID).Limit(1).Find(&task)
	if result.Error != nil {
		return models.TodayTask{}, false, result.Error
	}
	return task, result.RowsAffected > 0, nil
}

func (store *engineStore) UpdateTodayTaskCompleted(task *models.TodayTask, priorCompleted bool) (bool, error) {
	result := store.tx.Model(&models.TodayTask{}).
		Where("id = ? AND user_id = ? AND completed = ?", task.ID, task.UserID, priorCompleted).
		Update("completed", task.Completed)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (store *engineStore) DeleteTodayTask(userID uint, taskID string) error {
	return store.tx.Where("user_id = ? AND id = ?", userID, taskID).Delete(&models.TodayTask{}).Error
}

func (store *engineStore) CountTodayTasks(userID uint, dayStart time.Time, dayEnd time.Time) (int, int, error) {
	var total int64
	if err := store.tx.Model(&models.TodayTask{}).
		Where("user_id = ? AND created_at >= ? AND created_at < ?", userID, dayStart, dayEnd).
		Count(&total).Error; err != nil {
		return 0, 0, err
	}
	var completed int64
	if err := store.tx.Model(&models.TodayTask{}).
		Where("user_id = ? AND created_at >= ? AND created_at < ? AND completed = ?", userID, dayStart, dayEnd, true).
		Count(&completed).Error; err != nil {
		return 0, 0, err
	}
	return int(completed), int(total), nil
}

func (store *engineStore) UpsertSnapshot(userID uint, kind string, day time.Time, completed int, total int) (models.HistorySnapshot, error) {
	snapshot := models.HistorySnapshot{
		UserID:    userID,
		Kind:      kind,
		Date:      day,
		Completed: completed,
		Total:     total,
	}
	err := store.tx.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "kind"}, {Name: "date"}},
		DoUpdates: clause.Assignments(map[string]any{
			"completed":  completed,
			"total":      total,
			"updated_at": time.Now(),
		}),
	}).Create(&snapshot).Error
	if err != nil {
		return models.HistorySnapshot{}, err
	}
	return snapshot, nil
}
