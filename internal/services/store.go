package services

import (
	"time"

	"github.com/amolwaghmare05/trackify/internal/models"
)

// ItemState captures the fields of a tracked item that completion writes are
// guarded on. A guarded update only succeeds when the row still matches the
// state read at the start of the transaction.
type ItemState struct {
	Completed bool
	Streak    int
}

// EngineStore is the transactional read/write surface the completion
// coordinator and the goal lifecycle manager run against. Update methods
// return false when the guarded row changed since it was read, which aborts
// the surrounding transaction for a retry with fresh reads.
type EngineStore interface {
	FindTrackedItem(userID uint, itemID string) (models.TrackedItem, bool, error)
	UpdateTrackedItemState(item *models.TrackedItem, prior ItemState) (bool, error)
	DeleteTrackedItem(userID uint, itemID string) error
	ListGoalItems(userID uint, goalID string) ([]models.TrackedItem, error)
	DeleteGoalItems(userID uint, goalID string) error
	CountTrackedItems(userID uint, kind string) (completed int, total int, err error)

	FindGoal(userID uint, goalID string) (models.Goal, bool, error)
	UpdateGoalCounters(goal *models.Goal, priorCompletedDays int) (bool, error)
	UpdateGoalDefinition(goal *models.Goal, priorCompletedDays int) (bool, error)
	DeleteGoal(userID uint, goalID string) error
	CreateCompletedGoal(record *models.CompletedGoal) error

	UserXP(userID uint) (int, error)
	UpdateUserXP(userID uint, newXP int, priorXP int) (bool, error)

	FindTodayTask(userID uint, taskID string) (models.TodayTask, bool, error)
	UpdateTodayTaskCompleted(task *models.TodayTask, priorCompleted bool) (bool, error)
	DeleteTodayTask(userID uint, taskID string) error
	CountTodayTasks(userID uint, dayStart time.Time, dayEnd time.Time) (completed int, total int, err error)

	UpsertSnapshot(userID uint, kind string, day time.Time, completed int, total int) (models.HistorySnapshot, error)
}

// EngineTx runs fn inside one atomic transaction; every store call within fn
// commits together or not at all.
type EngineTx interface {
	InTransaction(fn func(store EngineStore) error) error
}
