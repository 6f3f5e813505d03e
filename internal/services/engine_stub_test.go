package services

import (
	"fmt"
	"time"

	"github.com/amolwaghmare05/trackify/internal/models"
)

// memoryEngine backs the completion and goal service tests with plain maps.
// It applies every write immediately; conflict paths are exercised through
// the fail* switches rather than real concurrent writers.
type memoryEngine struct {
	users          map[uint]*models.User
	items          map[string]*models.TrackedItem
	goals          map[string]*models.Goal
	todayTasks     map[string]*models.TodayTask
	completedGoals []models.CompletedGoal
	snapshots      map[string]models.HistorySnapshot

	failItemWrites bool

	// afterFindGoal runs after FindGoal returns its copy, letting a test
	// commit a competing write between a read and the guarded update that
	// depends on it.
	afterFindGoal func()
}

func newMemoryEngine() *memoryEngine {
	return &memoryEngine{
		users:      make(map[uint]*models.User),
		items:      make(map[string]*models.TrackedItem),
		goals:      make(map[string]*models.Goal),
		todayTasks: make(map[string]*models.TodayTask),
		snapshots:  make(map[string]models.HistorySnapshot),
	}
}

func (engine *memoryEngine) InTransaction(fn func(store EngineStore) error) error {
	return fn(engine)
}

func (engine *memoryEngine) addUser(userID uint, xp int) {
	engine.users[userID] = &models.User{ID: userID, XP: xp}
}

func (engine *memoryEngine) addItem(item models.TrackedItem) {
	copied := item
	engine.items[item.ID] = &copied
}

func (engine *memoryEngine) addGoal(goal models.Goal) {
	copied := goal
	engine.goals[goal.ID] = &copied
}

func (engine *memoryEngine) addTodayTask(task models.TodayTask) {
	copied := task
	engine.todayTasks[task.ID] = &copied
}

func snapshotKey(userID uint, kind string, day time.Time) string {
	return fmt.Sprintf("%d|%s|%s", userID, kind, day.Format("2006-01-02"))
}

func (engine *memoryEngine) FindTrackedItem(userID uint, itemID string) (models.TrackedItem, bool, error) {
	item, found := engine.items[itemID]
	if !found || item.UserID != userID {
		return models.TrackedItem{}, false, nil
	}
	return *item, true, nil
}

func (engine *memoryEngine) UpdateTrackedItemState(item *models.TrackedItem, prior ItemState) (bool, error) {
	if engine.failItemWrites {
		return false, nil
	}
	stored, found := engine.items[item.ID]
	if !found || stored.Completed != prior.Completed || stored.Streak != prior.Streak {
		return false, nil
	}
	stored.Completed = item.Completed
	stored.Streak = item.Streak
	stored.LastCompletedAt = item.LastCompletedAt
	return true, nil
}

func (engine *memoryEngine) DeleteTrackedItem(userID uint, itemID string) error {
	delete(engine.items, itemID)
	return nil
}

func (engine *memoryEngine) ListGoalItems(userID uint, goalID string) ([]models.TrackedItem, error) {
	items := make([]models.TrackedItem, 0)
	for _, item := range engine.items {
		if item.UserID == userID && item.GoalID != nil && *item.GoalID == goalID {
			items = append(items, *item)
		}
	}
	return items, nil
}

func (engine *memoryEngine) DeleteGoalItems(userID uint, goalID string) error {
	for id, item := range engine.items {
		if item.UserID == userID && item.GoalID != nil && *item.GoalID == goalID {
			delete(engine.items, id)
		}
	}
	return nil
}

func (engine *memoryEngine) CountTrackedItems(userID uint, kind string) (int, int, error) {
	completed, total := 0, 0
	for _, item := range engine.items {
		if item.UserID != userID || item.Kind != kind {
			continue
		}
		total++
		if item.Completed {
			completed++
		}
	}
	return completed, total, nil
}

func (engine *memoryEngine) FindGoal(userID uint, goalID string) (models.Goal, bool, error) {
	goal, found := engine.goals[goalID]
	if !found || goal.UserID != userID {
		return models.Goal{}, false, nil
	}
	copied := *goal
	if engine.afterFindGoal != nil {
		engine.afterFindGoal()
	}
	return copied, true, nil
}

func (engine *memoryEngine) UpdateGoalCounters(goal *models.Goal, priorCompletedDays int) (bool, error) {
	stored, found := engine.goals[goal.ID]
	if !found || stored.CompletedDays != priorCompletedDays {
		return false, nil
	}
	stored.CompletedDays = goal.CompletedDays
	stored.Progress = goal.Progress
	return true, nil
}

func (engine *memoryEngine) UpdateGoalDefinition(goal *models.Goal, priorCompletedDays int) (bool, error) {
	stored, found := engine.goals[goal.ID]
	if !found || stored.CompletedDays != priorCompletedDays {
		return false, nil
	}
	stored.Title = goal.Title
	stored.TargetDays = goal.TargetDays
	stored.Progress = goal.Progress
	return true, nil
}

func (engine *memoryEngine) DeleteGoal(userID uint, goalID string) error {
	delete(engine.goals, goalID)
	return nil
}

func (engine *memoryEngine) CreateCompletedGoal(record *models.CompletedGoal) error {
	for _, existing := range engine.completedGoals {
		if existing.GoalID == record.GoalID {
			return fmt.Errorf("duplicate completed goal %s", record.GoalID)
		}
	}
	engine.completedGoals = append(engine.completedGoals, *record)
	return nil
}

func (engine *memoryEngine) UserXP(userID uint) (int, error) {
	user, found := engine.users[userID]
	if !found {
		return 0, fmt.Errorf("user %d not found", userID)
	}
	return user.XP, nil
}

func (engine *memoryEngine) UpdateUserXP(userID uint, newXP int, priorXP int) (bool, error) {
	user, found := engine.users[userID]
	if !found || user.XP != priorXP {
		return false, nil
	}
	user.XP = newXP
	return true, nil
}

func (engine *memoryEngine) FindTodayTask(userID uint, taskID string) (models.TodayTask, bool, error) {
	task, found := engine.todayTasks[taskID]
	if !found || task.UserID != userID {
		return models.TodayTask{}, false, nil
	}
	return *task, true, nil
}

func (engine *memoryEngine) UpdateTodayTaskCompleted(task *models.TodayTask, priorCompleted bool) (bool, error) {
	stored, found := engine.todayTasks[task.ID]
	if !found || stored.Completed != priorCompleted {
		return false, nil
	}
	stored.Completed = task.Completed
	return true, nil
}

func (engine *memoryEngine) DeleteTodayTask(userID uint, taskID string) error {
	delete(engine.todayTasks, taskID)
	return nil
}

func (engine *memoryEngine) CountTodayTasks(userID uint, dayStart time.Time, dayEnd time.Time) (int, int, error) {
	completed, total := 0, 0
	for _, task := range engine.todayTasks {
		if task.UserID != userID {
			continue
		}
		if task.CreatedAt.Before(dayStart) || !task.CreatedAt.Before(dayEnd) {
			continue
		}
		total++
		if task.Completed {
			completed++
		}
	}
	return completed, total, nil
}

func (engine *memoryEngine) UpsertSnapshot(userID uint, kind string, day time.Time, completed int, total int) (models.HistorySnapshot, error) {
	key := snapshotKey(userID, kind, day)
	snapshot, found := engine.snapshots[key]
	if !found {
		snapshot = models.HistorySnapshot{UserID: userID, Kind: kind, Date: day}
	}
	snapshot.Completed = completed
	snapshot.Total = total
	engine.snapshots[key] = snapshot
	return snapshot, nil
}

func (engine *memoryEngine) snapshotFor(userID uint, kind string, day time.Time) (models.HistorySnapshot, bool) {
	snapshot, found := engine.snapshots[snapshotKey(userID, kind, day)]
	return snapshot, found
}
