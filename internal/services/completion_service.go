package services

import (
	"errors"
	"log"
	"math"
	"time"

	"github.com/amolwaghmare05/trackify/internal/models"
)

// Base XP rates per completion. Goal archival awards a one-time bonus.
const (
	XPPerGoalTask    = 5
	XPPerWorkout     = 10
	XPPerTodayTask   = 2
	XPPerGoalArchive = 50
)

const maxWriteAttempts = 3

var (
	ErrItemNotFound      = errors.New("tracked item not found")
	ErrTodayTaskNotFound = errors.New("today task not found")
	ErrConcurrentUpdate  = errors.New("concurrent update, retries exhausted")

	errWriteConflict = errors.New("optimistic write conflict")
)

// GoalArchiver is the post-commit hook the coordinator invokes when a toggle
// pushes a goal's progress to 100.
type GoalArchiver interface {
	MaybeArchive(userID uint, goalID string, now time.Time) (bool, error)
}

type ToggleResult struct {
	Item         models.TrackedItem
	XPDelta      int
	XP           int
	Goal         *models.Goal
	Snapshot     models.HistorySnapshot
	GoalArchived bool
}

type TodayToggleResult struct {
	Task     models.TodayTask
	XPDelta  int
	XP       int
	Snapshot models.HistorySnapshot
}

type DeleteItemResult struct {
	XPDelta  int
	Goal     *models.Goal
	Snapshot models.HistorySnapshot
}

// CompletionService is the sole writer of item, goal counter, XP and
// snapshot state. Every mutation runs as one transaction with guarded
// writes; a guard miss aborts the transaction and the whole operation is
// retried from fresh reads, up to maxWriteAttempts.
type CompletionService struct {
	store    EngineTx
	location *time.Location
	archiver GoalArchiver
}

func NewCompletionService(store EngineTx, location *time.Location, archiver GoalArchiver) *CompletionService {
	if location == nil {
		location = time.UTC
	}
	return &CompletionService{
		store:    store,
		location: location,
		archiver: archiver,
	}
}

func xpForKind(kind string) int {
	switch kind {
	case models.KindWorkout:
		return XPPerWorkout
	case models.KindToday:
		return XPPerTodayTask
	default:
		return XPPerGoalTask
	}
}

// ProgressPercent derives goal progress from counted days, capped at 100.
func ProgressPercent(completedDays int, targetDays int) int {
	if targetDays <= 0 {
		return 0
	}
	percent := int(math.Round(float64(completedDays) / float64(targetDays) * 100))
	if percent > 100 {
		percent = 100
	}
	if percent < 0 {
		percent = 0
	}
	return percent
}

// ToggleItem flips a tracked item's completion state, adjusting streak, XP,
// the owning goal's counters and today's snapshot atomically. Toggling to
// the state the item is already in commits with zero deltas.
func (service *CompletionService) ToggleItem(userID uint, itemID string, completed bool, now time.Time) (ToggleResult, error) {
	for attempt := 0; attempt < maxWriteAttempts; attempt++ {
		result, err := service.toggleItemOnce(userID, itemID, completed, now)
		if errors.Is(err, errWriteConflict) {
			continue
		}
		if err != nil {
			return ToggleResult{}, err
		}

		if result.Goal != nil && result.Goal.Progress >= 100 && service.archiver != nil {
			archived, archiveErr := service.archiver.MaybeArchive(userID, result.Goal.ID, now)
			if archiveErr != nil {
				log.Printf("goal archival failed for %s: %v", result.Goal.ID, archiveErr)
			}
			result.GoalArchived = archived
		}
		return result, nil
	}
	return ToggleResult{}, ErrConcurrentUpdate
}

func (service *CompletionService) toggleItemOnce(userID uint, itemID string, completed bool, now time.Time) (ToggleResult, error) {
	var result ToggleResult
	err := service.store.InTransaction(func(store EngineStore) error {
		item, found, err := store.FindTrackedItem(userID, itemID)
		if err != nil {
			return err
		}
		if !found {
			return ErrItemNotFound
		}

		today := DateAtLocation(now, service.location)

		if item.Completed == completed {
			xp, err := store.UserXP(userID)
			if err != nil {
				return err
			}
			snapshot, err := refreshItemSnapshot(store, userID, item.Kind, today)
			if err != nil {
				return err
			}
			result = ToggleResult{Item: item, XP: xp, Snapshot: snapshot}
			return nil
		}

		prior := ItemState{Completed: item.Completed, Streak: item.Streak}

		// Streak moves at most once per calendar day, whatever the toggle
		// count that day.
		if completed {
			if item.LastCompletedAt == nil || !SameDay(*item.LastCompletedAt, now, service.location) {
				item.Streak++
				item.LastCompletedAt = &today
			}
		} else {
			if item.LastCompletedAt != nil && SameDay(*item.LastCompletedAt, now, service.location) {
				if item.Streak > 0 {
					item.Streak--
				}
				item.LastCompletedAt = nil
			}
		}
		item.Completed = completed

		applied, err := store.UpdateTrackedItemState(&item, prior)
		if err != nil {
			return err
		}
		if !applied {
			return errWriteConflict
		}

		newXP, xpDelta, err := service.applyXPDelta(store, userID, signedXP(item.Kind, completed))
		if err != nil {
			return err
		}

		var updatedGoal *models.Goal
		if item.Kind == models.KindGoalTask && item.GoalID != nil {
			updatedGoal, err = adjustGoalCompletedDays(store, userID, *item.GoalID, completed)
			if err != nil {
				return err
			}
		}

		snapshot, err := refreshItemSnapshot(store, userID, item.Kind, today)
		if err != nil {
			return err
		}

		result = ToggleResult{
			Item:     item,
			XPDelta:  xpDelta,
			XP:       newXP,
			Goal:     updatedGoal,
			Snapshot: snapshot,
		}
		return nil
	})
	if err != nil {
		return ToggleResult{}, err
	}
	return result, nil
}

// DeleteItem removes a tracked item and, in the same transaction, reverses
// the XP and goal-counter contribution of its current completion state and
// refreshes today's snapshot to exclude it.
func (service *CompletionService) DeleteItem(userID uint, itemID string, now time.Time) (DeleteItemResult, error) {
	for attempt := 0; attempt < maxWriteAttempts; attempt++ {
		result, err := service.deleteItemOnce(userID, itemID, now)
		if errors.Is(err, errWriteConflict) {
			continue
		}
		return result, err
	}
	return DeleteItemResult{}, ErrConcurrentUpdate
}

func (service *CompletionService) deleteItemOnce(userID uint, itemID string, now time.Time) (DeleteItemResult, error) {
	var result DeleteItemResult
	err := service.store.InTransaction(func(store EngineStore) error {
		item, found, err := store.FindTrackedItem(userID, itemID)
		if err != nil {
			return err
		}
		if !found {
			return ErrItemNotFound
		}

		var xpDelta int
		var updatedGoal *models.Goal
		if item.Completed {
			_, xpDelta, err = service.applyXPDelta(store, userID, -xpForKind(item.Kind))
			if err != nil {
				return err
			}
			if item.Kind == models.KindGoalTask && item.GoalID != nil {
				updatedGoal, err = adjustGoalCompletedDays(store, userID, *item.GoalID, false)
				if err != nil {
					return err
				}
			}
		}

		if err := store.DeleteTrackedItem(userID, itemID); err != nil {
			return err
		}

		today := DateAtLocation(now, service.location)
		snapshot, err := refreshItemSnapshot(store, userID, item.Kind, today)
		if err != nil {
			return err
		}

		result = DeleteItemResult{XPDelta: xpDelta, Goal: updatedGoal, Snapshot: snapshot}
		return nil
	})
	if err != nil {
		return DeleteItemResult{}, err
	}
	return result, nil
}

// ToggleTodayTask flips a miscellaneous task for the current day. Today
// tasks carry no streak and earn the reduced rate.
func (service *CompletionService) ToggleTodayTask(userID uint, taskID string, completed bool, now time.Time) (TodayToggleResult, error) {
	for attempt := 0; attempt < maxWriteAttempts; attempt++ {
		result, err := service.toggleTodayTaskOnce(userID, taskID, completed, now)
		if errors.Is(err, errWriteConflict) {
			continue
		}
		return result, err
	}
	return TodayToggleResult{}, ErrConcurrentUpdate
}

func (service *CompletionService) toggleTodayTaskOnce(userID uint, taskID string, completed bool, now time.Time) (TodayToggleResult, error) {
	var result TodayToggleResult
	err := service.store.InTransaction(func(store EngineStore) error {
		task, found, err := store.FindTodayTask(userID, taskID)
		if err != nil {
			return err
		}
		if !found {
			return ErrTodayTaskNotFound
		}

		if task.Completed == completed {
			xp, err := store.UserXP(userID)
			if err != nil {
				return err
			}
			snapshot, err := service.refreshTodaySnapshot(store, userID, now)
			if err != nil {
				return err
			}
			result = TodayToggleResult{Task: task, XP: xp, Snapshot: snapshot}
			return nil
		}

		priorCompleted := task.Completed
		task.Completed = completed
		applied, err := store.UpdateTodayTaskCompleted(&task, priorCompleted)
		if err != nil {
			return err
		}
		if !applied {
			return errWriteConflict
		}

		newXP, xpDelta, err := service.applyXPDelta(store, userID, signedXP(models.KindToday, completed))
		if err != nil {
			return err
		}

		snapshot, err := service.refreshTodaySnapshot(store, userID, now)
		if err != nil {
			return err
		}

		result = TodayToggleResult{Task: task, XPDelta: xpDelta, XP: newXP, Snapshot: snapshot}
		return nil
	})
	if err != nil {
		return TodayToggleResult{}, err
	}
	return result, nil
}

// DeleteTodayTask removes a today task, reversing its XP contribution when
// it was completed.
func (service *CompletionService) DeleteTodayTask(userID uint, taskID string, now time.Time) error {
	for attempt := 0; attempt < maxWriteAttempts; attempt++ {
		err := service.deleteTodayTaskOnce(userID, taskID, now)
		if errors.Is(err, errWriteConflict) {
			continue
		}
		return err
	}
	return ErrConcurrentUpdate
}

func (service *CompletionService) deleteTodayTaskOnce(userID uint, taskID string, now time.Time) error {
	return service.store.InTransaction(func(store EngineStore) error {
		task, found, err := store.FindTodayTask(userID, taskID)
		if err != nil {
			return err
		}
		if !found {
			return ErrTodayTaskNotFound
		}

		if task.Completed {
			if _, _, err := service.applyXPDelta(store, userID, -XPPerTodayTask); err != nil {
				return err
			}
		}

		if err := store.DeleteTodayTask(userID, taskID); err != nil {
			return err
		}

		_, err = service.refreshTodaySnapshot(store, userID, now)
		return err
	})
}

func signedXP(kind string, completed bool) int {
	base := xpForKind(kind)
	if completed {
		return base
	}
	return -base
}

// applyXPDelta adjusts the user's XP with a guarded write, clamping the
// balance at zero. Returns the new balance and the delta actually applied.
func (service *CompletionService) applyXPDelta(store EngineStore, userID uint, delta int) (int, int, error) {
	xp, err := store.UserXP(userID)
	if err != nil {
		return 0, 0, err
	}

	newXP := xp + delta
	if newXP < 0 {
		newXP = 0
	}
	if newXP != xp {
		applied, err := store.UpdateUserXP(userID, newXP, xp)
		if err != nil {
			return 0, 0, err
		}
		if !applied {
			return 0, 0, errWriteConflict
		}
	}
	return newXP, newXP - xp, nil
}

// adjustGoalCompletedDays moves the owning goal's counter by one day and
// re-derives progress. A goal that vanished mid-flight (archived
// concurrently) is skipped rather than treated as an error.
func adjustGoalCompletedDays(store EngineStore, userID uint, goalID string, completed bool) (*models.Goal, error) {
	goal, found, err := store.FindGoal(userID, goalID)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}

	priorDays := goal.CompletedDays
	if completed {
		goal.CompletedDays++
	} else if goal.CompletedDays > 0 {
		goal.CompletedDays--
	}
	goal.Progress = ProgressPercent(goal.CompletedDays, goal.TargetDays)

	applied, err := store.UpdateGoalCounters(&goal, priorDays)
	if err != nil {
		return nil, err
	}
	if !applied {
		return nil, errWriteConflict
	}
	return &goal, nil
}

// refreshItemSnapshot re-derives the day's completed/total counts from the
// live item set rather than incrementing a counter, so concurrent adds,
// deletes and toggles of other items never leave the snapshot stale.
func refreshItemSnapshot(store EngineStore, userID uint, kind string, day time.Time) (models.HistorySnapshot, error) {
	completedCount, totalCount, err := store.CountTrackedItems(userID, kind)
	if err != nil {
		return models.HistorySnapshot{}, err
	}
	return store.UpsertSnapshot(userID, kind, day, completedCount, totalCount)
}

func (service *CompletionService) refreshTodaySnapshot(store EngineStore, userID uint, now time.Time) (models.HistorySnapshot, error) {
	dayStart, dayEnd := DayRange(now, service.location)
	completedCount, totalCount, err := store.CountTodayTasks(userID, dayStart, dayEnd)
	if err != nil {
		return models.HistorySnapshot{}, err
	}
	return store.UpsertSnapshot(userID, models.KindToday, dayStart, completedCount, totalCount)
}
