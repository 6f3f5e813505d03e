package services

import (
	"errors"
	"strings"
	"time"

	"github.com/amolwaghmare05/trackify/internal/models"
)

var (
	ErrGoalNotFound = errors.New("goal not found")
	ErrInvalidGoal  = errors.New("goal requires a title and a positive day target")
)

type GoalRepository interface {
	ListByUser(userID uint) ([]models.Goal, error)
	FindByID(userID uint, goalID string) (models.Goal, bool, error)
	Create(goal *models.Goal) error
}

type CompletedGoalRepository interface {
	ListByUser(userID uint) ([]models.CompletedGoal, error)
}

// GoalService owns goal CRUD and the active→archived lifecycle. Archival is
// one-way: the active record is deleted and an immutable CompletedGoal is
// written in the same transaction.
type GoalService struct {
	goals     GoalRepository
	completed CompletedGoalRepository
	store     EngineTx
	location  *time.Location
}

func NewGoalService(goals GoalRepository, completed CompletedGoalRepository, store EngineTx, location *time.Location) *GoalService {
	if location == nil {
		location = time.UTC
	}
	return &GoalService{
		goals:     goals,
		completed: completed,
		store:     store,
		location:  location,
	}
}

func (service *GoalService) ListGoals(userID uint) ([]models.Goal, error) {
	return service.goals.ListByUser(userID)
}

func (service *GoalService) GetGoal(userID uint, goalID string) (models.Goal, error) {
	goal, found, err := service.goals.FindByID(userID, goalID)
	if err != nil {
		return models.Goal{}, err
	}
	if !found {
		return models.Goal{}, ErrGoalNotFound
	}
	return goal, nil
}

func (service *GoalService) ListAchievements(userID uint) ([]models.CompletedGoal, error) {
	return service.completed.ListByUser(userID)
}

func (service *GoalService) CreateGoal(userID uint, title string, targetDays int, now time.Time) (models.Goal, error) {
	title = strings.TrimSpace(title)
	if title == "" || targetDays <= 0 {
		return models.Goal{}, ErrInvalidGoal
	}

	goal := models.Goal{
		UserID:     userID,
		Title:      title,
		TargetDays: targetDays,
		CreatedAt:  now,
	}
	if err := service.goals.Create(&goal); err != nil {
		return models.Goal{}, err
	}
	return goal, nil
}

// UpdateGoal edits title and target days, re-deriving progress from the
// completed-day count read in the same transaction. The write touches only
// the edited columns and is guarded on that count, so a toggle committing
// mid-edit forces a retry instead of being silently reverted.
func (service *GoalService) UpdateGoal(userID uint, goalID string, title string, targetDays int) (models.Goal, error) {
	title = strings.TrimSpace(title)
	if title == "" || targetDays <= 0 {
		return models.Goal{}, ErrInvalidGoal
	}

	for attempt := 0; attempt < maxWriteAttempts; attempt++ {
		goal, err := service.updateGoalOnce(userID, goalID, title, targetDays)
		if errors.Is(err, errWriteConflict) {
			continue
		}
		return goal, err
	}
	return models.Goal{}, ErrConcurrentUpdate
}

func (service *GoalService) updateGoalOnce(userID uint, goalID string, title string, targetDays int) (models.Goal, error) {
	var updated models.Goal
	err := service.store.InTransaction(func(store EngineStore) error {
		goal, found, err := store.FindGoal(userID, goalID)
		if err != nil {
			return err
		}
		if !found {
			return ErrGoalNotFound
		}

		priorDays := goal.CompletedDays
		goal.Title = title
		goal.TargetDays = targetDays
		goal.Progress = ProgressPercent(goal.CompletedDays, targetDays)

		applied, err := store.UpdateGoalDefinition(&goal, priorDays)
		if err != nil {
			return err
		}
		if !applied {
			return errWriteConflict
		}
		updated = goal
		return nil
	})
	if err != nil {
		return models.Goal{}, err
	}
	return updated, nil
}

// DeleteGoal removes a goal together with its tasks, reversing the XP each
// completed task contributed and refreshing today's task snapshot, all in
// one transaction.
func (service *GoalService) DeleteGoal(userID uint, goalID string, now time.Time) error {
	for attempt := 0; attempt < maxWriteAttempts; attempt++ {
		err := service.deleteGoalOnce(userID, goalID, now)
		if errors.Is(err, errWriteConflict) {
			continue
		}
		return err
	}
	return ErrConcurrentUpdate
}

func (service *GoalService) deleteGoalOnce(userID uint, goalID string, now time.Time) error {
	return service.store.InTransaction(func(store EngineStore) error {
		goal, found, err := store.FindGoal(userID, goalID)
		if err != nil {
			return err
		}
		if !found {
			return ErrGoalNotFound
		}

		items, err := store.ListGoalItems(userID, goal.ID)
		if err != nil {
			return err
		}

		reversal := 0
		for _, item := range items {
			if item.Completed {
				reversal += xpForKind(item.Kind)
			}
		}
		if reversal > 0 {
			xp, err := store.UserXP(userID)
			if err != nil {
				return err
			}
			newXP := xp - reversal
			if newXP < 0 {
				newXP = 0
			}
			applied, err := store.UpdateUserXP(userID, newXP, xp)
			if err != nil {
				return err
			}
			if !applied {
				return errWriteConflict
			}
		}

		if err := store.DeleteGoalItems(userID, goal.ID); err != nil {
			return err
		}
		if err := store.DeleteGoal(userID, goal.ID); err != nil {
			return err
		}

		today := DateAtLocation(now, service.location)
		_, err = refreshItemSnapshot(store, userID, models.KindGoalTask, today)
		return err
	})
}

// MaybeArchive moves a goal that reached 100% progress into the completed
// archive. Safe to call any number of times for the same goal id: once the
// active record is gone every further call is a no-op, so concurrent
// triggers produce exactly one CompletedGoal.
func (service *GoalService) MaybeArchive(userID uint, goalID string, now time.Time) (bool, error) {
	for attempt := 0; attempt < maxWriteAttempts; attempt++ {
		archived, err := service.maybeArchiveOnce(userID, goalID, now)
		if errors.Is(err, errWriteConflict) {
			continue
		}
		return archived, err
	}
	return false, ErrConcurrentUpdate
}

func (service *GoalService) maybeArchiveOnce(userID uint, goalID string, now time.Time) (bool, error) {
	archived := false
	err := service.store.InTransaction(func(store EngineStore) error {
		goal, found, err := store.FindGoal(userID, goalID)
		if err != nil {
			return err
		}
		if !found {
			return nil
		}
		if goal.Progress < 100 {
			return nil
		}

		record := models.CompletedGoal{
			UserID:            userID,
			GoalID:            goal.ID,
			Title:             goal.Title,
			TargetDays:        goal.TargetDays,
			CompletedAt:       now,
			OriginalCreatedAt: goal.CreatedAt,
		}
		if err := store.CreateCompletedGoal(&record); err != nil {
			return err
		}
		if err := store.DeleteGoal(userID, goal.ID); err != nil {
			return err
		}

		xp, err := store.UserXP(userID)
		if err != nil {
			return err
		}
		applied, err := store.UpdateUserXP(userID, xp+XPPerGoalArchive, xp)
		if err != nil {
			return err
		}
		if !applied {
			return errWriteConflict
		}

		archived = true
		return nil
	})
	if err != nil {
		return false, err
	}
	return archived, nil
}
