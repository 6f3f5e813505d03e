package services

import (
	"errors"
	"strings"
	"time"

	"github.com/amolwaghmare05/trackify/internal/models"
)

var ErrInvalidItem = errors.New("item requires a title and a known kind")

type ItemRepository interface {
	ListByUserAndKind(userID uint, kind string) ([]models.TrackedItem, error)
	Create(item *models.TrackedItem) error
}

type ItemGoalReader interface {
	FindByID(userID uint, goalID string) (models.Goal, bool, error)
}

// ItemService creates and lists tracked items. Completion-state mutation and
// deletion go through the CompletionService so their side effects stay
// transactional.
type ItemService struct {
	items ItemRepository
	goals ItemGoalReader
}

func NewItemService(items ItemRepository, goals ItemGoalReader) *ItemService {
	return &ItemService{items: items, goals: goals}
}

func (service *ItemService) ListByKind(userID uint, kind string) ([]models.TrackedItem, error) {
	if !models.IsTrackableKind(kind) {
		return nil, ErrInvalidItem
	}
	return service.items.ListByUserAndKind(userID, kind)
}

// CreateGoalTask attaches a new daily task to an existing goal.
func (service *ItemService) CreateGoalTask(userID uint, goalID string, title string, now time.Time) (models.TrackedItem, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return models.TrackedItem{}, ErrInvalidItem
	}

	_, found, err := service.goals.FindByID(userID, goalID)
	if err != nil {
		return models.TrackedItem{}, err
	}
	if !found {
		return models.TrackedItem{}, ErrGoalNotFound
	}

	item := models.TrackedItem{
		UserID:    userID,
		GoalID:    &goalID,
		Kind:      models.KindGoalTask,
		Title:     title,
		CreatedAt: now,
	}
	if err := service.items.Create(&item); err != nil {
		return models.TrackedItem{}, err
	}
	return item, nil
}

func (service *ItemService) CreateWorkout(userID uint, title string, now time.Time) (models.TrackedItem, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return models.TrackedItem{}, ErrInvalidItem
	}

	item := models.TrackedItem{
		UserID:    userID,
		Kind:      models.KindWorkout,
		Title:     title,
		CreatedAt: now,
	}
	if err := service.items.Create(&item); err != nil {
		return models.TrackedItem{}, err
	}
	return item, nil
}
