package services

import (
	"errors"
	"strings"
	"time"

	"github.com/amolwaghmare05/trackify/internal/models"
)

var ErrInvalidTodayTask = errors.New("today task requires a title")

type TodayTaskRepository interface {
	ListForDay(userID uint, dayStart time.Time, dayEnd time.Time) ([]models.TodayTask, error)
	FindByID(userID uint, taskID string) (models.TodayTask, bool, error)
	Create(task *models.TodayTask) error
	UpdatePrimary(userID uint, taskID string, isPrimary bool) error
}

// TodayService manages the miscellaneous one-off list for the current day.
type TodayService struct {
	tasks    TodayTaskRepository
	location *time.Location
}

func NewTodayService(tasks TodayTaskRepository, location *time.Location) *TodayService {
	if location == nil {
		location = time.UTC
	}
	return &TodayService{tasks: tasks, location: location}
}

func (service *TodayService) ListForToday(userID uint, now time.Time) ([]models.TodayTask, error) {
	dayStart, dayEnd := DayRange(now, service.location)
	return service.tasks.ListForDay(userID, dayStart, dayEnd)
}

func (service *TodayService) CreateTask(userID uint, title string, now time.Time) (models.TodayTask, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return models.TodayTask{}, ErrInvalidTodayTask
	}

	task := models.TodayTask{
		UserID:    userID,
		Title:     title,
		CreatedAt: now,
	}
	if err := service.tasks.Create(&task); err != nil {
		return models.TodayTask{}, err
	}
	return task, nil
}

func (service *TodayService) SetPrimary(userID uint, taskID string, isPrimary bool) error {
	_, found, err := service.tasks.FindByID(userID, taskID)
	if err != nil {
		return err
	}
	if !found {
		return ErrTodayTaskNotFound
	}
	return service.tasks.UpdatePrimary(userID, taskID, isPrimary)
}
