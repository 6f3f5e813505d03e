package services

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/amolwaghmare05/trackify/internal/models"
)

type stubTodayRepo struct {
	tasks   map[string]*models.TodayTask
	primary map[string]bool
}

func newStubTodayRepo() *stubTodayRepo {
	return &stubTodayRepo{tasks: make(map[string]*models.TodayTask), primary: make(map[string]bool)}
}

func (stub *stubTodayRepo) ListForDay(userID uint, dayStart time.Time, dayEnd time.Time) ([]models.TodayTask, error) {
	tasks := make([]models.TodayTask, 0)
	for _, task := range stub.tasks {
		if task.UserID != userID {
			continue
		}
		if task.CreatedAt.Before(dayStart) || !task.CreatedAt.Before(dayEnd) {
			continue
		}
		tasks = append(tasks, *task)
	}
	return tasks, nil
}

func (stub *stubTodayRepo) FindByID(userID uint, taskID string) (models.TodayTask, bool, error) {
	task, found := stub.tasks[taskID]
	if !found || task.UserID != userID {
		return models.TodayTask{}, false, nil
	}
	return *task, true, nil
}

func (stub *stubTodayRepo) Create(task *models.TodayTask) error {
	if task.ID == "" {
		task.ID = fmt.Sprintf("task-%d", len(stub.tasks)+1)
	}
	copied := *task
	stub.tasks[task.ID] = &copied
	return nil
}

func (stub *stubTodayRepo) UpdatePrimary(userID uint, taskID string, isPrimary bool) error {
	stub.primary[taskID] = isPrimary
	return nil
}

func TestListForTodayFiltersByDay(t *testing.T) {
	repo := newStubTodayRepo()
	now := testNow()
	repo.Create(&models.TodayTask{UserID: 1, Title: "Today", CreatedAt: now})
	repo.Create(&models.TodayTask{UserID: 1, Title: "Yesterday", CreatedAt: now.AddDate(0, 0, -1)})

	service := NewTodayService(repo, time.UTC)

	tasks, err := service.ListForToday(1, now)
	if err != nil {
		t.Fatalf("list for today: %v", err)
	}
	if len(tasks) != 1 || tasks[0].Title != "Today" {
		t.Fatalf("expected only today's task, got %+v", tasks)
	}
}

func TestCreateTaskValidatesTitle(t *testing.T) {
	service := NewTodayService(newStubTodayRepo(), time.UTC)

	if _, err := service.CreateTask(1, "  ", testNow()); !errors.Is(err, ErrInvalidTodayTask) {
		t.Fatalf("expected ErrInvalidTodayTask, got %v", err)
	}

	task, err := service.CreateTask(1, " Water plants ", testNow())
	if err != nil {
		t.Fatalf("create task: %v", err)
	}
	if task.Title != "Water plants" {
		t.Fatalf("expected trimmed title, got %q", task.Title)
	}
}

func TestSetPrimary(t *testing.T) {
	repo := newStubTodayRepo()
	repo.Create(&models.TodayTask{UserID: 1, Title: "Focus", CreatedAt: testNow()})

	service := NewTodayService(repo, time.UTC)

	if err := service.SetPrimary(1, "task-1", true); err != nil {
		t.Fatalf("set primary: %v", err)
	}
	if !repo.primary["task-1"] {
		t.Fatal("expected task flagged primary")
	}

	if err := service.SetPrimary(1, "missing", true); !errors.Is(err, ErrTodayTaskNotFound) {
		t.Fatalf("expected ErrTodayTaskNotFound, got %v", err)
	}
}
