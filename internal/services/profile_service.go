package services

import (
	"errors"

	"github.com/amolwaghmare05/trackify/internal/models"
)

var ErrUserNotFound = errors.New("user not found")

type ProfileUserReader interface {
	FindByID(userID uint) (models.User, bool, error)
}

type ProfileGoalCounter interface {
	CountByUser(userID uint) (int, error)
}

type ProfileSnapshotReader interface {
	SumCompletedByKind(userID uint, kind string) (int, error)
}

type Profile struct {
	DisplayName    string      `json:"displayName"`
	Email          string      `json:"email"`
	XP             int         `json:"xp"`
	Level          LevelDetail `json:"level"`
	GoalsCompleted int         `json:"goalsCompleted"`
	TasksDone      int         `json:"tasksDone"`
	WorkoutsDone   int         `json:"workoutsDone"`
}

// ProfileService assembles the account summary card: current XP and level
// plus lifetime activity totals derived from snapshot history.
type ProfileService struct {
	users     ProfileUserReader
	completed ProfileGoalCounter
	snapshots ProfileSnapshotReader
}

func NewProfileService(users ProfileUserReader, completed ProfileGoalCounter, snapshots ProfileSnapshotReader) *ProfileService {
	return &ProfileService{
		users:     users,
		completed: completed,
		snapshots: snapshots,
	}
}

func (service *ProfileService) GetProfile(userID uint) (Profile, error) {
	user, found, err := service.users.FindByID(userID)
	if err != nil {
		return Profile{}, err
	}
	if !found {
		return Profile{}, ErrUserNotFound
	}

	goalsCompleted, err := service.completed.CountByUser(userID)
	if err != nil {
		return Profile{}, err
	}
	tasksDone, err := service.snapshots.SumCompletedByKind(userID, models.KindGoalTask)
	if err != nil {
		return Profile{}, err
	}
	workoutsDone, err := service.snapshots.SumCompletedByKind(userID, models.KindWorkout)
	if err != nil {
		return Profile{}, err
	}

	return Profile{
		DisplayName:    user.DisplayName,
		Email:          user.Email,
		XP:             user.XP,
		Level:          LevelFor(user.XP),
		GoalsCompleted: goalsCompleted,
		TasksDone:      tasksDone,
		WorkoutsDone:   workoutsDone,
	}, nil
}
