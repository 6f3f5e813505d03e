package db

import "gorm.io/gorm"

type Repositories struct {
	Users          *UserRepository
	Goals          *GoalRepository
	CompletedGoals *CompletedGoalRepository
	Items          *ItemRepository
	TodayTasks     *TodayTaskRepository
	Snapshots      *SnapshotRepository
}

func NewRepositories(database *gorm.DB) *Repositories {
	return &Repositories{
		Users:          NewUserRepository(database),
		Goals:          NewGoalRepository(database),
		CompletedGoals: NewCompletedGoalRepository(database),
		Items:          NewItemRepository(database),
		TodayTasks:     NewTodayTaskRepository(database),
		Snapshots:      NewSnapshotRepository(database),
	}
}
