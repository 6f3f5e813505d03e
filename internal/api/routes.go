package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)

	api := app.Group("/api")

	auth := api.Group("/auth")
	auth.Post("/register", handler.Register)
	auth.Post("/login", handler.Login)
	auth.Post("/logout", handler.AuthRequired, handler.Logout)
	auth.Delete("/account", handler.AuthRequired, handler.DeleteAccount)

	goals := api.Group("/goals", handler.AuthRequired)
	goals.Get("", handler.GetGoals)
	goals.Post("", handler.CreateGoal)
	goals.Put("/:id", handler.UpdateGoal)
	goals.Delete("/:id", handler.DeleteGoal)
	goals.Post("/:id/tasks", handler.CreateGoalTask)

	api.Get("/achievements", handler.AuthRequired, handler.GetAchievements)

	api.Get("/tasks", handler.AuthRequired, handler.GetGoalTasks)
	workouts := api.Group("/workouts", handler.AuthRequired)
	workouts.Get("", handler.GetWorkouts)
	workouts.Post("", handler.CreateWorkout)

	items := api.Group("/items", handler.AuthRequired)
	items.Post("/:id/toggle", handler.ToggleItem)
	items.Delete("/:id", handler.DeleteItem)

	today := api.Group("/today", handler.AuthRequired)
	today.Get("", handler.GetTodayTasks)
	today.Post("", handler.CreateTodayTask)
	today.Post("/:id/toggle", handler.ToggleTodayTask)
	today.Post("/:id/primary", handler.SetTodayTaskPrimary)
	today.Delete("/:id", handler.DeleteTodayTask)

	api.Get("/charts/:kind", handler.AuthRequired, handler.GetCharts)

	reports := api.Group("/reports", handler.AuthRequired)
	reports.Get("/activity", handler.GetActivityBreakdown)
	reports.Get("/monthly", handler.GetMonthlySummaries)

	profile := api.Group("/profile", handler.AuthRequired)
	profile.Get("", handler.GetProfile)
	profile.Put("", handler.UpdateProfile)

	api.Get("/levels", handler.AuthRequired, handler.GetLevels)
	api.Post("/motivation", handler.AuthRequired, handler.GetMotivation)
}
