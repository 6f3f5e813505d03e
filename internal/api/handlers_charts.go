package api

import (
	"time"

	"github.com/amolwaghmare05/trackify/internal/models"
	"github.com/amolwaghmare05/trackify/internal/services"
	"github.com/gofiber/fiber/v2"
)

func chartKind(raw string) (string, bool) {
	switch raw {
	case models.KindGoalTask, models.KindWorkout, models.KindToday:
		return raw, true
	default:
		return "", false
	}
}

// reportKind selects the monthly report series. Tasks give the consistency
// report, workouts the discipline report; the task series is the default.
func reportKind(raw string) (string, bool) {
	switch raw {
	case "":
		return models.KindGoalTask, true
	case models.KindGoalTask, models.KindWorkout:
		return raw, true
	default:
		return "", false
	}
}

// GetCharts returns the weekly progress and the month's consistency series
// for one item kind, derived from stored daily snapshots. An optional
// date=YYYY-MM-DD query pins the reference day, so past months stay
// reproducible.
func (handler *Handler) GetCharts(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	kind, valid := chartKind(c.Params("kind"))
	if !valid {
		return apiError(c, fiber.StatusBadRequest, "unknown chart kind")
	}

	referenceDate := handler.now()
	if raw := c.Query("date"); raw != "" {
		parsed, err := time.ParseInLocation("2006-01-02", raw, handler.location)
		if err != nil {
			return apiError(c, fiber.StatusBadRequest, "date must be YYYY-MM-DD")
		}
		referenceDate = parsed
	}

	snapshots, err := handler.snapshots.ListByUserAndKind(user.ID, kind)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(services.BuildHistoryCharts(snapshots, referenceDate, handler.location))
}

func (handler *Handler) GetActivityBreakdown(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	taskSnapshots, err := handler.snapshots.ListByUserAndKind(user.ID, models.KindGoalTask)
	if err != nil {
		return serviceError(c, err)
	}
	workoutSnapshots, err := handler.snapshots.ListByUserAndKind(user.ID, models.KindWorkout)
	if err != nil {
		return serviceError(c, err)
	}
	completedGoals, err := handler.completedGoals.CountByUser(user.ID)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(services.BuildActivityBreakdown(taskSnapshots, workoutSnapshots, completedGoals))
}

func (handler *Handler) GetMonthlySummaries(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	kind, valid := reportKind(c.Query("kind"))
	if !valid {
		return apiError(c, fiber.StatusBadRequest, "unknown report kind")
	}

	snapshots, err := handler.snapshots.ListByUserAndKind(user.ID, kind)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(services.BuildMonthlySummaries(snapshots, handler.location))
}
