package api

import (
	"github.com/amolwaghmare05/trackify/internal/models"
	"github.com/amolwaghmare05/trackify/internal/services"
	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) GetProfile(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	profile, err := handler.profile.GetProfile(user.ID)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(profile)
}

func (handler *Handler) UpdateProfile(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	var input displayNameInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	if err := handler.auth.UpdateDisplayName(user.ID, input.DisplayName); err != nil {
		return serviceError(c, err)
	}
	return c.JSON(fiber.Map{"ok": true})
}

func (handler *Handler) GetLevels(c *fiber.Ctx) error {
	return c.JSON(services.LevelTable())
}

// GetMotivation asks the external generator for an encouragement line about
// one goal, feeding it the goal's progress and this month's consistency.
func (handler *Handler) GetMotivation(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	var input motivationInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	goal, err := handler.goals.GetGoal(user.ID, input.GoalID)
	if err != nil {
		return serviceError(c, err)
	}

	now := handler.now()
	monthStart, monthEnd := services.MonthRange(now, handler.location)
	snapshots, err := handler.snapshots.ListByUserKindRange(user.ID, models.KindGoalTask, monthStart, monthEnd.AddDate(0, 0, 1))
	if err != nil {
		return serviceError(c, err)
	}

	response := handler.motivation.Fetch(c.Context(), services.MotivationRequest{
		UserName:           user.DisplayName,
		Goal:               goal.Title,
		ProgressPercentage: goal.Progress,
		ConsistencyScore:   services.ConsistencyScore(snapshots),
	})
	return c.JSON(response)
}
