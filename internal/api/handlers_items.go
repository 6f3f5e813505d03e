package api

import (
	"github.com/amolwaghmare05/trackify/internal/models"
	"github.com/gofiber/fiber/v2"
)

type toggleInput struct {
	Completed bool `json:"completed"`
}

func (handler *Handler) GetGoalTasks(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	items, err := handler.items.ListByKind(user.ID, models.KindGoalTask)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(items)
}

func (handler *Handler) CreateGoalTask(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	var input titleInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	item, err := handler.items.CreateGoalTask(user.ID, c.Params("id"), input.Title, handler.now())
	if err != nil {
		return serviceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(item)
}

func (handler *Handler) GetWorkouts(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	items, err := handler.items.ListByKind(user.ID, models.KindWorkout)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(items)
}

func (handler *Handler) CreateWorkout(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	var input titleInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	item, err := handler.items.CreateWorkout(user.ID, input.Title, handler.now())
	if err != nil {
		return serviceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(item)
}

// ToggleItem flips completion for a goal task or workout. The response
// carries the XP delta, new balance and updated goal so clients can render
// without a follow-up fetch.
func (handler *Handler) ToggleItem(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	var input toggleInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	result, err := handler.completion.ToggleItem(user.ID, c.Params("id"), input.Completed, handler.now())
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(fiber.Map{
		"item":          result.Item,
		"xp_delta":      result.XPDelta,
		"xp":            result.XP,
		"goal":          result.Goal,
		"snapshot":      result.Snapshot,
		"goal_archived": result.GoalArchived,
	})
}

func (handler *Handler) DeleteItem(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	result, err := handler.completion.DeleteItem(user.ID, c.Params("id"), handler.now())
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(fiber.Map{
		"xp_delta": result.XPDelta,
		"goal":     result.Goal,
		"snapshot": result.Snapshot,
	})
}
