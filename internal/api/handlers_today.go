package api

import (
	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) GetTodayTasks(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	tasks, err := handler.today.ListForToday(user.ID, handler.now())
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(tasks)
}

func (handler *Handler) CreateTodayTask(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	var input titleInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	task, err := handler.today.CreateTask(user.ID, input.Title, handler.now())
	if err != nil {
		return serviceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(task)
}

func (handler *Handler) ToggleTodayTask(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	var input toggleInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	result, err := handler.completion.ToggleTodayTask(user.ID, c.Params("id"), input.Completed, handler.now())
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(fiber.Map{
		"task":     result.Task,
		"xp_delta": result.XPDelta,
		"xp":       result.XP,
		"snapshot": result.Snapshot,
	})
}

func (handler *Handler) SetTodayTaskPrimary(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	var input primaryInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	if err := handler.today.SetPrimary(user.ID, c.Params("id"), input.IsPrimary); err != nil {
		return serviceError(c, err)
	}
	return c.JSON(fiber.Map{"ok": true})
}

func (handler *Handler) DeleteTodayTask(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	if err := handler.completion.DeleteTodayTask(user.ID, c.Params("id"), handler.now()); err != nil {
		return serviceError(c, err)
	}
	return c.JSON(fiber.Map{"ok": true})
}
