package api

import (
	"errors"

	"github.com/amolwaghmare05/trackify/internal/services"
	"github.com/gofiber/fiber/v2"
)

func apiError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"error": message})
}

// serviceError maps the services package sentinels onto HTTP statuses.
func serviceError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrGoalNotFound),
		errors.Is(err, services.ErrItemNotFound),
		errors.Is(err, services.ErrTodayTaskNotFound),
		errors.Is(err, services.ErrUserNotFound):
		return apiError(c, fiber.StatusNotFound, err.Error())
	case errors.Is(err, services.ErrInvalidGoal),
		errors.Is(err, services.ErrInvalidItem),
		errors.Is(err, services.ErrInvalidTodayTask),
		errors.Is(err, services.ErrInvalidRegistration):
		return apiError(c, fiber.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrEmailTaken),
		errors.Is(err, services.ErrConcurrentUpdate):
		return apiError(c, fiber.StatusConflict, err.Error())
	case errors.Is(err, services.ErrInvalidCredentials):
		return apiError(c, fiber.StatusUnauthorized, err.Error())
	default:
		return apiError(c, fiber.StatusInternalServerError, "internal error")
	}
}
