package api

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/rangepicker/internal/models"
	"github.com/terraincognita07/rangepicker/internal/services"
)

func apiError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"error": message})
}

// serviceError maps a service error onto a status code. Unexpected errors
// are logged and reported without detail.
func (handler *Handler) serviceError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrInvalidArgument), errors.Is(err, services.ErrICSNoEvent):
		return apiError(c, fiber.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrSessionNotFound), errors.Is(err, services.ErrPresetNotFound):
		return apiError(c, fiber.StatusNotFound, err.Error())
	case errors.Is(err, services.ErrPresetNameTaken), errors.Is(err, services.ErrSelectionIncomplete):
		return apiError(c, fiber.StatusConflict, err.Error())
	case errors.Is(err, services.ErrSessionLimit):
		return apiError(c, fiber.StatusServiceUnavailable, err.Error())
	default:
		handler.logger.Error("api: request failed", "method", c.Method(), "path", c.Path(), "error", err)
		return apiError(c, fiber.StatusInternalServerError, "internal error")
	}
}

func parseDateInput(field string, raw string) (models.CalendarDate, error) {
	date, err := models.ParseCalendarDate(raw)
	if err != nil {
		return models.CalendarDate{}, fmt.Errorf("%w: %s: %v", services.ErrInvalidDate, field, err)
	}
	return date, nil
}

// parseOptionalDateInput treats a blank value as "not set".
func parseOptionalDateInput(field string, raw string) (models.CalendarDate, error) {
	if strings.TrimSpace(raw) == "" {
		return models.CalendarDate{}, nil
	}
	return parseDateInput(field, raw)
}

func parseSelectionInput(start string, end string) (models.Selection, error) {
	startDate, err := parseOptionalDateInput("start", start)
	if err != nil {
		return models.Selection{}, err
	}
	endDate, err := parseOptionalDateInput("end", end)
	if err != nil {
		return models.Selection{}, err
	}
	if startDate.IsZero() && !endDate.IsZero() {
		return models.Selection{}, fmt.Errorf("%w: end requires start", services.ErrInvalidDate)
	}
	return models.Selection{Start: startDate, End: endDate}.Normalized(), nil
}
