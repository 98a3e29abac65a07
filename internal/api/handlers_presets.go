package api

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/rangepicker/internal/models"
	"github.com/terraincognita07/rangepicker/internal/services"
)

func (handler *Handler) ListPresets(c *fiber.Ctx) error {
	presets, err := handler.presets.ListPresets()
	if err != nil {
		return handler.serviceError(c, err)
	}

	response := make([]presetResponse, 0, len(presets))
	for _, preset := range presets {
		response = append(response, buildPresetResponse(preset))
	}
	return c.JSON(fiber.Map{"presets": response})
}

func (handler *Handler) CreatePreset(c *fiber.Ctx) error {
	input := presetInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	start, err := parseDateInput("horizon_start", input.HorizonStart)
	if err != nil {
		return handler.serviceError(c, err)
	}
	end, err := parseDateInput("horizon_end", input.HorizonEnd)
	if err != nil {
		return handler.serviceError(c, err)
	}

	preset, err := handler.presets.CreatePreset(services.PresetInput{
		Name:      input.Name,
		Horizon:   models.Horizon{Start: start, End: end},
		PaneCount: input.Panes,
	})
	if err != nil {
		return handler.serviceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(buildPresetResponse(preset))
}

func (handler *Handler) DeletePreset(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil || id == 0 {
		return apiError(c, fiber.StatusBadRequest, "invalid preset id")
	}

	if err := handler.presets.DeletePreset(uint(id)); err != nil {
		return handler.serviceError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
