package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/rangepicker/internal/models"
	"github.com/terraincognita07/rangepicker/internal/services"
)

func (handler *Handler) CreateSession(c *fiber.Ctx) error {
	now := handler.now()
	if !handler.sessionLimiter.allow(requestLimiterKey(c), now) {
		return apiError(c, fiber.StatusTooManyRequests, "too many sessions created, try again later")
	}

	input := createSessionInput{}
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&input); err != nil {
			return apiError(c, fiber.StatusBadRequest, "invalid input")
		}
	}

	options, err := handler.resolveSessionOptions(input, models.DateFromTime(now))
	if err != nil {
		return handler.serviceError(c, err)
	}

	sessionID, session, err := handler.sessions.Create(options)
	if err != nil {
		return handler.serviceError(c, err)
	}
	issued := false
	defer func() {
		if !issued {
			handler.sessions.Delete(sessionID)
		}
	}()

	session.OnChange(func(selection models.Selection) {
		handler.logger.Debug("sessions: selection committed", "id", sessionID, "start", selection.Start.String(), "end", selection.End.String())
	})

	token, err := handler.issueToken(sessionID)
	if err != nil {
		return handler.serviceError(c, err)
	}

	view, err := session.View()
	if err != nil {
		return handler.serviceError(c, err)
	}

	issued = true
	return c.Status(fiber.StatusCreated).JSON(createSessionResponse{
		ID:    sessionID,
		Token: token,
		View:  buildSessionViewResponse(view),
	})
}

// resolveSessionOptions layers explicit input over the preset, and the preset
// over configured defaults.
func (handler *Handler) resolveSessionOptions(input createSessionInput, today models.CalendarDate) (services.SessionOptions, error) {
	reportIntermediate := handler.options.ReportIntermediate
	if input.ReportIntermediate != nil {
		reportIntermediate = *input.ReportIntermediate
	}

	selection, err := parseSelectionInput(input.SelectionStart, input.SelectionEnd)
	if err != nil {
		return services.SessionOptions{}, err
	}

	var options services.SessionOptions
	if input.PresetID != nil {
		preset, err := handler.presets.FindPreset(*input.PresetID)
		if err != nil {
			return services.SessionOptions{}, err
		}
		options, err = services.SessionOptionsFromPreset(preset, selection, reportIntermediate)
		if err != nil {
			return services.SessionOptions{}, err
		}
	} else {
		horizon, err := handler.options.DefaultHorizon(today)
		if err != nil {
			return services.SessionOptions{}, err
		}
		options = services.SessionOptions{
			Horizon:            horizon,
			PaneCount:          handler.options.DefaultPanes,
			Selection:          selection,
			ReportIntermediate: reportIntermediate,
		}
	}

	if input.HorizonStart != "" {
		start, err := parseDateInput("horizon_start", input.HorizonStart)
		if err != nil {
			return services.SessionOptions{}, err
		}
		options.Horizon.Start = start
	}
	if input.HorizonEnd != "" {
		end, err := parseDateInput("horizon_end", input.HorizonEnd)
		if err != nil {
			return services.SessionOptions{}, err
		}
		options.Horizon.End = end
	}
	if input.Panes != 0 {
		options.PaneCount = input.Panes
	}
	return options, nil
}

func (handler *Handler) GetSession(c *fiber.Ctx) error {
	session, _, ok := currentSession(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	return handler.respondView(c, fiber.StatusOK, session)
}

func (handler *Handler) DeleteSession(c *fiber.Ctx) error {
	_, sessionID, ok := currentSession(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	if !handler.sessions.Delete(sessionID) {
		return handler.serviceError(c, services.ErrSessionNotFound)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (handler *Handler) PickDate(c *fiber.Ctx) error {
	session, _, ok := currentSession(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	input := dateInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}
	date, err := parseDateInput("date", input.Date)
	if err != nil {
		return handler.serviceError(c, err)
	}

	if _, err := session.PickDate(date); err != nil {
		return handler.serviceError(c, err)
	}
	return handler.respondView(c, fiber.StatusOK, session)
}

func (handler *Handler) HoverDate(c *fiber.Ctx) error {
	session, _, ok := currentSession(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	input := dateInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}
	date, err := parseDateInput("date", input.Date)
	if err != nil {
		return handler.serviceError(c, err)
	}

	if _, err := session.Hover(date); err != nil {
		return handler.serviceError(c, err)
	}
	return handler.respondView(c, fiber.StatusOK, session)
}

func (handler *Handler) NavigatePane(c *fiber.Ctx) error {
	session, _, ok := currentSession(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	input := navigateInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	moved, err := session.Navigate(input.Pane, models.MonthDelta{Months: input.Months, Years: input.Years})
	if err != nil {
		return handler.serviceError(c, err)
	}
	if !moved {
		view, err := session.View()
		if err != nil {
			return handler.serviceError(c, err)
		}
		return c.Status(fiber.StatusConflict).JSON(navigationBlockedResponse{
			sessionViewResponse: buildSessionViewResponse(view),
			Error:               "navigation blocked",
		})
	}
	return handler.respondView(c, fiber.StatusOK, session)
}

func (handler *Handler) ReplaceSelection(c *fiber.Ctx) error {
	session, _, ok := currentSession(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	input := selectionInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}
	selection, err := parseSelectionInput(input.Start, input.End)
	if err != nil {
		return handler.serviceError(c, err)
	}
	return handler.applySelection(c, session, selection)
}

func (handler *Handler) applySelection(c *fiber.Ctx, session *services.PickerSession, selection models.Selection) error {
	reset, err := session.SetSelection(selection)
	if err != nil {
		return handler.serviceError(c, err)
	}

	view, err := session.View()
	if err != nil {
		return handler.serviceError(c, err)
	}
	return c.JSON(selectionUpdateResponse{
		sessionViewResponse: buildSessionViewResponse(view),
		Reset:               reset,
	})
}

func (handler *Handler) respondView(c *fiber.Ctx, status int, session *services.PickerSession) error {
	view, err := session.View()
	if err != nil {
		return handler.serviceError(c, err)
	}
	return c.Status(status).JSON(buildSessionViewResponse(view))
}
