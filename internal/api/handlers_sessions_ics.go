package api

import (
	"bytes"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/rangepicker/internal/services"
)

func (handler *Handler) ExportSelectionICS(c *fiber.Ctx) error {
	session, sessionID, ok := currentSession(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	var buf bytes.Buffer
	if err := services.EncodeSelectionICS(&buf, sessionID, session.Selection(), handler.now()); err != nil {
		return handler.serviceError(c, err)
	}

	c.Set(fiber.HeaderContentType, "text/calendar; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="selection.ics"`)
	return c.Send(buf.Bytes())
}

func (handler *Handler) ImportSelectionICS(c *fiber.Ctx) error {
	session, _, ok := currentSession(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	selection, err := services.DecodeSelectionICS(bytes.NewReader(c.Body()))
	if err != nil {
		return handler.serviceError(c, err)
	}
	return handler.applySelection(c, session, selection)
}
