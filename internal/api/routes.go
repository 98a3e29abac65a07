package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)

	api := app.Group("/api")

	sessions := api.Group("/sessions")
	sessions.Post("", handler.CreateSession)

	session := sessions.Group("/:id", handler.SessionRequired)
	session.Get("", handler.GetSession)
	session.Delete("", handler.DeleteSession)
	session.Post("/pick", handler.PickDate)
	session.Post("/hover", handler.HoverDate)
	session.Post("/navigate", handler.NavigatePane)
	session.Put("/selection", handler.ReplaceSelection)
	session.Get("/selection.ics", handler.ExportSelectionICS)
	session.Put("/selection.ics", handler.ImportSelectionICS)

	presets := api.Group("/presets")
	presets.Get("", handler.ListPresets)
	presets.Post("", handler.CreatePreset)
	presets.Delete("/:id", handler.DeletePreset)

	app.Use(handler.NotFound)
}
