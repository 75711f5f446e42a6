package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	registerPageRoutes(app, handler)
	registerAPIRoutes(app, handler)
	app.Use(handler.NotFound)
}

func registerPageRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)
	app.Get("/favicon.ico", sendNoContent)
	app.Get("/lang/:lang", handler.SetLanguage)

	app.Get("/", handler.ShowDashboard)
	app.Get("/dashboard", handler.ShowDashboard)
	app.Get("/diary", handler.ShowDiary)
	app.Post("/diary", handler.SubmitDiaryEntry)
	app.Get("/summaries", handler.ShowSummaries)
	app.Get("/summaries/export.pdf", handler.ExportSummaryPDF)
	app.Get("/prescriptions", handler.ShowPrescriptions)
	app.Post("/prescriptions/upload", handler.UploadPrescription)
}

func registerAPIRoutes(app *fiber.App, handler *Handler) {
	api := app.Group("/api")
	api.Get("/diary", handler.DiaryEntriesJSON)
	api.Get("/summary", handler.SummaryJSON)
}

func sendNoContent(c *fiber.Ctx) error {
	return c.SendStatus(fiber.StatusNoContent)
}
