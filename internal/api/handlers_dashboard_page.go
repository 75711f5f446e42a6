package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/vytalhealth/vytal/internal/models"
	"github.com/vytalhealth/vytal/internal/services"
)

func (handler *Handler) ShowDashboard(c *fiber.Ctx) error {
	view := handler.diary.Dashboard(c.UserContext())

	latest := services.HistoryCard{}
	if view.HasLatest {
		latest = services.BuildHistoryCards([]models.DiaryEntry{view.Latest})[0]
	}

	return handler.render(c, "dashboard", fiber.Map{
		"Title":     localizedPageTitle(currentMessages(c), "dashboard.title", "Dashboard"),
		"HasLatest": view.HasLatest,
		"Latest":    latest,
		"Recent":    services.BuildHistoryCards(view.Recent),
	})
}
