package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/vytalhealth/vytal/internal/charts"
	"go.uber.org/zap"
)

func (handler *Handler) ShowSummaries(c *fiber.Ctx) error {
	report := handler.summaries.Build(c.UserContext())

	rendered, err := charts.RenderSummary(report.Charts)
	if err != nil {
		handler.logger.Error("render summary charts failed", zap.Error(err))
		rendered = charts.Rendered{}
	}

	return handler.render(c, "summaries", fiber.Map{
		"Title":          localizedPageTitle(currentMessages(c), "summaries.title", "Health summaries"),
		"Report":         report,
		"Charts":         rendered,
		"ChartScriptURL": charts.ScriptURL,
	})
}

// SummaryJSON exposes the same report the summaries page renders.
func (handler *Handler) SummaryJSON(c *fiber.Ctx) error {
	report := handler.summaries.Build(c.UserContext())
	return c.JSON(fiber.Map{
		"generated_at":    report.GeneratedAt,
		"entry_count":     report.EntryCount,
		"blood_pressure":  report.Charts.BloodPressure,
		"heart_rate":      report.Charts.HeartRate,
		"mood":            report.Charts.Mood,
		"summary":         report.Narrative.Summary,
		"insights":        report.Narrative.Insights,
		"recommendations": report.Narrative.Recommendations,
		"overview":        report.Overview,
	})
}
