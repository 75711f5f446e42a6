package api

import (
	"bytes"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/vytalhealth/vytal/internal/export"
	"go.uber.org/zap"
)

func (handler *Handler) ExportSummaryPDF(c *fiber.Ctx) error {
	report := handler.summaries.Build(c.UserContext())

	var document bytes.Buffer
	pages, err := export.WriteHealthReport(&document, report)
	if err != nil {
		handler.logger.Error("build health report failed", zap.Error(err))
		return apiError(c, fiber.StatusInternalServerError, "failed to build report")
	}
	handler.logger.Info("health report exported", zap.Int("pages", pages), zap.Int("entries", report.EntryCount))

	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", export.ReportFilename))
	return c.Send(document.Bytes())
}
