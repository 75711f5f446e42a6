package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/vytalhealth/vytal/internal/export"
	"github.com/vytalhealth/vytal/internal/services"
)

type SummaryBuilder interface {
	Build(ctx context.Context) services.SummaryReport
}

// RunExportReportCommand writes the health report PDF to outPath. A
// directory target gets the default report filename inside it.
func RunExportReportCommand(ctx context.Context, summaries SummaryBuilder, outPath string, stdout io.Writer) error {
	target, err := resolveReportPath(outPath)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return fmt.Errorf("create report directory: %w", err)
	}

	report := summaries.Build(ctx)

	file, err := os.Create(target)
	if err != nil {
		return fmt.Errorf("create report file: %w", err)
	}
	pages, err := export.WriteHealthReport(file, report)
	if closeErr := file.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		_ = os.Remove(target)
		return fmt.Errorf("write health report: %w", err)
	}

	fmt.Fprintf(stdout, "✅ Health report written to %s\n", target)
	fmt.Fprintf(stdout, "Entries: %d, pages: %d\n", report.EntryCount, pages)
	return nil
}

func resolveReportPath(outPath string) (string, error) {
	trimmed := strings.TrimSpace(outPath)
	if trimmed == "" {
		return export.ReportFilename, nil
	}
	info, err := os.Stat(trimmed)
	switch {
	case err == nil && info.IsDir():
		return filepath.Join(trimmed, export.ReportFilename), nil
	case err == nil, errors.Is(err, os.ErrNotExist):
		return trimmed, nil
	default:
		return "", fmt.Errorf("inspect report path: %w", err)
	}
}
