package export

import (
	"fmt"
	"io"
	"strconv"

	"github.com/go-pdf/fpdf"
	"github.com/vytalhealth/vytal/internal/services"
)

const (
	ReportFilename = "Health_Report.pdf"

	pageMargin   = 15.0
	footerMargin = 18.0
	lineHeight   = 6.0
	rowHeight    = 7.0
	pageAlias    = "{nb}"
)

type pdfWriter struct {
	pdf       *fpdf.Fpdf
	translate func(string) string
	width     float64
}

// WriteHealthReport renders the summary report as an A4 PDF and returns the
// number of pages written. Long sections flow onto new pages; tables repeat
// their header row after each break.
func WriteHealthReport(w io.Writer, report services.SummaryReport) (int, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(pageMargin, pageMargin, pageMargin)
	pdf.SetAutoPageBreak(true, footerMargin)
	pdf.AliasNbPages(pageAlias)
	pdf.SetTitle("Health Report", true)
	pdf.SetCreator("vytal", true)
	if !report.GeneratedAt.IsZero() {
		pdf.SetCreationDate(report.GeneratedAt)
	}

	pageWidth, _ := pdf.GetPageSize()
	writer := &pdfWriter{
		pdf:       pdf,
		translate: pdf.UnicodeTranslatorFromDescriptor(""),
		width:     pageWidth - 2*pageMargin,
	}
	pdf.SetFooterFunc(func() {
		pdf.SetY(-12)
		pdf.SetFont("Helvetica", "I", 8)
		pdf.SetTextColor(120, 120, 120)
		pdf.CellFormat(0, 8, fmt.Sprintf("Page %d of %s", pdf.PageNo(), pageAlias), "", 0, "C", false, 0, "")
	})

	pdf.AddPage()
	writer.title(report)
	writer.narrative(report.Narrative)
	writer.overview(report.Overview)
	writer.bloodPressure(report.Charts.BloodPressure)
	writer.heartRate(report.Charts.HeartRate)
	writer.mood(report.Charts.Mood)

	if err := pdf.Error(); err != nil {
		return 0, fmt.Errorf("build health report: %w", err)
	}
	pages := pdf.PageCount()
	if err := pdf.Output(w); err != nil {
		return 0, fmt.Errorf("write health report: %w", err)
	}
	return pages, nil
}

func (writer *pdfWriter) title(report services.SummaryReport) {
	pdf := writer.pdf
	pdf.SetTextColor(17, 24, 39)
	pdf.SetFont("Helvetica", "B", 18)
	pdf.CellFormat(0, 10, "Health Report", "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(100, 100, 100)
	subtitle := fmt.Sprintf("%d diary entries", report.EntryCount)
	if !report.GeneratedAt.IsZero() {
		subtitle = fmt.Sprintf("Generated %s, %s", report.GeneratedAt.Format("2006-01-02 15:04"), subtitle)
	}
	pdf.CellFormat(0, lineHeight, subtitle, "", 1, "L", false, 0, "")
	pdf.Ln(4)
}

func (writer *pdfWriter) narrative(narrative services.Narrative) {
	writer.heading("AI Summary")
	writer.paragraph(narrative.Summary)

	writer.heading("Insights")
	writer.bullets(narrative.Insights, "No insights available.")

	writer.heading("Recommendations")
	writer.bullets(narrative.Recommendations, "No recommendations available.")
}

func (writer *pdfWriter) overview(overview services.VitalsOverview) {
	writer.heading("Vitals Overview")
	rows := [][]string{
		{"Blood sugar", averageText(overview.AverageSugar, "mg/dL"), overview.SugarTrend},
		{"Heart rate", averageText(overview.AverageHeartRate, "bpm"), overview.HeartRateTrend},
		{"Temperature", averageText(overview.AverageTemp, "°F"), overview.TempTrend},
		{"Systolic", averageText(overview.AverageSystolic, "mmHg"), overview.BPTrend},
		{"Diastolic", averageText(overview.AverageDiastolic, "mmHg"), ""},
	}
	writer.table([]string{"Vital", "Average", "Trend"}, []float64{0.4, 0.35, 0.25}, rows)

	if overview.CommonMood != "" {
		writer.paragraph("Most common mood: " + overview.CommonMood)
	}
}

func (writer *pdfWriter) bloodPressure(points []services.BloodPressurePoint) {
	writer.heading("Blood Pressure")
	if len(points) == 0 {
		writer.paragraph("No blood pressure readings.")
		return
	}
	rows := make([][]string, 0, len(points))
	for _, point := range points {
		rows = append(rows, []string{point.Day, strconv.Itoa(point.Systolic), strconv.Itoa(point.Diastolic)})
	}
	writer.table([]string{"Date", "Systolic", "Diastolic"}, []float64{0.4, 0.3, 0.3}, rows)
}

func (writer *pdfWriter) heartRate(points []services.HeartRatePoint) {
	writer.heading("Heart Rate")
	if len(points) == 0 {
		writer.paragraph("No heart rate readings.")
		return
	}
	rows := make([][]string, 0, len(points))
	for _, point := range points {
		rows = append(rows, []string{point.Day, strconv.FormatFloat(point.HR, 'f', -1, 64)})
	}
	writer.table([]string{"Date", "Heart rate (bpm)"}, []float64{0.5, 0.5}, rows)
}

func (writer *pdfWriter) mood(slices []services.MoodSlice) {
	writer.heading("Mood Distribution")
	rows := make([][]string, 0, len(slices))
	for _, slice := range slices {
		rows = append(rows, []string{slice.Mood, strconv.Itoa(slice.Count)})
	}
	writer.table([]string{"Mood", "Entries"}, []float64{0.5, 0.5}, rows)
}

func (writer *pdfWriter) heading(text string) {
	pdf := writer.pdf
	pdf.Ln(2)
	pdf.SetFont("Helvetica", "B", 13)
	pdf.SetTextColor(17, 24, 39)
	pdf.CellFormat(0, 8, writer.translate(text), "", 1, "L", false, 0, "")
}

func (writer *pdfWriter) paragraph(text string) {
	pdf := writer.pdf
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(55, 65, 81)
	pdf.MultiCell(0, lineHeight, writer.translate(text), "", "L", false)
	pdf.Ln(1)
}

func (writer *pdfWriter) bullets(items []string, empty string) {
	if len(items) == 0 {
		writer.paragraph(empty)
		return
	}
	for _, item := range items {
		writer.paragraph("- " + item)
	}
}

func (writer *pdfWriter) table(header []string, fractions []float64, rows [][]string) {
	pdf := writer.pdf
	widths := make([]float64, len(fractions))
	for index, fraction := range fractions {
		widths[index] = writer.width * fraction
	}

	_, pageHeight := pdf.GetPageSize()
	writeHeader := func() {
		pdf.SetFont("Helvetica", "B", 10)
		pdf.SetFillColor(243, 244, 246)
		pdf.SetTextColor(17, 24, 39)
		for index, title := range header {
			pdf.CellFormat(widths[index], rowHeight, writer.translate(title), "1", 0, "L", true, 0, "")
		}
		pdf.Ln(-1)
		pdf.SetFont("Helvetica", "", 10)
		pdf.SetTextColor(55, 65, 81)
	}

	writeHeader()
	for _, row := range rows {
		if pdf.GetY()+rowHeight > pageHeight-footerMargin {
			pdf.AddPage()
			writeHeader()
		}
		for index, cell := range row {
			pdf.CellFormat(widths[index], rowHeight, writer.translate(cell), "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}
	pdf.Ln(2)
}

func averageText(value *float64, unit string) string {
	if value == nil {
		return "n/a"
	}
	return strconv.FormatFloat(*value, 'f', -1, 64) + " " + unit
}
