package charts

import (
	"fmt"
	"html/template"

	echarts "github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/render"
	"github.com/vytalhealth/vytal/internal/services"
)

// ScriptURL is the echarts bundle the rendered snippets expect on the page.
const ScriptURL = "https://go-echarts.github.io/go-echarts-assets/assets/" + opts.EchartsJS

const (
	chartWidth  = "100%"
	chartHeight = "320px"

	systolicColor  = "#6366f1"
	diastolicColor = "#06b6d4"
	heartRateColor = "#f43f5e"
)

// Rendered holds the three summary charts as page fragments: a container
// element followed by its init script.
type Rendered struct {
	BloodPressure template.HTML
	HeartRate     template.HTML
	Mood          template.HTML
}

func RenderSummary(summary services.SummaryCharts) (Rendered, error) {
	bloodPressure, err := renderHTML(BloodPressureLine(summary.BloodPressure))
	if err != nil {
		return Rendered{}, fmt.Errorf("render blood pressure chart: %w", err)
	}
	heartRate, err := renderHTML(HeartRateBar(summary.HeartRate))
	if err != nil {
		return Rendered{}, fmt.Errorf("render heart rate chart: %w", err)
	}
	mood, err := renderHTML(MoodPie(summary.Mood))
	if err != nil {
		return Rendered{}, fmt.Errorf("render mood chart: %w", err)
	}
	return Rendered{BloodPressure: bloodPressure, HeartRate: heartRate, Mood: mood}, nil
}

func BloodPressureLine(points []services.BloodPressurePoint) *echarts.Line {
	days := make([]string, 0, len(points))
	systolic := make([]opts.LineData, 0, len(points))
	diastolic := make([]opts.LineData, 0, len(points))
	for _, point := range points {
		days = append(days, point.Day)
		systolic = append(systolic, opts.LineData{Value: point.Systolic})
		diastolic = append(diastolic, opts.LineData{Value: point.Diastolic})
	}

	line := echarts.NewLine()
	line.SetGlobalOptions(
		echarts.WithInitializationOpts(opts.Initialization{Width: chartWidth, Height: chartHeight}),
		echarts.WithTitleOpts(opts.Title{Title: "Blood Pressure"}),
		echarts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		echarts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
		echarts.WithYAxisOpts(opts.YAxis{Name: "mmHg"}),
	)
	line.SetXAxis(days).
		AddSeries("Systolic", systolic, echarts.WithItemStyleOpts(opts.ItemStyle{Color: systolicColor})).
		AddSeries("Diastolic", diastolic, echarts.WithItemStyleOpts(opts.ItemStyle{Color: diastolicColor})).
		SetSeriesOptions(
			echarts.WithLineChartOpts(opts.LineChart{
				Smooth:     opts.Bool(true),
				ShowSymbol: opts.Bool(true),
			}),
		)
	return line
}

func HeartRateBar(points []services.HeartRatePoint) *echarts.Bar {
	days := make([]string, 0, len(points))
	rates := make([]opts.BarData, 0, len(points))
	for _, point := range points {
		days = append(days, point.Day)
		rates = append(rates, opts.BarData{Value: point.HR})
	}

	bar := echarts.NewBar()
	bar.SetGlobalOptions(
		echarts.WithInitializationOpts(opts.Initialization{Width: chartWidth, Height: chartHeight}),
		echarts.WithTitleOpts(opts.Title{Title: "Heart Rate"}),
		echarts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		echarts.WithLegendOpts(opts.Legend{Show: opts.Bool(false)}),
		echarts.WithYAxisOpts(opts.YAxis{Name: "bpm"}),
	)
	bar.SetXAxis(days).
		AddSeries("Heart Rate", rates, echarts.WithItemStyleOpts(opts.ItemStyle{Color: heartRateColor}))
	return bar
}

// MoodPie draws one slice per bucket in the bucket's own color.
func MoodPie(slices []services.MoodSlice) *echarts.Pie {
	data := make([]opts.PieData, 0, len(slices))
	for _, slice := range slices {
		data = append(data, opts.PieData{
			Name:      slice.Mood,
			Value:     slice.Count,
			ItemStyle: &opts.ItemStyle{Color: slice.Color},
		})
	}

	pie := echarts.NewPie()
	pie.SetGlobalOptions(
		echarts.WithInitializationOpts(opts.Initialization{Width: chartWidth, Height: chartHeight}),
		echarts.WithTitleOpts(opts.Title{Title: "Mood Distribution"}),
		echarts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		echarts.WithLegendOpts(opts.Legend{Show: opts.Bool(true), Bottom: "0"}),
	)
	pie.AddSeries("Mood", data).
		SetSeriesOptions(
			echarts.WithLabelOpts(opts.Label{Show: opts.Bool(true), Formatter: "{b}: {c}"}),
			echarts.WithPieChartOpts(opts.PieChart{Radius: []string{"40%", "70%"}}),
		)
	return pie
}

// renderHTML turns a chart into an embeddable fragment. The snippet
// renderer panics on template errors, so that is reported as an error.
func renderHTML(chart render.Renderer) (fragment template.HTML, err error) {
	defer func() {
		if recovered := recover(); recovered != nil {
			err = fmt.Errorf("render chart snippet: %v", recovered)
		}
	}()

	snippet := chart.RenderSnippet()
	return template.HTML(snippet.Element + snippet.Script), nil
}
