package services

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/goccy/go-json"
	"github.com/vytalhealth/vytal/internal/models"
)

const (
	NoSummaryAvailable   = "No summary available."
	NoAISummaryAvailable = "No AI summary available."

	missingSummaryValue = "n/a"
)

type Narrative struct {
	Summary         string
	Insights        []string
	Recommendations []string
}

// NarrativeUnavailable is shown when the AI summary could not be fetched.
func NarrativeUnavailable() Narrative {
	return Narrative{
		Summary:         NoAISummaryAvailable,
		Insights:        []string{},
		Recommendations: []string{},
	}
}

type structuredSummary struct {
	BloodPressureRange json.RawMessage `json:"blood_pressure_range"`
	HeartRateRange     json.RawMessage `json:"heart_rate_range"`
	MoodRange          json.RawMessage `json:"mood_range"`
	SugarRange         json.RawMessage `json:"sugar_range"`
	TotalEntries       json.RawMessage `json:"total_entries"`
}

type structuredRecommendations struct {
	FollowUp   json.RawMessage `json:"follow_up"`
	Immediate  json.RawMessage `json:"immediate"`
	Preventive json.RawMessage `json:"preventive"`
}

// ReshapeNarrative flattens either backend narrative shape into display
// strings.
func ReshapeNarrative(raw models.RawNarrative) Narrative {
	return Narrative{
		Summary:         reshapeSummary(raw.Summary),
		Insights:        reshapeInsights(raw.Insights),
		Recommendations: reshapeRecommendations(raw.Recommendations),
	}
}

func reshapeSummary(raw json.RawMessage) string {
	trimmed := bytes.TrimSpace(raw)
	if isAbsent(trimmed) {
		return NoSummaryAvailable
	}
	if trimmed[0] != '{' {
		if text := valueText(trimmed); text != "" {
			return text
		}
		return NoSummaryAvailable
	}

	summary := structuredSummary{}
	if err := json.Unmarshal(trimmed, &summary); err != nil {
		return NoSummaryAvailable
	}
	return fmt.Sprintf(
		"Blood Pressure %s, Heart Rate %s, Mood %s, Sugar %s, Total Entries: %s",
		summaryValue(summary.BloodPressureRange),
		summaryValue(summary.HeartRateRange),
		summaryValue(summary.MoodRange),
		summaryValue(summary.SugarRange),
		summaryValue(summary.TotalEntries),
	)
}

func reshapeInsights(raw json.RawMessage) []string {
	insights := make([]string, 0)
	for _, value := range orderedValues(raw) {
		if text := valueText(value); text != "" {
			insights = append(insights, text)
		}
	}
	return insights
}

func reshapeRecommendations(raw json.RawMessage) []string {
	recommendations := make([]string, 0)
	trimmed := bytes.TrimSpace(raw)
	if isAbsent(trimmed) {
		return recommendations
	}
	if trimmed[0] != '{' {
		for _, value := range orderedValues(trimmed) {
			if text := valueText(value); text != "" {
				recommendations = append(recommendations, text)
			}
		}
		return recommendations
	}

	structured := structuredRecommendations{}
	if err := json.Unmarshal(trimmed, &structured); err != nil {
		return recommendations
	}
	if followUp := valueText(structured.FollowUp); followUp != "" {
		recommendations = append(recommendations, "Follow-up: "+followUp)
	}
	for _, value := range orderedValues(structured.Immediate) {
		if text := valueText(value); text != "" {
			recommendations = append(recommendations, "Immediate: "+text)
		}
	}
	if preventive := valueText(structured.Preventive); preventive != "" {
		recommendations = append(recommendations, "Preventive: "+preventive)
	}
	return recommendations
}

// orderedValues lists the items of an array, the values of an object in
// document order, or a lone scalar as a single item.
func orderedValues(raw json.RawMessage) []json.RawMessage {
	trimmed := bytes.TrimSpace(raw)
	if isAbsent(trimmed) {
		return nil
	}

	switch trimmed[0] {
	case '[':
		items := make([]json.RawMessage, 0)
		if err := json.Unmarshal(trimmed, &items); err != nil {
			return nil
		}
		return items
	case '{':
		return objectValuesInOrder(trimmed)
	default:
		return []json.RawMessage{trimmed}
	}
}

func objectValuesInOrder(raw []byte) []json.RawMessage {
	decoder := json.NewDecoder(bytes.NewReader(raw))
	if _, err := decoder.Token(); err != nil {
		return nil
	}

	values := make([]json.RawMessage, 0)
	for decoder.More() {
		if _, err := decoder.Token(); err != nil {
			return values
		}
		value := json.RawMessage{}
		if err := decoder.Decode(&value); err != nil {
			if err == io.EOF {
				break
			}
			return values
		}
		values = append(values, value)
	}
	return values
}

func summaryValue(raw json.RawMessage) string {
	if text := valueText(raw); text != "" {
		return text
	}
	return missingSummaryValue
}

// valueText renders strings unquoted and any other JSON value compactly.
func valueText(raw json.RawMessage) string {
	trimmed := bytes.TrimSpace(raw)
	if isAbsent(trimmed) {
		return ""
	}
	if trimmed[0] == '"' {
		var text string
		if err := json.Unmarshal(trimmed, &text); err != nil {
			return ""
		}
		return strings.TrimSpace(text)
	}

	var compact bytes.Buffer
	if err := json.Compact(&compact, trimmed); err != nil {
		return string(trimmed)
	}
	return compact.String()
}

func isAbsent(raw []byte) bool {
	return len(raw) == 0 || bytes.Equal(raw, []byte("null")) || bytes.Equal(raw, []byte("false"))
}
