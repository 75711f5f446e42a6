package models

import (
	"bytes"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
)

const DateLayout = "2006-01-02"
const TimeLayout = "15:04"

// DiaryEntry is the canonical diary record. Every historical wire variant
// is folded into it by UnmarshalJSON, so views never repeat field fallbacks.
type DiaryEntry struct {
	ID            string   `json:"id"`
	Date          string   `json:"date"`
	Time          string   `json:"time,omitempty"`
	BloodPressure string   `json:"bp"`
	HeartRate     *float64 `json:"hr"`
	Temperature   *float64 `json:"temp"`
	Sugar         *float64 `json:"sugar"`
	Mood          Mood     `json:"mood"`
	Symptoms      []string `json:"symptoms"`
	Notes         string   `json:"notes,omitempty"`
}

type wireDiaryEntry struct {
	ID            json.RawMessage `json:"id"`
	Date          json.RawMessage `json:"date"`
	Time          json.RawMessage `json:"time"`
	BP            json.RawMessage `json:"bp"`
	BloodPressure json.RawMessage `json:"bloodPressure"`
	HR            json.RawMessage `json:"hr"`
	HeartRate     json.RawMessage `json:"heartRate"`
	Temp          json.RawMessage `json:"temp"`
	Temperature   json.RawMessage `json:"temperature"`
	Sugar         json.RawMessage `json:"sugar"`
	Mood          json.RawMessage `json:"mood"`
	Symptoms      json.RawMessage `json:"symptoms"`
	Notes         json.RawMessage `json:"notes"`
}

func (entry *DiaryEntry) UnmarshalJSON(data []byte) error {
	wire := wireDiaryEntry{}
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}

	mood, err := decodeMood(wire.Mood)
	if err != nil {
		mood = Mood{}
	}

	*entry = DiaryEntry{
		ID:            rawText(wire.ID),
		Date:          strings.TrimSpace(rawText(wire.Date)),
		Time:          strings.TrimSpace(rawText(wire.Time)),
		BloodPressure: strings.TrimSpace(firstNonEmpty(rawText(wire.BloodPressure), rawText(wire.BP))),
		HeartRate:     firstTruthyNumber(wire.HeartRate, wire.HR),
		Temperature:   firstTruthyNumber(wire.Temperature, wire.Temp),
		Sugar:         rawNumber(wire.Sugar),
		Mood:          mood,
		Symptoms:      decodeSymptoms(wire.Symptoms),
		Notes:         rawText(wire.Notes),
	}
	return nil
}

// HasHeartRate mirrors a truthiness check: nil and zero both mean absent.
func (entry DiaryEntry) HasHeartRate() bool {
	return entry.HeartRate != nil && *entry.HeartRate != 0
}

func isNullRaw(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}

// rawText renders a scalar as text: strings unquoted, numbers verbatim.
// Objects, arrays and booleans render empty.
func rawText(raw json.RawMessage) string {
	if isNullRaw(raw) {
		return ""
	}
	trimmed := bytes.TrimSpace(raw)
	switch trimmed[0] {
	case '"':
		var value string
		if err := json.Unmarshal(trimmed, &value); err != nil {
			return ""
		}
		return value
	case '{', '[', 't', 'f':
		return ""
	default:
		return string(trimmed)
	}
}

func rawNumber(raw json.RawMessage) *float64 {
	text := strings.TrimSpace(rawText(raw))
	if text == "" {
		return nil
	}
	value, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return nil
	}
	return &value
}

func firstTruthyNumber(primary json.RawMessage, fallback json.RawMessage) *float64 {
	if value := rawNumber(primary); value != nil && *value != 0 {
		return value
	}
	return rawNumber(fallback)
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if strings.TrimSpace(value) != "" {
			return value
		}
	}
	return ""
}

func decodeSymptoms(raw json.RawMessage) []string {
	if isNullRaw(raw) {
		return nil
	}
	trimmed := bytes.TrimSpace(raw)
	if trimmed[0] != '[' {
		return SplitSymptoms(rawText(trimmed))
	}

	items := make([]json.RawMessage, 0)
	if err := json.Unmarshal(trimmed, &items); err != nil {
		return nil
	}
	symptoms := make([]string, 0, len(items))
	for _, item := range items {
		name := strings.TrimSpace(rawText(item))
		if name == "" {
			continue
		}
		symptoms = append(symptoms, name)
	}
	return symptoms
}
