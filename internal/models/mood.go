package models

import (
	"math"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
)

const (
	MoodExcellent = "Excellent"
	MoodGood      = "Good"
	MoodFair      = "Fair"
	MoodPoor      = "Poor"

	MinMoodRating     = 1
	MaxMoodRating     = 5
	DefaultMoodRating = 3
)

// Mood keeps both historical representations: a 1-5 rating from the diary
// form, or a qualitative label from older entries. They are not reconciled.
type Mood struct {
	Rating int
	Label  string
}

func MoodFromRating(rating int) Mood {
	return Mood{Rating: rating}
}

func MoodFromLabel(label string) Mood {
	return Mood{Label: strings.TrimSpace(label)}
}

func (mood Mood) IsSet() bool {
	return mood.Rating != 0 || strings.TrimSpace(mood.Label) != ""
}

func (mood Mood) IsRating() bool {
	return mood.Label == "" && mood.Rating != 0
}

func (mood Mood) String() string {
	if mood.Label != "" {
		return mood.Label
	}
	if mood.Rating != 0 {
		return strconv.Itoa(mood.Rating)
	}
	return ""
}

func (mood Mood) MarshalJSON() ([]byte, error) {
	switch {
	case mood.Label != "":
		return json.Marshal(mood.Label)
	case mood.Rating != 0:
		return json.Marshal(mood.Rating)
	default:
		return []byte("null"), nil
	}
}

func (mood *Mood) UnmarshalJSON(data []byte) error {
	decoded, err := decodeMood(data)
	if err != nil {
		return err
	}
	*mood = decoded
	return nil
}

func decodeMood(raw json.RawMessage) (Mood, error) {
	if isNullRaw(raw) {
		return Mood{}, nil
	}

	text := strings.TrimSpace(rawText(raw))
	if text == "" {
		return Mood{}, nil
	}
	if rating, ok := parseMoodRating(text); ok {
		return Mood{Rating: rating}, nil
	}
	return Mood{Label: text}, nil
}

// parseMoodRating accepts finite numbers that fit an int32. Anything else,
// including "NaN" and "Infinity", stays a label.
func parseMoodRating(text string) (int, bool) {
	value, err := strconv.ParseFloat(text, 64)
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, false
	}
	if value < math.MinInt32 || value > math.MaxInt32 {
		return 0, false
	}
	return int(value), true
}
