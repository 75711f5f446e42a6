package services

import (
	"strconv"

	"github.com/vytalhealth/vytal/internal/models"
)

const MoodHeartCount = 5

type HistoryCard struct {
	ID            string
	Date          string
	Time          string
	MoodHearts    []bool
	MoodLabel     string
	BloodPressure string
	HeartRate     string
	Temperature   string
	Sugar         string
	Symptoms      []string
	Notes         string
}

// BuildHistoryCards renders entries for the history tab. Missing fields
// render empty.
func BuildHistoryCards(entries []models.DiaryEntry) []HistoryCard {
	cards := make([]HistoryCard, 0, len(entries))
	for _, entry := range entries {
		symptoms := entry.Symptoms
		if symptoms == nil {
			symptoms = []string{}
		}
		cards = append(cards, HistoryCard{
			ID:            entry.ID,
			Date:          entry.Date,
			Time:          entry.Time,
			MoodHearts:    MoodHearts(entry.Mood),
			MoodLabel:     entry.Mood.Label,
			BloodPressure: entry.BloodPressure,
			HeartRate:     FormatReading(entry.HeartRate),
			Temperature:   FormatReading(entry.Temperature),
			Sugar:         FormatReading(entry.Sugar),
			Symptoms:      symptoms,
			Notes:         entry.Notes,
		})
	}
	return cards
}

// MoodHearts fills hearts up to a numeric rating. Label moods leave every
// heart empty.
func MoodHearts(mood models.Mood) []bool {
	hearts := make([]bool, MoodHeartCount)
	if !mood.IsRating() {
		return hearts
	}
	for index := range hearts {
		hearts[index] = index < mood.Rating
	}
	return hearts
}

func FormatReading(value *float64) string {
	if value == nil {
		return ""
	}
	return strconv.FormatFloat(*value, 'f', -1, 64)
}
