package services

import (
	"errors"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/vytalhealth/vytal/internal/models"
)

var ErrMissingDateTime = errors.New("diary date and time are required")

var (
	leadingIntegerPattern = regexp.MustCompile(`^[+-]?\d+`)
	leadingFloatPattern   = regexp.MustCompile(`^[+-]?(?:\d+\.?\d*|\.\d+)(?:[eE][+-]?\d+)?`)
)

var validate = validator.New()

// DiaryFormInput carries the raw diary form. Vitals stay strings until
// ParseDiaryForm so partially numeric input keeps its leading number.
type DiaryFormInput struct {
	Date        string `form:"date" json:"date" validate:"required"`
	Time        string `form:"time" json:"time" validate:"required"`
	BPSystolic  string `form:"bp_systolic" json:"bp_systolic"`
	BPDiastolic string `form:"bp_diastolic" json:"bp_diastolic"`
	HeartRate   string `form:"heart_rate" json:"heart_rate"`
	Temperature string `form:"temperature" json:"temperature"`
	BloodSugar  string `form:"blood_sugar" json:"blood_sugar"`
	Mood        string `form:"mood" json:"mood"`
	Symptoms    string `form:"symptoms" json:"symptoms"`
	Notes       string `form:"notes" json:"notes"`
}

// DefaultDiaryForm is the blank form: the current date and minute, empty
// vitals and a neutral mood.
func DefaultDiaryForm(now time.Time) DiaryFormInput {
	return DiaryFormInput{
		Date: now.Format(models.DateLayout),
		Time: now.Format(models.TimeLayout),
		Mood: strconv.Itoa(models.DefaultMoodRating),
	}
}

// ParseDiaryForm validates that date and time are present and converts the
// form into the create payload. Vitals are not range checked.
func ParseDiaryForm(input DiaryFormInput) (models.DiaryPayload, error) {
	input.Date = strings.TrimSpace(input.Date)
	input.Time = strings.TrimSpace(input.Time)
	if err := validate.Struct(input); err != nil {
		return models.DiaryPayload{}, ErrMissingDateTime
	}

	mood := models.DefaultMoodRating
	if rating := parseIntPrefix(input.Mood); rating != nil {
		mood = *rating
	}

	return models.DiaryPayload{
		Date:     input.Date,
		Time:     input.Time,
		BP:       strings.TrimSpace(input.BPSystolic) + "/" + strings.TrimSpace(input.BPDiastolic),
		HR:       parseIntPrefix(input.HeartRate),
		Temp:     parseFloatPrefix(input.Temperature),
		Sugar:    parseIntPrefix(input.BloodSugar),
		Mood:     mood,
		Symptoms: models.SplitSymptoms(input.Symptoms),
		Notes:    input.Notes,
	}, nil
}

// parseIntPrefix reads the leading base-10 integer of raw, ignoring
// whatever follows it. nil means no digits were found.
func parseIntPrefix(raw string) *int {
	match := leadingIntegerPattern.FindString(strings.TrimSpace(raw))
	if match == "" {
		return nil
	}
	value, err := strconv.Atoi(match)
	if err != nil {
		return nil
	}
	return &value
}

func parseFloatPrefix(raw string) *float64 {
	match := leadingFloatPattern.FindString(strings.TrimSpace(raw))
	if match == "" {
		return nil
	}
	value, err := strconv.ParseFloat(match, 64)
	if err != nil {
		return nil
	}
	return &value
}
