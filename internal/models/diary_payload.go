package models

// DiaryPayload is the create body sent to the backend. Numeric vitals are
// pointers: a value that did not parse is sent as null.
type DiaryPayload struct {
	Date     string   `json:"date"`
	Time     string   `json:"time"`
	BP       string   `json:"bp"`
	HR       *int     `json:"hr"`
	Temp     *float64 `json:"temp"`
	Sugar    *int     `json:"sugar"`
	Mood     int      `json:"mood"`
	Symptoms []string `json:"symptoms"`
	Notes    string   `json:"notes"`
}

// Entry renders the payload in canonical form, used to fill fields the
// backend left out of its create response.
func (payload DiaryPayload) Entry() DiaryEntry {
	entry := DiaryEntry{
		Date:          payload.Date,
		Time:          payload.Time,
		BloodPressure: payload.BP,
		Temperature:   payload.Temp,
		Mood:          MoodFromRating(payload.Mood),
		Symptoms:      append([]string(nil), payload.Symptoms...),
		Notes:         payload.Notes,
	}
	if payload.HR != nil {
		value := float64(*payload.HR)
		entry.HeartRate = &value
	}
	if payload.Sugar != nil {
		value := float64(*payload.Sugar)
		entry.Sugar = &value
	}
	return entry
}
