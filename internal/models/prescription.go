package models

import (
	"strings"

	"github.com/goccy/go-json"
)

const (
	PrescriptionStatusActive = "active"
)

// Prescription is a simplified medication order produced by the backend
// from an uploaded image. It is never constructed locally.
type Prescription struct {
	ID           string `json:"id,omitempty"`
	Medication   string `json:"medication"`
	Dosage       string `json:"dosage"`
	Instructions string `json:"instructions"`
	Duration     string `json:"duration"`
	Purpose      string `json:"purpose"`
	SideEffects  string `json:"side_effects"`
	FollowUp     string `json:"follow_up"`
	OriginalText string `json:"original_text"`
	UploadDate   string `json:"upload_date"`
	Status       string `json:"status"`
}

// UnmarshalJSON accepts the flat snake_case shape, its camelCase twin, and
// the nested {"simplified": {...}} shape.
func (prescription *Prescription) UnmarshalJSON(data []byte) error {
	fields := map[string]json.RawMessage{}
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}

	details := fields
	if nested, ok := fields["simplified"]; ok && !isNullRaw(nested) {
		simplified := map[string]json.RawMessage{}
		if err := json.Unmarshal(nested, &simplified); err == nil {
			details = simplified
		}
	}

	*prescription = Prescription{
		ID:           pickText(fields, "id"),
		Medication:   pickText(details, "medication", "name"),
		Dosage:       pickText(details, "dosage"),
		Instructions: pickText(details, "instructions"),
		Duration:     pickText(details, "duration"),
		Purpose:      pickText(details, "purpose"),
		SideEffects:  pickText(details, "side_effects", "sideEffects"),
		FollowUp:     pickText(details, "follow_up", "followUp"),
		OriginalText: pickText(fields, "original_text", "originalText"),
		UploadDate:   pickText(fields, "upload_date", "uploadDate"),
		Status:       pickText(fields, "status"),
	}
	if prescription.Status == "" {
		prescription.Status = PrescriptionStatusActive
	}
	return nil
}

func (prescription Prescription) IsActive() bool {
	return strings.EqualFold(prescription.Status, PrescriptionStatusActive)
}

func pickText(fields map[string]json.RawMessage, keys ...string) string {
	for _, key := range keys {
		if raw, ok := fields[key]; ok {
			if value := strings.TrimSpace(rawText(raw)); value != "" {
				return value
			}
		}
	}
	return ""
}
