package models

import (
	"testing"

	"github.com/goccy/go-json"
)

func TestPrescriptionDecodesNestedSimplifiedShape(t *testing.T) {
	raw := `{
		"id": 1,
		"originalText": "Lisinopril 10mg PO QD",
		"simplified": {
			"medication": "Lisinopril",
			"dosage": "10mg",
			"instructions": "Take 1 pill every morning",
			"duration": "30 days",
			"purpose": "Blood pressure",
			"sideEffects": "Dizziness",
			"followUp": "See your doctor in 30 days"
		},
		"uploadDate": "2026-01-20",
		"status": "active"
	}`

	prescription := Prescription{}
	if err := json.Unmarshal([]byte(raw), &prescription); err != nil {
		t.Fatalf("decode prescription: %v", err)
	}

	if prescription.ID != "1" || prescription.Medication != "Lisinopril" || prescription.Dosage != "10mg" {
		t.Fatalf("unexpected identity fields: %#v", prescription)
	}
	if prescription.SideEffects != "Dizziness" || prescription.FollowUp != "See your doctor in 30 days" {
		t.Fatalf("expected camelCase nested fields decoded, got %#v", prescription)
	}
	if prescription.OriginalText != "Lisinopril 10mg PO QD" || prescription.UploadDate != "2026-01-20" {
		t.Fatalf("expected top-level fields decoded, got %#v", prescription)
	}
	if !prescription.IsActive() {
		t.Fatalf("expected active status, got %q", prescription.Status)
	}
}

func TestPrescriptionDecodesFlatShapeAndDefaultsStatus(t *testing.T) {
	raw := `{"medication":"Metformin","dosage":"500mg","side_effects":"Nausea","follow_up":"A1C in 3 months","original_text":"Metformin 500mg BID","upload_date":"2026-01-15"}`

	prescription := Prescription{}
	if err := json.Unmarshal([]byte(raw), &prescription); err != nil {
		t.Fatalf("decode prescription: %v", err)
	}

	if prescription.Medication != "Metformin" || prescription.SideEffects != "Nausea" || prescription.FollowUp != "A1C in 3 months" {
		t.Fatalf("unexpected flat decode: %#v", prescription)
	}
	if prescription.Status != PrescriptionStatusActive {
		t.Fatalf("expected default status active, got %q", prescription.Status)
	}
}
