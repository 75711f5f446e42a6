package services

import (
	"context"
	"reflect"
	"testing"

	"github.com/vytalhealth/vytal/internal/models"
)

func TestPrescriptionListPrependAllKeepsResponseOrder(t *testing.T) {
	list := NewPrescriptionList()
	ctx := context.Background()

	if err := list.PrependAll(ctx, []models.Prescription{{Medication: "A"}, {Medication: "B"}}); err != nil {
		t.Fatalf("prepend first batch: %v", err)
	}
	if err := list.PrependAll(ctx, []models.Prescription{{Medication: "C"}, {Medication: "D"}}); err != nil {
		t.Fatalf("prepend second batch: %v", err)
	}
	if err := list.PrependAll(ctx, nil); err != nil {
		t.Fatalf("prepend empty batch: %v", err)
	}

	listed, err := list.List(ctx)
	if err != nil {
		t.Fatalf("list prescriptions: %v", err)
	}
	if got := medications(listed); !reflect.DeepEqual(got, []string{"C", "D", "A", "B"}) {
		t.Fatalf("unexpected order: %v", got)
	}
	if list.Len() != 4 {
		t.Fatalf("expected 4 prescriptions, got %d", list.Len())
	}
}

func TestPrescriptionListListReturnsCopy(t *testing.T) {
	list := NewPrescriptionList()
	ctx := context.Background()
	if err := list.PrependAll(ctx, []models.Prescription{{Medication: "A"}}); err != nil {
		t.Fatalf("prepend: %v", err)
	}

	listed, _ := list.List(ctx)
	listed[0].Medication = "changed"

	again, _ := list.List(ctx)
	if again[0].Medication != "A" {
		t.Fatalf("expected stored list untouched, got %q", again[0].Medication)
	}
}

func TestPrescriptionListStartsEmptyForEachProcess(t *testing.T) {
	ctx := context.Background()
	first := NewPrescriptionList()
	if err := first.PrependAll(ctx, []models.Prescription{{Medication: "C"}}); err != nil {
		t.Fatalf("prepend: %v", err)
	}

	restarted := NewPrescriptionList()
	listed, err := restarted.List(ctx)
	if err != nil {
		t.Fatalf("list prescriptions: %v", err)
	}
	if listed == nil || len(listed) != 0 {
		t.Fatalf("expected empty non-nil list after restart, got %#v", listed)
	}
}
