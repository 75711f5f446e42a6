package services

import (
	"context"
	"sync"

	"github.com/vytalhealth/vytal/internal/models"
)

// PrescriptionList holds the simplified prescriptions shown on the
// prescriptions page. It lives in process memory and starts empty.
type PrescriptionList struct {
	mu    sync.RWMutex
	items []models.Prescription
}

func NewPrescriptionList() *PrescriptionList {
	return &PrescriptionList{items: make([]models.Prescription, 0)}
}

func (list *PrescriptionList) List(context.Context) ([]models.Prescription, error) {
	list.mu.RLock()
	defer list.mu.RUnlock()

	return append(make([]models.Prescription, 0, len(list.items)), list.items...), nil
}

// PrependAll places prescriptions ahead of the existing list, keeping their
// relative order.
func (list *PrescriptionList) PrependAll(_ context.Context, prescriptions []models.Prescription) error {
	if len(prescriptions) == 0 {
		return nil
	}

	list.mu.Lock()
	defer list.mu.Unlock()

	merged := make([]models.Prescription, 0, len(prescriptions)+len(list.items))
	merged = append(merged, prescriptions...)
	list.items = append(merged, list.items...)
	return nil
}

func (list *PrescriptionList) Len() int {
	list.mu.RLock()
	defer list.mu.RUnlock()

	return len(list.items)
}
