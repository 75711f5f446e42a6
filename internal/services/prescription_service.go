package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync/atomic"

	"github.com/vytalhealth/vytal/internal/models"
	"go.uber.org/zap"
)

const FallbackUploadFailureMessage = "Failed to process prescription"

var (
	ErrNoFile           = errors.New("no prescription file selected")
	ErrUploadInProgress = errors.New("prescription upload already in progress")
	ErrListUpdate       = errors.New("update displayed prescriptions")
)

type PrescriptionBackend interface {
	UploadPrescription(ctx context.Context, filename string, content io.Reader) ([]models.Prescription, error)
}

type PrescriptionStore interface {
	List(ctx context.Context) ([]models.Prescription, error)
	PrependAll(ctx context.Context, prescriptions []models.Prescription) error
}

// PrescriptionUpload is one selected file. A nil Content or blank Filename
// means nothing was selected.
type PrescriptionUpload struct {
	Filename string `validate:"required"`
	Content  io.Reader
}

// PrescriptionService owns the displayed list of simplified prescriptions.
// Only one upload runs at a time.
type PrescriptionService struct {
	backend  PrescriptionBackend
	store    PrescriptionStore
	inFlight atomic.Bool
	logger   *zap.Logger
}

func NewPrescriptionService(backend PrescriptionBackend, store PrescriptionStore, logger *zap.Logger) *PrescriptionService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PrescriptionService{
		backend: backend,
		store:   store,
		logger:  logger,
	}
}

func (service *PrescriptionService) InFlight() bool {
	return service.inFlight.Load()
}

func (service *PrescriptionService) List(ctx context.Context) ([]models.Prescription, error) {
	prescriptions, err := service.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list prescriptions: %w", err)
	}
	return prescriptions, nil
}

// Upload sends the file and prepends the returned prescriptions, in
// response order, ahead of everything already displayed.
func (service *PrescriptionService) Upload(ctx context.Context, upload PrescriptionUpload) ([]models.Prescription, error) {
	upload.Filename = strings.TrimSpace(upload.Filename)
	if upload.Content == nil || validate.Struct(upload) != nil {
		return nil, ErrNoFile
	}
	if !service.inFlight.CompareAndSwap(false, true) {
		return nil, ErrUploadInProgress
	}
	defer service.inFlight.Store(false)

	prescriptions, err := service.backend.UploadPrescription(ctx, upload.Filename, upload.Content)
	if err != nil {
		service.logger.Warn("prescription upload failed",
			zap.String("filename", upload.Filename),
			zap.Error(err),
		)
		return nil, fmt.Errorf("upload prescription: %w", err)
	}

	if err := service.store.PrependAll(ctx, prescriptions); err != nil {
		service.logger.Error("store simplified prescriptions failed",
			zap.String("filename", upload.Filename),
			zap.Int("prescriptions", len(prescriptions)),
			zap.Error(err),
		)
		return prescriptions, ErrListUpdate
	}
	service.logger.Info("prescription simplified",
		zap.String("filename", upload.Filename),
		zap.Int("prescriptions", len(prescriptions)),
	)
	return prescriptions, nil
}

// UploadFailureMessage is the notice text for a failed upload: the
// backend's own message when it sent one, else a generic fallback. Local
// list failures never expose their cause.
func UploadFailureMessage(err error) string {
	if err == nil || errors.Is(err, ErrListUpdate) {
		return FallbackUploadFailureMessage
	}
	var messenger interface{ BackendMessage() string }
	if errors.As(err, &messenger) {
		if message := strings.TrimSpace(messenger.BackendMessage()); message != "" {
			return message
		}
	}
	if unwrapped := errors.Unwrap(err); unwrapped != nil {
		if message := strings.TrimSpace(unwrapped.Error()); message != "" {
			return message
		}
	}
	if message := strings.TrimSpace(err.Error()); message != "" {
		return message
	}
	return FallbackUploadFailureMessage
}
