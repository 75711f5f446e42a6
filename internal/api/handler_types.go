package api

import (
	"context"
	"html/template"
	"time"

	"github.com/vytalhealth/vytal/internal/i18n"
	"github.com/vytalhealth/vytal/internal/models"
	"github.com/vytalhealth/vytal/internal/services"
	"go.uber.org/zap"
)

type DiaryService interface {
	Entries(ctx context.Context) ([]models.DiaryEntry, error)
	Submit(ctx context.Context, input services.DiaryFormInput) (models.DiaryEntry, error)
	Dashboard(ctx context.Context) services.DashboardView
}

type SummaryService interface {
	Build(ctx context.Context) services.SummaryReport
}

type PrescriptionService interface {
	InFlight() bool
	List(ctx context.Context) ([]models.Prescription, error)
	Upload(ctx context.Context, upload services.PrescriptionUpload) ([]models.Prescription, error)
}

// Dependencies are the services the pages are built from.
type Dependencies struct {
	Diary         DiaryService
	Summaries     SummaryService
	Prescriptions PrescriptionService
}

type Handler struct {
	diary         DiaryService
	summaries     SummaryService
	prescriptions PrescriptionService
	location      *time.Location
	cookieSecure  bool
	i18n          *i18n.Manager
	templates     map[string]*template.Template
	logger        *zap.Logger
	now           func() time.Time
}

// FlashPayload is the one-shot notice shown after a redirect. Title and Body
// are already localized when the cookie is written.
type FlashPayload struct {
	Kind  string `json:"kind,omitempty"`
	Title string `json:"title,omitempty"`
	Body  string `json:"body,omitempty"`
}

const (
	noticeSuccess = "success"
	noticeError   = "error"
	noticeInfo    = "info"
)

type MoodOption struct {
	Value    int
	LabelKey string
	Selected bool
}
