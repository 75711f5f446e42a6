package api

import (
	"errors"
	"time"

	"github.com/vytalhealth/vytal/internal/i18n"
	"github.com/vytalhealth/vytal/internal/templates"
	"go.uber.org/zap"
)

func NewHandler(deps Dependencies, i18nManager *i18n.Manager, location *time.Location, cookieSecure bool, logger *zap.Logger) (*Handler, error) {
	if deps.Diary == nil || deps.Summaries == nil || deps.Prescriptions == nil {
		return nil, errors.New("diary, summary and prescription services are required")
	}
	if i18nManager == nil {
		return nil, errors.New("i18n manager is required")
	}
	if location == nil {
		location = time.UTC
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	parsed, err := parsePageTemplates(templates.FS, newTemplateFuncMap(), pageTemplates)
	if err != nil {
		return nil, err
	}

	return &Handler{
		diary:         deps.Diary,
		summaries:     deps.Summaries,
		prescriptions: deps.Prescriptions,
		location:      location,
		cookieSecure:  cookieSecure,
		i18n:          i18nManager,
		templates:     parsed,
		logger:        logger,
		now:           time.Now,
	}, nil
}
