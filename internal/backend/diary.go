package backend

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/goccy/go-json"
	"github.com/vytalhealth/vytal/internal/models"
)

func (client *Client) ListEntries(ctx context.Context) ([]models.DiaryEntry, error) {
	entries := make([]models.DiaryEntry, 0)
	if err := client.doJSON(ctx, http.MethodGet, pathDiary, nil, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// LatestEntry returns found=false when the backend answers with a
// {"message": ...} body, which means no entry has been logged yet.
func (client *Client) LatestEntry(ctx context.Context) (models.DiaryEntry, bool, error) {
	raw := json.RawMessage{}
	if err := client.doJSON(ctx, http.MethodGet, pathDiaryLatest, nil, &raw); err != nil {
		return models.DiaryEntry{}, false, err
	}

	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return models.DiaryEntry{}, false, nil
	}

	marker := struct {
		Message string `json:"message"`
	}{}
	if err := json.Unmarshal(trimmed, &marker); err == nil && strings.TrimSpace(marker.Message) != "" {
		return models.DiaryEntry{}, false, nil
	}

	entry := models.DiaryEntry{}
	if err := json.Unmarshal(trimmed, &entry); err != nil {
		return models.DiaryEntry{}, false, fmt.Errorf("decode latest diary entry: %w", err)
	}
	return entry, true, nil
}

// CreateEntry posts a new entry and returns the record the backend echoed.
func (client *Client) CreateEntry(ctx context.Context, payload models.DiaryPayload) (models.DiaryEntry, error) {
	created := models.DiaryEntry{}
	if err := client.doJSON(ctx, http.MethodPost, pathDiary, payload, &created); err != nil {
		return models.DiaryEntry{}, err
	}
	return created, nil
}

func (client *Client) AISummary(ctx context.Context) (models.RawNarrative, error) {
	narrative := models.RawNarrative{}
	if err := client.doJSON(ctx, http.MethodGet, pathAISummary, nil, &narrative); err != nil {
		return models.RawNarrative{}, err
	}
	return narrative, nil
}
