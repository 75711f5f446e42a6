package models

import "github.com/goccy/go-json"

// RawNarrative is the AI summary response before reshaping. Each field keeps
// its raw form because the backend has shipped more than one shape.
type RawNarrative struct {
	Summary         json.RawMessage `json:"summary"`
	Insights        json.RawMessage `json:"insights"`
	Recommendations json.RawMessage `json:"recommendations"`
}
