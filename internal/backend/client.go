package backend

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

const (
	pathDiary              = "/api/diary"
	pathDiaryLatest        = "/api/diary/latest"
	pathAISummary          = "/api/summaries/ai"
	pathPrescriptionUpload = "/api/prescriptions/upload"

	headerContentType = "Content-Type"
	headerAccept      = "Accept"
	mimeJSON          = "application/json"

	maxErrorBodyBytes = 64 << 10
)

var ErrEmptyBaseURL = errors.New("backend base url is required")

// Client talks to the health backend. Zero timeout means calls are bounded
// only by the caller's context.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
}

func NewClient(baseURL string, timeout time.Duration, logger *zap.Logger) (*Client, error) {
	trimmed := strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if trimmed == "" {
		return nil, ErrEmptyBaseURL
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		baseURL:    trimmed,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}, nil
}

func (client *Client) BaseURL() string {
	return client.baseURL
}

// StatusError reports a non-2xx backend response. Message carries the
// backend's own error text when it sent one.
type StatusError struct {
	Method  string
	Path    string
	Status  int
	Message string
}

func (err *StatusError) Error() string {
	if strings.TrimSpace(err.Message) != "" {
		return err.Message
	}
	return fmt.Sprintf("%s %s: unexpected status %d", err.Method, err.Path, err.Status)
}

func (err *StatusError) BackendMessage() string {
	return err.Message
}

func (client *Client) newRequest(ctx context.Context, method string, path string, body io.Reader) (*http.Request, error) {
	request, err := http.NewRequestWithContext(ctx, method, client.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("create %s %s request: %w", method, path, err)
	}
	request.Header.Set(headerAccept, mimeJSON)
	return request, nil
}

func (client *Client) do(request *http.Request, target any, acceptedStatuses ...int) error {
	started := time.Now()
	path := request.URL.Path

	response, err := client.httpClient.Do(request)
	if err != nil {
		client.logger.Warn("backend request failed",
			zap.String("method", request.Method),
			zap.String("path", path),
			zap.Error(err),
		)
		return fmt.Errorf("send %s %s: %w", request.Method, path, err)
	}
	defer response.Body.Close()

	client.logger.Debug("backend request completed",
		zap.String("method", request.Method),
		zap.String("path", path),
		zap.Int("status", response.StatusCode),
		zap.Duration("elapsed", time.Since(started)),
	)

	if !statusAccepted(response.StatusCode, acceptedStatuses) {
		return &StatusError{
			Method:  request.Method,
			Path:    path,
			Status:  response.StatusCode,
			Message: readErrorMessage(response.Body),
		}
	}

	if target == nil {
		_, _ = io.Copy(io.Discard, response.Body)
		return nil
	}
	if err := json.NewDecoder(response.Body).Decode(target); err != nil {
		return fmt.Errorf("decode %s %s response: %w", request.Method, path, err)
	}
	return nil
}

func (client *Client) doJSON(ctx context.Context, method string, path string, payload any, target any, acceptedStatuses ...int) error {
	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("encode %s %s payload: %w", method, path, err)
		}
		body = bytes.NewReader(encoded)
	}

	request, err := client.newRequest(ctx, method, path, body)
	if err != nil {
		return err
	}
	if payload != nil {
		request.Header.Set(headerContentType, mimeJSON)
	}
	return client.do(request, target, acceptedStatuses...)
}

func statusAccepted(status int, accepted []int) bool {
	if len(accepted) == 0 {
		return status >= 200 && status < 300
	}
	for _, candidate := range accepted {
		if status == candidate {
			return true
		}
	}
	return false
}

func readErrorMessage(body io.Reader) string {
	raw, err := io.ReadAll(io.LimitReader(body, maxErrorBodyBytes))
	if err != nil || len(bytes.TrimSpace(raw)) == 0 {
		return ""
	}

	payload := struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}{}
	if err := json.Unmarshal(raw, &payload); err != nil {
		return ""
	}
	if message := strings.TrimSpace(payload.Error); message != "" {
		return message
	}
	return strings.TrimSpace(payload.Message)
}
