package api

import (
	"bytes"
	"context"
	"encoding/base64"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/vytalhealth/vytal/internal/i18n"
	"github.com/vytalhealth/vytal/internal/models"
	"github.com/vytalhealth/vytal/internal/services"
)

type diaryServiceStub struct {
	mu        sync.Mutex
	entries   []models.DiaryEntry
	listErr   error
	submitErr error
	submitted []services.DiaryFormInput
	dashboard services.DashboardView
}

func (stub *diaryServiceStub) Entries(context.Context) ([]models.DiaryEntry, error) {
	if stub.listErr != nil {
		return nil, stub.listErr
	}
	return stub.entries, nil
}

func (stub *diaryServiceStub) Submit(_ context.Context, input services.DiaryFormInput) (models.DiaryEntry, error) {
	stub.mu.Lock()
	defer stub.mu.Unlock()
	stub.submitted = append(stub.submitted, input)
	if stub.submitErr != nil {
		return models.DiaryEntry{}, stub.submitErr
	}
	return models.DiaryEntry{ID: "42", Date: input.Date, Time: input.Time}, nil
}

func (stub *diaryServiceStub) Dashboard(context.Context) services.DashboardView {
	return stub.dashboard
}

type summaryServiceStub struct {
	report services.SummaryReport
}

func (stub *summaryServiceStub) Build(context.Context) services.SummaryReport {
	return stub.report
}

type prescriptionBackendStub struct {
	mu        sync.Mutex
	calls     int
	filenames []string
	result    []models.Prescription
	err       error
}

func (stub *prescriptionBackendStub) UploadPrescription(_ context.Context, filename string, content io.Reader) ([]models.Prescription, error) {
	stub.mu.Lock()
	defer stub.mu.Unlock()
	stub.calls++
	stub.filenames = append(stub.filenames, filename)
	_, _ = io.Copy(io.Discard, content)
	if stub.err != nil {
		return nil, stub.err
	}
	return stub.result, nil
}

type testApp struct {
	app           *fiber.App
	diary         *diaryServiceStub
	summaries     *summaryServiceStub
	rxBackend     *prescriptionBackendStub
	prescriptions *services.PrescriptionService
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()

	i18nManager, err := i18n.NewManager(i18n.LangEN)
	if err != nil {
		t.Fatalf("init i18n: %v", err)
	}

	fixture := &testApp{
		diary:     &diaryServiceStub{},
		summaries: &summaryServiceStub{},
		rxBackend: &prescriptionBackendStub{},
	}
	fixture.prescriptions = services.NewPrescriptionService(fixture.rxBackend, services.NewPrescriptionList(), nil)

	handler, err := NewHandler(Dependencies{
		Diary:         fixture.diary,
		Summaries:     fixture.summaries,
		Prescriptions: fixture.prescriptions,
	}, i18nManager, time.UTC, false, nil)
	if err != nil {
		t.Fatalf("init handler: %v", err)
	}
	handler.now = func() time.Time {
		return time.Date(2026, time.February, 21, 8, 30, 0, 0, time.UTC)
	}

	app := fiber.New()
	app.Use(handler.LanguageMiddleware)
	RegisterRoutes(app, handler)
	fixture.app = app
	return fixture
}

func (fixture *testApp) do(t *testing.T, request *http.Request) *http.Response {
	t.Helper()

	response, err := fixture.app.Test(request, -1)
	if err != nil {
		t.Fatalf("%s %s failed: %v", request.Method, request.URL.Path, err)
	}
	t.Cleanup(func() { response.Body.Close() })
	return response
}

func (fixture *testApp) get(t *testing.T, path string) *http.Response {
	t.Helper()
	return fixture.do(t, httptest.NewRequest(http.MethodGet, path, nil))
}

func newFormRequest(path string, values url.Values) *http.Request {
	request := httptest.NewRequest(http.MethodPost, path, strings.NewReader(values.Encode()))
	request.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return request
}

func newUploadRequest(t *testing.T, filename string, content string) *http.Request {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	if filename != "" {
		part, err := writer.CreateFormFile("file", filename)
		if err != nil {
			t.Fatalf("create form file: %v", err)
		}
		if _, err := io.WriteString(part, content); err != nil {
			t.Fatalf("write form file: %v", err)
		}
	}
	if err := writer.WriteField("csrf_token", "ignored"); err != nil {
		t.Fatalf("write form field: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("close multipart writer: %v", err)
	}

	request := httptest.NewRequest(http.MethodPost, "/prescriptions/upload", &body)
	request.Header.Set("Content-Type", writer.FormDataContentType())
	return request
}

func readBody(t *testing.T, response *http.Response) string {
	t.Helper()

	body, err := io.ReadAll(response.Body)
	if err != nil {
		t.Fatalf("read response body: %v", err)
	}
	return string(body)
}

func responseCookie(response *http.Response, name string) *http.Cookie {
	for _, cookie := range response.Cookies() {
		if cookie != nil && cookie.Name == name {
			return cookie
		}
	}
	return nil
}

func flashFromResponse(t *testing.T, response *http.Response) FlashPayload {
	t.Helper()

	cookie := responseCookie(response, flashCookieName)
	if cookie == nil || cookie.Value == "" {
		t.Fatal("expected flash cookie in response")
	}

	decoded, err := base64.RawURLEncoding.DecodeString(cookie.Value)
	if err != nil {
		t.Fatalf("decode flash payload: %v", err)
	}
	payload := FlashPayload{}
	if err := json.Unmarshal(decoded, &payload); err != nil {
		t.Fatalf("unmarshal flash payload: %v", err)
	}
	return payload
}
