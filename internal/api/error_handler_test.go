package api

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func TestErrorHandlerKeepsFiberStatus(t *testing.T) {
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler})
	app.Get("/api/limited", func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusRequestEntityTooLarge, "request entity too large")
	})
	app.Get("/broken", func(c *fiber.Ctx) error {
		return errors.New("boom")
	})

	response, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/limited", nil), -1)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer response.Body.Close()
	if response.StatusCode != http.StatusRequestEntityTooLarge {
		t.Fatalf("expected 413, got %d", response.StatusCode)
	}
	if body := readBody(t, response); !strings.Contains(body, `"error":"request entity too large"`) {
		t.Fatalf("unexpected body %q", body)
	}

	response, err = app.Test(httptest.NewRequest(http.MethodGet, "/broken", nil), -1)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer response.Body.Close()
	if response.StatusCode != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", response.StatusCode)
	}
	if body := readBody(t, response); strings.Contains(body, "boom") {
		t.Fatal("expected internal error text hidden from the page")
	}
}
