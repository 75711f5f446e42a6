package api

import (
	"encoding/base64"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) flashNotice(c *fiber.Ctx, kind string, titleKey string, bodyKey string) {
	messages := currentMessages(c)
	handler.setFlashCookie(c, FlashPayload{
		Kind:  kind,
		Title: translateMessage(messages, titleKey),
		Body:  translateMessage(messages, bodyKey),
	})
}

func (handler *Handler) setFlashCookie(c *fiber.Ctx, payload FlashPayload) {
	payload = normalizeFlashPayload(payload)
	if payload.Title == "" && payload.Body == "" {
		handler.clearFlashCookie(c)
		return
	}

	serialized, err := json.Marshal(payload)
	if err != nil {
		return
	}

	c.Cookie(&fiber.Cookie{
		Name:     flashCookieName,
		Value:    base64.RawURLEncoding.EncodeToString(serialized),
		Path:     "/",
		HTTPOnly: true,
		Secure:   handler.cookieSecure,
		SameSite: "Lax",
		Expires:  time.Now().Add(5 * time.Minute),
	})
}

func (handler *Handler) popFlashCookie(c *fiber.Ctx) FlashPayload {
	raw := strings.TrimSpace(c.Cookies(flashCookieName))
	if raw == "" {
		return FlashPayload{}
	}
	handler.clearFlashCookie(c)

	decoded, err := base64.RawURLEncoding.DecodeString(raw)
	if err != nil {
		return FlashPayload{}
	}

	payload := FlashPayload{}
	if err := json.Unmarshal(decoded, &payload); err != nil {
		return FlashPayload{}
	}
	return normalizeFlashPayload(payload)
}

func (handler *Handler) clearFlashCookie(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     flashCookieName,
		Value:    "",
		Path:     "/",
		HTTPOnly: true,
		Secure:   handler.cookieSecure,
		SameSite: "Lax",
		Expires:  time.Now().Add(-1 * time.Hour),
	})
}

// Browsers drop cookies over roughly 4 KB, so notice text is capped before
// it is encoded.
const (
	maxFlashTitleRunes = 120
	maxFlashBodyRunes  = 300
)

func normalizeFlashPayload(payload FlashPayload) FlashPayload {
	payload.Title = truncateRunes(strings.TrimSpace(payload.Title), maxFlashTitleRunes)
	payload.Body = truncateRunes(strings.TrimSpace(payload.Body), maxFlashBodyRunes)
	switch payload.Kind {
	case noticeSuccess, noticeError, noticeInfo:
	default:
		payload.Kind = noticeInfo
	}
	return payload
}

func truncateRunes(value string, limit int) string {
	if utf8.RuneCountInString(value) <= limit {
		return value
	}
	runes := []rune(value)
	return strings.TrimSpace(string(runes[:limit-1])) + "…"
}
