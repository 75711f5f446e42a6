package config

import (
	"testing"
	"time"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"PORT", "BACKEND_URL", "BACKEND_TIMEOUT", "CACHE_DB_PATH", "CACHE_TTL",
		"DEFAULT_LANGUAGE", "TZ", "LOG_LEVEL", "COOKIE_SECURE", "MAX_UPLOAD_MB",
	} {
		t.Setenv(key, "")
	}
}

func TestFromEnvDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := FromEnv()
	if err != nil {
		t.Fatalf("FromEnv() unexpected error: %v", err)
	}
	if cfg.Port != "8080" || cfg.BackendURL != "http://127.0.0.1:5000" {
		t.Fatalf("unexpected defaults: %#v", cfg)
	}
	if cfg.BackendTimeout != 0 || cfg.CacheTTL != time.Minute {
		t.Fatalf("unexpected durations: timeout=%s ttl=%s", cfg.BackendTimeout, cfg.CacheTTL)
	}
	if cfg.CacheDBPath == "" || cfg.DefaultLanguage != "en" || cfg.LogLevel != "info" {
		t.Fatalf("unexpected defaults: %#v", cfg)
	}
	if cfg.Location != time.UTC && cfg.Location.String() != "UTC" {
		t.Fatalf("expected UTC location, got %s", cfg.Location)
	}
	if cfg.CookieSecure || cfg.MaxUploadMB != 10 || cfg.MaxUploadBytes() != 10*1024*1024 {
		t.Fatalf("unexpected upload/cookie defaults: %#v", cfg)
	}
}

func TestFromEnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9090")
	t.Setenv("BACKEND_URL", "https://health.example.com/")
	t.Setenv("BACKEND_TIMEOUT", "15s")
	t.Setenv("CACHE_TTL", "0")
	t.Setenv("DEFAULT_LANGUAGE", "RU")
	t.Setenv("LOG_LEVEL", "DEBUG")
	t.Setenv("COOKIE_SECURE", "true")
	t.Setenv("MAX_UPLOAD_MB", "25")

	cfg, err := FromEnv()
	if err != nil {
		t.Fatalf("FromEnv() unexpected error: %v", err)
	}
	if cfg.Port != "9090" || cfg.BackendURL != "https://health.example.com" {
		t.Fatalf("unexpected overrides: %#v", cfg)
	}
	if cfg.BackendTimeout != 15*time.Second || cfg.CacheTTL != 0 {
		t.Fatalf("unexpected durations: timeout=%s ttl=%s", cfg.BackendTimeout, cfg.CacheTTL)
	}
	if cfg.DefaultLanguage != "ru" || cfg.LogLevel != "debug" || !cfg.CookieSecure || cfg.MaxUploadMB != 25 {
		t.Fatalf("unexpected overrides: %#v", cfg)
	}
}

func TestFromEnvRejectsInvalidValues(t *testing.T) {
	cases := map[string]string{
		"PORT":            "70000",
		"BACKEND_URL":     "localhost:5000",
		"BACKEND_TIMEOUT": "soon",
		"CACHE_TTL":       "-1m",
		"TZ":              "Mars/Olympus",
		"LOG_LEVEL":       "verbose",
		"COOKIE_SECURE":   "maybe",
		"MAX_UPLOAD_MB":   "0",
	}
	for key, value := range cases {
		t.Run(key, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(key, value)
			if _, err := FromEnv(); err == nil {
				t.Fatalf("expected %s=%q to fail", key, value)
			}
		})
	}
}

func TestResolvePort(t *testing.T) {
	for _, raw := range []string{"0", "not-a-number", "65536"} {
		t.Setenv("PORT", raw)
		if _, err := resolvePort(); err == nil {
			t.Fatalf("expected PORT=%q to fail", raw)
		}
	}

	t.Setenv("PORT", "")
	port, err := resolvePort()
	if err != nil || port != DefaultPort {
		t.Fatalf("expected default port, got %q err=%v", port, err)
	}
}
