package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	DefaultPort           = "8080"
	DefaultBackendURL     = "http://127.0.0.1:5000"
	DefaultCacheTTL       = time.Minute
	DefaultLanguage       = "en"
	DefaultTimezone       = "UTC"
	DefaultLogLevel       = "info"
	DefaultMaxUploadMB    = 10
	maxAllowedUploadMB    = 100
	defaultCacheFileName  = "vytal-cache.db"
	defaultCacheDirectory = "data"
	envFileName           = ".env"
)

var validLogLevels = map[string]struct{}{
	"debug": {},
	"info":  {},
	"warn":  {},
	"error": {},
}

type Config struct {
	Port            string
	BackendURL      string
	BackendTimeout  time.Duration
	CacheDBPath     string
	CacheTTL        time.Duration
	DefaultLanguage string
	Location        *time.Location
	LogLevel        string
	CookieSecure    bool
	MaxUploadMB     int
}

func (cfg Config) MaxUploadBytes() int {
	return cfg.MaxUploadMB * 1024 * 1024
}

// Load reads .env when present, then the process environment. Any value
// that is set but invalid is an error.
func Load() (Config, error) {
	if err := godotenv.Load(envFileName); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("load %s: %w", envFileName, err)
	}
	return FromEnv()
}

func FromEnv() (Config, error) {
	port, err := resolvePort()
	if err != nil {
		return Config{}, err
	}
	backendURL, err := resolveBackendURL()
	if err != nil {
		return Config{}, err
	}
	backendTimeout, err := resolveDuration("BACKEND_TIMEOUT", 0)
	if err != nil {
		return Config{}, err
	}
	cacheTTL, err := resolveDuration("CACHE_TTL", DefaultCacheTTL)
	if err != nil {
		return Config{}, err
	}
	location, err := resolveLocation()
	if err != nil {
		return Config{}, err
	}
	logLevel, err := resolveLogLevel()
	if err != nil {
		return Config{}, err
	}
	cookieSecure, err := resolveBool("COOKIE_SECURE", false)
	if err != nil {
		return Config{}, err
	}
	maxUploadMB, err := resolveMaxUploadMB()
	if err != nil {
		return Config{}, err
	}

	return Config{
		Port:            port,
		BackendURL:      backendURL,
		BackendTimeout:  backendTimeout,
		CacheDBPath:     getEnv("CACHE_DB_PATH", filepath.Join(defaultCacheDirectory, defaultCacheFileName)),
		CacheTTL:        cacheTTL,
		DefaultLanguage: strings.ToLower(getEnv("DEFAULT_LANGUAGE", DefaultLanguage)),
		Location:        location,
		LogLevel:        logLevel,
		CookieSecure:    cookieSecure,
		MaxUploadMB:     maxUploadMB,
	}, nil
}

func resolvePort() (string, error) {
	raw := getEnv("PORT", DefaultPort)
	port, err := strconv.Atoi(raw)
	if err != nil || port < 1 || port > 65535 {
		return "", fmt.Errorf("invalid PORT %q: must be an integer between 1 and 65535", raw)
	}
	return strconv.Itoa(port), nil
}

func resolveBackendURL() (string, error) {
	raw := strings.TrimRight(getEnv("BACKEND_URL", DefaultBackendURL), "/")
	parsed, err := url.Parse(raw)
	if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") || parsed.Host == "" {
		return "", fmt.Errorf("invalid BACKEND_URL %q: must be an absolute http(s) URL", raw)
	}
	return raw, nil
}

func resolveDuration(key string, fallback time.Duration) (time.Duration, error) {
	raw := getEnv(key, "")
	if raw == "" {
		return fallback, nil
	}
	if raw == "0" {
		return 0, nil
	}
	value, err := time.ParseDuration(raw)
	if err != nil || value < 0 {
		return 0, fmt.Errorf("invalid %s %q: must be a non-negative duration such as 30s", key, raw)
	}
	return value, nil
}

func resolveLocation() (*time.Location, error) {
	name := getEnv("TZ", DefaultTimezone)
	location, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("invalid TZ %q: %w", name, err)
	}
	return location, nil
}

func resolveLogLevel() (string, error) {
	level := strings.ToLower(getEnv("LOG_LEVEL", DefaultLogLevel))
	if _, ok := validLogLevels[level]; !ok {
		return "", fmt.Errorf("invalid LOG_LEVEL %q: use debug, info, warn or error", level)
	}
	return level, nil
}

func resolveBool(key string, fallback bool) (bool, error) {
	raw := getEnv(key, "")
	if raw == "" {
		return fallback, nil
	}
	value, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("invalid %s %q: must be true or false", key, raw)
	}
	return value, nil
}

func resolveMaxUploadMB() (int, error) {
	raw := getEnv("MAX_UPLOAD_MB", strconv.Itoa(DefaultMaxUploadMB))
	value, err := strconv.Atoi(raw)
	if err != nil || value < 1 || value > maxAllowedUploadMB {
		return 0, fmt.Errorf("invalid MAX_UPLOAD_MB %q: must be between 1 and %d", raw, maxAllowedUploadMB)
	}
	return value, nil
}

func getEnv(key string, fallback string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	return value
}
