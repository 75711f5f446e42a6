package api

import (
	"strings"

	"github.com/vytalhealth/vytal/internal/services"
)

func templateTranslate(messages map[string]string, key string) string {
	return translateMessage(messages, key)
}

func templateReading(value *float64) string {
	if value == nil {
		return "-"
	}
	return services.FormatReading(value)
}

func templateTrendLabel(messages map[string]string, trend string) string {
	key := trendTranslationKey(trend)
	if key == "" {
		return "-"
	}
	return translateMessage(messages, key)
}

func isActiveTemplateRoute(currentPath string, route string) bool {
	path := strings.TrimSpace(currentPath)
	if path == "" {
		return route == "/"
	}
	if route == "/" {
		return path == "/" || strings.HasPrefix(path, "/?")
	}
	return path == route || strings.HasPrefix(path, route+"?") || strings.HasPrefix(path, route+"/")
}
