package i18n

import (
	"sort"
	"strings"
	"testing"
	"testing/fstest"
)

func TestLocaleKeysParity(t *testing.T) {
	manager := mustNewManager(t, LangEN)

	en := manager.locales[LangEN]
	ru, ok := manager.locales[LangRU]
	if !ok {
		t.Fatal("expected embedded ru locale")
	}

	if missing := missingKeys(en, ru); len(missing) > 0 {
		t.Errorf("keys missing in ru locale: %s", strings.Join(missing, ", "))
	}
	if missing := missingKeys(ru, en); len(missing) > 0 {
		t.Errorf("keys missing in en locale: %s", strings.Join(missing, ", "))
	}
}

func TestNormalizeLanguageFallsBackToDefault(t *testing.T) {
	manager := mustNewManager(t, "ru-RU")

	if got := manager.DefaultLanguage(); got != LangRU {
		t.Fatalf("expected default ru, got %q", got)
	}
	if got := manager.NormalizeLanguage("EN_us"); got != LangEN {
		t.Fatalf("expected en, got %q", got)
	}
	if got := manager.NormalizeLanguage("de"); got != LangRU {
		t.Fatalf("expected unsupported language to fall back to ru, got %q", got)
	}
}

func TestUnsupportedDefaultLanguageFallsBackToEnglish(t *testing.T) {
	manager := mustNewManager(t, "fr")
	if got := manager.DefaultLanguage(); got != LangEN {
		t.Fatalf("expected en default, got %q", got)
	}
}

func TestDetectFromAcceptLanguage(t *testing.T) {
	manager := mustNewManager(t, LangEN)

	if got := manager.DetectFromAcceptLanguage("de-DE,ru;q=0.8,en;q=0.5"); got != LangRU {
		t.Fatalf("expected first supported language ru, got %q", got)
	}
	if got := manager.DetectFromAcceptLanguage(""); got != LangEN {
		t.Fatalf("expected default for empty header, got %q", got)
	}
}

func TestMessagesFallBackToDefaultLanguage(t *testing.T) {
	locales := fstest.MapFS{
		"en.json": {Data: []byte(`{"greeting":"Hello","farewell":"Bye"}`)},
		"ru.json": {Data: []byte(`{"greeting":"Привет"}`)},
	}
	manager, err := NewManagerFromFS(LangEN, locales)
	if err != nil {
		t.Fatalf("NewManagerFromFS() unexpected error: %v", err)
	}

	if got := manager.Translate(LangRU, "greeting"); got != "Привет" {
		t.Fatalf("expected ru greeting, got %q", got)
	}
	if got := manager.Translate(LangRU, "farewell"); got != "Bye" {
		t.Fatalf("expected en fallback, got %q", got)
	}
	if got := manager.Translate(LangRU, "missing.key"); got != "missing.key" {
		t.Fatalf("expected key passthrough, got %q", got)
	}
}

func TestNewManagerFromFSRequiresEnglish(t *testing.T) {
	locales := fstest.MapFS{"ru.json": {Data: []byte(`{"greeting":"Привет"}`)}}
	if _, err := NewManagerFromFS(LangRU, locales); err == nil {
		t.Fatal("expected missing en locale to fail")
	}
}

func mustNewManager(t *testing.T, language string) *Manager {
	t.Helper()

	manager, err := NewManager(language)
	if err != nil {
		t.Fatalf("NewManager() unexpected error: %v", err)
	}
	return manager
}

func missingKeys(source map[string]string, target map[string]string) []string {
	missing := make([]string, 0)
	for key := range source {
		if _, ok := target[key]; !ok {
			missing = append(missing, key)
		}
	}
	sort.Strings(missing)
	return missing
}
