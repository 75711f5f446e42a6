package logging

import (
	"testing"

	"go.uber.org/zap"
)

func TestNewZapLoggerLevels(t *testing.T) {
	for level, want := range map[string]bool{"debug": true, "info": false, "bogus": false} {
		logger, err := NewZapLogger(level)
		if err != nil {
			t.Fatalf("NewZapLogger(%q) unexpected error: %v", level, err)
		}
		if got := logger.Core().Enabled(zap.DebugLevel); got != want {
			t.Fatalf("NewZapLogger(%q) debug enabled = %v, want %v", level, got, want)
		}
		if !logger.Core().Enabled(zap.ErrorLevel) {
			t.Fatalf("NewZapLogger(%q) should log errors", level)
		}
	}
}
