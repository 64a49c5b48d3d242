package commerce

import (
	"path/filepath"
	"testing"

	"go.uber.org/zap/zapcore"

	"storefront/config"
)

func TestNewLogger_levels(t *testing.T) {
	logger, err := NewLogger(config.LoggerConfig{Mode: "development", Level: "warn"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if logger.Core().Enabled(zapcore.InfoLevel) {
		t.Error("info should be disabled at warn level")
	}
	if !logger.Core().Enabled(zapcore.ErrorLevel) {
		t.Error("error should be enabled at warn level")
	}
}

func TestNewLogger_invalidLevel(t *testing.T) {
	if _, err := NewLogger(config.LoggerConfig{Mode: "production", Level: "chatty"}); err == nil {
		t.Fatal("expected error for invalid level")
	}
}

func TestNewLogger_fileOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "storefront.log")
	logger, err := NewLogger(config.LoggerConfig{Mode: "production", Level: "info", FileEnable: true, Filename: path})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	logger.Info("cart checked")
	_ = logger.Sync()
}
