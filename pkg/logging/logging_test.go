package logging_test

import (
	"log/slog"
	"testing"

	"github.com/fedilists/list-manager/pkg/logging"
)

func TestConfig_Finalize_Defaults(t *testing.T) {
	var cfg logging.Config

	if err := cfg.Finalize(nil); err != nil {
		t.Fatalf("Finalize() failed: %v", err)
	}

	if cfg.Level != logging.LevelInfo {
		t.Errorf("Level = %q, want info", cfg.Level)
	}
	if cfg.Format != logging.FormatText {
		t.Errorf("Format = %q, want text", cfg.Format)
	}
}

func TestConfig_Finalize_RejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		cfg  logging.Config
	}{
		{name: "bad level", cfg: logging.Config{Level: "verbose"}},
		{name: "bad format", cfg: logging.Config{Format: "xml"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.cfg.Finalize(nil); err == nil {
				t.Error("Finalize() = nil, want error")
			}
		})
	}
}

func TestLevel_ToSlogLevel(t *testing.T) {
	tests := []struct {
		level logging.Level
		want  slog.Level
	}{
		{level: logging.LevelDebug, want: slog.LevelDebug},
		{level: logging.LevelInfo, want: slog.LevelInfo},
		{level: logging.LevelWarn, want: slog.LevelWarn},
		{level: logging.LevelError, want: slog.LevelError},
		{level: "unknown", want: slog.LevelInfo},
	}

	for _, tt := range tests {
		if got := tt.level.ToSlogLevel(); got != tt.want {
			t.Errorf("ToSlogLevel(%q) = %v, want %v", tt.level, got, tt.want)
		}
	}
}

func TestNew_ReturnsLogger(t *testing.T) {
	cfg := logging.Config{Level: logging.LevelDebug, Format: logging.FormatJSON}
	if err := cfg.Finalize(nil); err != nil {
		t.Fatalf("Finalize() failed: %v", err)
	}

	if logger := logging.New(&cfg); logger == nil {
		t.Fatal("New() returned nil")
	}
}
