package logger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"polyline-td/internal/config"
)

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"loud", slog.LevelInfo},
	}
	for _, tt := range tests {
		if got := parseLogLevel(tt.in); got != tt.want {
			t.Errorf("parseLogLevel(%q): expected %v, got %v", tt.in, tt.want, got)
		}
	}
}

func TestInitJSON(t *testing.T) {
	prev := slog.Default()
	defer slog.SetDefault(prev)

	var buf bytes.Buffer
	Init(&config.Settings{LogLevel: "info", LogJSON: true}, &buf)

	slog.Debug("hidden")
	slog.Info("Tower placed", "component", "game", "cost", 100)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("Expected 1 log line at info level, got %d: %q", len(lines), buf.String())
	}
	var rec map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &rec); err != nil {
		t.Fatalf("Expected JSON output, got %q: %v", lines[0], err)
	}
	if rec["msg"] != "Tower placed" || rec["component"] != "game" {
		t.Errorf("Unexpected record: %v", rec)
	}
}

func TestInitText(t *testing.T) {
	prev := slog.Default()
	defer slog.SetDefault(prev)

	var buf bytes.Buffer
	Init(&config.Settings{LogLevel: "debug"}, &buf)

	if !strings.Contains(buf.String(), "Logger initialized") {
		t.Errorf("Expected debug init line, got %q", buf.String())
	}
	if !strings.Contains(buf.String(), "component=logger") {
		t.Errorf("Expected component attribute, got %q", buf.String())
	}
}
