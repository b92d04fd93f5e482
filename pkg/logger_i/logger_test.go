package logger_i

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestLogger_WithAttachesAttributes(t *testing.T) {
	var buf bytes.Buffer
	old := slog.Default()
	defer slog.SetDefault(old)
	slog.SetDefault(slog.New(slog.NewJSONHandler(&buf, nil)))

	log := NewLogger("test-component").With("traceId", "trace-123")
	log.Warn("something happened")

	out := buf.String()
	if !strings.Contains(out, `"component":"test-component"`) {
		t.Errorf("component missing from record: %s", out)
	}
	if !strings.Contains(out, `"traceId":"trace-123"`) {
		t.Errorf("With attribute missing from record: %s", out)
	}
	if !strings.Contains(out, "something happened") {
		t.Errorf("message missing from record: %s", out)
	}
}

func TestLevelFromEnv(t *testing.T) {
	tests := []struct {
		value string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelInfo},
		{"garbage", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Setenv("LOG_LEVEL", tt.value)
		if got := levelFromEnv(); got != tt.want {
			t.Errorf("%q got %v, want %v", tt.value, got, tt.want)
		}
	}
}
