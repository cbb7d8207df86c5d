package internal

import (
	"bytes"
	"log"
	"os"
	"strings"
	"testing"
)

func TestParseLogLevel(t *testing.T) {
	cases := map[string]LogLevel{
		"ERROR":   LogLevelError,
		"WARN":    LogLevelWarn,
		"INFO":    LogLevelInfo,
		"DEBUG":   LogLevelDebug,
		"TRACE":   LogLevelTrace,
		"":        LogLevelInfo,
		"verbose": LogLevelInfo,
	}
	for in, want := range cases {
		if got := ParseLogLevel(in); got != want {
			t.Fatalf("ParseLogLevel(%q) = %d, want %d", in, got, want)
		}
	}
}

func TestNewDefaultLoggerReadsEnv(t *testing.T) {
	t.Setenv("LOG_LEVEL", "DEBUG")
	if got := NewDefaultLogger().GetLevel(); got != LogLevelDebug {
		t.Fatalf("level = %d, want %d", got, LogLevelDebug)
	}
}

func TestLoggerGatesByLevel(t *testing.T) {
	var buf bytes.Buffer
	log.SetOutput(&buf)
	defer log.SetOutput(os.Stderr)

	logger := NewLogger(LogLevelInfo)
	logger.Debug("hidden %d", 1)
	logger.Info("shown %d", 2)
	logger.Error("failed: %s", "boom")

	out := buf.String()
	if strings.Contains(out, "[DEBUG]") {
		t.Fatalf("debug line emitted at INFO level: %q", out)
	}
	if !strings.Contains(out, "[INFO] shown 2") {
		t.Fatalf("info line missing: %q", out)
	}
	if !strings.Contains(out, "[ERROR] failed: boom") {
		t.Fatalf("error line missing: %q", out)
	}
}
