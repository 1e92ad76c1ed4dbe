package configs

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
)

func TestLogger_SlogLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		"warning": slog.LevelWarn,
		"err":     slog.LevelError,
		"bogus":   slog.LevelInfo,
	}
	for in, want := range cases {
		if got := (Logger{Level: in}).SlogLevel(); got != want {
			t.Fatalf("level %q: got %v, want %v", in, got, want)
		}
	}
}

func TestLogger_NewJSON(t *testing.T) {
	var buf bytes.Buffer
	log := Logger{Level: "warn", Format: "JSON"}.New(&buf)

	log.Info("dropped")
	log.Warn("kept", slog.String("dept", "IT"))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("expected 1 line, got %d: %q", len(lines), buf.String())
	}
	var rec map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &rec); err != nil {
		t.Fatalf("not json: %v", err)
	}
	if rec["msg"] != "kept" || rec["dept"] != "IT" {
		t.Fatalf("unexpected record: %v", rec)
	}
}

func TestLogger_UnknownFormatFallsBackToText(t *testing.T) {
	var buf bytes.Buffer
	Logger{Format: "xml"}.New(&buf).Info("hello")

	if !strings.Contains(buf.String(), "msg=hello") {
		t.Fatalf("expected text output, got %q", buf.String())
	}
}
