package logging

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func captureLogger(level Level) (*Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	l := NewLogger(level)
	l.SetOutput(&buf)
	return l, &buf
}

func decodeEntry(t *testing.T, line string) entry {
	t.Helper()
	var e entry
	if err := json.Unmarshal([]byte(line), &e); err != nil {
		t.Fatalf("invalid log line %q: %v", line, err)
	}
	return e
}

func TestLevelGating(t *testing.T) {
	l, buf := captureLogger(LevelWarn)

	l.Debug("d")
	l.Info("i")
	l.Warn("w")
	l.Error("e")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines at warn level, got %d: %q", len(lines), buf.String())
	}
	if e := decodeEntry(t, lines[0]); e.Level != LevelWarn || e.Message != "w" {
		t.Errorf("unexpected first entry: %+v", e)
	}
	if e := decodeEntry(t, lines[1]); e.Level != LevelError {
		t.Errorf("unexpected second entry: %+v", e)
	}
}

func TestFields(t *testing.T) {
	l, buf := captureLogger(LevelDebug)
	l = l.With(map[string]any{"component": "signing"})
	l.SetOutput(buf)

	l.Info("resolved", map[string]any{"format": "ssh"})

	e := decodeEntry(t, strings.TrimSpace(buf.String()))
	if e.Fields["component"] != "signing" {
		t.Errorf("expected base field, got %v", e.Fields)
	}
	if e.Fields["format"] != "ssh" {
		t.Errorf("expected call field, got %v", e.Fields)
	}
}

func TestErrorErr(t *testing.T) {
	l, buf := captureLogger(LevelInfo)

	l.ErrorErr("load failed", errors.New("boom"))

	e := decodeEntry(t, strings.TrimSpace(buf.String()))
	if e.Fields["error"] != "boom" {
		t.Errorf("expected error field, got %v", e.Fields)
	}
}

func TestNoFieldsOmitted(t *testing.T) {
	l, buf := captureLogger(LevelInfo)
	l.Info("plain")

	if strings.Contains(buf.String(), "fields") {
		t.Errorf("expected fields to be omitted: %q", buf.String())
	}
}

func TestParseLevel(t *testing.T) {
	cases := map[string]Level{
		"debug": LevelDebug,
		"info":  LevelInfo,
		"warn":  LevelWarn,
		"error": LevelError,
		"":      LevelInfo,
		"loud":  LevelInfo,
	}
	for raw, want := range cases {
		if got := ParseLevel(raw); got != want {
			t.Errorf("ParseLevel(%q) = %s, want %s", raw, got, want)
		}
	}
}
