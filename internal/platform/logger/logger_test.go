package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]Level{
		"debug":   Debug,
		" INFO ":  Info,
		"":        Info,
		"warning": Warn,
		"error":   Error,
		"verbose": Info,
	}
	for in, want := range cases {
		if got := ParseLevel(in); got != want {
			t.Fatalf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestJSONLogger_WritesFieldsAndFiltersLevel(t *testing.T) {
	var buf bytes.Buffer
	l := New(Options{Level: Info, Format: FormatJSON, App: "vet", Output: &buf})

	l.Debug("hidden", nil)
	l.With(map[string]any{"request_id": "r-1"}).Error("store failed", map[string]any{
		"err": errors.New("boom"),
		"":    "ignored",
	})

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("expected exactly one line, got %d: %q", len(lines), buf.String())
	}

	var entry map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &entry); err != nil {
		t.Fatalf("invalid json line: %v", err)
	}
	if entry["level"] != "error" || entry["message"] != "store failed" {
		t.Fatalf("unexpected entry: %v", entry)
	}
	if entry["app"] != "vet" || entry["request_id"] != "r-1" || entry["err"] != "boom" {
		t.Fatalf("missing fields: %v", entry)
	}
	if _, ok := entry[""]; ok {
		t.Fatalf("empty key should be dropped: %v", entry)
	}
}
