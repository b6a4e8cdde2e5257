package logger

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestLogger_FiltersBelowLevel(t *testing.T) {
	var buf bytes.Buffer
	l := New(Options{Level: Warn, Output: &buf})

	l.Info("ignored", nil)
	l.Warn("kept", Fields{"request_id": "req001"})

	out := buf.String()
	if strings.Contains(out, "ignored") {
		t.Fatalf("info line should be filtered, got %q", out)
	}
	if !strings.Contains(out, "msg=kept") || !strings.Contains(out, "request_id=req001") {
		t.Fatalf("expected warn line with fields, got %q", out)
	}
}

func TestLogger_JSONIncludesBaseFields(t *testing.T) {
	var buf bytes.Buffer
	l := New(Options{Level: Debug, Format: FormatJSON, App: "pharmacy", Output: &buf}).
		With(Fields{"component": "lifecycle"})

	l.Error("boom", Fields{"patient_id": "patient-123"})

	var entry map[string]any
	if err := json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry); err != nil {
		t.Fatalf("invalid json line: %v (%q)", err, buf.String())
	}
	for k, want := range map[string]string{
		"app":        "pharmacy",
		"component":  "lifecycle",
		"patient_id": "patient-123",
		"level":      "error",
		"msg":        "boom",
	} {
		if entry[k] != want {
			t.Fatalf("expected %s=%s, got %v", k, want, entry[k])
		}
	}
}

func TestParseLevel(t *testing.T) {
	cases := map[string]Level{
		"":        Info,
		"DEBUG":   Debug,
		"warning": Warn,
		"error":   Error,
		"bogus":   Info,
	}
	for in, want := range cases {
		if got := ParseLevel(in); got != want {
			t.Fatalf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}
