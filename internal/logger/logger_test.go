package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func TestLogEntryShape(t *testing.T) {
	var buf bytes.Buffer
	l := New(LevelDebug, &buf)

	l.Info("snapshot parsed", Fields{"source": "Test:Suburb", "records": 6})

	var e map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &e); err != nil {
		t.Fatalf("entry is not valid JSON: %v", err)
	}
	if e["level"] != "INFO" || e["message"] != "snapshot parsed" {
		t.Errorf("entry = %v", e)
	}
	fields, ok := e["fields"].(map[string]interface{})
	if !ok || fields["source"] != "Test:Suburb" {
		t.Errorf("fields = %v", e["fields"])
	}
	if _, ok := e["timestamp"]; !ok {
		t.Error("entry missing timestamp")
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	l := New(LevelWarn, &buf)

	l.Debug("hidden", nil)
	l.Info("hidden", nil)
	l.Warn("shown", nil)
	l.Error("shown", nil, errors.New("boom"))

	lines := strings.Count(strings.TrimSpace(buf.String()), "\n") + 1
	if lines != 2 {
		t.Errorf("expected 2 entries, got %d: %s", lines, buf.String())
	}
}

func TestErrorField(t *testing.T) {
	var buf bytes.Buffer
	l := New(LevelError, &buf)

	l.Error("fetch failed", Fields{"url": "https://example.com"}, errors.New("connection refused"))

	var e map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &e); err != nil {
		t.Fatalf("entry is not valid JSON: %v", err)
	}
	if e["error"] != "connection refused" {
		t.Errorf("error = %v", e["error"])
	}
}
