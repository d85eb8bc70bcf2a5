package cli

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/courtgrid/courtgrid/internal/record"
)

func testResult(t *testing.T) *OutputResult {
	t.Helper()
	loc, err := time.LoadLocation("Australia/Sydney")
	if err != nil {
		t.Fatalf("loading zone: %v", err)
	}
	start := time.Date(2024, 6, 1, 7, 0, 0, 0, loc)

	return &OutputResult{
		Source:      "Test:Suburb",
		URL:         "https://example.com/calendar",
		ScrapedAt:   time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		RecordCount: 2,
		Records: []record.Record{
			{
				VenueName: "Test", Suburb: "Suburb", Date: "2024-06-01",
				StartTime: start, EndTime: start.Add(time.Hour),
				SurfaceType: "Court", SurfaceNumber: "1", BookingStatus: "available",
			},
			{
				VenueName: "Test", Suburb: "Suburb", Date: "2024-06-01",
				StartTime: start, EndTime: start.Add(time.Hour),
				SurfaceType: "Court", SurfaceNumber: "2", BookingStatus: "",
			},
		},
	}
}

func TestWriteOutputJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteOutput(&buf, testResult(t), FormatJSON); err != nil {
		t.Fatalf("WriteOutput failed: %v", err)
	}

	var decoded struct {
		Source      string          `json:"source"`
		RecordCount int             `json:"record_count"`
		Records     []record.Record `json:"records"`
	}
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if decoded.Source != "Test:Suburb" || decoded.RecordCount != 2 {
		t.Errorf("decoded = %+v", decoded)
	}
	if len(decoded.Records) != 2 || decoded.Records[0].SurfaceNumber != "1" {
		t.Errorf("records = %+v", decoded.Records)
	}
}

func TestWriteOutputText(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteOutput(&buf, testResult(t), FormatText); err != nil {
		t.Fatalf("WriteOutput failed: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "Parsed 2 records from Test:Suburb") {
		t.Errorf("missing summary line: %s", out)
	}
	if !strings.Contains(out, "Court 1") || !strings.Contains(out, "available") {
		t.Errorf("missing record line: %s", out)
	}
}

func TestWriteOutputTextEmpty(t *testing.T) {
	var buf bytes.Buffer
	result := &OutputResult{Source: "Test:Suburb"}
	if err := WriteOutput(&buf, result, FormatText); err != nil {
		t.Fatalf("WriteOutput failed: %v", err)
	}
	if !strings.Contains(buf.String(), "No records parsed.") {
		t.Errorf("output = %q", buf.String())
	}
}

func TestWriteOutputUnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteOutput(&buf, testResult(t), OutputFormat("yaml")); err == nil {
		t.Error("expected error for unknown format")
	}
}
