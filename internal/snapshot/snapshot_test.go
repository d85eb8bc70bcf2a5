package snapshot

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func TestDecode(t *testing.T) {
	input := `{
		"source": "Test Venue:Suburb",
		"url": "https://example.com/calendar",
		"scraped_at": "2024-06-01T10:00:00+10:00",
		"status": "success",
		"html": "<html></html>",
		"http_status": 200
	}`

	snap, err := Decode(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}

	if snap.Source != "Test Venue:Suburb" {
		t.Errorf("Source = %q", snap.Source)
	}
	if snap.HTTPStatus != 200 {
		t.Errorf("HTTPStatus = %d", snap.HTTPStatus)
	}
	expected := time.Date(2024, 6, 1, 10, 0, 0, 0, time.FixedZone("", 10*3600))
	if !snap.ScrapedAt.Equal(expected) {
		t.Errorf("ScrapedAt = %v, expected %v", snap.ScrapedAt, expected)
	}
	if snap.HTML == nil || *snap.HTML != "<html></html>" {
		t.Errorf("HTML = %v", snap.HTML)
	}
}

func TestParseable(t *testing.T) {
	html := "<html></html>"
	empty := ""

	tests := []struct {
		name string
		snap Snapshot
		want bool
	}{
		{"ok", Snapshot{HTTPStatus: 200, HTML: &html}, true},
		{"non-200", Snapshot{HTTPStatus: 503, HTML: &html}, false},
		{"absent html", Snapshot{HTTPStatus: 200, HTML: nil}, false},
		{"empty html", Snapshot{HTTPStatus: 200, HTML: &empty}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.snap.Parseable(); got != tt.want {
				t.Errorf("Parseable() = %v, expected %v", got, tt.want)
			}
		})
	}
}

func TestSplitSource(t *testing.T) {
	snap := &Snapshot{Source: "Northside Tennis:Lane Cove"}
	venue, suburb, err := snap.SplitSource()
	if err != nil {
		t.Fatalf("SplitSource failed: %v", err)
	}
	if venue != "Northside Tennis" || suburb != "Lane Cove" {
		t.Errorf("SplitSource = %q, %q", venue, suburb)
	}

	// Only the first ':' splits.
	snap = &Snapshot{Source: "Venue:Suburb:Extra"}
	venue, suburb, err = snap.SplitSource()
	if err != nil {
		t.Fatalf("SplitSource failed: %v", err)
	}
	if venue != "Venue" || suburb != "Suburb:Extra" {
		t.Errorf("SplitSource = %q, %q", venue, suburb)
	}
}

func TestSplitSourceMalformed(t *testing.T) {
	snap := &Snapshot{Source: "no separator here"}
	_, _, err := snap.SplitSource()

	var srcErr *MalformedSourceError
	if !errors.As(err, &srcErr) {
		t.Fatalf("expected MalformedSourceError, got %v", err)
	}
	if srcErr.Source != "no separator here" {
		t.Errorf("error source = %q", srcErr.Source)
	}
}
