package fetcher

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/courtgrid/courtgrid/internal/snapshot"
)

func TestWriterWrite(t *testing.T) {
	dir := t.TempDir()
	w := NewWriter(dir)

	html := "<html></html>"
	snap := &snapshot.Snapshot{
		Source:     "Test Venue:Suburb",
		URL:        "https://example.com/calendar",
		ScrapedAt:  time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC),
		Status:     StatusSuccess,
		HTML:       &html,
		HTTPStatus: 200,
		RunID:      "run-1",
	}

	path, err := w.Write(snap)
	if err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	wantDir := filepath.Join(dir, "data", "Test Venue:Suburb")
	if filepath.Dir(path) != wantDir {
		t.Errorf("path = %q, expected under %q", path, wantDir)
	}

	got, err := snapshot.DecodeFile(path)
	if err != nil {
		t.Fatalf("reading back snapshot: %v", err)
	}
	if got.Source != snap.Source || got.HTTPStatus != 200 || !got.ScrapedAt.Equal(snap.ScrapedAt) {
		t.Errorf("round-trip = %+v", got)
	}
	if got.HTML == nil || *got.HTML != html {
		t.Errorf("HTML = %v", got.HTML)
	}
}
