package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/courtgrid/courtgrid/internal/record"
)

func testRecords(t *testing.T) []record.Record {
	t.Helper()
	loc, err := time.LoadLocation("Australia/Sydney")
	if err != nil {
		t.Fatalf("loading zone: %v", err)
	}

	start := time.Date(2024, 6, 1, 7, 0, 0, 0, loc)
	scraped := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	parsed := time.Date(2024, 6, 1, 0, 1, 0, 0, time.UTC)

	return []record.Record{
		{
			VenueName: "Test", Suburb: "Suburb", Date: "2024-06-01",
			StartTime: start, EndTime: start.Add(time.Hour),
			SurfaceType: "Court", SurfaceNumber: "1", BookingStatus: "available",
			SourceURL: "https://example.com", ScrapedAt: scraped, ParsedAt: parsed,
		},
		{
			VenueName: "Test", Suburb: "Suburb", Date: "2024-06-01",
			StartTime: start, EndTime: start.Add(time.Hour),
			SurfaceType: "Court", SurfaceNumber: "2", BookingStatus: "booked",
			SourceURL: "https://example.com", ScrapedAt: scraped, ParsedAt: parsed,
		},
	}
}

func TestInsertRecords(t *testing.T) {
	s, err := Open(filepath.Join(t.TempDir(), "courtgrid.db"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer s.Close()

	ctx := context.Background()
	if err := s.InsertRecords(ctx, testRecords(t)); err != nil {
		t.Fatalf("InsertRecords failed: %v", err)
	}

	count, err := s.CountRecords(ctx)
	if err != nil {
		t.Fatalf("CountRecords failed: %v", err)
	}
	if count != 2 {
		t.Errorf("count = %d, expected 2", count)
	}
}

func TestInsertRecordsEmpty(t *testing.T) {
	s, err := Open(filepath.Join(t.TempDir(), "courtgrid.db"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer s.Close()

	if err := s.InsertRecords(context.Background(), nil); err != nil {
		t.Fatalf("InsertRecords with no records failed: %v", err)
	}
}

func TestOpenCreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "courtgrid.db")
	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer s.Close()

	count, err := s.CountRecords(context.Background())
	if err != nil {
		t.Fatalf("CountRecords failed: %v", err)
	}
	if count != 0 {
		t.Errorf("count = %d", count)
	}
}

func TestInstantRoundTripKeepsOffset(t *testing.T) {
	s, err := Open(filepath.Join(t.TempDir(), "courtgrid.db"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer s.Close()

	ctx := context.Background()
	recs := testRecords(t)
	if err := s.InsertRecords(ctx, recs[:1]); err != nil {
		t.Fatalf("InsertRecords failed: %v", err)
	}

	var stored string
	err = s.db.QueryRowContext(ctx, "SELECT start_time FROM booking_records").Scan(&stored)
	if err != nil {
		t.Fatalf("querying start_time: %v", err)
	}

	got, err := time.Parse(time.RFC3339, stored)
	if err != nil {
		t.Fatalf("stored start_time %q is not RFC3339: %v", stored, err)
	}
	if !got.Equal(recs[0].StartTime) {
		t.Errorf("start_time = %v, expected %v", got, recs[0].StartTime)
	}
	if stored != "2024-06-01T07:00:00+10:00" {
		t.Errorf("stored form = %q, expected explicit +10:00 offset", stored)
	}
}
