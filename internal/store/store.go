package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/courtgrid/courtgrid/internal/record"
)

const schema = `
CREATE TABLE IF NOT EXISTS booking_records (
	id             INTEGER PRIMARY KEY AUTOINCREMENT,
	venue_name     TEXT NOT NULL,
	suburb         TEXT NOT NULL,
	date           TEXT NOT NULL,
	start_time     TEXT NOT NULL,
	end_time       TEXT NOT NULL,
	surface_type   TEXT NOT NULL,
	surface_number TEXT NOT NULL,
	booking_status TEXT NOT NULL,
	source_url     TEXT NOT NULL,
	scraped_at     TEXT NOT NULL,
	parsed_at      TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_booking_records_venue_date
	ON booking_records (venue_name, date);
`

// Store is a SQLite-backed sink for booking records.
type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the database at path and ensures the
// schema exists.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return nil, fmt.Errorf("creating database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", "file:"+path+"?_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// InsertRecords inserts all records in one transaction; on any failure the
// whole batch rolls back, preserving re-run idempotence at the document
// level.
func (s *Store) InsertRecords(ctx context.Context, records []record.Record) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO booking_records
		(venue_name, suburb, date, start_time, end_time,
		 surface_type, surface_number, booking_status,
		 source_url, scraped_at, parsed_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for _, rec := range records {
		_, err := stmt.ExecContext(ctx,
			rec.VenueName,
			rec.Suburb,
			rec.Date,
			rec.StartTime.Format(time.RFC3339),
			rec.EndTime.Format(time.RFC3339),
			rec.SurfaceType,
			rec.SurfaceNumber,
			rec.BookingStatus,
			rec.SourceURL,
			rec.ScrapedAt.Format(time.RFC3339),
			rec.ParsedAt.Format(time.RFC3339),
		)
		if err != nil {
			tx.Rollback()
			return fmt.Errorf("inserting record: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing records: %w", err)
	}
	return nil
}

// CountRecords returns the number of stored records.
func (s *Store) CountRecords(ctx context.Context) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM booking_records").Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("counting records: %w", err)
	}
	return count, nil
}
