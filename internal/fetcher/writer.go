package fetcher

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/courtgrid/courtgrid/internal/snapshot"
)

// Writer archives snapshots as JSON files under
// <dir>/data/<source>/<scraped_at>.json, mirroring the layout of the
// object-store archive the deployment uploads to.
type Writer struct {
	dir string
}

// NewWriter creates a Writer rooted at dir.
func NewWriter(dir string) *Writer {
	return &Writer{dir: dir}
}

// Write stores one snapshot and returns its path.
func (w *Writer) Write(snap *snapshot.Snapshot) (string, error) {
	dir := filepath.Join(w.dir, "data", snap.Source)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating snapshot directory: %w", err)
	}

	path := filepath.Join(dir, snap.ScrapedAt.Format(time.RFC3339)+".json")

	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encoding snapshot: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("writing snapshot: %w", err)
	}

	return path, nil
}
