package snapshot

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"
)

// Snapshot is one raw scrape result. The field names form a schema contract
// with the fetch collaborator and with archived snapshots, and must stay
// stable across versions.
type Snapshot struct {
	Source       string    `json:"source"` // "<venue>:<suburb>"
	URL          string    `json:"url"`
	ScrapedAt    time.Time `json:"scraped_at"`
	Status       string    `json:"status"`
	HTML         *string   `json:"html"`
	HTTPStatus   int       `json:"http_status"`
	ErrorMessage string    `json:"error_message,omitempty"`
	RunID        string    `json:"run_id,omitempty"`
}

// MalformedSourceError reports a source identity string missing the
// "<venue>:<suburb>" separator.
type MalformedSourceError struct {
	Source string
}

func (e *MalformedSourceError) Error() string {
	return fmt.Sprintf("malformed source %q: expected \"<venue>:<suburb>\"", e.Source)
}

// Decode reads a snapshot from its JSON wire form.
func Decode(r io.Reader) (*Snapshot, error) {
	var snap Snapshot
	if err := json.NewDecoder(r).Decode(&snap); err != nil {
		return nil, fmt.Errorf("parsing snapshot: %w", err)
	}
	return &snap, nil
}

// DecodeFile reads a snapshot from a JSON file on disk.
func DecodeFile(path string) (*Snapshot, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening snapshot file: %w", err)
	}
	defer f.Close()

	return Decode(f)
}

// Parseable reports whether the snapshot carries HTML worth parsing.
// A failed fetch (non-200 status, or absent/empty HTML) is a defined
// empty-result outcome for the pipeline.
func (s *Snapshot) Parseable() bool {
	return s.HTTPStatus == http.StatusOK && s.HTML != nil && *s.HTML != ""
}

// SplitSource splits the source identity on its first ':' into venue name
// and suburb.
func (s *Snapshot) SplitSource() (venue, suburb string, err error) {
	venue, suburb, ok := strings.Cut(s.Source, ":")
	if !ok {
		return "", "", &MalformedSourceError{Source: s.Source}
	}
	return venue, suburb, nil
}
