package fetcher

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/google/uuid"

	"github.com/courtgrid/courtgrid/internal/logger"
	"github.com/courtgrid/courtgrid/internal/snapshot"
)

// Snapshot payload status values.
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Fetcher fetches source calendars into raw snapshots. All snapshots from
// one Fetcher share a run ID.
type Fetcher struct {
	client *http.Client
	cfg    Config
	loc    *time.Location
	runID  string

	now func() time.Time
}

// New creates a Fetcher stamping scrape instants in the given zone.
func New(cfg Config, loc *time.Location) *Fetcher {
	return &Fetcher{
		client: &http.Client{Timeout: cfg.Timeout},
		cfg:    cfg,
		loc:    loc,
		runID:  uuid.NewString(),
		now:    time.Now,
	}
}

// Fetch retrieves one source. It always returns a snapshot: fetch failures
// are encoded in the payload (status, http_status, error_message) rather
// than returned, so a bad source still leaves an archived trace.
func (f *Fetcher) Fetch(ctx context.Context, src Source) *snapshot.Snapshot {
	var snap *snapshot.Snapshot

	operation := func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, src.URL, nil)
		if err != nil {
			return backoff.Permanent(err)
		}
		req.Header.Set("User-Agent", f.cfg.UserAgent)

		resp, err := f.client.Do(req)
		if err != nil {
			return err // transport error, retryable
		}
		defer resp.Body.Close()

		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return err
		}

		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			// The origin answered; record the status and stop retrying.
			snap = f.payload(src, nil, resp.StatusCode,
				fmt.Sprintf("unexpected status code: %d", resp.StatusCode))
			return nil
		}

		html := string(body)
		snap = f.payload(src, &html, resp.StatusCode, "")
		return nil
	}

	bo := backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), f.cfg.MaxRetries), ctx)
	if err := backoff.Retry(operation, bo); err != nil {
		snap = f.payload(src, nil, 0,
			fmt.Sprintf("request failed after %d attempts: %v", f.cfg.MaxRetries+1, err))
	}
	return snap
}

// FetchAll fetches every source in order. Failures are logged and recorded
// in the returned snapshots; they never abort sibling sources.
func (f *Fetcher) FetchAll(ctx context.Context, sources []Source) []*snapshot.Snapshot {
	snaps := make([]*snapshot.Snapshot, 0, len(sources))
	for _, src := range sources {
		snap := f.Fetch(ctx, src)
		if snap.Status != StatusSuccess {
			logger.Warn("fetch failed", logger.Fields{
				"source": src.Name,
				"url":    src.URL,
				"error":  snap.ErrorMessage,
			})
		} else {
			logger.Info("fetched source", logger.Fields{
				"source":      src.Name,
				"http_status": snap.HTTPStatus,
			})
		}
		snaps = append(snaps, snap)
	}
	return snaps
}

func (f *Fetcher) payload(src Source, html *string, httpStatus int, errMsg string) *snapshot.Snapshot {
	status := StatusSuccess
	if errMsg != "" {
		status = StatusError
	}
	return &snapshot.Snapshot{
		Source:       src.Name,
		URL:          src.URL,
		ScrapedAt:    f.now().In(f.loc),
		Status:       status,
		HTML:         html,
		HTTPStatus:   httpStatus,
		ErrorMessage: errMsg,
		RunID:        f.runID,
	}
}
