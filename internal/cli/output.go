package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/courtgrid/courtgrid/internal/record"
)

// OutputFormat specifies the output format.
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
)

// OutputResult contains the data written after a parse run.
type OutputResult struct {
	Source      string          `json:"source"`
	URL         string          `json:"url"`
	ScrapedAt   time.Time       `json:"scraped_at"`
	RecordCount int             `json:"record_count"`
	Records     []record.Record `json:"records"`
}

// WriteOutput writes the result in the specified format.
func WriteOutput(w io.Writer, result *OutputResult, format OutputFormat) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, result)
	case FormatText:
		return writeText(w, result)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

// writeJSON outputs the result as indented JSON.
func writeJSON(w io.Writer, result *OutputResult) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(result)
}

// writeText outputs the result as human-readable text.
func writeText(w io.Writer, result *OutputResult) error {
	if result.RecordCount == 0 {
		fmt.Fprintln(w, "No records parsed.")
		return nil
	}

	fmt.Fprintf(w, "Parsed %d records from %s:\n", result.RecordCount, result.Source)
	for _, rec := range result.Records {
		status := rec.BookingStatus
		if status == "" {
			status = "-"
		}
		surface := rec.SurfaceType
		if rec.SurfaceNumber != "" {
			surface = fmt.Sprintf("%s %s", rec.SurfaceType, rec.SurfaceNumber)
		}
		fmt.Fprintf(w, "  %s  %s–%s  %-12s %s\n",
			rec.Date,
			rec.StartTime.Format("3:04pm"),
			rec.EndTime.Format("3:04pm"),
			surface,
			status)
	}
	return nil
}
