package record

import (
	"regexp"
	"strings"
	"time"
)

// Record is one booking observation: a single surface over a single hourly
// time slot, with provenance. Field names are a schema contract.
type Record struct {
	VenueName     string    `json:"venue_name"`
	Suburb        string    `json:"suburb"`
	Date          string    `json:"date"` // civil date, YYYY-MM-DD
	StartTime     time.Time `json:"start_time"`
	EndTime       time.Time `json:"end_time"`
	SurfaceType   string    `json:"surface_type"`
	SurfaceNumber string    `json:"surface_number"`
	BookingStatus string    `json:"booking_status"`
	SourceURL     string    `json:"source_url"`
	ScrapedAt     time.Time `json:"scraped_at"`
	ParsedAt      time.Time `json:"parsed_at"`
}

// Surface identifies one bookable surface, split from a grid header label.
type Surface struct {
	Type   string
	Number string
}

var surfacePattern = regexp.MustCompile(`^(\w+)\s+(\d+)$`)

// ParseSurface derives a surface descriptor from a header label. Labels of
// the form "<word> <digits>" split into type and number; anything else
// keeps the whole label as the type with an empty number.
func ParseSurface(label string) Surface {
	label = strings.TrimSpace(label)
	if m := surfacePattern.FindStringSubmatch(label); m != nil {
		return Surface{Type: m[1], Number: m[2]}
	}
	return Surface{Type: label}
}
