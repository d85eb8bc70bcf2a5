package record

import (
	"fmt"
	"strings"
	"time"

	"github.com/courtgrid/courtgrid/internal/grid"
)

// slotLayout matches grid time labels such as "7:00am" or "12:30pm".
// Labels are lower-cased before parsing.
const slotLayout = "3:04pm"

// TimeParseError reports a time-slot label that does not match the expected
// 12-hour clock format. A partially-parsed record set would be misleading,
// so this aborts the document.
type TimeParseError struct {
	Label string
	Err   error
}

func (e *TimeParseError) Error() string {
	return fmt.Sprintf("parsing time-slot label %q: %v", e.Label, e.Err)
}

func (e *TimeParseError) Unwrap() error { return e.Err }

// SurplusStatusError reports a slot carrying more statuses than there are
// surface columns. Raised only in strict mode; the default drops the extras.
type SurplusStatusError struct {
	Label    string
	Statuses int
	Surfaces int
}

func (e *SurplusStatusError) Error() string {
	return fmt.Sprintf("slot %q has %d statuses for %d surfaces", e.Label, e.Statuses, e.Surfaces)
}

// Options control assembler behavior for conditions the source site has
// historically tolerated.
type Options struct {
	// StrictSurplus fails when a slot has more statuses than known
	// surfaces instead of silently dropping the extras.
	StrictSurplus bool
}

// Assembler combines decoded slots with scrape provenance into records.
type Assembler struct {
	Venue     string
	Suburb    string
	URL       string
	ScrapedAt time.Time
	Location  *time.Location

	// Now supplies the parse instant; defaults to time.Now.
	Now func() time.Time
}

// Assemble produces one record per (slot, surface) pair. Headers are the
// grid header labels including the leading time-column label, which is
// skipped. Slot order and surface order are preserved.
func (a Assembler) Assemble(slots []grid.TimeSlot, headers []string, opts Options) ([]Record, error) {
	surfaces := make([]Surface, 0)
	if len(headers) > 1 {
		for _, label := range headers[1:] {
			surfaces = append(surfaces, ParseSurface(label))
		}
	}

	now := a.Now
	if now == nil {
		now = time.Now
	}
	parsedAt := now().In(a.Location)

	local := a.ScrapedAt.In(a.Location)
	year, month, day := local.Date()

	records := make([]Record, 0, len(slots)*len(surfaces))
	for _, slot := range slots {
		clock, err := time.Parse(slotLayout, strings.ToLower(strings.TrimSpace(slot.Label)))
		if err != nil {
			return nil, &TimeParseError{Label: slot.Label, Err: err}
		}

		start := time.Date(year, month, day, clock.Hour(), clock.Minute(), 0, 0, a.Location)
		// Wall-clock hour, not elapsed duration: time.Date normalizes
		// across DST transitions.
		end := time.Date(year, month, day, clock.Hour()+1, clock.Minute(), 0, 0, a.Location)

		for i, status := range slot.Statuses {
			if i >= len(surfaces) {
				if opts.StrictSurplus {
					return nil, &SurplusStatusError{
						Label:    slot.Label,
						Statuses: len(slot.Statuses),
						Surfaces: len(surfaces),
					}
				}
				break
			}

			records = append(records, Record{
				VenueName:     a.Venue,
				Suburb:        a.Suburb,
				Date:          start.Format("2006-01-02"),
				StartTime:     start,
				EndTime:       end,
				SurfaceType:   surfaces[i].Type,
				SurfaceNumber: surfaces[i].Number,
				BookingStatus: status,
				SourceURL:     a.URL,
				ScrapedAt:     a.ScrapedAt,
				ParsedAt:      parsedAt,
			})
		}
	}

	return records, nil
}
