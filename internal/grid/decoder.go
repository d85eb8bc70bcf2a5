package grid

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// trailerRows is the number of structural trailer rows (legend/footer) at
// the bottom of the grid. Fixed convention of the source layout.
const trailerRows = 2

// TimeSlot is one decoded grid row: a time-of-day label as it appeared in
// the grid, paired with one status per surface column.
type TimeSlot struct {
	Label    string
	Statuses []string
}

// DuplicateSlotError reports a time-slot label appearing on more than one
// grid row. Raised only in strict mode; the default is last-write-wins.
type DuplicateSlotError struct {
	Label string
}

func (e *DuplicateSlotError) Error() string {
	return fmt.Sprintf("duplicate time-slot label %q in booking grid", e.Label)
}

// Options control decoder behavior for conditions the source site has
// historically tolerated.
type Options struct {
	// StrictDuplicates fails on a repeated time-slot label instead of
	// letting the later row overwrite the earlier. A duplicate usually
	// means row misalignment upstream.
	StrictDuplicates bool
}

// Headers extracts the trimmed cell text of the header row. The first
// entry is the time-column label; callers exclude it when deriving
// surface labels.
func Headers(rows *goquery.Selection) []string {
	headers := make([]string, 0)
	if rows.Length() == 0 {
		return headers
	}

	rows.Eq(0).Find("td").Each(func(_ int, cell *goquery.Selection) {
		headers = append(headers, strings.TrimSpace(cell.Text()))
	})
	return headers
}

// Decode walks the data rows of the grid (everything between the header
// row and the trailer rows) and decodes each cell through the rule
// cascade. Slots are returned in row order; with fewer than four rows
// there are no data rows and the result is empty.
func Decode(rows *goquery.Selection, rules []Rule, opts Options) ([]TimeSlot, error) {
	last := rows.Length() - trailerRows

	slots := make([]TimeSlot, 0)
	seen := make(map[string]int)

	for i := 1; i < last; i++ {
		cells := rows.Eq(i).Find("td")
		if cells.Length() == 0 {
			continue
		}

		label := strings.TrimSpace(cells.Eq(0).Text())
		statuses := make([]string, 0, cells.Length()-1)
		for j := 1; j < cells.Length(); j++ {
			statuses = append(statuses, decodeCell(rules, cells.Eq(j)))
		}

		if prev, ok := seen[label]; ok {
			if opts.StrictDuplicates {
				return nil, &DuplicateSlotError{Label: label}
			}
			slots[prev].Statuses = statuses
			continue
		}
		seen[label] = len(slots)
		slots = append(slots, TimeSlot{Label: label, Statuses: statuses})
	}

	return slots, nil
}

// Hourly keeps only the slots whose label denotes an exact hour boundary,
// preserving row order. Sub-hour granularity is not modeled downstream.
func Hourly(slots []TimeSlot) []TimeSlot {
	hourly := make([]TimeSlot, 0, len(slots))
	for _, slot := range slots {
		if strings.Contains(slot.Label, ":00") {
			hourly = append(hourly, slot)
		}
	}
	return hourly
}
