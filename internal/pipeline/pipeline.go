package pipeline

import (
	"fmt"
	"time"

	"github.com/courtgrid/courtgrid/internal/grid"
	"github.com/courtgrid/courtgrid/internal/legend"
	"github.com/courtgrid/courtgrid/internal/record"
	"github.com/courtgrid/courtgrid/internal/snapshot"
)

// EmptyGridError reports a located table with no usable rows. The structural
// address matched, so this is the venue publishing no schedule rather than
// markup drift; callers distinguish it from TableNotFoundError.
type EmptyGridError struct {
	Address grid.TableAddress
}

func (e *EmptyGridError) Error() string {
	return fmt.Sprintf("booking grid at %s has no rows", e.Address)
}

// Options configure one pipeline run.
type Options struct {
	Address          grid.TableAddress
	StrictDuplicates bool
	StrictSurplus    bool

	// Now supplies the parse instant; defaults to time.Now.
	Now func() time.Time
}

// Run converts one raw snapshot into structured booking records.
//
// Snapshots that are not parseable (non-200 status, absent HTML) yield an
// empty result with no error: a failed fetch is a defined nothing-to-parse
// outcome. Every other failure aborts the document; none are retried here.
func Run(snap *snapshot.Snapshot, lgd legend.Legend, loc *time.Location, opts Options) ([]record.Record, error) {
	if !snap.Parseable() {
		return nil, nil
	}

	venue, suburb, err := snap.SplitSource()
	if err != nil {
		return nil, err
	}

	rows, err := grid.Locate(*snap.HTML, opts.Address)
	if err != nil {
		return nil, err
	}
	if rows.Length() == 0 {
		return nil, &EmptyGridError{Address: opts.Address}
	}

	headers := grid.Headers(rows)

	slots, err := grid.Decode(rows, grid.DefaultRules(lgd), grid.Options{
		StrictDuplicates: opts.StrictDuplicates,
	})
	if err != nil {
		return nil, err
	}

	asm := record.Assembler{
		Venue:     venue,
		Suburb:    suburb,
		URL:       snap.URL,
		ScrapedAt: snap.ScrapedAt,
		Location:  loc,
		Now:       opts.Now,
	}
	return asm.Assemble(grid.Hourly(slots), headers, record.Options{
		StrictSurplus: opts.StrictSurplus,
	})
}
