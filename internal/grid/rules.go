package grid

import (
	"github.com/PuerkitoBio/goquery"

	"github.com/courtgrid/courtgrid/internal/legend"
)

// Canonical booking statuses produced by cell decoding.
const (
	StatusAvailable   = "available"
	StatusBooked      = "booked"
	StatusUnavailable = "unavailable"
	StatusUnknown     = ""
)

// Markup attributes the source site uses to encode cell state.
const (
	colorAttr   = "bgcolor"
	markerAttr  = "onmouseover"
	markerValue = "booknow(this)"
)

// Rule decodes one grid cell. It returns the status and true when the rule
// applies, or false to pass the cell to the next rule in the cascade.
type Rule interface {
	Decode(cell *goquery.Selection) (string, bool)
}

// ColorRule decodes a cell by its background colour attribute. A colour
// missing from the legend degrades to Fallback, never to an error.
type ColorRule struct {
	Legend   legend.Legend
	Fallback string
}

func (r ColorRule) Decode(cell *goquery.Selection) (string, bool) {
	color, ok := cell.Attr(colorAttr)
	if !ok || color == "" {
		return "", false
	}
	if status, known := r.Legend.Status(color); known {
		return status, true
	}
	return r.Fallback, true
}

// MarkerRule decodes a cell by the presence of an interaction marker
// attribute with an exact value.
type MarkerRule struct {
	Attr   string
	Value  string
	Status string
}

func (r MarkerRule) Decode(cell *goquery.Selection) (string, bool) {
	if v, ok := cell.Attr(r.Attr); ok && v == r.Value {
		return r.Status, true
	}
	return "", false
}

// DefaultRule terminates the cascade with a fixed status.
type DefaultRule struct {
	Status string
}

func (r DefaultRule) Decode(cell *goquery.Selection) (string, bool) {
	return r.Status, true
}

// DefaultRules is the canonical decode cascade: colour lookup first, then
// the "book now" marker, then unknown.
func DefaultRules(lgd legend.Legend) []Rule {
	return []Rule{
		ColorRule{Legend: lgd, Fallback: StatusUnavailable},
		MarkerRule{Attr: markerAttr, Value: markerValue, Status: StatusAvailable},
		DefaultRule{Status: StatusUnknown},
	}
}

// decodeCell runs the cascade over one cell.
func decodeCell(rules []Rule, cell *goquery.Selection) string {
	for _, rule := range rules {
		if status, ok := rule.Decode(cell); ok {
			return status
		}
	}
	return StatusUnknown
}
