package grid

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Table ordinal levels reported by TableNotFoundError.
const (
	LevelOuter  = "outer"
	LevelNested = "nested"
)

// TableAddress is the structural address of the booking grid: the ordinal
// of the outer table among all tables in document order, then the ordinal
// of the target table among those nested inside it. Both are zero-based.
type TableAddress struct {
	Outer  int
	Nested int
}

// DefaultAddress is the booking site's current markup layout.
var DefaultAddress = TableAddress{Outer: 0, Nested: 1}

func (a TableAddress) String() string {
	return fmt.Sprintf("outer=%d nested=%d", a.Outer, a.Nested)
}

// TableNotFoundError reports a structural address mismatch: the document
// does not contain a table at the requested ordinal. This is the most
// likely failure point when the source site changes its markup.
type TableNotFoundError struct {
	Level string // LevelOuter or LevelNested
	Index int
	Found int
}

func (e *TableNotFoundError) Error() string {
	return fmt.Sprintf("%s table ordinal %d not found: document has %d %s tables",
		e.Level, e.Index, e.Found, e.Level)
}

// Locate parses the document and returns the rows of the booking grid at
// the given structural address.
func Locate(html string, addr TableAddress) (*goquery.Selection, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	outer := doc.Find("table")
	if addr.Outer >= outer.Length() {
		return nil, &TableNotFoundError{Level: LevelOuter, Index: addr.Outer, Found: outer.Length()}
	}

	nested := outer.Eq(addr.Outer).Find("table")
	if addr.Nested >= nested.Length() {
		return nil, &TableNotFoundError{Level: LevelNested, Index: addr.Nested, Found: nested.Length()}
	}

	return nested.Eq(addr.Nested).Find("tr"), nil
}
