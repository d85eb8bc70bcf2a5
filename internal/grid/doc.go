// Package grid locates and decodes the booking grid inside a scraped HTML
// document.
//
// The grid is addressed structurally: the Nth table in document order, then
// the Mth table nested inside it. This coupling to the source site's markup
// is deliberate and fragile; when the markup drifts the locator fails with a
// TableNotFoundError naming the missing ordinal rather than returning wrong
// data.
//
// Cell decoding runs an ordered rule cascade: a background colour is looked
// up in the legend (unknown colours degrade to "unavailable"), otherwise a
// "book now" interaction marker implies the cell is bookable, otherwise the
// status is unknown. The cascade is an explicit rule list so each step is
// testable in isolation.
package grid
