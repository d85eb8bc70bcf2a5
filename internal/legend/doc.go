// Package legend loads the colour-to-status legend used to decode booking
// grid cells.
//
// The legend is a plain-text resource of KEY=VALUE lines where KEY is a
// status constant such as AVAILABLE_COLOR and VALUE is the raw background
// colour token as it appears in the scraped HTML. Lines starting with '#'
// and blank lines are ignored. The loaded legend maps colour tokens to
// canonical lower-case status names and is immutable for the duration of a
// parse run.
package legend
