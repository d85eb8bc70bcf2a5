// Package snapshot defines the raw scrape snapshot exchanged between the
// fetch collaborator and the parsing core.
//
// A snapshot carries one HTML document plus provenance metadata (source
// identity, origin URL, scrape timestamp, HTTP status). Snapshots with a
// non-200 status or absent HTML are valid "nothing to parse" inputs, not
// errors; the Parseable method encodes that gate.
package snapshot
