// Package cli implements the courtgrid command line.
//
// The cli package provides the Cobra-based CLI with two subcommands:
// "parse" runs the extraction pipeline over one archived snapshot and
// writes structured booking records (text or JSON, optionally into the
// SQLite sink), and "fetch" runs the snapshot collaborator across the
// configured sources. It wires together the config, legend, snapshot,
// pipeline, fetcher and store packages.
package cli
