// Package pipeline sequences legend lookup, table location, grid decoding,
// hourly filtering, and record assembly over one raw snapshot.
//
// The pipeline is a pure function of (snapshot, legend, options) apart from
// the parse instant stamped on each record: re-running it over the same
// archived snapshot yields identical records, so retries and reprocessing
// are safe at the orchestration layer. It performs no I/O and holds no
// state between runs.
package pipeline
