// Package config loads pipeline configuration from YAML.
//
// Configuration covers the venue's civil time zone, the structural address
// of the booking grid, the legend resource path, and the strict-mode
// toggles for conditions the source site has historically tolerated.
// Absent files yield the defaults, which match the current booking site.
package config
