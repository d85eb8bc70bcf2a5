package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the root configuration for a parse run.
type Config struct {
	Venue   VenueConfig   `yaml:"venue"`
	Locator LocatorConfig `yaml:"locator"`
	Legend  LegendConfig  `yaml:"legend"`
	Strict  StrictConfig  `yaml:"strict"`
}

// VenueConfig identifies the venue's local civil time zone. Slot instants
// and civil dates are computed in this zone.
type VenueConfig struct {
	Timezone string `yaml:"timezone"`
}

// LocatorConfig is the structural address of the booking grid within the
// scraped document. Both ordinals are zero-based.
type LocatorConfig struct {
	OuterTable  int `yaml:"outer_table"`
	NestedTable int `yaml:"nested_table"`
}

// LegendConfig points at the colour-to-status legend resource.
type LegendConfig struct {
	Path string `yaml:"path"`
}

// StrictConfig toggles hard failures for grid conditions that default to
// the source site's lenient behavior.
type StrictConfig struct {
	DuplicateSlots  bool `yaml:"duplicate_slots"`
	SurplusStatuses bool `yaml:"surplus_statuses"`
}

// Default returns the configuration matching the current booking site.
func Default() Config {
	return Config{
		Venue:   VenueConfig{Timezone: "Australia/Sydney"},
		Locator: LocatorConfig{OuterTable: 0, NestedTable: 1},
		Legend:  LegendConfig{Path: "booking_colour_map.txt"},
	}
}

// Load reads configuration from a YAML file, filling unset fields with
// defaults. A missing file yields the defaults; a malformed file is an
// error.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks the configuration for values the pipeline cannot use.
func (c Config) Validate() error {
	if c.Venue.Timezone == "" {
		return fmt.Errorf("venue.timezone must be set")
	}
	if _, err := time.LoadLocation(c.Venue.Timezone); err != nil {
		return fmt.Errorf("venue.timezone: %w", err)
	}
	if c.Locator.OuterTable < 0 || c.Locator.NestedTable < 0 {
		return fmt.Errorf("locator ordinals must be non-negative, got outer=%d nested=%d",
			c.Locator.OuterTable, c.Locator.NestedTable)
	}
	if c.Legend.Path == "" {
		return fmt.Errorf("legend.path must be set")
	}
	return nil
}

// Location resolves the venue time zone.
func (c Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Venue.Timezone)
	if err != nil {
		return nil, fmt.Errorf("loading venue time zone: %w", err)
	}
	return loc, nil
}
