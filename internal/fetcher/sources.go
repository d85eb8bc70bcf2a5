package fetcher

import (
	"encoding/json"
	"fmt"
	"os"
)

// Source is one venue calendar to scrape. Name carries the
// "<venue>:<suburb>" identity the core splits downstream.
type Source struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// LoadSources reads the source list from a JSON file.
func LoadSources(path string) ([]Source, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading sources file: %w", err)
	}

	var sources []Source
	if err := json.Unmarshal(data, &sources); err != nil {
		return nil, fmt.Errorf("parsing sources file: %w", err)
	}

	for i, src := range sources {
		if src.Name == "" || src.URL == "" {
			return nil, fmt.Errorf("source %d: name and url are required", i)
		}
	}
	return sources, nil
}
