package fetcher

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config is the fetcher's environment configuration.
type Config struct {
	OutputDir  string        `envconfig:"COURTGRID_OUTPUT_DIR" default:"data"`
	Timeout    time.Duration `envconfig:"COURTGRID_TIMEOUT" default:"10s"`
	MaxRetries uint64        `envconfig:"COURTGRID_MAX_RETRIES" default:"3"`
	UserAgent  string        `envconfig:"COURTGRID_USER_AGENT" default:"courtgrid/1.0 (github.com/courtgrid/courtgrid)"`
}

// LoadConfig reads the fetcher configuration from the environment, after
// loading a .env file if one is present.
func LoadConfig() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return cfg, fmt.Errorf("reading fetcher config: %w", err)
	}
	return cfg, nil
}
