package config

import (
	"errors"
	"os"

	"github.com/pelletier/go-toml"

	"github.com/sig-0/oddscan/market"
)

const (
	DefaultTarget            = 3.0
	DefaultTolerance         = 0.6
	DefaultRegion            = string(market.RegionEU)
	DefaultSportKey          = "soccer_epl"
	DefaultOutputPath        = "filtered_odds.csv"
	DefaultMaxEventsPerSport = 10
)

var (
	ErrNonPositiveTarget = errors.New("target odds must be positive")
	ErrNegativeTolerance = errors.New("tolerance must not be negative")
	ErrNoSports          = errors.New("no sport keys configured")
	ErrInvalidRegion     = errors.New("invalid bookmaker region")
	ErrNegativeCap       = errors.New("per-sport event cap must not be negative")
	ErrMissingOutputPath = errors.New("missing output path")
)

// Config defines the scan run configuration
type Config struct {
	// Sport keys to scan, e.g. soccer_epl
	Sports []string `toml:"sports"`

	// The odds value around which all three outcomes should cluster
	Target float64 `toml:"target"`

	// Allowed symmetric deviation from the target
	Tolerance float64 `toml:"tolerance"`

	// Bookmaker region for the odds requests
	Region string `toml:"region"`

	// Cap on raw events processed per sport key. 0 disables the cap
	MaxEventsPerSport int `toml:"max_events_per_sport"`

	// Path of the exported CSV file
	OutputPath string `toml:"output_path"`

	// Append to the output file instead of overwriting it
	Append bool `toml:"append"`

	// Request per-outcome deep links and export them
	DeepLinks bool `toml:"deep_links"`

	// Order exported rows by the combined odds product, descending,
	// instead of the order the API returned
	SortByProduct bool `toml:"sort_by_product"`
}

// DefaultConfig returns the default scan configuration
func DefaultConfig() *Config {
	return &Config{
		Sports:            []string{DefaultSportKey},
		Target:            DefaultTarget,
		Tolerance:         DefaultTolerance,
		Region:            DefaultRegion,
		MaxEventsPerSport: DefaultMaxEventsPerSport,
		OutputPath:        DefaultOutputPath,
	}
}

// ValidateConfig validates the scan configuration
func ValidateConfig(config *Config) error {
	if config.Target <= 0 {
		return ErrNonPositiveTarget
	}

	if config.Tolerance < 0 {
		return ErrNegativeTolerance
	}

	if len(config.Sports) == 0 {
		return ErrNoSports
	}

	if !market.ValidRegion(market.Region(config.Region)) {
		return ErrInvalidRegion
	}

	if config.MaxEventsPerSport < 0 {
		return ErrNegativeCap
	}

	if config.OutputPath == "" {
		return ErrMissingOutputPath
	}

	return nil
}

// Criteria converts the configuration into scan criteria
func (c *Config) Criteria() market.Criteria {
	return market.Criteria{
		Sports:            c.Sports,
		Target:            c.Target,
		Tolerance:         c.Tolerance,
		Region:            market.Region(c.Region),
		MaxEventsPerSport: c.MaxEventsPerSport,
	}
}

// Read reads the configuration from the given path
func Read(path string) (*Config, error) {
	// Read the config file
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	// Parse it
	var cfg Config

	if err := toml.Unmarshal(content, &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
