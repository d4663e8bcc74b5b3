package util

import (
	"astrocore/internal/domain"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"
)

type Config struct {
	DefaultOrb     *float64           `json:"defaultOrb,omitempty"`
	Orbs           map[string]float64 `json:"orbs,omitempty"`
	IncludeMinor   bool               `json:"includeMinor"`
	MaxResults     int                `json:"maxResults"`
	MidpointOrb    float64            `json:"midpointOrb"`
	Workers        int                `json:"workers"`
	RankExpression string             `json:"rankExpression"`
	Latitude       float64            `json:"latitude"`
	Timezone       string             `json:"timezone,omitempty"`
}

func DefaultConfig() Config {
	return Config{
		MidpointOrb: 1,
		Workers:     4,
	}
}

// ConfigFile picks the config file for the current ASTRO_ENV.
func ConfigFile() string {
	switch os.Getenv("ASTRO_ENV") {
	case "dev":
		return "config-dev.json"
	case "test":
		return "config-test.json"
	default:
		return "config.json"
	}
}

// LoadConfig reads path, or the ASTRO_ENV file when path is empty. A missing
// ASTRO_ENV file yields DefaultConfig; a missing explicit path is an error.
func LoadConfig(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = ConfigFile()
	}

	config := DefaultConfig()
	f, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return &config, nil
		}
		return nil, fmt.Errorf("could not open %s: %w", path, err)
	}

	if err := json.Unmarshal(f, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if config.Workers <= 0 {
		config.Workers = 1
	}

	return &config, nil
}

// Location resolves the IANA Timezone name, e.g. "Asia/Kolkata". Nil when
// no zone is configured.
func (c Config) Location() (*time.Location, error) {
	if c.Timezone == "" {
		return nil, nil
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("failed to load timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}

func (c Config) AspectOptions() (domain.AspectOptions, error) {
	opts := domain.AspectOptions{
		IncludeMinor: c.IncludeMinor,
		MaxResults:   c.MaxResults,
		Orbs: domain.OrbOverrides{
			Default: c.DefaultOrb,
		},
	}
	if len(c.Orbs) > 0 {
		opts.Orbs.ByType = map[domain.AspectType]float64{}
		for name, orb := range c.Orbs {
			t, err := domain.ParseAspectType(name)
			if err != nil {
				return domain.AspectOptions{}, fmt.Errorf("failed to parse orb override: %w", err)
			}
			opts.Orbs.ByType[t] = orb
		}
	}
	return opts, nil
}
