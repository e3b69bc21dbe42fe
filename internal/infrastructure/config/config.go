package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Device kinds accepted in the layout section.
const (
	KindSocket     = "socket"
	KindThermostat = "thermostat"
)

// Config is the root configuration structure for Hearth Core.
// All configuration is loaded from YAML and can be overridden by
// environment variables.
type Config struct {
	House   HouseConfig   `yaml:"house"`
	Logging LoggingConfig `yaml:"logging"`
	Poll    PollConfig    `yaml:"poll"`
	Layout  []RoomLayout  `yaml:"layout"`
}

// HouseConfig identifies the house the registry is built for.
type HouseConfig struct {
	Name string `yaml:"name"`
}

// LoggingConfig contains logging settings.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	Output string `yaml:"output"`
}

// PollConfig controls the demonstration poll loop.
type PollConfig struct {
	// IntervalSeconds is the delay between poll rounds.
	IntervalSeconds int `yaml:"interval_seconds"`
	// Cycles is the number of poll rounds before the walkthrough stops.
	Cycles int `yaml:"cycles"`
}

// RoomLayout seeds one room and its devices.
type RoomLayout struct {
	Room    string         `yaml:"room"`
	Devices []DeviceLayout `yaml:"devices"`
}

// DeviceLayout seeds one device within a room.
type DeviceLayout struct {
	Name string `yaml:"name"`
	Kind string `yaml:"kind"`
}

// Load reads configuration from a YAML file and applies environment
// variable overrides.
//
// The loading order is:
//  1. Default values (hardcoded)
//  2. YAML file values (override defaults)
//  3. Environment variables (override file values)
//
// Environment variables follow the pattern: HEARTH_SECTION_KEY
// For example: HEARTH_HOUSE_NAME, HEARTH_LOGGING_LEVEL
func Load(path string) (*Config, error) {
	cfg := defaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// defaultConfig returns a Config with sensible defaults.
func defaultConfig() *Config {
	return &Config{
		House: HouseConfig{
			Name: "Hearth",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Output: "stdout",
		},
		Poll: PollConfig{
			IntervalSeconds: 1,
			Cycles:          3,
		},
	}
}

// applyEnvOverrides applies environment variable overrides.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("HEARTH_HOUSE_NAME"); v != "" {
		cfg.House.Name = v
	}

	if v := os.Getenv("HEARTH_LOGGING_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv("HEARTH_LOGGING_FORMAT"); v != "" {
		cfg.Logging.Format = v
	}

	if v := os.Getenv("HEARTH_POLL_INTERVAL_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Poll.IntervalSeconds = n
		}
	}
	if v := os.Getenv("HEARTH_POLL_CYCLES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Poll.Cycles = n
		}
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	var errs []string

	if strings.TrimSpace(c.House.Name) == "" {
		errs = append(errs, "house.name is required")
	}

	if c.Poll.IntervalSeconds < 1 {
		errs = append(errs, "poll.interval_seconds must be at least 1")
	}
	if c.Poll.Cycles < 0 {
		errs = append(errs, "poll.cycles must not be negative")
	}

	for i, room := range c.Layout {
		if strings.TrimSpace(room.Room) == "" {
			errs = append(errs, fmt.Sprintf("layout[%d].room is required", i))
		}
		for j, dev := range room.Devices {
			if strings.TrimSpace(dev.Name) == "" {
				errs = append(errs, fmt.Sprintf("layout[%d].devices[%d].name is required", i, j))
			}
			switch dev.Kind {
			case KindSocket, KindThermostat:
			default:
				errs = append(errs, fmt.Sprintf("layout[%d].devices[%d].kind %q is not recognised", i, j, dev.Kind))
			}
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration errors: %s", strings.Join(errs, "; "))
	}
	return nil
}

// GetPollInterval returns the poll interval as a Duration.
func (c *Config) GetPollInterval() time.Duration {
	return time.Duration(c.Poll.IntervalSeconds) * time.Second
}
