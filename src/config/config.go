package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/pkg/errors"

	"galaxylife/src/simulation"
)

// Config holds the configuration of the program
// the grid is always the 23x23 seeded universe, only the way it is driven can be configured
type Config struct {
	Interval       time.Duration `json:"interval"`
	MaxSteps       int           `json:"max_steps"`
	Interactive    bool          `json:"interactive"`
	StopWhenStable bool          `json:"stop_when_stable"`
}

// DefaultConfig returns the defaults of the simulation driver
func DefaultConfig() Config {
	return Config{
		Interval:       simulation.DefSimulationInterval,
		MaxSteps:       simulation.DefMaxSteps,
		Interactive:    false,
		StopWhenStable: false,
	}
}

// LoadConfig loads configuration from JSON file, missing fields keep their defaults
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	if err = json.Unmarshal(data, &config); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	if err = config.Validate(); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] invalid configuration in file: %+v", filename)
	}

	return config, nil
}

// Validate rejects values the simulation driver can not work with
func (c Config) Validate() error {
	if c.Interval < 0 {
		return errors.Errorf("interval must not be negative, got %v", c.Interval)
	}
	if c.MaxSteps < 0 {
		return errors.Errorf("max_steps must not be negative, got %v", c.MaxSteps)
	}
	return nil
}

// Options converts the configuration to the simulation options
func (c Config) Options() simulation.Options {
	return simulation.Options{
		Interval:       c.Interval,
		MaxSteps:       c.MaxSteps,
		StopWhenStable: c.StopWhenStable,
	}
}
