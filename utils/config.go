package utils

import (
	"encoding/json"
	"os"
	"time"

	"github.com/pkg/errors"
)

// Config holds the configuration for the simulation and its driver
type Config struct {
	Width          int           `json:"width"`
	Height         int           `json:"height"`
	SpawnThreshold float64       `json:"spawn_threshold"`
	MaxGenerations int           `json:"max_generations"`
	FrameDelay     time.Duration `json:"frame_delay"`
	Seed           int64         `json:"seed"`       // 0 picks a time-based seed
	LiveCells      []string      `json:"live_cells"` // "row,col" keys; replaces the random fill when set
	Patterns       []Pattern     `json:"patterns"`   // named patterns; also replace the random fill
	ShowStatus     bool          `json:"show_status"`
}

// Pattern places a named pattern ("block", "blinker" or "glider") with its top-left corner at a "row,col" key
type Pattern struct {
	Name string `json:"name"`
	At   string `json:"at"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Width:          20,
		Height:         10,
		SpawnThreshold: 0.4,
		MaxGenerations: 100,
		FrameDelay:     500 * time.Millisecond,
		ShowStatus:     true,
	}
}

// LoadConfig loads configuration from JSON file. Validation is left to the caller so
// command line overrides can be applied first.
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	if err = json.Unmarshal(data, &config); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	return config, nil
}

// Validate checks that the configuration describes a runnable simulation
func (c Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return errors.Errorf("[Config.Validate] grid must be at least 1x1, got %dx%d", c.Height, c.Width)
	case c.SpawnThreshold < 0 || c.SpawnThreshold > 1:
		return errors.Errorf("[Config.Validate] spawn threshold %v outside [0,1]", c.SpawnThreshold)
	case c.MaxGenerations < 0:
		return errors.Errorf("[Config.Validate] negative max generations %d", c.MaxGenerations)
	case c.FrameDelay < 0:
		return errors.Errorf("[Config.Validate] negative frame delay %v", c.FrameDelay)
	}
	return nil
}
