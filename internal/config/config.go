package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

// Config holds all configurable paths and tool settings.
type Config struct {
	// Paths
	WeightsDir string `json:"weights_dir"`
	OutputDir  string `json:"output_dir"`

	// Export settings
	Workers  int  `json:"workers"`
	Compress bool `json:"compress"`

	// Weight-map render settings
	CellSize    int `json:"cell_size"`
	Supersample int `json:"supersample"`
}

// Load reads a JSON config file and returns Config.
// Fields not set in the file keep their zero values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg, nil
}

// Resolve fills in any empty fields with defaults.
// CLI flags take priority when non-zero/non-empty.
func (c *Config) Resolve(flags Flags) {
	if flags.WeightsDir != "" {
		c.WeightsDir = flags.WeightsDir
	}
	if flags.OutputDir != "" {
		c.OutputDir = flags.OutputDir
	}
	if flags.Workers > 0 {
		c.Workers = flags.Workers
	}

	// The historical pipeline kept weights under data/skinWeights in the
	// project root.
	if c.WeightsDir == "" {
		c.WeightsDir = filepath.Join("data", "skinWeights")
	}
	if c.OutputDir == "" {
		c.OutputDir = c.WeightsDir
	}

	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
	if c.CellSize <= 0 {
		c.CellSize = 8
	}
	if c.Supersample <= 0 {
		c.Supersample = 2
	}
}

// Flags holds CLI flag values that override config file settings.
type Flags struct {
	WeightsDir string
	OutputDir  string
	Workers    int
}
