// Package config loads glint.toml, the optional knobs file. Every field has
// a default; a missing file is not an error.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
)

// FileName is the config file searched for in the working directory and its
// parents.
const FileName = "glint.toml"

// Config is the full knobs file.
type Config struct {
	Engine EngineConfig `toml:"engine"`
	Log    LogConfig    `toml:"log"`
}

// EngineConfig tunes the tokenization engine.
type EngineConfig struct {
	// BatchBudgetMs bounds one background tokenization batch.
	BatchBudgetMs int `toml:"batch_budget_ms"`
	// IdleSliceMs is the deadline granted per scheduler idle slot.
	IdleSliceMs int `toml:"idle_slice_ms"`
	// CheapLineLength is the synchronous-query line length cutoff.
	CheapLineLength int `toml:"cheap_line_length"`
	// MaxFileSize disables tokenization above this many bytes. 0 keeps the
	// built-in limit.
	MaxFileSize int `toml:"max_file_size"`
}

// LogConfig tunes CLI logging.
type LogConfig struct {
	Level string `toml:"level"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Engine: EngineConfig{
			BatchBudgetMs:   1,
			IdleSliceMs:     16,
			CheapLineLength: 2048,
		},
		Log: LogConfig{Level: "info"},
	}
}

// BatchBudget returns the batch budget as a duration.
func (c EngineConfig) BatchBudget() time.Duration {
	return time.Duration(c.BatchBudgetMs) * time.Millisecond
}

// IdleSlice returns the idle slice as a duration.
func (c EngineConfig) IdleSlice() time.Duration {
	return time.Duration(c.IdleSliceMs) * time.Millisecond
}

// Load finds glint.toml starting at startDir and walking upward, merging it
// over the defaults. ok reports whether a file was found.
func Load(startDir string) (cfg Config, ok bool, err error) {
	cfg = Default()
	path, found, err := find(startDir)
	if err != nil || !found {
		return cfg, false, err
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Default(), false, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	cfg.fillDefaults()
	return cfg, true, nil
}

func (c *Config) fillDefaults() {
	def := Default()
	if c.Engine.BatchBudgetMs <= 0 {
		c.Engine.BatchBudgetMs = def.Engine.BatchBudgetMs
	}
	if c.Engine.IdleSliceMs <= 0 {
		c.Engine.IdleSliceMs = def.Engine.IdleSliceMs
	}
	if c.Engine.CheapLineLength <= 0 {
		c.Engine.CheapLineLength = def.Engine.CheapLineLength
	}
	if c.Log.Level == "" {
		c.Log.Level = def.Log.Level
	}
}

func find(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, FileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}
