// Package config loads editor settings from a TOML file and supports
// live reload via filesystem notification.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	toml "github.com/pelletier/go-toml/v2"
)

// Config holds the tunable settings of the editing engine.
type Config struct {
	// TabWidth is the tab size in columns.
	TabWidth int `toml:"tab_width"`

	// WordWrap selects whitespace-preferring wrap points.
	WordWrap bool `toml:"word_wrap"`

	// MaxUndoEntries bounds the undo stack depth.
	MaxUndoEntries int `toml:"max_undo_entries"`

	// CellWidth is the pixel width of one monospace cell, used by the
	// default measurer.
	CellWidth float64 `toml:"cell_width"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		TabWidth:       4,
		WordWrap:       true,
		MaxUndoEntries: 1000,
		CellWidth:      8,
	}
}

// Load reads settings from a TOML file. A missing file yields the
// defaults; fields absent from the file keep their default values, and
// out-of-range values are clamped back to the defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("config: parse %s: %w", path, err)
	}

	cfg.normalize()
	return cfg, nil
}

// normalize clamps out-of-range values back to the defaults.
func (c *Config) normalize() {
	def := Default()
	if c.TabWidth < 1 {
		c.TabWidth = def.TabWidth
	}
	if c.MaxUndoEntries < 1 {
		c.MaxUndoEntries = def.MaxUndoEntries
	}
	if c.CellWidth <= 0 {
		c.CellWidth = def.CellWidth
	}
}
