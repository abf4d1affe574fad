// Package config loads the antennareader settings from a TOML file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/philipparndt/antennareader/internal/diagram"
)

const (
	appName  = "antennareader"
	fileName = "config.toml"
)

// Duration is a time.Duration written as a string such as "500ms"
type Duration struct {
	time.Duration
}

// UnmarshalText parses a duration string
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

// MarshalText formats the duration
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Config holds all settings
type Config struct {
	StorePath       string   `toml:"store_path"`
	ExportDir       string   `toml:"export_dir"`
	WindowWidth     int      `toml:"window_width"`
	WindowHeight    int      `toml:"window_height"`
	ResizeThreshold float64  `toml:"resize_threshold"`
	NudgeStep       float64  `toml:"nudge_step"`
	RotationStep    float64  `toml:"rotation_step"`
	HistoryCapacity int      `toml:"history_capacity"`
	WatchDebounce   Duration `toml:"watch_debounce"`
}

// Default returns the built-in settings
func Default() Config {
	opts := diagram.DefaultOptions()
	return Config{
		StorePath:       filepath.Join(dataDir(), "diagrams.json"),
		ExportDir:       ".",
		WindowWidth:     1280,
		WindowHeight:    900,
		ResizeThreshold: opts.ResizeThreshold,
		NudgeStep:       opts.NudgeStep,
		RotationStep:    opts.RotationStep,
		HistoryCapacity: opts.HistoryCapacity,
		WatchDebounce:   Duration{500 * time.Millisecond},
	}
}

// DefaultPath returns the config file location in the user config dir
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return fileName
	}
	return filepath.Join(dir, appName, fileName)
}

// Load reads path over the defaults. An empty path means DefaultPath; a
// missing file yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		path = DefaultPath()
	}

	md, err := toml.DecodeFile(path, &cfg)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("failed to load config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("config %s: unknown key %q", path, undecoded[0].String())
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate rejects settings the application cannot run with
func (c Config) Validate() error {
	switch {
	case c.StorePath == "":
		return errors.New("store_path must not be empty")
	case c.WindowWidth <= 0 || c.WindowHeight <= 0:
		return fmt.Errorf("window size must be positive, got %dx%d", c.WindowWidth, c.WindowHeight)
	case c.ResizeThreshold <= 0:
		return fmt.Errorf("resize_threshold must be positive, got %v", c.ResizeThreshold)
	case c.NudgeStep <= 0:
		return fmt.Errorf("nudge_step must be positive, got %v", c.NudgeStep)
	case c.RotationStep <= 0:
		return fmt.Errorf("rotation_step must be positive, got %v", c.RotationStep)
	case c.HistoryCapacity < 1:
		return fmt.Errorf("history_capacity must be at least 1, got %d", c.HistoryCapacity)
	case c.WatchDebounce.Duration < 0:
		return fmt.Errorf("watch_debounce must not be negative, got %v", c.WatchDebounce.Duration)
	}
	return nil
}

// DiagramOptions returns the interaction settings for a controller
func (c Config) DiagramOptions() diagram.Options {
	return diagram.Options{
		ResizeThreshold: c.ResizeThreshold,
		NudgeStep:       c.NudgeStep,
		RotationStep:    c.RotationStep,
		HistoryCapacity: c.HistoryCapacity,
	}
}

func dataDir() string {
	if dir := os.Getenv("XDG_DATA_HOME"); dir != "" {
		return filepath.Join(dir, appName)
	}
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, ".local", "share", appName)
	}
	return "."
}
