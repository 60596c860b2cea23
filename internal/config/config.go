// Package config loads the optional TOML configuration file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// FileName is the configuration file looked up in the user config dir
const FileName = "amos.toml"

// Window holds the initial window size
type Window struct {
	Width  int `toml:"width"`
	Height int `toml:"height"`
}

// Config is the application configuration
type Config struct {
	// ModelsRoot is the directory catalogue paths like /models/x.stl are
	// resolved against
	ModelsRoot string `toml:"models_root"`
	BaseModel  string `toml:"base_model"`
	LogLevel   string `toml:"log_level"`
	Watch      bool   `toml:"watch"`
	Window     Window `toml:"window"`
}

// Default returns the built-in configuration
func Default() Config {
	return Config{
		ModelsRoot: ".",
		BaseModel:  "/models/base_model.stl",
		LogLevel:   "info",
		Watch:      true,
		Window:     Window{Width: 1400, Height: 900},
	}
}

// DefaultPath returns the per-user configuration file path
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return FileName
	}
	return filepath.Join(dir, "amos", FileName)
}

// Load reads path on top of Default. A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return Default(), fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return Default(), fmt.Errorf("unknown config key %q in %s", undecoded[0].String(), path)
	}

	return cfg, cfg.Validate()
}

// Validate checks value ranges
func (c Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.BaseModel == "" {
		return errors.New("base_model must not be empty")
	}
	return nil
}
