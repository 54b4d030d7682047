package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

var ErrUnknownTheme = errors.New("unknown theme")

// Themes lists the accepted catppuccin flavour names.
var Themes = []string{"latte", "frappe", "macchiato", "mocha"}

// Config holds user preferences for the builder front ends.
// Field definitions themselves are never stored here.
type Config struct {
	Theme     string `yaml:"theme,omitempty"`
	AltScreen bool   `yaml:"alt_screen"`
	DebugLog  string `yaml:"debug_log,omitempty"` // file path, empty = no debug log
	DevMode   bool   `yaml:"dev_mode,omitempty"`
}

func Default() Config {
	return Config{
		Theme:     "mocha",
		AltScreen: true,
	}
}

// Path returns the default config file location.
func Path(devMode bool) (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}

	appDir := AppID
	if devMode {
		appDir = AppID + "-dev"
	}
	return filepath.Join(configDir, appDir, "config.yaml"), nil
}

// Load reads the config at path over the defaults. A missing file is not an
// error.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return Config{}, err
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	for _, t := range Themes {
		if c.Theme == t {
			return nil
		}
	}
	return fmt.Errorf("%w %q", ErrUnknownTheme, c.Theme)
}
