// Package config handles the fincal configuration file.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds all fincal configuration.
type Config struct {
	General    GeneralConfig    `toml:"general"`
	Appearance AppearanceConfig `toml:"appearance"`
}

// GeneralConfig holds general preferences.
type GeneralConfig struct {
	DBPath string `toml:"db_path,omitempty"`
}

// AppearanceConfig holds display settings.
type AppearanceConfig struct {
	Theme    string `toml:"theme"`
	Currency string `toml:"currency"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Appearance: AppearanceConfig{
			Theme:    "flexoki-dark",
			Currency: "₽",
		},
	}
}

// Dir returns the XDG-compliant config directory.
func Dir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "fincal")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "fincal")
}

// Path returns the full path to the config file.
func Path() string {
	return filepath.Join(Dir(), "config.toml")
}

// DefaultDBPath returns the ledger database location used when the
// config does not set one.
func DefaultDBPath() string {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, "fincal", "fincal.db")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "share", "fincal", "fincal.db")
}

// DBPath resolves the ledger database path from the config.
func DBPath(cfg Config) string {
	if cfg.General.DBPath != "" {
		return cfg.General.DBPath
	}
	return DefaultDBPath()
}

// Load reads the config file, returning defaults if it doesn't exist.
func Load() (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(Path())
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}

// Save writes the config to disk.
func Save(cfg Config) error {
	if err := os.MkdirAll(Dir(), 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(Path(), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()

	enc := toml.NewEncoder(f)
	return enc.Encode(cfg)
}

// Exists returns true if a config file exists on disk.
func Exists() bool {
	_, err := os.Stat(Path())
	return err == nil
}
