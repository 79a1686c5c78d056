/*
Package config manages the TOML config file for asciiref.
*/
package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"

	"github.com/VoxDroid/asciiref/internal/exporter"
)

// Config holds the entire config structure
type Config struct {
	UI     UIConfig     `toml:"ui"`
	Export ExportConfig `toml:"export"`
	Log    LogConfig    `toml:"log"`
}

// UIConfig has table and TUI display options.
type UIConfig struct {
	HighContrast bool `toml:"high_contrast"`
	ShowScores   bool `toml:"show_scores"`
	ShowControl  bool `toml:"show_control"`
}

// ExportConfig holds export defaults.
type ExportConfig struct {
	Format string `toml:"format"`
}

// LogConfig holds logging options.
type LogConfig struct {
	Level string `toml:"level"`
}

// Default returns a Config with default values.
func Default() *Config {
	return &Config{
		UI: UIConfig{
			HighContrast: false,
			ShowScores:   false,
			ShowControl:  true,
		},
		Export: ExportConfig{Format: string(exporter.FormatSQLite)},
		Log:    LogConfig{Level: "warn"},
	}
}

// Validate rejects values the rest of the program cannot use.
func (c *Config) Validate() error {
	if _, err := exporter.ParseFormat(c.Export.Format); err != nil {
		return fmt.Errorf("export.format: %w", err)
	}
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log.level %q: %w", c.Log.Level, err)
	}
	return nil
}

// Load reads a TOML file on top of the defaults. Keys missing from the file
// keep their default value.
func Load(path string) (*Config, error) {
	cfg := Default()
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		log.Warnf("Ignoring unknown config keys in %s: %s", path, strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// LoadWithPriority loads config with priority:
// 1. Custom path from --config flag (errors are returned)
// 2. Default path (a missing file means defaults, a broken one is logged)
// 3. Builtin defaults
func LoadWithPriority(customPath string) (*Config, string, error) {
	if customPath != "" {
		cfg, err := Load(customPath)
		if err != nil {
			return nil, "", err
		}
		log.Debugf("Loaded config from custom path: %s", customPath)
		return cfg, customPath, nil
	}

	defaultPath := Path()
	if _, err := os.Stat(defaultPath); errors.Is(err, fs.ErrNotExist) {
		log.Debugf("No config at %s, using built-in defaults", defaultPath)
		return Default(), "", nil
	}
	cfg, err := Load(defaultPath)
	if err != nil {
		log.Warnf("Failed to load config from %s: %v. Using built-in defaults...", defaultPath, err)
		return Default(), "", nil
	}
	log.Debugf("Loaded config from default path: %s", defaultPath)
	return cfg, defaultPath, nil
}

// Encode writes cfg as TOML.
func (c *Config) Encode(w io.Writer) error {
	return toml.NewEncoder(w).Encode(c)
}

// Save writes cfg to path, creating parent directories as needed.
func Save(cfg *Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create config file: %w", err)
	}
	defer func() { _ = f.Close() }()
	return cfg.Encode(f)
}
