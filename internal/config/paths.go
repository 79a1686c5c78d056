package config

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

const appName = "asciiref"

// EnvConfig overrides the config file location when set.
const EnvConfig = "ASCIIREF_CONFIG"

// Dir returns the directory holding the asciiref config file.
func Dir() string {
	return filepath.Join(xdg.ConfigHome, appName)
}

// Path returns the full path to the config file. It does not create anything.
func Path() string {
	if p := os.Getenv(EnvConfig); p != "" {
		return p
	}
	return filepath.Join(Dir(), "config.toml")
}
