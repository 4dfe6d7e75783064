// Package config loads the optional TOML config file and the API credential.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// TokenEnvVars are checked in order for the API token.
var TokenEnvVars = []string{"GITHUB_TOKEN", "GH_PAT"}

// ErrNoToken is returned when none of TokenEnvVars is set.
var ErrNoToken = errors.New("no GitHub token: set GITHUB_TOKEN or GH_PAT")

// FileConfig represents the TOML configuration file.
type FileConfig struct {
	Profile ProfileConfig `toml:"profile"`
}

// ProfileConfig maps profile generation settings. Nil means unset.
type ProfileConfig struct {
	User        *string `toml:"user"`
	Template    *string `toml:"template"`
	Output      *string `toml:"output"`
	Concurrency *int    `toml:"concurrency"`
	Top         *int    `toml:"top"`
}

// Load reads a TOML config from the given path. Missing file is not an error.
func Load(path string) (FileConfig, error) {
	if path == "" {
		return FileConfig{}, fmt.Errorf("config path is empty")
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return FileConfig{}, nil
		}
		return FileConfig{}, fmt.Errorf("failed to stat config: %w", err)
	}
	var cfg FileConfig
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return FileConfig{}, fmt.Errorf("failed to decode config: %w", err)
	}
	return cfg, nil
}

// DefaultPath returns $XDG_CONFIG_HOME/github-stats/config.toml.
func DefaultPath() string {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil || home == "" {
			base = "."
		} else {
			base = filepath.Join(home, ".config")
		}
	}
	return filepath.Join(base, "github-stats", "config.toml")
}

// Token returns the first non-empty token from TokenEnvVars.
func Token() (string, error) {
	for _, key := range TokenEnvVars {
		if v := os.Getenv(key); v != "" {
			return v, nil
		}
	}
	return "", ErrNoToken
}
