// SPDX-FileCopyrightText: 2026 The fonty authors
// SPDX-License-Identifier: MIT

// Package config resolves the fonty configuration from defaults, an optional
// YAML config file, and FONTY_-prefixed environment variables, in that order
// of increasing precedence.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const envPrefix = "FONTY_"

// Config holds everything the fetch pipeline needs from the environment.
type Config struct {
	// BasePath is the root of the local tree all font files are written
	// under. Overridable with FONTY_BASE_PATH.
	BasePath string `koanf:"base_path"`

	Catalog CatalogConfig `koanf:"catalog"`
}

// CatalogConfig carries the remote catalog endpoints. These exist so tests
// and mirrors can point fonty elsewhere; the defaults are Google Fonts.
type CatalogConfig struct {
	DownloadListURL string `koanf:"download_list_url"`
	SpecimenURL     string `koanf:"specimen_url"`
}

// DefaultBasePath returns $XDG_DATA_HOME/fonts/Google, deriving XDG_DATA_HOME
// from $HOME when unset.
func DefaultBasePath() string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home := os.Getenv("HOME")
		if home == "" {
			home = "~"
		}
		dataHome = filepath.Join(home, ".local", "share")
	}

	return filepath.Join(dataHome, "fonts", "Google")
}

// DefaultPath returns the default config file location,
// $XDG_CONFIG_HOME/fonty/config.yaml.
func DefaultPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home := os.Getenv("HOME")
		if home == "" {
			home = "~"
		}
		configHome = filepath.Join(home, ".config")
	}

	return filepath.Join(configHome, "fonty", "config.yaml")
}

func defaults() map[string]interface{} {
	return map[string]interface{}{
		"base_path": DefaultBasePath(),
		"catalog": map[string]interface{}{
			"download_list_url": "https://fonts.google.com/download/list",
			"specimen_url":      "https://fonts.google.com/specimen",
		},
	}
}

// Load resolves the configuration. A missing config file is not an error;
// a present but unparsable one is.
func Load(configPath string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("config: load defaults: %w", err)
	}

	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
				return nil, fmt.Errorf("config: load %s: %w", configPath, err)
			}
		} else if !os.IsNotExist(err) {
			return nil, fmt.Errorf("config: access %s: %w", configPath, err)
		}
	}

	if err := k.Load(env.Provider(envPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("config: load environment: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}

	return &cfg, nil
}

// envKey maps FONTY_* variable names onto config keys, e.g.
// FONTY_BASE_PATH -> base_path, FONTY_SPECIMEN_URL -> catalog.specimen_url.
func envKey(s string) string {
	s = strings.ToLower(strings.TrimPrefix(s, envPrefix))

	switch s {
	case "base_path":
		return "base_path"
	case "download_list_url", "specimen_url":
		return "catalog." + s
	default:
		return strings.ReplaceAll(s, "_", ".")
	}
}
