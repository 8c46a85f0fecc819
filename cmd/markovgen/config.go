package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/natefinch/atomic"
)

// Config holds the settings for the markovgen CLI.
type Config struct {
	Order     int    `json:"order"`
	Count     int    `json:"count"`
	MaxLength int    `json:"max_length"`
	LogLevel  string `json:"log_level"`
	Separator string `json:"separator"`
	EOC       string `json:"eoc"`
}

// DefaultConfig creates a configuration with default values.
func DefaultConfig() *Config {
	return &Config{
		Order:     2,
		Count:     1,
		MaxLength: 100,
		LogLevel:  "info",
		Separator: " ",
		EOC:       ".",
	}
}

// LoadConfig reads the configuration from a JSON file at the given path.
// If the file doesn't exist, it creates one with default values.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		config := DefaultConfig()
		if err = SaveConfig(path, config); err != nil {
			return nil, fmt.Errorf("could not write default config: %w", err)
		}
		return config, nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not read config %s: %w", path, err)
	}

	config := DefaultConfig()
	if err = json.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("could not parse config %s: %w", path, err)
	}
	return config, nil
}

// SaveConfig writes the configuration to path as indented JSON, atomically
// so a crash mid-write cannot leave a corrupt config behind.
func SaveConfig(path string, config *Config) error {
	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return fmt.Errorf("could not marshal config: %w", err)
	}
	if err = atomic.WriteFile(path, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("could not write config %s: %w", path, err)
	}
	return nil
}

// setupLogger builds a text logger at the configured level, defaulting to
// info for unknown level names.
func setupLogger(level string) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
}
