package main

import (
	"errors"
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

// Config holds settings read from the YAML config file.
type Config struct {
	MinCapacity int    `yaml:"min_capacity"`
	LogLevel    string `yaml:"log_level"`
	Compress    bool   `yaml:"compress"`
}

// DefaultConfig returns the settings used when no config file is given.
func DefaultConfig() Config {
	return Config{LogLevel: "warn"}
}

// LoadConfig reads path over the defaults. An empty path returns the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks the config values.
func (c Config) Validate() error {
	if c.MinCapacity < 0 {
		return errors.New("min_capacity must not be negative")
	}
	if _, err := zapcore.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log_level: %w", err)
	}
	return nil
}

// NewLogger builds a console logger writing to stderr at the configured level.
func (c Config) NewLogger() (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(c.LogLevel)
	if err != nil {
		return nil, err
	}
	zc := zap.NewDevelopmentConfig()
	zc.Level = zap.NewAtomicLevelAt(lvl)
	zc.DisableStacktrace = true
	zc.OutputPaths = []string{"stderr"}
	return zc.Build()
}
