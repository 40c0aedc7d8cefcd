// Package config provides configuration helpers and TOML parsing.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// FileConfig represents the TOML configuration file.
type FileConfig struct {
	Calculator CalculatorConfig `toml:"calculator"`
}

// CalculatorConfig maps calculator settings. Pointer fields distinguish
// unset keys from explicit zero values so flags keep precedence.
type CalculatorConfig struct {
	Mode         *string `toml:"mode"`
	Theme        *string `toml:"theme"`
	AngleUnit    *string `toml:"angle-unit"`
	Base         *int    `toml:"base"`
	WordSize     *int    `toml:"word-size"`
	HistoryLimit *int    `toml:"history-limit"`
	Precision    *int    `toml:"precision"`
	PlotSamples  *int    `toml:"plot-samples"`
	PlotHeight   *int    `toml:"plot-height"`
}

// LoadConfig reads a TOML config from the given path. Missing file is not an error.
func LoadConfig(path string) (FileConfig, error) {
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
