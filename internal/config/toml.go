// Package config provides configuration helpers and TOML parsing.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// FileConfig represents the TOML configuration file.
type FileConfig struct {
	Translate TranslateConfig `toml:"translate"`
	Log       LogConfig       `toml:"log"`
}

// TranslateConfig maps translation run settings.
type TranslateConfig struct {
	Input       *string `toml:"input"`
	Words       *string `toml:"words"`
	Dictionary  *string `toml:"dictionary"`
	Output      *string `toml:"output"`
	Frequency   *string `toml:"frequency"`
	Performance *string `toml:"performance"`
	StrictWords *bool   `toml:"strict-words"`
	History     *bool   `toml:"history"`
	Top         *int    `toml:"top"`
}

// LogConfig maps logger settings.
type LogConfig struct {
	Level  *string `toml:"level"`
	Format *string `toml:"format"`
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
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return FileConfig{}, fmt.Errorf("failed to decode config: %w", err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return FileConfig{}, fmt.Errorf("unknown config key %q", undecoded[0].String())
	}
	return cfg, nil
}
