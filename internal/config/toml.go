// Package config provides configuration helpers and TOML parsing.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// FileConfig represents the TOML configuration file.
type FileConfig struct {
	Quiz    QuizConfig    `toml:"quiz"`
	Display DisplayConfig `toml:"display"`
	Log     LogConfig     `toml:"log"`
}

// QuizConfig maps drill content settings.
type QuizConfig struct {
	Catalog *string `toml:"catalog"`
	Assets  *string `toml:"assets"`
	Seed    *int64  `toml:"seed"`
}

// DisplayConfig maps presentation settings.
type DisplayConfig struct {
	Theme       *string `toml:"theme"`
	ImagePolicy *string `toml:"image-policy"`
	ImageWidth  *int    `toml:"image-width"`
	ImageHeight *int    `toml:"image-height"`
	Images      *bool   `toml:"images"`
}

// LogConfig maps logging settings.
type LogConfig struct {
	File  *string `toml:"file"`
	Level *string `toml:"level"`
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
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return FileConfig{}, fmt.Errorf("failed to decode config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return FileConfig{}, fmt.Errorf("failed to decode config: unknown key %q", undecoded[0].String())
	}
	return cfg, nil
}
