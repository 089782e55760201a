// Package config provides configuration management for kael using Viper.
package config

import (
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/pabloism0x/kael/internal/errors"
	"github.com/pabloism0x/kael/internal/paths"
)

// AppName is the application name used for config file naming.
const AppName = "kael"

// Config represents the top-level configuration structure.
type Config struct {
	Version          int    `mapstructure:"version" yaml:"version"`
	DefaultAssistant string `mapstructure:"default_assistant" yaml:"default_assistant"`
	PRDFile          string `mapstructure:"prd_file" yaml:"prd_file"`
}

// Init initializes Viper with default configuration.
// Call this once at application startup before accessing config values.
func Init() {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	// Search paths (in order of precedence)
	viper.AddConfigPath(".")
	viper.AddConfigPath(filepath.Join(paths.ConfigHome(), AppName))

	viper.SetEnvPrefix("KAEL")
	viper.AutomaticEnv()

	viper.SetDefault("version", 1)
	viper.SetDefault("default_assistant", paths.AssistantClaude)
	viper.SetDefault("prd_file", "PRD.md")
}

// Default returns a configuration with default values.
func Default() *Config {
	return &Config{
		Version:          1,
		DefaultAssistant: paths.AssistantClaude,
		PRDFile:          "PRD.md",
	}
}

// Load reads the configuration file.
// If path is provided, it reads from that specific file.
// If path is empty, it searches in the default locations and falls back
// to default values when no file is found.
func Load(path string) (*Config, error) {
	if path != "" {
		viper.SetConfigFile(path)
	}

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			if path != "" {
				return nil, errors.Wrapf(err, "config file not found at %s", path)
			}
			// Implicit load, defaults are fine.
		} else {
			return nil, errors.Wrap(err, "reading config file")
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "unmarshaling config")
	}

	if errs := Validate(&cfg); len(errs) > 0 {
		return nil, errors.Wrapf(errs[0], "invalid config")
	}

	return &cfg, nil
}
