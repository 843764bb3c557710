// Package config loads the tool's settings from an optional JSON config
// file and the environment.
package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

// Config holds the user-tunable settings of the summary report.
type Config struct {
	// ExcludeOrganizations drops organization-owned repositories from the
	// owned set.
	ExcludeOrganizations bool `mapstructure:"exclude_organizations"`
	// MaxLanguages caps the formatted language list; -1 keeps all.
	MaxLanguages int `mapstructure:"max_languages"`
}

// Load reads the configuration. When path is empty, a config.json in the
// working directory is used if present and defaults apply otherwise; an
// explicitly given path must exist. Environment variables with the GH_STATS
// prefix override file values.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetDefault("exclude_organizations", true)
	v.SetDefault("max_languages", -1)
	v.SetEnvPrefix("GH_STATS")
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	} else {
		v.SetConfigName("config")
		v.SetConfigType("json")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("failed to read config: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return &cfg, nil
}
