// Package config provides configuration management using Viper.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/Mjlc31/EASYDAY/internal/storage"
)

// Config holds all configuration values for EasyDay.
type Config struct {
	DBPath string `mapstructure:"db_path"`

	// Text-generation service (OpenAI-compatible chat endpoint).
	InsightBaseURL string `mapstructure:"insight_base_url"`
	InsightAPIKey  string `mapstructure:"insight_api_key"`
	InsightModel   string `mapstructure:"insight_model"`
}

// Load reads configuration with precedence: ENV vars > config file >
// defaults. The file lives at ~/.config/easyday/easyday.yml (or under
// $XDG_CONFIG_HOME).
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")

	defaultDB, err := storage.DefaultDBPath()
	if err != nil {
		return nil, err
	}
	v.SetDefault("db_path", defaultDB)
	v.SetDefault("insight_base_url", "http://localhost:1234")
	v.SetDefault("insight_api_key", "")
	v.SetDefault("insight_model", "gemini-2.5-flash")

	v.SetEnvPrefix("EASYDAY")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	path := Path()
	if _, err := os.Stat(path); err == nil {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}
	return &cfg, nil
}

// Path returns the config file location.
func Path() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "easyday", "easyday.yml")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "easyday", "easyday.yml")
}
