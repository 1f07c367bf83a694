// Package config provides configuration management for tock.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config holds all persisted settings for the tock application.
type Config struct {
	Style          string             `mapstructure:"style"`
	Font           string             `mapstructure:"font"`
	ExtendedGlyphs bool               `mapstructure:"extended_glyphs"`
	FirstRun       bool               `mapstructure:"first_run"`
	Notifications  NotificationConfig `mapstructure:"notifications"`
	Storage        StorageConfig      `mapstructure:"storage"`
}

// NotificationConfig holds desktop notification settings.
type NotificationConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

// StorageConfig holds history storage settings.
type StorageConfig struct {
	DataDir string `mapstructure:"data_dir"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Style:          "digital",
		Font:           "block",
		ExtendedGlyphs: false,
		FirstRun:       true,
		Notifications: NotificationConfig{
			Enabled: true,
		},
		Storage: StorageConfig{
			DataDir: "~/.tock",
		},
	}
}

// GetConfigPath returns the path to the config file.
func GetConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".tock", "config.toml"), nil
}

// GetDBPath returns the path to the history database file.
func GetDBPath(cfg *Config) string {
	return filepath.Join(cfg.Storage.DataDir, "tock.db")
}

// Load loads the configuration from the config file, creating it with
// defaults on first use.
func Load() (*Config, error) {
	configPath, err := GetConfigPath()
	if err != nil {
		return nil, fmt.Errorf("failed to get config path: %w", err)
	}

	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create config directory: %w", err)
	}

	viper.SetConfigFile(configPath)
	viper.SetConfigType("toml")

	setDefaults()

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		if err := Save(DefaultConfig()); err != nil {
			return nil, fmt.Errorf("failed to create default config: %w", err)
		}
	}

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Expand ~ in data directory
	if cfg.Storage.DataDir == "~/.tock" || cfg.Storage.DataDir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get home directory: %w", err)
		}
		cfg.Storage.DataDir = filepath.Join(homeDir, ".tock")
	}

	return &cfg, nil
}

// Save saves the configuration to the config file.
func Save(cfg *Config) error {
	configPath, err := GetConfigPath()
	if err != nil {
		return fmt.Errorf("failed to get config path: %w", err)
	}

	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	viper.SetConfigFile(configPath)
	viper.SetConfigType("toml")

	viper.Set("style", cfg.Style)
	viper.Set("font", cfg.Font)
	viper.Set("extended_glyphs", cfg.ExtendedGlyphs)
	viper.Set("first_run", cfg.FirstRun)
	viper.Set("notifications.enabled", cfg.Notifications.Enabled)
	viper.Set("storage.data_dir", cfg.Storage.DataDir)

	return viper.WriteConfig()
}

// setDefaults configures viper's default values.
func setDefaults() {
	defaults := DefaultConfig()
	viper.SetDefault("style", defaults.Style)
	viper.SetDefault("font", defaults.Font)
	viper.SetDefault("extended_glyphs", defaults.ExtendedGlyphs)
	viper.SetDefault("first_run", defaults.FirstRun)
	viper.SetDefault("notifications.enabled", defaults.Notifications.Enabled)
	viper.SetDefault("storage.data_dir", defaults.Storage.DataDir)
}
