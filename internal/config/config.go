// Package config loads and persists gpush settings via viper.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config holds the user-tunable settings.
type Config struct {
	Remote  string `mapstructure:"remote"`
	Verbose bool   `mapstructure:"verbose"`
}

const (
	DefaultRemote     = "origin"
	DefaultConfigName = "config"
	DefaultConfigDir  = "gpush"
	EnvPrefix         = "GPUSH"
)

// InitConfig wires viper to the config file, environment and defaults.
// A missing config file is created silently with the defaults.
func InitConfig(cfgFile string) error {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		configDir, err := defaultConfigDir()
		if err != nil {
			return err
		}
		viper.AddConfigPath(configDir)
		viper.SetConfigName(DefaultConfigName)
		viper.SetConfigType("yaml")
	}

	viper.SetDefault("remote", DefaultRemote)
	viper.SetDefault("verbose", false)

	viper.SetEnvPrefix(EnvPrefix)
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		// A search miss and an explicit path that does not exist yet are
		// both first runs; anything else is a real fault.
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist) {
			return writeInitialConfig(cfgFile)
		}
		return fmt.Errorf("failed to read config file: %w", err)
	}
	return nil
}

func defaultConfigDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate user config directory: %w", err)
	}
	return filepath.Join(base, DefaultConfigDir), nil
}

func writeInitialConfig(cfgFile string) error {
	path := cfgFile
	if path == "" {
		configDir, err := defaultConfigDir()
		if err != nil {
			return err
		}
		path = filepath.Join(configDir, DefaultConfigName+".yaml")
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := viper.WriteConfigAs(path); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// GetConfig returns the effective configuration.
func GetConfig() (*Config, error) {
	cfg := &Config{}
	if err := viper.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if cfg.Remote == "" {
		cfg.Remote = DefaultRemote
	}
	return cfg, nil
}

// SetConfigValue stores a single setting in the active viper instance.
func SetConfigValue(key string, value any) {
	viper.Set(key, value)
}

// SaveConfig persists the active settings back to the config file.
func SaveConfig() error {
	if err := viper.WriteConfig(); err == nil {
		return nil
	}
	// No file yet (e.g. first run with --config pointing nowhere).
	return writeInitialConfig(viper.ConfigFileUsed())
}
