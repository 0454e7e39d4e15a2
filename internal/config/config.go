// Package config handles loading and saving application configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration.
type Config struct {
	Data  DataConfig  `yaml:"data"`
	UI    UIConfig    `yaml:"ui"`
	Voice VoiceConfig `yaml:"voice"`
	Share ShareConfig `yaml:"share"`
}

// DataConfig holds persistence settings.
type DataConfig struct {
	// File is the path of the state snapshot. Empty means the default
	// location under the config directory.
	File string `yaml:"file,omitempty"`
}

// UIConfig holds UI-related settings.
type UIConfig struct {
	VimMode bool `yaml:"vim_mode"`

	// SortMode is the startup ordering: "dueDate" or "project".
	SortMode string `yaml:"sort_mode,omitempty"`
}

// VoiceConfig holds voice capture settings.
type VoiceConfig struct {
	// SpoolFile is the path an external transcriber writes results to.
	// Empty disables the file channel and falls back to simulation.
	SpoolFile string `yaml:"spool_file,omitempty"`

	// SimulateDelayMS is the delay before a simulated capture result is
	// delivered when no transcriber channel is configured.
	SimulateDelayMS int `yaml:"simulate_delay_ms,omitempty"`
}

// ShareConfig holds share-link settings.
type ShareConfig struct {
	// BaseURL is the URL share payloads are appended to.
	BaseURL string `yaml:"base_url,omitempty"`
}

// DefaultConfig returns a new Config with default values.
func DefaultConfig() *Config {
	return &Config{
		UI: UIConfig{
			VimMode:  true,
			SortMode: "dueDate",
		},
		Voice: VoiceConfig{
			SimulateDelayMS: 2000,
		},
		Share: ShareConfig{
			BaseURL: "https://taskbeam.dev/share",
		},
	}
}

// ConfigDir returns the path to the configuration directory.
// Creates the directory if it doesn't exist.
func ConfigDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	configDir := filepath.Join(homeDir, ".config", "taskbeam")
	if err := os.MkdirAll(configDir, 0700); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}

	return configDir, nil
}

// ConfigPath returns the full path to the configuration file.
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// Load reads the configuration from the config file.
// If the file doesn't exist, returns a default configuration.
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return cfg, nil
}

// Save writes the configuration to the config file.
func Save(cfg *Config) error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to serialize config: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// DataFile returns the configured state snapshot path, or the default under
// the config directory.
func (c *Config) DataFile() (string, error) {
	if c.Data.File != "" {
		return c.Data.File, nil
	}
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "tasks.json"), nil
}

// SimulateDelay returns the simulated capture delay as a duration.
func (c *Config) SimulateDelay() time.Duration {
	if c.Voice.SimulateDelayMS <= 0 {
		return 2 * time.Second
	}
	return time.Duration(c.Voice.SimulateDelayMS) * time.Millisecond
}
