package ui

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// Config stores persistent application settings.
type Config struct {
	SizeSystem    string `json:"size_system"`
	ShowMagnifier bool   `json:"show_magnifier"`
	ChartPath     string `json:"chart_path,omitempty"`
}

// defaultConfig returns the settings used when no config file exists.
func defaultConfig() *Config {
	return &Config{
		SizeSystem:    "uk",
		ShowMagnifier: true,
	}
}

// configPath returns the path to the config file, creating the directory.
func configPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	var configDir string
	if os.Getenv("APPDATA") != "" {
		// Windows
		configDir = filepath.Join(os.Getenv("APPDATA"), "Footgauge")
	} else {
		configDir = filepath.Join(homeDir, ".config", "footgauge")
	}

	if err := os.MkdirAll(configDir, 0755); err != nil {
		return "", err
	}
	return filepath.Join(configDir, "config.json"), nil
}

// LoadConfig loads the application configuration, falling back to defaults
// when the file is absent.
func LoadConfig() (*Config, error) {
	path, err := configPath()
	if err != nil {
		return defaultConfig(), err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return defaultConfig(), nil
		}
		return defaultConfig(), err
	}

	cfg := defaultConfig()
	if err := json.Unmarshal(data, cfg); err != nil {
		return defaultConfig(), err
	}
	return cfg, nil
}

// SaveConfig writes the application configuration.
func SaveConfig(cfg *Config) error {
	path, err := configPath()
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
