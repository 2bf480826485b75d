package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const defaultDashboardDays = 6

// Config represents the application configuration.
type Config struct {
	DatabaseURL   string `yaml:"databaseURL" validate:"required"`
	DashboardDays int    `yaml:"dashboardDays,omitempty" validate:"omitempty,min=1"`
}

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// Load loads and validates the configuration from cuna_config.yaml.
// It looks for the config file in the current directory first, then in the
// user's home directory. A .env file (if present) and the CUNA_DATABASE_URL
// environment variable override the file.
func Load() (*Config, error) {
	configPath, err := findConfigFile()
	if err != nil {
		return nil, fmt.Errorf("failed to find config file: %w", err)
	}

	return LoadFromPath(configPath)
}

// LoadFromPath loads and validates the configuration from a specific path.
func LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	applyEnvOverrides(&cfg)

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	if cfg.DashboardDays == 0 {
		cfg.DashboardDays = defaultDashboardDays
	}

	return &cfg, nil
}

// Validate validates the configuration struct.
func Validate(cfg *Config) error {
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}
	return nil
}

// applyEnvOverrides layers .env and process environment over file values.
func applyEnvOverrides(cfg *Config) {
	// Missing .env is fine; only explicit overrides matter.
	godotenv.Load()

	if url := os.Getenv("CUNA_DATABASE_URL"); url != "" {
		cfg.DatabaseURL = url
	}
}

// findConfigFile searches for cuna_config.yaml in current directory and
// home directory.
func findConfigFile() (string, error) {
	configFileName := "cuna_config.yaml"

	if _, err := os.Stat(configFileName); err == nil {
		return configFileName, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	homeConfigPath := filepath.Join(homeDir, configFileName)
	if _, err := os.Stat(homeConfigPath); err == nil {
		return homeConfigPath, nil
	}

	return "", fmt.Errorf("config file not found in current directory or home directory")
}
