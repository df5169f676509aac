package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

type Config struct {
	// Storage settings
	Storage StorageConfig `yaml:"storage"`

	// Defaults for new projects
	Defaults DefaultsConfig `yaml:"defaults"`

	// Invoice settings
	Invoice InvoiceConfig `yaml:"invoice"`
}

type StorageConfig struct {
	Dir string `yaml:"dir"` // Directory holding the JSON collections
}

type DefaultsConfig struct {
	Currency   string  `yaml:"currency"`    // Currency code for new projects
	HourlyRate float64 `yaml:"hourly_rate"` // Suggested rate for new projects
}

type InvoiceConfig struct {
	NumberPrefix string  `yaml:"number_prefix"` // Invoice number prefix (e.g., "INV")
	DueDays      int     `yaml:"due_days"`      // Days until invoice due
	TaxRate      float64 `yaml:"tax_rate"`      // Default tax rate in percent (10 = 10%)
}

// DefaultConfigPath returns ~/.config/zentime/config.yaml
func DefaultConfigPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		// Fallback to current directory if home dir unavailable
		return filepath.Join(".", ".config", "zentime", "config.yaml")
	}
	return filepath.Join(homeDir, ".config", "zentime", "config.yaml")
}

// DefaultConfig returns sensible defaults
func DefaultConfig() *Config {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = "."
	}

	return &Config{
		Storage: StorageConfig{
			Dir: filepath.Join(homeDir, ".config", "zentime", "data"),
		},
		Defaults: DefaultsConfig{
			Currency:   "USD",
			HourlyRate: 0,
		},
		Invoice: InvoiceConfig{
			NumberPrefix: "INV",
			DueDays:      30,
			TaxRate:      0,
		},
	}
}

// Load loads config from the given path, or returns defaults if file doesn't exist
func Load(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadDefault loads from the default config path
func LoadDefault() (*Config, error) {
	return Load(DefaultConfigPath())
}

// Save writes the config to the given path
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}
