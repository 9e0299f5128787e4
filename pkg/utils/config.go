package utils

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Config represents the targetplot configuration
type Config struct {
	Inputs  InputsConfig  `yaml:"inputs" mapstructure:"inputs"`
	Plot    PlotConfig    `yaml:"plot" mapstructure:"plot"`
	Physics PhysicsConfig `yaml:"physics" mapstructure:"physics"`
}

// InputsConfig names the two input tables
type InputsConfig struct {
	Catalog string `yaml:"catalog" mapstructure:"catalog"`
	Targets string `yaml:"targets" mapstructure:"targets"`
}

// PlotConfig controls the rendered figure
type PlotConfig struct {
	Output       string  `yaml:"output" mapstructure:"output"`
	Title        string  `yaml:"title" mapstructure:"title"`
	WidthInches  float64 `yaml:"width_inches" mapstructure:"width_inches"`
	HeightInches float64 `yaml:"height_inches" mapstructure:"height_inches"`
	Chemistry    bool    `yaml:"chemistry" mapstructure:"chemistry"`
}

// PhysicsConfig controls the temperature model
type PhysicsConfig struct {
	Albedo float64 `yaml:"albedo" mapstructure:"albedo"`
}

// DefaultConfig returns a default configuration
func DefaultConfig() *Config {
	return &Config{
		Inputs: InputsConfig{
			Catalog: "exoplanet.eu_catalog.csv",
			Targets: "targets.csv",
		},
		Plot: PlotConfig{
			Output:       "access_targets.pdf",
			Title:        "ACCESS Targets",
			WidthInches:  25,
			HeightInches: 15,
			Chemistry:    true,
		},
		Physics: PhysicsConfig{
			Albedo: 0.1,
		},
	}
}

// LoadConfig loads configuration from file or falls back to defaults
func LoadConfig() (*Config, error) {
	// Set config paths
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	// Add config paths
	homeDir, _ := os.UserHomeDir()
	viper.AddConfigPath(".")
	viper.AddConfigPath("./configs")
	viper.AddConfigPath(filepath.Join(homeDir, ".targetplot"))

	// Set environment variable prefix
	viper.SetEnvPrefix("TARGETPLOT")
	viper.AutomaticEnv()

	// Try to read config file
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			// No config file; run on defaults
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	// Unmarshal over the defaults so partial files stay usable
	config := DefaultConfig()
	if err := viper.Unmarshal(config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	// Validate config
	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return config, nil
}

// SaveConfig saves configuration to file
func SaveConfig(config *Config) error {
	configFile, err := GetConfigPath()
	if err != nil {
		return err
	}

	// Create config directory
	if err := os.MkdirAll(filepath.Dir(configFile), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Marshal config to YAML
	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	// Write config file
	if err := os.WriteFile(configFile, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	fmt.Printf("Configuration saved to: %s\n", configFile)
	return nil
}

// validateConfig validates the configuration
func validateConfig(config *Config) error {
	if config.Inputs.Catalog == "" {
		return fmt.Errorf("catalog path cannot be empty")
	}

	if config.Inputs.Targets == "" {
		return fmt.Errorf("targets path cannot be empty")
	}

	if config.Plot.Output == "" {
		return fmt.Errorf("output path cannot be empty")
	}

	if config.Plot.WidthInches <= 0 || config.Plot.HeightInches <= 0 {
		return fmt.Errorf("figure dimensions must be positive")
	}

	if config.Physics.Albedo < 0 || config.Physics.Albedo >= 1 {
		return fmt.Errorf("albedo must be in [0, 1)")
	}

	return nil
}

// GetConfigPath returns the path to the config file
func GetConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, ".targetplot", "config.yaml"), nil
}
