package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config carries the paths the batch run needs. Values resolve in order:
// command-line flag, environment (including a .env file), YAML config file.
type Config struct {
	TimezoneFile string `yaml:"timezone_file"`
	FlightDir    string `yaml:"flight_dir"`
	WeatherDir   string `yaml:"weather_dir"`
	OutputDir    string `yaml:"output_dir"`
}

// LoadConfig reads the optional YAML config file, then overlays any values
// set in the environment (including a .env file), so the environment outranks
// the file. Flag overrides are applied by the caller afterwards.
func LoadConfig(configFile string) (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if configFile != "" {
		data, err := os.ReadFile(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", configFile, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", configFile, err)
		}
	}

	if v := os.Getenv("AIRPORT_TIMEZONE_FILE"); v != "" {
		cfg.TimezoneFile = v
	}
	if v := os.Getenv("FLIGHT_DATA_DIR"); v != "" {
		cfg.FlightDir = v
	}
	if v := os.Getenv("WEATHER_DATA_DIR"); v != "" {
		cfg.WeatherDir = v
	}
	if v := os.Getenv("OUTPUT_DIR"); v != "" {
		cfg.OutputDir = v
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	if c.FlightDir == "" {
		return fmt.Errorf("flight data directory is required (set -flight-dir or FLIGHT_DATA_DIR)")
	}
	if c.WeatherDir == "" {
		return fmt.Errorf("weather data directory is required (set -weather-dir or WEATHER_DATA_DIR)")
	}
	if c.OutputDir == "" {
		return fmt.Errorf("output directory is required (set -output-dir or OUTPUT_DIR)")
	}
	return nil
}
