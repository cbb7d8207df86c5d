package config

import (
	"os"
	"strconv"

	"longstat/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Data     DataConfig
	Report   ReportConfig
	Analysis AnalysisConfig
}

// DataConfig holds the input dataset settings
type DataConfig struct {
	// File is the path to the AnAge table (.txt/.tsv, .csv or .xlsx)
	File string
}

// ReportConfig holds output settings
type ReportConfig struct {
	// OutputPath is the default report destination; the CLI argument
	// overrides it. The extension selects the writer.
	OutputPath string
}

// AnalysisConfig holds statistical settings
type AnalysisConfig struct {
	// Alpha is the significance level shared by every test in the run
	Alpha float64
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	config := &Config{
		Data: DataConfig{
			File: getEnvOrDefault("ANAGE_DATA_FILE", "data/anage_data.txt"),
		},
		Report: ReportConfig{
			OutputPath: getEnvOrDefault("REPORT_OUT", "longevity_report.json"),
		},
		Analysis: AnalysisConfig{
			Alpha: getEnvFloatOrDefault("ALPHA", 0.05),
		},
	}

	if err := validateConfig(config); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}

	return config, nil
}

func validateConfig(config *Config) error {
	if config.Data.File == "" {
		return errors.ConfigInvalid("data file path is required")
	}
	if config.Report.OutputPath == "" {
		return errors.ConfigInvalid("report output path is required")
	}
	if config.Analysis.Alpha <= 0 || config.Analysis.Alpha >= 1 {
		return errors.ConfigInvalid("alpha must be in (0, 1)")
	}
	return nil
}

// Helper functions for environment variable parsing
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvFloatOrDefault(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}
