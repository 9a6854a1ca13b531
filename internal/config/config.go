// Package config loads the application configuration from file and
// environment variables.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all application configuration
type Config struct {
	Rates  RatesConfig  `mapstructure:"rates"`
	Report ReportConfig `mapstructure:"report"`
	Logger LoggerConfig `mapstructure:"logger"`
}

// RatesConfig selects the statutory rate table to apply
type RatesConfig struct {
	Year int `mapstructure:"year"`
}

// ReportConfig holds report rendering configuration
type ReportConfig struct {
	Format   string `mapstructure:"format"`    // text or json
	Currency string `mapstructure:"currency"`  // display label only
	ExcelOut string `mapstructure:"excel_out"` // optional default .xlsx path
	PDFOut   string `mapstructure:"pdf_out"`   // optional default .pdf path
}

// LoggerConfig holds logger configuration
type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	OutputPath string `mapstructure:"output_path"`
	Format     string `mapstructure:"format"`
}

// Load loads configuration from the given file, falling back to defaults
// when the path is empty. Environment variables prefixed TRENNUNGSGELD_
// override file values.
func Load(configPath string) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("TRENNUNGSGELD")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	v.SetDefault("rates.year", 2024)

	v.SetDefault("report.format", "text")
	v.SetDefault("report.currency", "EUR")
	v.SetDefault("report.excel_out", "")
	v.SetDefault("report.pdf_out", "")

	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.output_path", "stderr")
	v.SetDefault("logger.format", "console")
}

// Validate checks configuration consistency
func (c *Config) Validate() error {
	if c.Rates.Year < 1900 || c.Rates.Year > 2200 {
		return fmt.Errorf("rates.year out of range: %d", c.Rates.Year)
	}

	switch c.Report.Format {
	case "text", "json":
	default:
		return fmt.Errorf("report.format must be text or json, got %q", c.Report.Format)
	}

	switch c.Logger.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logger.level must be debug, info, warn or error, got %q", c.Logger.Level)
	}

	switch c.Logger.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logger.format must be console or json, got %q", c.Logger.Format)
	}

	return nil
}
