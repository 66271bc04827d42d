// pkg/config/config.go
package config

import (
	"errors"
	"os"
	"strconv"
	"strings"

	"github.com/David-Botos/table-cleaner/pkg/cleaner"
	"github.com/David-Botos/table-cleaner/pkg/model"
)

// Config represents the application configuration
type Config struct {
	// Cleaning thresholds
	HighCardinalityThreshold  float64
	CategoricalMaxCardinality int
	OutlierMultiplier         float64
	NumericStrategy           string
	NumericFill               float64
	MissingTokens             []string

	// Logging
	LogLevel  string
	LogFormat string
}

// LoadConfig loads configuration from environment variables.
// Database configuration is loaded separately (LoadPostgresConfig,
// LoadSnowflakeConfig) since most runs never touch a database.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		HighCardinalityThreshold:  getEnvAsFloat("HIGH_CARDINALITY_THRESHOLD", 0.9),
		CategoricalMaxCardinality: getEnvAsInt("CATEGORICAL_MAX_CARDINALITY", 20),
		OutlierMultiplier:         getEnvAsFloat("OUTLIER_MULTIPLIER", 1.5),
		NumericStrategy:           getEnv("NUMERIC_STRATEGY", string(cleaner.StrategyMedian)),
		NumericFill:               getEnvAsFloat("NUMERIC_FILL", 0),
		MissingTokens:             getEnvAsStringSlice("MISSING_TOKENS", model.DefaultMissingTokens),
		LogLevel:                  getEnv("LOG_LEVEL", "info"),
		LogFormat:                 getEnv("LOG_FORMAT", "json"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate ensures all configuration values are usable
func (c *Config) Validate() error {
	if c.LogFormat != "json" && c.LogFormat != "console" {
		return errors.New("log format must be json or console")
	}
	return c.CleanerOptions().Validate()
}

// CleanerOptions maps the configuration onto cleaner options
func (c *Config) CleanerOptions() cleaner.Options {
	return cleaner.Options{
		HighCardinalityThreshold:  c.HighCardinalityThreshold,
		CategoricalMaxCardinality: c.CategoricalMaxCardinality,
		OutlierMultiplier:         c.OutlierMultiplier,
		NumericStrategy:           cleaner.NumericStrategy(c.NumericStrategy),
		NumericFill:               c.NumericFill,
		MissingTokens:             c.MissingTokens,
	}
}

// Helper functions for environment variables

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsStringSlice parses a comma-separated environment variable.
// The literal entry "empty" stands for the empty string, which cannot
// otherwise appear in a comma-separated value.
func getEnvAsStringSlice(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	var result []string
	for _, part := range strings.Split(value, ",") {
		part = strings.TrimSpace(part)
		if part == "empty" {
			part = ""
		}
		result = append(result, part)
	}

	if len(result) == 0 {
		return defaultValue
	}
	return result
}
