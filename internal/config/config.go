package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/Alias1177/bigsmall/models"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

const (
	// DefaultHistory is the example last-10 history, oldest first
	DefaultHistory = "S,S,B,S,B,S,S,B,S,S"
	DefaultSeed    = int64(123)
)

// Config holds all application configuration
type Config struct {
	History          []string `env:"HISTORY" envDefault:"S,S,B,S,B,S,S,B,S,S"`
	Seed             *int64   `env:"SEED" envDefault:"123"` // nil for an unseeded run
	OutputFormat     string   `env:"OUTPUT_FORMAT" envDefault:"text"`
	LogLevel         string   `env:"LOG_LEVEL" envDefault:"info"`
	EnableBacktest   bool     `env:"ENABLE_BACKTEST" envDefault:"false"`
	BacktestOutcomes []string `env:"BACKTEST_OUTCOMES"` // oldest first
}

// Load initializes configuration from environment variables
func Load() (*Config, error) {
	// Load environment variables from .env file if present
	if err := godotenv.Load(); err != nil {
		log.Warn().Msg(".env file not found, relying on actual environment variables")
	}

	var cfg Config

	cfg.History = models.ParseHistory(getEnvWithDefault("HISTORY", DefaultHistory))
	cfg.Seed = getEnvSeed("SEED", DefaultSeed)
	cfg.OutputFormat = strings.ToLower(getEnvWithDefault("OUTPUT_FORMAT", "text"))
	cfg.LogLevel = getEnvWithDefault("LOG_LEVEL", "info")
	cfg.EnableBacktest = getEnvBoolWithDefault("ENABLE_BACKTEST", false)
	cfg.BacktestOutcomes = models.ParseHistory(os.Getenv("BACKTEST_OUTCOMES"))

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks values that have no sensible fallback
func (c *Config) Validate() error {
	switch c.OutputFormat {
	case "text", "json":
	default:
		return fmt.Errorf("unsupported OUTPUT_FORMAT %q (want text or json)", c.OutputFormat)
	}
	if c.EnableBacktest && len(c.BacktestOutcomes) <= models.HistoryLength {
		return fmt.Errorf("ENABLE_BACKTEST needs more than %d BACKTEST_OUTCOMES, got %d",
			models.HistoryLength, len(c.BacktestOutcomes))
	}
	return nil
}

// Helper functions for environment variable handling
func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBoolWithDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		return value == "true" || value == "1" || value == "yes"
	}
	return defaultValue
}

// getEnvSeed returns nil when the variable is set to "" or "none"
func getEnvSeed(key string, defaultValue int64) *int64 {
	value, ok := os.LookupEnv(key)
	if !ok {
		return &defaultValue
	}

	value = strings.TrimSpace(value)
	if value == "" || strings.EqualFold(value, "none") {
		return nil
	}

	if seed, err := strconv.ParseInt(value, 10, 64); err == nil {
		return &seed
	}
	log.Warn().Str("key", key).Str("value", value).Msg("Invalid seed, using default")
	return &defaultValue
}
