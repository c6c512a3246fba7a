package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/Alias1177/bigsmall/internal/analysis/prediction"
	"github.com/Alias1177/bigsmall/internal/backtest"
	"github.com/Alias1177/bigsmall/internal/config"
	"github.com/Alias1177/bigsmall/internal/report"
	"github.com/Alias1177/bigsmall/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	// 2. Configure logging
	setupLogging(cfg.LogLevel)

	// 3. Print configuration
	printConfig(cfg)

	predictor := prediction.NewPredictor()

	// 4. Run backtesting if enabled
	if cfg.EnableBacktest {
		log.Info().Msg("Running backtesting...")
		if err := runBacktesting(cfg, predictor, os.Stdout); err != nil {
			log.Error().Err(err).Msg("Backtest failed")
		}
	}

	// 5. Predict and print
	if err := run(cfg, predictor, os.Stdout); err != nil {
		log.Fatal().Err(err).Msg("Prediction failed")
	}
}

// runBacktesting replays the predictor over the configured outcomes
func runBacktesting(cfg *config.Config, predictor *prediction.Predictor, w io.Writer) error {
	results, err := backtest.NewEngine(predictor).Run(cfg.BacktestOutcomes, cfg.Seed)
	if err != nil {
		return err
	}
	return report.WriteBacktest(w, cfg.OutputFormat, results)
}

// run makes a single prediction and writes it to w
func run(cfg *config.Config, predictor models.OutcomePredictor, w io.Writer) error {
	result, err := predictor.Predict(cfg.History, cfg.Seed)
	if err != nil {
		return err
	}

	if err := report.Write(w, cfg.OutputFormat, result); err != nil {
		return fmt.Errorf("printing prediction: %w", err)
	}
	return nil
}

// setupLogging configures the logger
func setupLogging(logLevel string) {
	output := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	log.Logger = log.Output(output)

	// Set log level from config
	level, err := zerolog.ParseLevel(logLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	log.Logger = log.Logger.Level(level)
}

// printConfig outputs the current configuration
func printConfig(cfg *config.Config) {
	event := log.Info().
		Strs("History", cfg.History).
		Str("OutputFormat", cfg.OutputFormat).
		Bool("EnableBacktest", cfg.EnableBacktest).
		Int("BacktestOutcomes", len(cfg.BacktestOutcomes))
	if cfg.Seed != nil {
		event = event.Int64("Seed", *cfg.Seed)
	} else {
		event = event.Str("Seed", "none")
	}
	event.Msg("Configuration loaded")
}
