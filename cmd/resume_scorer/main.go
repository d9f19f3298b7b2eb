// Package main implements the resume_scorer CLI for résumé and job description analysis.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/jonathan/resume-scorer/internal/config"
	"github.com/jonathan/resume-scorer/internal/logging"
	"github.com/jonathan/resume-scorer/internal/observability"
)

var rootCmd = &cobra.Command{
	Use:               "resume_scorer",
	Short:             "Resume and job description scoring engine",
	Long:              "resume_scorer extracts keywords, measures résumé/job similarity, scores résumés against regional role benchmarks, checks ATS compatibility, analyzes skill gaps and ranks résumé batches. Every command writes an indented JSON report.",
	SilenceUsage:      true,
	PersistentPreRunE: loadSettings,
}

var (
	rootConfigPath string
	rootVerbose    bool
	rootLogLevel   string
)

// Resolved once per invocation by loadSettings
var (
	settings config.Config
	logger   = slog.New(slog.DiscardHandler)
	printer  = observability.NewPrinter(os.Stdout)
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&rootConfigPath, "config", "c", "", "Path to JSON or YAML config file")
	rootCmd.PersistentFlags().BoolVarP(&rootVerbose, "verbose", "v", false, "Print a human-readable summary of each report")
	rootCmd.PersistentFlags().StringVar(&rootLogLevel, "log-level", "", "Log level: debug, info, warn or error")
}

// loadSettings merges the config file, RESUME_SCORER_* environment variables,
// explicit flags and defaults, in that order of increasing priority for the
// first three.
func loadSettings(cmd *cobra.Command, _ []string) error {
	var cfg config.Config
	if rootConfigPath != "" {
		loaded, err := config.LoadConfig(rootConfigPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		cfg = *loaded
	}

	if err := cfg.ApplyEnvOverrides(); err != nil {
		return err
	}

	// Only override if the flag was explicitly set
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = rootVerbose
	}
	if cmd.Flags().Changed("log-level") {
		cfg.LogLevel = rootLogLevel
	}

	cfg = cfg.MergeWithDefaults(config.Defaults())
	if err := cfg.Validate(); err != nil {
		return err
	}

	settings = cfg
	logger = logging.New(cfg.LogLevel)
	printer = observability.NewPrinter(cmd.OutOrStdout())
	logger.Debug("settings loaded", "config", rootConfigPath, "region", cfg.Region, "role", cfg.Role, "workers", cfg.Workers)
	return nil
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}
