package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-scorer/internal/config"
	"github.com/jonathan/resume-scorer/internal/scoring"
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score a résumé for a role in a region",
	Long:  "Scores a résumé against the keyword lists and regional benchmarks of a role family (SDR/BDR, Software Engineering, Marketing, Data Science, Product Management) in North America, Europe or LATAM, combined with ATS compatibility.",
	RunE:  runScore,
}

var (
	scoreResume string
	scoreRole   string
	scoreRegion string
	scoreYears  float64
	scoreOutput string
)

func init() {
	scoreCmd.Flags().StringVarP(&scoreResume, "resume", "r", "", "Path to résumé document (required)")
	scoreCmd.Flags().StringVar(&scoreRole, "role", "", "Role family or alias, e.g. sdr or \"software engineer\" (default from config)")
	scoreCmd.Flags().StringVar(&scoreRegion, "region", "", "Region or alias: NA, Europe, LATAM (default from config)")
	scoreCmd.Flags().Float64Var(&scoreYears, "years", 0, "Candidate years of experience (default from config)")
	scoreCmd.Flags().StringVarP(&scoreOutput, "out", "o", "", "Path to output JSON report (required)")
	markRequired(scoreCmd, "resume", "out")

	rootCmd.AddCommand(scoreCmd)
}

func runScore(cmd *cobra.Command, _ []string) error {
	role, region, years := settings.Role, settings.Region, settings.ExperienceYears
	if cmd.Flags().Changed("role") {
		role = scoreRole
	}
	if cmd.Flags().Changed("region") {
		region = scoreRegion
	}
	if cmd.Flags().Changed("years") {
		years = scoreYears
	}
	if role == "" {
		return fmt.Errorf("--role is required (via flag, config or %s)", config.EnvRole)
	}

	resume, err := loadDocument(scoreResume)
	if err != nil {
		return err
	}

	result, err := scoring.ScoreResumeByRole(resume, role, region, years)
	if err != nil {
		return fmt.Errorf("failed to score resume: %w", err)
	}
	logger.Info("scored resume", "role", result.Role, "region", result.Region, "score", result.Score)

	if settings.Verbose {
		printer.PrintRoleReport(result)
	}

	return writeReport(cmd.OutOrStdout(), "score", scoreOutput, result)
}
