package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-scorer/internal/analysis"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze résumé text quality",
	Long:  "Reports sentiment, pattern-matched entities, readability and lexical diversity of a résumé. With --job it also scores overall résumé quality against the job description.",
	RunE:  runAnalyze,
}

var (
	analyzeResume string
	analyzeJob    string
	analyzeYears  float64
	analyzeOutput string
)

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeResume, "resume", "r", "", "Path to résumé document (required)")
	analyzeCmd.Flags().StringVarP(&analyzeJob, "job", "j", "", "Path to job description document (optional)")
	analyzeCmd.Flags().Float64Var(&analyzeYears, "years", 0, "Candidate years of experience (default from config)")
	analyzeCmd.Flags().StringVarP(&analyzeOutput, "out", "o", "", "Path to output JSON report (required)")
	markRequired(analyzeCmd, "resume", "out")

	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, _ []string) error {
	resume, err := loadDocument(analyzeResume)
	if err != nil {
		return err
	}

	var job string
	if analyzeJob != "" {
		if job, err = loadDocument(analyzeJob); err != nil {
			return err
		}
	}

	years := settings.ExperienceYears
	if cmd.Flags().Changed("years") {
		years = analyzeYears
	}

	result, err := analysis.Analyze(resume, job, years)
	if err != nil {
		return fmt.Errorf("failed to analyze resume: %w", err)
	}

	if settings.Verbose {
		printer.PrintTextAnalysis(result)
	}

	return writeReport(cmd.OutOrStdout(), "analyze", analyzeOutput, result)
}
