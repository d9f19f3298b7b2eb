package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-scorer/internal/skills"
)

var gapCmd = &cobra.Command{
	Use:   "gap",
	Short: "Analyze skill gaps between a résumé and a job",
	Long:  "Finds the dictionary skills a job description requires, estimates the candidate's level in each from the résumé, and reports prioritized gaps with learning paths, cost, quick wins and recommendations.",
	RunE:  runGap,
}

var (
	gapResume string
	gapJob    string
	gapOutput string
)

func init() {
	gapCmd.Flags().StringVarP(&gapResume, "resume", "r", "", "Path to résumé document (required)")
	gapCmd.Flags().StringVarP(&gapJob, "job", "j", "", "Path to job description document (required)")
	gapCmd.Flags().StringVarP(&gapOutput, "out", "o", "", "Path to output JSON report (required)")
	markRequired(gapCmd, "resume", "job", "out")

	rootCmd.AddCommand(gapCmd)
}

func runGap(cmd *cobra.Command, _ []string) error {
	resume, err := loadDocument(gapResume)
	if err != nil {
		return err
	}
	job, err := loadDocument(gapJob)
	if err != nil {
		return err
	}

	result, err := skills.AnalyzeGap(resume, job)
	if err != nil {
		return fmt.Errorf("failed to analyze skill gap: %w", err)
	}
	logger.Info("analyzed skill gap", "readiness", result.OverallReadiness, "critical_gaps", len(result.CriticalGaps))

	if settings.Verbose {
		printer.PrintGapAnalysis(result)
	}

	return writeReport(cmd.OutOrStdout(), "gap", gapOutput, result)
}
