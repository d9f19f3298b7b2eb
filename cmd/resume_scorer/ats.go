package main

import (
	"github.com/spf13/cobra"

	"github.com/jonathan/resume-scorer/internal/scoring"
)

var atsCmd = &cobra.Command{
	Use:   "ats",
	Short: "Check résumé ATS compatibility",
	Long:  "Runs the applicant tracking system compatibility checks (contact details, standard sections, tables, headers, date formats, bullet style) and reports the score, issues and recommendations.",
	RunE:  runATS,
}

var (
	atsResume string
	atsOutput string
)

func init() {
	atsCmd.Flags().StringVarP(&atsResume, "resume", "r", "", "Path to résumé document (required)")
	atsCmd.Flags().StringVarP(&atsOutput, "out", "o", "", "Path to output JSON report (required)")
	markRequired(atsCmd, "resume", "out")

	rootCmd.AddCommand(atsCmd)
}

func runATS(cmd *cobra.Command, _ []string) error {
	resume, err := loadDocument(atsResume)
	if err != nil {
		return err
	}

	result := scoring.AnalyzeATSCompatibility(resume)

	if settings.Verbose {
		printer.PrintATSResult(&result)
	}

	return writeReport(cmd.OutOrStdout(), "ats", atsOutput, result)
}
