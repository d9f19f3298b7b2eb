package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-scorer/internal/matching"
	"github.com/jonathan/resume-scorer/internal/types"
)

var matchCmd = &cobra.Command{
	Use:   "match",
	Short: "Match a résumé against a job description",
	Long:  "Scores how well a résumé matches a job description with the attention encoder and keyword overlap. With --enhanced it adds the blended keyword analysis, skill coverage, keyword suggestions, ATS keyword optimization and a match prediction.",
	RunE:  runMatch,
}

var (
	matchResume      string
	matchJob         string
	matchEnhanced    bool
	matchYears       float64
	matchTargetYears float64
	matchOutput      string
)

// matchReport is the result of the match command. Everything but Match is
// only filled with --enhanced.
type matchReport struct {
	Match           *types.MatchResult        `json:"match"`
	Enhanced        *types.EnhancedAnalysis   `json:"enhanced,omitempty"`
	Coverage        *types.SkillCoverage      `json:"coverage,omitempty"`
	Suggestions     []types.KeywordSuggestion `json:"suggestions,omitempty"`
	ATSOptimization *types.ATSOptimization    `json:"ats_optimization,omitempty"`
	Prediction      *types.JobMatchPrediction `json:"prediction,omitempty"`
}

func init() {
	matchCmd.Flags().StringVarP(&matchResume, "resume", "r", "", "Path to résumé document (required)")
	matchCmd.Flags().StringVarP(&matchJob, "job", "j", "", "Path to job description document (required)")
	matchCmd.Flags().BoolVarP(&matchEnhanced, "enhanced", "e", false, "Add enhanced analysis, coverage, suggestions and prediction")
	matchCmd.Flags().Float64Var(&matchYears, "years", 0, "Candidate years of experience for the prediction (default from config)")
	matchCmd.Flags().Float64Var(&matchTargetYears, "target-years", 0, "Years of experience the job asks for")
	matchCmd.Flags().StringVarP(&matchOutput, "out", "o", "", "Path to output JSON report (required)")
	markRequired(matchCmd, "resume", "job", "out")

	rootCmd.AddCommand(matchCmd)
}

func runMatch(cmd *cobra.Command, _ []string) error {
	resume, err := loadDocument(matchResume)
	if err != nil {
		return err
	}
	job, err := loadDocument(matchJob)
	if err != nil {
		return err
	}

	var result matchReport
	result.Match, err = matching.MatchScore(resume, job)
	if err != nil {
		return fmt.Errorf("failed to match resume: %w", err)
	}

	if matchEnhanced {
		years := settings.ExperienceYears
		if cmd.Flags().Changed("years") {
			years = matchYears
		}
		if err := enhanceMatch(&result, resume, job, years, matchTargetYears); err != nil {
			return err
		}
	}

	if settings.Verbose {
		printer.PrintMatchResult(result.Match)
		printer.PrintEnhancedAnalysis(result.Enhanced)
	}

	return writeReport(cmd.OutOrStdout(), "match", matchOutput, result)
}

func enhanceMatch(result *matchReport, resume, job string, years, targetYears float64) error {
	var err error
	if result.Enhanced, err = matching.EnhancedKeywordAnalysis(resume, job); err != nil {
		return fmt.Errorf("failed to analyze keywords: %w", err)
	}
	if result.Coverage, err = matching.SkillCoverage(resume, job); err != nil {
		return fmt.Errorf("failed to compute skill coverage: %w", err)
	}
	if result.Suggestions, err = matching.KeywordSuggestions(resume, job); err != nil {
		return fmt.Errorf("failed to suggest keywords: %w", err)
	}
	if result.ATSOptimization, err = matching.OptimizeForATS(resume, job); err != nil {
		return fmt.Errorf("failed to optimize for ATS: %w", err)
	}
	if result.Prediction, err = matching.PredictJobMatch(resume, job, years, targetYears); err != nil {
		return fmt.Errorf("failed to predict job match: %w", err)
	}
	return nil
}
