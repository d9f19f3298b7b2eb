package matching

import (
	"fmt"
	"math"
	"strings"

	"github.com/jonathan/resume-scorer/internal/analysis"
	"github.com/jonathan/resume-scorer/internal/keywords"
	"github.com/jonathan/resume-scorer/internal/parsing"
	"github.com/jonathan/resume-scorer/internal/similarity"
	"github.com/jonathan/resume-scorer/internal/types"
	"github.com/jonathan/resume-scorer/internal/vecmath"
)

const (
	// Weight constants for PredictJobMatch
	predictSimilarityWeight = 0.40
	predictExperienceWeight = 0.35
	predictSkillWeight      = 0.25

	pointsPerMissingYear = 20
	neutralSkillScore    = 50
	sigmoidCenter        = 70
	sigmoidScale         = 15
	applyScore           = 60
	applyProbability     = 0.4
	maxConfidence        = 0.95
	largeExperienceGap   = 2

	atsKeywords       = 30
	atsSuggestedWords = 5
	atsCoverageTarget = 70
	atsStrongCoverage = 15
)

// OptimizeForATS splits the 30 top job keywords into those the résumé
// contains and those it lacks. Score is the covered percentage.
func OptimizeForATS(resume, job string) (*types.ATSOptimization, error) {
	if err := validatePair(resume, job); err != nil {
		return nil, err
	}

	jobKeywords := keywords.Terms(keywords.ExtractKeywords(job, atsKeywords))
	resumeLower := strings.ToLower(resume)

	result := &types.ATSOptimization{
		PresentKeywords: []string{},
		MissingKeywords: []string{},
		Suggestions:     []string{},
	}
	for _, kw := range jobKeywords {
		if strings.Contains(resumeLower, kw) {
			result.PresentKeywords = append(result.PresentKeywords, kw)
		} else {
			result.MissingKeywords = append(result.MissingKeywords, kw)
		}
	}
	if len(jobKeywords) > 0 {
		result.Score = int(math.Round(float64(len(result.PresentKeywords)) / float64(len(jobKeywords)) * 100))
	}

	if len(result.MissingKeywords) > 0 {
		top := result.MissingKeywords[:min(atsSuggestedWords, len(result.MissingKeywords))]
		result.Suggestions = append(result.Suggestions, "Add these keywords to your resume: "+strings.Join(top, ", "))
	}
	if result.Score < atsCoverageTarget {
		result.Suggestions = append(result.Suggestions,
			"Your resume is missing many key terms from the job description",
			"Review the job posting and incorporate relevant terminology")
	}
	if len(result.PresentKeywords) >= atsStrongCoverage {
		result.Suggestions = append(result.Suggestions, "Great keyword coverage! ATS systems will likely flag your resume positively")
	}
	return result, nil
}

// PredictJobMatch combines text similarity (0.40), experience fit (0.35) and
// skill overlap (0.25) into a 0-100 match score and maps it to an interview
// probability with a logistic curve centred on 70.
func PredictJobMatch(resume, job string, years, targetYears float64) (*types.JobMatchPrediction, error) {
	if err := validatePair(resume, job); err != nil {
		return nil, err
	}
	if err := parsing.ValidateYears("experience_years", years); err != nil {
		return nil, err
	}
	if err := parsing.ValidateYears("target_years", targetYears); err != nil {
		return nil, err
	}

	textSimilarity := float64(similarity.TextSimilarity(resume, job))

	gap := targetYears - years
	experience := 100.0
	if gap > 0 {
		experience = math.Max(0, 100-gap*pointsPerMissingYear)
	}

	jobSkills := analysis.SkillEntities(job)
	matches := analysis.CountMatching(analysis.SkillEntities(resume), jobSkills)
	skillScore := float64(neutralSkillScore)
	if len(jobSkills) > 0 {
		skillScore = math.Round(float64(matches) / float64(len(jobSkills)) * 100)
	}

	score := int(math.Round(textSimilarity*predictSimilarityWeight +
		experience*predictExperienceWeight +
		skillScore*predictSkillWeight))
	probability := 1 / (1 + math.Exp(-float64(score-sigmoidCenter)/sigmoidScale))

	var reasoning string
	switch {
	case score >= 80:
		reasoning = "Excellent match! Strong alignment with job requirements."
	case score >= 60:
		reasoning = "Good match. You meet most requirements and should apply."
	case score >= 40:
		reasoning = "Moderate match. Consider applying if you can highlight transferable skills."
	default:
		reasoning = "Low match. Consider gaining more relevant experience first."
	}
	if gap > largeExperienceGap {
		reasoning += fmt.Sprintf(" Note: Position requires %s+ years experience.", formatYears(targetYears))
	}
	if float64(matches) < float64(len(jobSkills))/2 {
		reasoning += " Work on acquiring more required skills."
	}

	return &types.JobMatchPrediction{
		MatchScore:     score,
		Probability:    vecmath.Round(probability, scorePlaces),
		Confidence:     vecmath.Round(math.Min(maxConfidence, 0.5+float64(score)/200), scorePlaces),
		RecommendApply: score >= applyScore || probability >= applyProbability,
		Reasoning:      reasoning,
	}, nil
}

// formatYears prints whole years without a fraction.
func formatYears(years float64) string {
	if years == math.Trunc(years) {
		return fmt.Sprintf("%.0f", years)
	}
	return fmt.Sprintf("%g", years)
}
