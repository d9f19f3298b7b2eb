package matching

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-scorer/internal/parsing"
	"github.com/jonathan/resume-scorer/internal/types"
)

func TestOptimizeForATS(t *testing.T) {
	result, err := OptimizeForATS("python docker", "python docker kubernetes")
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{"python", "docker", "python docker"}, result.PresentKeywords)
	assert.ElementsMatch(t, []string{"kubernetes", "docker kubernetes"}, result.MissingKeywords)
	assert.Equal(t, 60, result.Score)
	require.Len(t, result.Suggestions, 3)
	assert.Contains(t, result.Suggestions[0], "Add these keywords to your resume: ")
	assert.Equal(t, "Your resume is missing many key terms from the job description", result.Suggestions[1])
}

func TestOptimizeForATS_FullCoverage(t *testing.T) {
	result, err := OptimizeForATS("python docker kubernetes", "python docker kubernetes")
	require.NoError(t, err)
	assert.Equal(t, 100, result.Score)
	assert.Empty(t, result.MissingKeywords)
	assert.Empty(t, result.Suggestions)
}

func TestOptimizeForATS_EmptyJob(t *testing.T) {
	result, err := OptimizeForATS("python", "")
	require.NoError(t, err)
	assert.Equal(t, 0, result.Score)
	assert.Empty(t, result.PresentKeywords)
}

func TestPredictJobMatch_StrongMatch(t *testing.T) {
	text := "Python and Docker engineer building APIs"

	prediction, err := PredictJobMatch(text, text, 5, 3)
	require.NoError(t, err)

	assert.Equal(t, types.JobMatchPrediction{
		MatchScore:     100,
		Probability:    0.881,
		Confidence:     0.95,
		RecommendApply: true,
		Reasoning:      "Excellent match! Strong alignment with job requirements.",
	}, *prediction)
}

func TestPredictJobMatch_WeakMatch(t *testing.T) {
	prediction, err := PredictJobMatch("Retail cashier", "Python and Docker engineer", 0, 5)
	require.NoError(t, err)

	assert.Equal(t, 0, prediction.MatchScore)
	assert.InDelta(t, 0.009, prediction.Probability, 1e-9)
	assert.InDelta(t, 0.5, prediction.Confidence, 1e-9)
	assert.False(t, prediction.RecommendApply)
	assert.Equal(t, "Low match. Consider gaining more relevant experience first."+
		" Note: Position requires 5+ years experience."+
		" Work on acquiring more required skills.", prediction.Reasoning)
}

func TestPredictJobMatch_NoJobSkillsIsNeutral(t *testing.T) {
	prediction, err := PredictJobMatch("Friendly barista", "Friendly barista", 2, 2)
	require.NoError(t, err)

	// 100 similarity, 100 experience, neutral 50 skills
	assert.Equal(t, 88, prediction.MatchScore)
	assert.Equal(t, "Excellent match! Strong alignment with job requirements.", prediction.Reasoning)
}

func TestPredictJobMatch_InvalidYears(t *testing.T) {
	_, err := PredictJobMatch("a", "b", 1, -2)
	var validationErr *parsing.ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.Equal(t, "target_years", validationErr.Field)
}
