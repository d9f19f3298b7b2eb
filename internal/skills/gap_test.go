package skills

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-scorer/internal/catalog"
	"github.com/jonathan/resume-scorer/internal/parsing"
	"github.com/jonathan/resume-scorer/internal/types"
)

const (
	gapJob    = "We use python and docker daily. Docker runs everything. Python, python everywhere. Preferred: terraform."
	gapResume = "Proficient in python scripting.\nBackend developer with 4 years of docker experience.\nFamiliar with jenkins."
)

func TestAnalyzeGap(t *testing.T) {
	analysis, err := AnalyzeGap(gapResume, gapJob)
	require.NoError(t, err)

	// python 83 and terraform 48 missing out of 83+65+48
	assert.Equal(t, 33, analysis.OverallReadiness)

	require.Len(t, analysis.CriticalGaps, 1)
	assert.Equal(t, types.SkillGap{
		Skill:         "python",
		Category:      "technical",
		Priority:      PriorityCritical,
		Impact:        83,
		CurrentLevel:  catalog.LevelIntermediate,
		RequiredLevel: catalog.LevelAdvanced,
		TimeToLearn:   350,
		RelatedSkills: []string{},
		DemandTrend:   "rising",
		MarketValue:   10000,
	}, analysis.CriticalGaps[0])

	assert.Empty(t, analysis.HighPriorityGaps)
	assert.Empty(t, analysis.MediumPriorityGaps)
	require.Len(t, analysis.LowPriorityGaps, 1)
	assert.Equal(t, "terraform", analysis.LowPriorityGaps[0].Skill)
	assert.Equal(t, 48, analysis.LowPriorityGaps[0].Impact)
	assert.Equal(t, catalog.LevelNone, analysis.LowPriorityGaps[0].CurrentLevel)
	assert.Equal(t, 100, analysis.LowPriorityGaps[0].TimeToLearn)

	assert.Equal(t, []string{"python", "docker"}, analysis.Strengths)
	assert.Empty(t, analysis.TransferableSkills)
	assert.Empty(t, analysis.QuickWins)

	require.Contains(t, analysis.LearningPaths, "python")
	assert.Len(t, analysis.LearningPaths, 1)
	path := analysis.LearningPaths["python"]
	assert.Equal(t, 350, path.TotalTime)
	require.Len(t, path.Phases, 1)
	assert.Equal(t, 1, path.Phases[0].Phase)
	assert.Equal(t, catalog.LevelAdvanced, path.Phases[0].Level)
	assert.Equal(t, "Reach advanced level in python", path.Phases[0].Description)
	assert.Equal(t, "Architect complex systems using python", path.Phases[0].Milestones[0])
	assert.Empty(t, path.Phases[0].Resources)
	assert.Equal(t, []string{"Machine learning model deployment", "Distributed task queue"}, path.Projects)
	assert.Len(t, path.Certifications, 2)

	assert.Equal(t, 350, analysis.TimeToReady)
	assert.InDelta(t, 63.99, analysis.EstimatedCost, 1e-9)

	assert.Equal(t, []string{
		"Significant skill gaps detected. Consider targeting roles that better match your current skills or invest in learning.",
		"Priority: Learn python first - these are critical for the role.",
		"Estimated time to become interview-ready: 9 weeks of focused learning.",
	}, analysis.Recommendations)
}

func TestAnalyzeGap_NoRequiredSkills(t *testing.T) {
	analysis, err := AnalyzeGap(gapResume, "We need a friendly person.")
	require.NoError(t, err)

	assert.Equal(t, 100, analysis.OverallReadiness)
	assert.NotNil(t, analysis.CriticalGaps)
	assert.NotNil(t, analysis.LearningPaths)
	assert.Equal(t, []string{
		"You're well-qualified for this role! Focus on showcasing your existing skills.",
	}, analysis.Recommendations)
}

func TestAnalyzeGap_TransferableSkills(t *testing.T) {
	analysis, err := AnalyzeGap("Senior docker engineer.", "Required: kubernetes.")
	require.NoError(t, err)

	assert.Equal(t, []string{"docker"}, analysis.TransferableSkills)
	assert.Empty(t, analysis.Strengths)
	require.Len(t, analysis.CriticalGaps, 1)
	assert.Equal(t, []string{"docker"}, analysis.CriticalGaps[0].RelatedSkills)
	assert.Equal(t, 0, analysis.OverallReadiness)
}

func TestAnalyzeGap_InvalidInput(t *testing.T) {
	_, err := AnalyzeGap("\xff\xfe", gapJob)
	var validationErr *parsing.ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.Equal(t, "resume", validationErr.Field)
}

func TestCalculateImpact_PriorityIsMonotonic(t *testing.T) {
	cat := defaultCatalog(t)
	data, ok := cat.Skill("kubernetes")
	require.True(t, ok)

	critical := calculateImpact(PriorityCritical, data)
	high := calculateImpact(PriorityHigh, data)
	medium := calculateImpact(PriorityMedium, data)
	low := calculateImpact(PriorityLow, data)

	assert.Equal(t, 88, critical)
	assert.GreaterOrEqual(t, critical, high)
	assert.GreaterOrEqual(t, high, medium)
	assert.GreaterOrEqual(t, medium, low)
	assert.LessOrEqual(t, critical, 100)
}

func TestLearningPath_FromNone(t *testing.T) {
	cat := defaultCatalog(t)
	data, ok := cat.Skill("kubernetes")
	require.True(t, ok)

	path := learningPath(cat, data, catalog.LevelNone, catalog.LevelAdvanced)

	require.Len(t, path.Phases, 3)
	assert.Equal(t, 560, path.TotalTime)
	assert.Equal(t, []int{80, 160, 320}, []int{path.Phases[0].Duration, path.Phases[1].Duration, path.Phases[2].Duration})
	assert.Equal(t, "Understand core concepts of kubernetes", path.Phases[0].Milestones[0])
	assert.Empty(t, path.Phases[0].Resources)
	assert.Len(t, path.Phases[1].Resources, 1)
	assert.Len(t, path.Phases[2].Resources, 1)
	assert.Equal(t, []string{"Build advanced-level project with kubernetes"}, path.Projects)
	assert.Len(t, path.Certifications, 2)
}

func TestLearningPath_ExpertUsesDefaultHours(t *testing.T) {
	cat := defaultCatalog(t)
	data, ok := cat.Skill("redis")
	require.True(t, ok)

	path := learningPath(cat, data, catalog.LevelAdvanced, catalog.LevelExpert)
	require.Len(t, path.Phases, 1)
	assert.Equal(t, 100, path.Phases[0].Duration)
	assert.Equal(t, "Innovate with redis in novel ways", path.Phases[0].Milestones[0])
}
