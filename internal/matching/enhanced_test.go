package matching

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSkillCoverage_DuplicateText(t *testing.T) {
	coverage, err := SkillCoverage(sampleJob, sampleJob)
	require.NoError(t, err)

	assert.InDelta(t, 1.0, coverage.Coverage, 1e-9)
	assert.Empty(t, coverage.MissingSkills)
	for _, s := range coverage.PresentSkills {
		assert.Greater(t, s.Confidence, presentThreshold)
	}
}

func TestSkillCoverage_EmptyResume(t *testing.T) {
	coverage, err := SkillCoverage("", sampleJob)
	require.NoError(t, err)

	assert.Equal(t, 0.0, coverage.Coverage)
	assert.Empty(t, coverage.PresentSkills)
	require.NotEmpty(t, coverage.MissingSkills)
	assert.LessOrEqual(t, len(coverage.MissingSkills), maxMissingSkills)
	for i := 1; i < len(coverage.MissingSkills); i++ {
		assert.GreaterOrEqual(t, coverage.MissingSkills[i-1].Priority, coverage.MissingSkills[i].Priority)
	}
}

func TestKeywordSuggestions(t *testing.T) {
	suggestions, err := KeywordSuggestions("", sampleJob)
	require.NoError(t, err)
	require.NotEmpty(t, suggestions)
	assert.LessOrEqual(t, len(suggestions), maxSuggestions)

	for _, s := range suggestions {
		assert.Contains(t, []string{"critical", "high", "medium"}, s.Priority)
		assert.True(t, strings.HasPrefix(s.Context, `Add "`+s.Keyword+`" to your `+s.InsertionPoint+" section."))
	}

	none, err := KeywordSuggestions(sampleJob, sampleJob)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestInsertionPoint(t *testing.T) {
	tests := []struct {
		keyword  string
		expected string
	}{
		{"led", SectionExperience},
		{"managed", SectionExperience},
		{"projects", SectionProjects},
		{"built", SectionProjects},
		{"expert", SectionSummary},
		{"Proficient", SectionSummary},
		{"kubernetes", SectionSkills},
	}

	for _, tt := range tests {
		t.Run(tt.keyword, func(t *testing.T) {
			assert.Equal(t, tt.expected, insertionPoint(tt.keyword))
		})
	}
}
