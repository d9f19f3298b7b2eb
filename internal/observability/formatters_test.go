package observability

import (
	"bytes"
	"strings"
	"testing"

	"github.com/jonathan/resume-scorer/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestPrintMatchResult(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintMatchResult(&types.MatchResult{
		OverallScore:       0.812,
		SemanticSimilarity: 0.9,
		KeywordOverlap:     0.5,
		MatchedKeywords:    []string{"python", "docker"},
		MissingKeywords:    []types.MissingKeyword{{Keyword: "kubernetes", Importance: 0.42}},
	})
	output := buf.String()

	assert.Contains(t, output, "RESUME / JOB MATCH")
	assert.Contains(t, output, "0.812")
	assert.Contains(t, output, "• python")
	assert.Contains(t, output, "kubernetes (0.42)")
}

func TestPrintMatchResult_Nil(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintMatchResult(nil)
	p.PrintEnhancedAnalysis(nil)
	p.PrintRoleReport(nil)
	p.PrintATSResult(nil)
	p.PrintGapAnalysis(nil)
	p.PrintRankedResumes(nil)
	p.PrintTextAnalysis(nil)

	assert.Empty(t, buf.String())
}

func TestPrintEnhancedAnalysis(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintEnhancedAnalysis(&types.EnhancedAnalysis{
		OverallScore:    0.61,
		Strengths:       []string{"machine learning"},
		MissingKeywords: []types.PhraseGap{{Phrase: "data pipelines"}},
	})
	output := buf.String()

	assert.Contains(t, output, "ENHANCED KEYWORD ANALYSIS")
	assert.Contains(t, output, "0.61")
	assert.Contains(t, output, "machine learning")
	assert.Contains(t, output, "data pipelines")
}

func TestPrintRoleReport(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintRoleReport(&types.RoleReport{
		Role:      "SDR/BDR",
		Region:    "North America",
		Score:     48,
		ATSScore:  50,
		Insights:  []string{"Add a phone number"},
		Penalties: []string{"No quota attainment", "No phone number detected"},
		Breakdown: &types.RoleScoreResult{CapsApplied: []string{"No metrics: capped at 60"}},
	})
	output := buf.String()

	assert.Contains(t, output, "ROLE SCORE")
	assert.Contains(t, output, "SDR/BDR")
	assert.Contains(t, output, "48/100 (ATS 50/100)")
	assert.Contains(t, output, "Caps Applied")
	assert.Contains(t, output, "No quota attainment")
}

func TestPrintATSResult(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintATSResult(&types.ATSResult{
		Score:           80,
		Issues:          []string{"Tables detected"},
		Recommendations: []string{"Replace tables with plain text"},
		Bullets:         types.BulletSummary{Total: 4, StrongVerb: 3, Quantified: 1},
	})
	output := buf.String()

	assert.Contains(t, output, "ATS COMPATIBILITY")
	assert.Contains(t, output, "Score: 80/100")
	assert.Contains(t, output, "⚠ Tables detected")
	assert.Contains(t, output, "Replace tables with plain text")
	assert.Contains(t, output, "Bullets: 4 (3 strong verb, 1 quantified)")
}

func TestPrintATSResult_NoIssues(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintATSResult(&types.ATSResult{Score: 100})

	assert.Contains(t, buf.String(), "NO ATS ISSUES FOUND (score 100)")
}

func TestPrintGapAnalysis(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintGapAnalysis(&types.GapAnalysis{
		OverallReadiness: 33,
		TimeToReady:      450,
		EstimatedCost:    63.99,
		CriticalGaps: []types.SkillGap{
			{Skill: "python", Priority: "critical", CurrentLevel: "none", RequiredLevel: "advanced", Impact: 83},
		},
		Strengths: []string{"docker"},
		QuickWins: []string{"Learn terraform basics"},
	})
	output := buf.String()

	assert.Contains(t, output, "SKILLS GAP ANALYSIS")
	assert.Contains(t, output, "33%")
	assert.Contains(t, output, "$63.99")
	assert.Contains(t, output, "python [critical] none → advanced (impact 83)")
	assert.Contains(t, output, "Learn terraform basics")
}

func TestPrintRankedResumes(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	ranked := &types.RankedResumes{}
	for i, id := range []string{"a", "b", "c", "d", "e", "f", "g"} {
		ranked.Ranked = append(ranked.Ranked, types.RankedResume{
			ResumeID:      id + ".txt",
			Rank:          i + 1,
			Score:         0.9 - float64(i)*0.1,
			MatchedSkills: []string{"Go", "Kubernetes"},
		})
	}

	p.PrintRankedResumes(ranked)
	output := buf.String()

	assert.Contains(t, output, "TOP RANKED RESUMES")
	assert.Contains(t, output, "Total resumes ranked: 7")
	assert.Contains(t, output, "#1  a.txt")
	assert.Contains(t, output, "Skills: Go, Kubernetes")
	assert.NotContains(t, output, "f.txt")
	assert.Contains(t, output, "... and 2 more resumes")
}

func TestPrintTextAnalysis(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintTextAnalysis(&types.TextAnalysis{
		Quality:     &types.QualityScore{OverallScore: 63, Weaknesses: []string{"Few quantified results"}},
		Sentiment:   types.Sentiment{Score: 0.33, Positive: 2, Negative: 1},
		Readability: types.Readability{Complexity: 0.41, Recommendation: "Good readability"},
		Diversity:   0.88,
	})
	output := buf.String()

	assert.Contains(t, output, "TEXT ANALYSIS")
	assert.Contains(t, output, "63/100")
	assert.Contains(t, output, "0.33 (+2 / -1)")
	assert.Contains(t, output, "Good readability")
	assert.Contains(t, output, "Few quantified results")
}

func TestPrintBox_TruncatesLongLines(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.printBox("TITLE", strings.Repeat("é", 100))
	output := buf.String()

	assert.Contains(t, output, "...")
	for _, line := range strings.Split(strings.TrimSuffix(output, "\n"), "\n") {
		assert.Equal(t, boxWidth, len([]rune(line)))
	}
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "abcdefg...", truncate("abcdefghijklmnop", 10))
}
