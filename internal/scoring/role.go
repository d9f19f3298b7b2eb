package scoring

import (
	"fmt"
	"math"
	"regexp"

	"github.com/jonathan/resume-scorer/internal/catalog"
	"github.com/jonathan/resume-scorer/internal/parsing"
	"github.com/jonathan/resume-scorer/internal/types"
)

// Content score components for roles other than SDR/BDR
const (
	baseContentScore     = 50
	keywordContentPoints = 30
	strongKeywordRatio   = 0.7
	excellentMetrics     = 10
	excellentMetricBonus = 25
	goodMetrics          = 5
	goodMetricBonus      = 15
	minMetrics           = 3
	noMetricsPenalty     = 15
	timelineBonus        = 10

	contentWeight = 0.8
	atsWeight     = 0.2

	sdrATSNotes     = 2
	roleATSInsights = 2
	roleATSIssues   = 3
)

var (
	metricPattern   = regexp.MustCompile(`(\d+)%|\$(\d+[\d,]*(\.\d+)?)([kKmMbB])?|(\d+)\+|(\d+)x|(\d+)-(\d+)%`)
	timelinePattern = regexp.MustCompile(`(?i)\d+\+?\s*years?`)
)

// ScoreResumeByRole scores a résumé for role in region. SDR/BDR résumés use
// the metric scorer; other roles blend keyword coverage and quantification
// (80%) with ATS compatibility (20%).
func ScoreResumeByRole(text, role, region string, years float64) (*types.RoleReport, error) {
	if err := parsing.ValidateText("resume", text); err != nil {
		return nil, err
	}
	if err := parsing.ValidateYears("experience_years", years); err != nil {
		return nil, err
	}
	cat, err := catalog.Default()
	if err != nil {
		return nil, err
	}
	r, err := cat.Role(role)
	if err != nil {
		return nil, err
	}
	reg, err := cat.Region(region)
	if err != nil {
		return nil, err
	}

	ats := AnalyzeATSCompatibility(text)
	report := &types.RoleReport{
		Role:       r.Name,
		Region:     reg.Name,
		ATSScore:   ats.Score,
		Benchmarks: r.Benchmarks[reg.Name],
	}

	if r.Name == SDRRole {
		result := scoreSDR(text, r, reg.Name)
		report.Score = result.OverallScore
		report.Insights = append(append([]string{}, result.Strengths...), head(ats.Recommendations, sdrATSNotes)...)
		report.Penalties = append(append([]string{}, result.RedFlags...), head(ats.Issues, sdrATSNotes)...)
		report.Breakdown = result
		return report, nil
	}

	score, insights, penalties := contentScore(text, r)
	final := score*contentWeight + float64(ats.Score)*atsWeight
	report.Score = int(math.Max(0, math.Min(100, math.Round(final))))
	report.Insights = append(insights, head(ats.Recommendations, roleATSInsights)...)
	report.Penalties = append(penalties, head(ats.Issues, roleATSIssues)...)
	return report, nil
}

// contentScore rates keyword coverage, quantified achievements and a stated
// experience timeline.
func contentScore(text string, role *catalog.Role) (score float64, insights, penalties []string) {
	score = baseContentScore
	insights = []string{}
	penalties = []string{}

	total := len(role.CriticalKeywords)
	found := len(matchWords(text, role.CriticalKeywords))
	score += float64(found) / float64(total) * keywordContentPoints
	if float64(found) >= float64(total)*strongKeywordRatio {
		insights = append(insights, fmt.Sprintf("Strong keyword match: %d/%d", found, total))
	} else {
		penalties = append(penalties, fmt.Sprintf("Missing %d critical keywords", total-found))
	}

	metrics := len(metricPattern.FindAllStringIndex(text, -1))
	switch {
	case metrics >= excellentMetrics:
		score += excellentMetricBonus
		insights = append(insights, fmt.Sprintf("Excellent quantification: %d metrics found", metrics))
	case metrics >= goodMetrics:
		score += goodMetricBonus
		insights = append(insights, fmt.Sprintf("Good quantification: %d metrics", metrics))
	case metrics < minMetrics:
		score -= noMetricsPenalty
		penalties = append(penalties, "Lacks quantifiable achievements - add percentages, dollar amounts, and numbers")
	}

	if timelinePattern.MatchString(text) {
		score += timelineBonus
		insights = append(insights, "Clear experience timeline mentioned")
	}

	return score, insights, penalties
}

func head(items []string, n int) []string {
	if len(items) > n {
		return items[:n]
	}
	return items
}
