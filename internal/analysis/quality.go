package analysis

import (
	"fmt"
	"math"
	"regexp"
	"strings"

	"github.com/jonathan/resume-scorer/internal/keywords"
	"github.com/jonathan/resume-scorer/internal/parsing"
	"github.com/jonathan/resume-scorer/internal/types"
)

const (
	// Weight constants for the quality score
	weightKeywords   = 0.30
	weightExperience = 0.20
	weightEducation  = 0.15
	weightSkills     = 0.20
	weightFormatting = 0.05
	weightSentiment  = 0.10

	qualityKeywords     = 20
	pointsPerYear       = 10
	pointsPerSkill      = 10
	educationPresent    = 80
	educationMissing    = 40
	goodLengthScore     = 90
	poorLengthScore     = 60
	minWords            = 200
	maxWords            = 1000
	strongKeywordScore  = 70
	richSkillCount      = 8
	strongPositiveWords = 5
)

var educationPattern = regexp.MustCompile(`(?i)bachelor|master|phd|degree`)

// ScoreResume rates a résumé against a job description on keyword coverage
// (0.30), experience (0.20), education (0.15), skills (0.20), length (0.05)
// and sentiment (0.10). Every component and the overall score are 0-100.
func ScoreResume(resume, job string, years float64) (*types.QualityScore, error) {
	if err := parsing.ValidateText("resume", resume); err != nil {
		return nil, err
	}
	if err := parsing.ValidateText("job", job); err != nil {
		return nil, err
	}
	if err := parsing.ValidateYears("experience_years", years); err != nil {
		return nil, err
	}

	jobKeywords := keywords.Terms(keywords.ExtractKeywords(job, qualityKeywords))
	resumeLower := strings.ToLower(resume)
	keywordMatches := 0
	for _, kw := range jobKeywords {
		if strings.Contains(resumeLower, kw) {
			keywordMatches++
		}
	}

	var b types.QualityBreakdown
	if len(jobKeywords) > 0 {
		b.Keywords = int(math.Round(float64(keywordMatches) / float64(len(jobKeywords)) * 100))
	}
	b.Experience = int(math.Min(100, math.Round(years*pointsPerYear)))

	hasEducation := educationPattern.MatchString(resume)
	b.Education = educationMissing
	if hasEducation {
		b.Education = educationPresent
	}

	skillCount := len(SkillEntities(resume))
	b.Skills = min(100, skillCount*pointsPerSkill)

	wordCount := len(strings.Fields(resume))
	b.Formatting = poorLengthScore
	if wordCount >= minWords && wordCount <= maxWords {
		b.Formatting = goodLengthScore
	}

	sentiment := Sentiment(resume)
	b.Sentiment = int(math.Round((sentiment.Score + 1) * 50))

	overall := float64(b.Keywords)*weightKeywords +
		float64(b.Experience)*weightExperience +
		float64(b.Education)*weightEducation +
		float64(b.Skills)*weightSkills +
		float64(b.Formatting)*weightFormatting +
		float64(b.Sentiment)*weightSentiment

	score := &types.QualityScore{
		OverallScore: int(math.Round(overall)),
		Breakdown:    b,
		Strengths:    []string{},
		Weaknesses:   []string{},
	}

	if b.Keywords >= strongKeywordScore {
		score.Strengths = append(score.Strengths, fmt.Sprintf("Strong keyword match (%d/%d keywords)", keywordMatches, len(jobKeywords)))
	} else {
		score.Weaknesses = append(score.Weaknesses, fmt.Sprintf("Missing key requirements (only %d/%d keywords)", keywordMatches, len(jobKeywords)))
	}

	if skillCount >= richSkillCount {
		score.Strengths = append(score.Strengths, fmt.Sprintf("Rich skill set (%d technical skills)", skillCount))
	} else {
		score.Weaknesses = append(score.Weaknesses, fmt.Sprintf("Limited skills mentioned (only %d found)", skillCount))
	}

	if sentiment.Positive >= strongPositiveWords {
		score.Strengths = append(score.Strengths, "Strong action verbs and positive language")
	} else {
		score.Weaknesses = append(score.Weaknesses, "Add more achievement-oriented language")
	}

	if hasEducation {
		score.Strengths = append(score.Strengths, "Education credentials included")
	} else {
		score.Weaknesses = append(score.Weaknesses, "Education section missing or unclear")
	}

	return score, nil
}

// Analyze runs every text analysis on a résumé. The quality score is only
// computed when a job description is given.
func Analyze(resume, job string, years float64) (*types.TextAnalysis, error) {
	if err := parsing.ValidateText("resume", resume); err != nil {
		return nil, err
	}

	result := &types.TextAnalysis{
		Sentiment:   Sentiment(resume),
		Entities:    Entities(resume),
		Readability: Readability(resume),
		Diversity:   keywords.Diversity(resume),
	}

	if strings.TrimSpace(job) != "" {
		quality, err := ScoreResume(resume, job, years)
		if err != nil {
			return nil, err
		}
		result.Quality = quality
	}
	return result, nil
}
