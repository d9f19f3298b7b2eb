package ranking

import (
	"strings"

	"github.com/jonathan/resume-scorer/internal/catalog"
	"github.com/jonathan/resume-scorer/internal/parsing"
	"github.com/jonathan/resume-scorer/internal/skills"
	"github.com/jonathan/resume-scorer/internal/types"
	"github.com/jonathan/resume-scorer/internal/vecmath"
)

// Default weights for the ranking score
const (
	transformerWeight = 0.6
	semanticWeight    = 0.4
)

// computeSkillOverlapScore calculates the weighted share of job skill targets
// a résumé mentions. Returns the score (0-1) and the matched skills in
// target order, with canonical names.
func computeSkillOverlapScore(cat *catalog.Catalog, resume string, targets *types.SkillTargets) (float64, []string) {
	matchedSkills := []string{}
	if targets == nil || len(targets.Skills) == 0 {
		return 0.0, matchedSkills
	}

	resumeSkills := make(map[string]bool)
	for _, s := range skills.ExtractCurrentSkills(cat, resume) {
		resumeSkills[s.Name] = true
	}
	if len(resumeSkills) == 0 {
		return 0.0, matchedSkills
	}

	matchedWeight, totalWeight := 0.0, 0.0
	for _, target := range targets.Skills {
		totalWeight += target.Weight
		if resumeSkills[target.Name] {
			matchedWeight += target.Weight
			matchedSkills = append(matchedSkills, parsing.NormalizeSkillName(target.Name))
		}
	}

	score := 0.0
	if totalWeight > 0 {
		score = matchedWeight / totalWeight
	}
	return score, matchedSkills
}

// computeKeywordOverlapScore calculates the share of job keywords found in
// the résumé text.
func computeKeywordOverlapScore(resume string, jobKeywords []string) float64 {
	if len(jobKeywords) == 0 {
		return 0.0
	}

	resumeLower := strings.ToLower(resume)
	matches := 0
	for _, keyword := range jobKeywords {
		// substring match, so "docker" also counts "dockerized"
		if strings.Contains(resumeLower, strings.ToLower(keyword)) {
			matches++
		}
	}
	return float64(matches) / float64(len(jobKeywords))
}

// combinedScore blends encoder and ensemble similarity into [0, 1].
func combinedScore(transformerScore, semanticScore float64) float64 {
	return vecmath.Clamp(transformerWeight*transformerScore+semanticWeight*semanticScore, 0, 1)
}
