// Package skills finds the dictionary skills a job description asks for and
// a résumé shows, and turns the difference into a prioritized gap analysis
// with learning paths.
package skills

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/jonathan/resume-scorer/internal/catalog"
	"github.com/jonathan/resume-scorer/internal/parsing"
	"github.com/jonathan/resume-scorer/internal/types"
)

// Skill priorities, highest first.
const (
	PriorityCritical = "critical"
	PriorityHigh     = "high"
	PriorityMedium   = "medium"
	PriorityLow      = "low"
)

const (
	// Weight constants for skill priorities
	weightCritical = 1.0
	weightHigh     = 0.75
	weightMedium   = 0.5
	weightLow      = 0.25

	criticalMentions = 3
	highMentions     = 2

	expertYears       = 5
	advancedYears     = 3
	intermediateYears = 1
)

var priorityWeights = map[string]float64{
	PriorityCritical: weightCritical,
	PriorityHigh:     weightHigh,
	PriorityMedium:   weightMedium,
	PriorityLow:      weightLow,
}

// ExtractRequiredSkills scans a job description for dictionary skills. A skill
// is critical when mentioned three or more times or after the "required"
// marker, high when mentioned twice, and low when the posting only lists
// preferences. Skills are ordered by mention count, then dictionary order.
func ExtractRequiredSkills(cat *catalog.Catalog, job string) []types.Skill {
	text := strings.ToLower(job)
	requiredAt := strings.Index(text, "required")
	hasRequired := requiredAt >= 0 || strings.Contains(text, "must have")
	hasPreferred := strings.Contains(text, "preferred") || strings.Contains(text, "nice to have")

	required := []types.Skill{}
	for i := range cat.Skills {
		s := &cat.Skills[i]
		matches := s.MentionPattern().FindAllStringIndex(text, -1)
		if len(matches) == 0 {
			continue
		}

		var priority string
		switch {
		case len(matches) >= criticalMentions || (hasRequired && matches[0][0] > requiredAt):
			priority = PriorityCritical
		case len(matches) >= highMentions:
			priority = PriorityHigh
		case hasPreferred:
			priority = PriorityLow
		default:
			priority = PriorityMedium
		}

		required = append(required, types.Skill{
			Name:     s.Name,
			Priority: priority,
			Mentions: len(matches),
			Weight:   priorityWeights[priority],
		})
	}

	sort.SliceStable(required, func(i, j int) bool {
		return required[i].Mentions > required[j].Mentions
	})
	return required
}

// BuildSkillTargets builds the weighted skill targets of a job description,
// sorted by weight (descending).
func BuildSkillTargets(job string) (*types.SkillTargets, error) {
	if err := parsing.ValidateText("job", job); err != nil {
		return nil, err
	}
	cat, err := catalog.Default()
	if err != nil {
		return nil, err
	}

	skills := ExtractRequiredSkills(cat, job)
	if len(skills) == 0 {
		return nil, fmt.Errorf("no skills found in job description")
	}

	sort.SliceStable(skills, func(i, j int) bool {
		return skills[i].Weight > skills[j].Weight
	})
	return &types.SkillTargets{Skills: skills}, nil
}

// ExtractCurrentSkills finds the dictionary skills a résumé mentions and
// estimates each level from stated years ("5+ years ... go") or phrases such
// as "expert in", "senior" and "proficient in".
func ExtractCurrentSkills(cat *catalog.Catalog, resume string) []types.CandidateSkill {
	text := strings.ToLower(resume)

	current := []types.CandidateSkill{}
	for i := range cat.Skills {
		s := &cat.Skills[i]
		if !s.MentionPattern().MatchString(text) {
			continue
		}

		years := 0
		if m := s.YearsPattern().FindStringSubmatch(text); m != nil {
			years, _ = strconv.Atoi(m[1])
		}

		level := catalog.LevelBeginner
		switch {
		case years >= expertYears || strings.Contains(text, "expert in "+s.Name):
			level = catalog.LevelExpert
		case years >= advancedYears || strings.Contains(text, "senior "+s.Name):
			level = catalog.LevelAdvanced
		case years >= intermediateYears || strings.Contains(text, "proficient in "+s.Name):
			level = catalog.LevelIntermediate
		}

		current = append(current, types.CandidateSkill{
			Name:            s.Name,
			Level:           level,
			YearsExperience: years,
		})
	}
	return current
}
