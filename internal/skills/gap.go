package skills

import (
	"fmt"
	"math"
	"slices"
	"sort"
	"strings"

	"github.com/jonathan/resume-scorer/internal/catalog"
	"github.com/jonathan/resume-scorer/internal/parsing"
	"github.com/jonathan/resume-scorer/internal/types"
)

const (
	// maxLearningPaths is how many critical and high gaps get a learning path
	maxLearningPaths = 5
	maxQuickWins     = 3
	maxPriorityNames = 3

	quickWinHours  = 60
	quickWinImpact = 60

	// defaultPhaseHours is used for levels without a dictionary learning time
	defaultPhaseHours = 100
	hoursPerWeek      = 40

	wellQualified   = 80
	solidFoundation = 60
)

// Impact components. Priority carries half of the impact, then market value,
// demand trend and category.
var (
	priorityImpact = map[string]float64{
		PriorityCritical: 50,
		PriorityHigh:     37.5,
		PriorityMedium:   25,
		PriorityLow:      12.5,
	}
	trendImpact = map[string]float64{
		"rising":    15,
		"stable":    10,
		"declining": 5,
	}
	categoryImpact = map[string]float64{
		"certification": 10,
		"technical":     8,
		"framework":     6,
		"tool":          5,
		"soft":          4,
	}
)

var milestones = map[string][]string{
	catalog.LevelBeginner: {
		"Understand core concepts of %s",
		"Complete 3-5 basic tutorials",
		"Build first simple project",
	},
	catalog.LevelIntermediate: {
		"Master common patterns and best practices",
		"Build 2-3 medium complexity projects",
		"Contribute to open source or team projects",
		"Debug and optimize code effectively",
	},
	catalog.LevelAdvanced: {
		"Architect complex systems using %s",
		"Mentor others and review code",
		"Optimize performance and scalability",
		"Handle edge cases and production issues",
	},
	catalog.LevelExpert: {
		"Innovate with %s in novel ways",
		"Speak at conferences or write technical content",
		"Design and lead major projects",
		"Recognized as authority in the field",
	},
}

// AnalyzeGap compares the skills a job description requires with those the
// résumé shows. Every missing or under-levelled skill becomes a gap with an
// impact score; critical and high gaps get learning paths.
func AnalyzeGap(resume, job string) (*types.GapAnalysis, error) {
	if err := parsing.ValidateText("resume", resume); err != nil {
		return nil, err
	}
	if err := parsing.ValidateText("job", job); err != nil {
		return nil, err
	}
	cat, err := catalog.Default()
	if err != nil {
		return nil, err
	}
	return analyzeGap(cat, resume, job), nil
}

func analyzeGap(cat *catalog.Catalog, resume, job string) *types.GapAnalysis {
	required := ExtractRequiredSkills(cat, job)
	current := ExtractCurrentSkills(cat, resume)

	currentByName := make(map[string]types.CandidateSkill, len(current))
	for _, c := range current {
		currentByName[c.Name] = c
	}
	requiredByName := make(map[string]bool, len(required))
	for _, r := range required {
		requiredByName[r.Name] = true
	}

	gaps := []types.SkillGap{}
	requiredImpact, gapImpact := 0, 0
	for _, r := range required {
		data, ok := cat.Skill(r.Name)
		if !ok {
			continue
		}
		impact := calculateImpact(r.Priority, data)
		requiredImpact += impact

		currentLevel := catalog.LevelNone
		if c, ok := currentByName[r.Name]; ok {
			currentLevel = c.Level
		}
		requiredLevel := catalog.LevelIntermediate
		if r.Priority == PriorityCritical {
			requiredLevel = catalog.LevelAdvanced
		}
		if levelRank(currentLevel) >= levelRank(requiredLevel) {
			continue
		}
		gapImpact += impact

		related := []string{}
		for _, rs := range data.RelatedSkills {
			if _, has := currentByName[rs]; has {
				related = append(related, rs)
			}
		}
		timeToLearn, _ := data.LearningTime.Hours(requiredLevel)

		gaps = append(gaps, types.SkillGap{
			Skill:         r.Name,
			Category:      data.Category,
			Priority:      r.Priority,
			Impact:        impact,
			CurrentLevel:  currentLevel,
			RequiredLevel: requiredLevel,
			TimeToLearn:   timeToLearn,
			RelatedSkills: related,
			DemandTrend:   data.DemandTrend,
			MarketValue:   data.MarketValue,
		})
	}

	sort.SliceStable(gaps, func(i, j int) bool {
		return gaps[i].Impact > gaps[j].Impact
	})

	analysis := &types.GapAnalysis{
		CriticalGaps:       filterGaps(gaps, PriorityCritical),
		HighPriorityGaps:   filterGaps(gaps, PriorityHigh),
		MediumPriorityGaps: filterGaps(gaps, PriorityMedium),
		LowPriorityGaps:    filterGaps(gaps, PriorityLow),
		Strengths:          []string{},
		TransferableSkills: []string{},
		LearningPaths:      map[string]types.LearningPath{},
		QuickWins:          []string{},
	}

	for _, c := range current {
		if requiredByName[c.Name] {
			analysis.Strengths = append(analysis.Strengths, c.Name)
		}
		if data, ok := cat.Skill(c.Name); ok && slices.ContainsFunc(data.RelatedSkills, func(rs string) bool {
			return requiredByName[rs]
		}) {
			analysis.TransferableSkills = append(analysis.TransferableSkills, c.Name)
		}
	}

	pathGaps := append(append([]types.SkillGap{}, analysis.CriticalGaps...), analysis.HighPriorityGaps...)
	if len(pathGaps) > maxLearningPaths {
		pathGaps = pathGaps[:maxLearningPaths]
	}
	for _, g := range pathGaps {
		data, _ := cat.Skill(g.Skill)
		path := learningPath(cat, data, g.CurrentLevel, g.RequiredLevel)
		analysis.LearningPaths[g.Skill] = path
		analysis.TimeToReady += path.TotalTime
		for _, r := range cat.ResourcesFor(g.Skill, "") {
			analysis.EstimatedCost += r.Cost
		}
	}

	for _, g := range gaps {
		if len(analysis.QuickWins) == maxQuickWins {
			break
		}
		if g.TimeToLearn < quickWinHours && g.Impact >= quickWinImpact {
			analysis.QuickWins = append(analysis.QuickWins, g.Skill)
		}
	}

	analysis.OverallReadiness = 100
	if requiredImpact > 0 {
		analysis.OverallReadiness = int(math.Round(float64(requiredImpact-gapImpact) / float64(requiredImpact) * 100))
	}
	analysis.Recommendations = recommendations(analysis)
	return analysis
}

// calculateImpact scores how much a missing skill matters, capped at 100.
func calculateImpact(priority string, data *catalog.Skill) int {
	impact := priorityImpact[priority] +
		float64(data.MarketValue)/1000 +
		trendImpact[data.DemandTrend] +
		categoryImpact[data.Category]
	return int(math.Min(100, math.Round(impact)))
}

func levelRank(level string) int {
	return slices.Index(catalog.Levels, level)
}

func filterGaps(gaps []types.SkillGap, priority string) []types.SkillGap {
	out := []types.SkillGap{}
	for _, g := range gaps {
		if g.Priority == priority {
			out = append(out, g)
		}
	}
	return out
}

// learningPath walks the level ladder from current to target, one phase per level.
func learningPath(cat *catalog.Catalog, data *catalog.Skill, current, target string) types.LearningPath {
	path := types.LearningPath{
		Skill:          data.Name,
		CurrentLevel:   current,
		TargetLevel:    target,
		Phases:         []types.LearningPhase{},
		Projects:       slices.Clone(data.Projects[target]),
		Certifications: slices.Clone(data.Certifications),
	}
	if len(path.Projects) == 0 {
		path.Projects = []string{fmt.Sprintf("Build %s-level project with %s", target, data.Name)}
	}
	if path.Certifications == nil {
		path.Certifications = []string{}
	}

	start, end := levelRank(current), levelRank(target)
	for i := start + 1; i <= end; i++ {
		level := catalog.Levels[i]
		duration, ok := data.LearningTime.Hours(level)
		if !ok || duration == 0 {
			duration = defaultPhaseHours
		}
		path.TotalTime += duration

		path.Phases = append(path.Phases, types.LearningPhase{
			Phase:       i - start,
			Level:       level,
			Description: fmt.Sprintf("Reach %s level in %s", level, data.Name),
			Duration:    duration,
			Milestones:  levelMilestones(data.Name, level),
			Resources:   cat.ResourcesFor(data.Name, level),
		})
	}
	return path
}

func levelMilestones(skill, level string) []string {
	out := make([]string, len(milestones[level]))
	for i, m := range milestones[level] {
		if strings.Contains(m, "%s") {
			m = fmt.Sprintf(m, skill)
		}
		out[i] = m
	}
	return out
}

func recommendations(a *types.GapAnalysis) []string {
	recs := []string{}
	switch {
	case a.OverallReadiness >= wellQualified:
		recs = append(recs, "You're well-qualified for this role! Focus on showcasing your existing skills.")
	case a.OverallReadiness >= solidFoundation:
		recs = append(recs, "You have a solid foundation. Close critical gaps to become a strong candidate.")
	default:
		recs = append(recs, "Significant skill gaps detected. Consider targeting roles that better match your current skills or invest in learning.")
	}

	if len(a.CriticalGaps) > 0 {
		names := []string{}
		for _, g := range a.CriticalGaps[:min(maxPriorityNames, len(a.CriticalGaps))] {
			names = append(names, g.Skill)
		}
		recs = append(recs, fmt.Sprintf("Priority: Learn %s first - these are critical for the role.", strings.Join(names, ", ")))
	}

	if len(a.QuickWins) > 0 {
		recs = append(recs, fmt.Sprintf("Quick wins: %s - high impact and can learn quickly.", strings.Join(a.QuickWins, ", ")))
	}

	if a.TimeToReady > 0 {
		weeks := (a.TimeToReady + hoursPerWeek - 1) / hoursPerWeek
		recs = append(recs, fmt.Sprintf("Estimated time to become interview-ready: %d weeks of focused learning.", weeks))
	}
	return recs
}
