// Package ranking ranks a batch of résumés against one job description.
package ranking

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-scorer/internal/catalog"
	"github.com/jonathan/resume-scorer/internal/keywords"
	"github.com/jonathan/resume-scorer/internal/parsing"
	"github.com/jonathan/resume-scorer/internal/similarity"
	"github.com/jonathan/resume-scorer/internal/skills"
	"github.com/jonathan/resume-scorer/internal/transformer"
	"github.com/jonathan/resume-scorer/internal/types"
	"github.com/jonathan/resume-scorer/internal/vecmath"
)

const (
	// DefaultWorkers is the worker count used when none is given
	DefaultWorkers = 4

	jobKeywordCount = 20
	scorePlaces     = 3
)

// jobContext holds everything derived from the job description once per batch.
type jobContext struct {
	text     string
	targets  *types.SkillTargets
	keywords []string
}

// RankResumes scores every résumé against job with up to workers concurrent
// scorers and returns them sorted by score (descending), ranked from 1. The
// score is 0.6 encoder similarity plus 0.4 ensemble semantic similarity.
// Ties keep submission order.
func RankResumes(ctx context.Context, job string, resumes []types.ResumeDocument, workers int, logger *slog.Logger) (*types.RankedResumes, error) {
	if err := parsing.ValidateText("job", job); err != nil {
		return nil, err
	}
	for _, r := range resumes {
		if err := parsing.ValidateText("resume", r.Text); err != nil {
			return nil, fmt.Errorf("resume %s: %w", r.ID, err)
		}
	}
	if workers <= 0 {
		workers = DefaultWorkers
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	cat, err := catalog.Default()
	if err != nil {
		return nil, err
	}

	jc := jobContext{
		text:     job,
		keywords: keywords.Terms(keywords.ExtractKeywords(job, jobKeywordCount)),
	}
	// a job without dictionary skills still ranks on similarity
	if jc.targets, err = skills.BuildSkillTargets(job); err != nil {
		logger.Debug("no skill targets for job", "error", err)
	}

	ranked := make([]types.RankedResume, len(resumes))
	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, r := range resumes {
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			ranked[i] = scoreResume(cat, transformer.Default(), jc, r)
			logger.Debug("scored resume", "id", r.ID, "score", ranked[i].Score)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("ranking cancelled: %w", err)
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})
	for i := range ranked {
		ranked[i].Rank = i + 1
	}

	logger.Debug("ranked resumes", "count", len(ranked), "workers", workers)
	return &types.RankedResumes{Ranked: ranked}, nil
}

// scoreResume computes every score of one résumé.
func scoreResume(cat *catalog.Catalog, enc *transformer.Encoder, jc jobContext, r types.ResumeDocument) types.RankedResume {
	transformerScore := enc.Similarity(r.Text, jc.text)
	semanticScore := similarity.AdvancedSemanticSimilarity(r.Text, jc.text).Similarity
	skillOverlap, matchedSkills := computeSkillOverlapScore(cat, r.Text, jc.targets)
	keywordOverlap := computeKeywordOverlapScore(r.Text, jc.keywords)

	return types.RankedResume{
		ResumeID:         r.ID,
		Score:            vecmath.Round(combinedScore(transformerScore, semanticScore), scorePlaces),
		TransformerScore: vecmath.Round(transformerScore, scorePlaces),
		SemanticScore:    vecmath.Round(semanticScore, scorePlaces),
		SkillOverlap:     vecmath.Round(skillOverlap, scorePlaces),
		KeywordOverlap:   vecmath.Round(keywordOverlap, scorePlaces),
		MatchedSkills:    matchedSkills,
		Notes:            generateNotes(skillOverlap, keywordOverlap, semanticScore, matchedSkills),
	}
}

// generateNotes creates a brief explanation of the ranking.
func generateNotes(skillOverlap, keywordOverlap, semanticScore float64, matchedSkills []string) string {
	var parts []string

	// Skill match description
	switch {
	case len(matchedSkills) == 0 || skillOverlap <= 0:
		parts = append(parts, "No skill matches")
	case skillOverlap >= 0.7:
		parts = append(parts, fmt.Sprintf("Strong skill match (%s)", strings.Join(matchedSkills, ", ")))
	case skillOverlap >= 0.4:
		parts = append(parts, fmt.Sprintf("Moderate skill match (%s)", strings.Join(matchedSkills, ", ")))
	default:
		parts = append(parts, fmt.Sprintf("Weak skill match (%s)", strings.Join(matchedSkills, ", ")))
	}

	// Semantic similarity description
	switch {
	case semanticScore >= 0.6:
		parts = append(parts, "High semantic similarity")
	case semanticScore >= 0.3:
		parts = append(parts, "Medium semantic similarity")
	default:
		parts = append(parts, "Low semantic similarity")
	}

	// Keyword match description
	if keywordOverlap >= 0.5 {
		parts = append(parts, "Good keyword overlap")
	} else if keywordOverlap > 0 {
		parts = append(parts, "Some keyword overlap")
	}

	return strings.Join(parts, ". ")
}
