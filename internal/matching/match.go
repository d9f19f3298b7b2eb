// Package matching compares a résumé with a job description: encoder based
// match scores, phrase level gap reports, keyword suggestions and a job
// match prediction.
package matching

import (
	"sort"

	"github.com/jonathan/resume-scorer/internal/parsing"
	"github.com/jonathan/resume-scorer/internal/transformer"
	"github.com/jonathan/resume-scorer/internal/types"
	"github.com/jonathan/resume-scorer/internal/vecmath"
)

const (
	// Weight constants for MatchScore
	semanticWeight = 0.6
	overlapWeight  = 0.4

	jobTokens       = 20
	resumeTokens    = 50
	maxMissingWords = 10

	scorePlaces = 3
)

// encoderMatch is the unrounded encoder comparison shared by MatchScore and
// EnhancedKeywordAnalysis.
type encoderMatch struct {
	overall  float64
	semantic float64
	overlap  float64
	matched  []string
	missing  []types.MissingKeyword
}

// matchWithEncoder compares the 20 most important job tokens with the 50
// most important résumé tokens. Overlap counts every job token occurrence
// found among the résumé tokens, so repeated job tokens weigh more. The
// matched and missing lists are deduplicated.
func matchWithEncoder(enc *transformer.Encoder, resume, job string) encoderMatch {
	m := encoderMatch{
		semantic: enc.Similarity(resume, job),
		matched:  []string{},
		missing:  []types.MissingKeyword{},
	}

	resumeSet := map[string]bool{}
	for _, t := range enc.ImportantTokens(resume, resumeTokens) {
		resumeSet[t.Token] = true
	}

	jobTop := enc.ImportantTokens(job, jobTokens)
	seen := map[string]bool{}
	hits := 0
	for _, t := range jobTop {
		if resumeSet[t.Token] {
			hits++
		}
		if seen[t.Token] {
			continue
		}
		seen[t.Token] = true
		if resumeSet[t.Token] {
			m.matched = append(m.matched, t.Token)
		} else {
			m.missing = append(m.missing, types.MissingKeyword{Keyword: t.Token, Importance: t.Importance})
		}
	}

	if len(jobTop) > 0 {
		m.overlap = float64(hits) / float64(len(jobTop))
	}
	sort.SliceStable(m.missing, func(i, j int) bool {
		return m.missing[i].Importance > m.missing[j].Importance
	})
	if len(m.missing) > maxMissingWords {
		m.missing = m.missing[:maxMissingWords]
	}

	m.overall = vecmath.Clamp(semanticWeight*m.semantic+overlapWeight*m.overlap, 0, 1)
	return m
}

// MatchScore blends the encoder similarity of résumé and job (0.6) with the
// overlap of their most important tokens (0.4). Scores are in [0, 1], rounded
// to three decimals.
func MatchScore(resume, job string) (*types.MatchResult, error) {
	if err := validatePair(resume, job); err != nil {
		return nil, err
	}

	m := matchWithEncoder(transformer.Default(), resume, job)
	for i := range m.missing {
		m.missing[i].Importance = vecmath.Round(m.missing[i].Importance, scorePlaces)
	}
	return &types.MatchResult{
		OverallScore:       vecmath.Round(m.overall, scorePlaces),
		SemanticSimilarity: vecmath.Round(m.semantic, scorePlaces),
		KeywordOverlap:     vecmath.Round(m.overlap, scorePlaces),
		MatchedKeywords:    m.matched,
		MissingKeywords:    m.missing,
	}, nil
}

func validatePair(resume, job string) error {
	if err := parsing.ValidateText("resume", resume); err != nil {
		return err
	}
	return parsing.ValidateText("job", job)
}
