package matching

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jonathan/resume-scorer/internal/embedding"
	"github.com/jonathan/resume-scorer/internal/keywords"
	"github.com/jonathan/resume-scorer/internal/similarity"
	"github.com/jonathan/resume-scorer/internal/transformer"
	"github.com/jonathan/resume-scorer/internal/types"
	"github.com/jonathan/resume-scorer/internal/vecmath"
)

const (
	// Weight constants for EnhancedKeywordAnalysis
	enhancedTransformerWeight = 0.40
	enhancedSemanticWeight    = 0.35
	enhancedOverlapWeight     = 0.25

	resumePhrases     = 15
	jobPhrases        = 20
	maxPhraseGaps     = 10
	maxStrengths      = 8
	maxImprovements   = 5
	highlightedTokens = 15

	coverageJobPhrases    = 25
	coverageResumePhrases = 30
	presentThreshold      = 0.7
	maxPresentSkills      = 15
	maxMissingSkills      = 10

	suggestionPhrases = 30
	maxSuggestions    = 15
	criticalRank      = 3
	highRank          = 2
)

// Insertion points for keyword suggestions
const (
	SectionExperience = "experience"
	SectionProjects   = "projects"
	SectionSummary    = "summary"
	SectionSkills     = "skills"
)

// EnhancedKeywordAnalysis blends the encoder match (0.40), the ensemble
// semantic similarity (0.35) and encoder keyword overlap (0.25). Missing
// phrases are TextRank job phrases absent from the résumé phrases, with
// their word-vector distance to the résumé.
func EnhancedKeywordAnalysis(resume, job string) (*types.EnhancedAnalysis, error) {
	if err := validatePair(resume, job); err != nil {
		return nil, err
	}

	enc := transformer.Default()
	m := matchWithEncoder(enc, resume, job)
	semantic := similarity.AdvancedSemanticSimilarity(resume, job)

	resumeKP := keywords.ExtractKeyPhrases(resume, resumePhrases)
	jobKP := keywords.ExtractKeyPhrases(job, jobPhrases)
	resumeSet := keywords.PhraseSet(resumeKP)
	jobSet := keywords.PhraseSet(jobKP)

	missing := []types.PhraseGap{}
	for _, p := range jobKP {
		if resumeSet[p.Phrase] {
			continue
		}
		words := embedding.BuildWordEmbeddings([]string{resume, p.Phrase}, embedding.DefaultWordDimensions)
		sim := vecmath.Cosine(words.Document(resume), words.Document(p.Phrase))
		missing = append(missing, types.PhraseGap{
			Phrase:           p.Phrase,
			Importance:       vecmath.Round(p.Score, scorePlaces),
			SemanticDistance: vecmath.Round(1-sim, scorePlaces),
		})
	}
	sort.SliceStable(missing, func(i, j int) bool {
		return missing[i].Importance > missing[j].Importance
	})
	if len(missing) > maxPhraseGaps {
		missing = missing[:maxPhraseGaps]
	}

	strengths := []string{}
	for _, p := range resumeKP {
		if jobSet[p.Phrase] && len(strengths) < maxStrengths {
			strengths = append(strengths, p.Phrase)
		}
	}

	improvements := []string{}
	for _, g := range missing[:min(maxImprovements, len(missing))] {
		improvements = append(improvements, g.Phrase)
	}

	highlights := []types.TokenHighlight{}
	for _, t := range enc.ImportantTokens(resume, highlightedTokens) {
		highlights = append(highlights, types.TokenHighlight{Token: t.Token, Importance: vecmath.Round(t.Importance, scorePlaces)})
	}

	overall := enhancedTransformerWeight*m.overall +
		enhancedSemanticWeight*semantic.Similarity +
		enhancedOverlapWeight*m.overlap

	return &types.EnhancedAnalysis{
		OverallScore:        vecmath.Round(vecmath.Clamp(overall, 0, 1), 2),
		TransformerScore:    vecmath.Round(m.overall, scorePlaces),
		SemanticSimilarity:  vecmath.Round(semantic.Similarity, scorePlaces),
		KeywordOverlap:      vecmath.Round(m.overlap, scorePlaces),
		Word2VecSimilarity:  vecmath.Round(semantic.Word2VecSim, scorePlaces),
		LSASimilarity:       vecmath.Round(semantic.LSASim, scorePlaces),
		TFIDFSimilarity:     vecmath.Round(semantic.TFIDFSim, scorePlaces),
		MissingKeywords:     missing,
		Strengths:           strengths,
		ImprovementAreas:    improvements,
		AttentionHighlights: highlights,
	}, nil
}

// SkillCoverage checks each of the top job phrases against the résumé
// phrases with the encoder. A job phrase is covered when its best encoder
// similarity exceeds 0.7.
func SkillCoverage(resume, job string) (*types.SkillCoverage, error) {
	if err := validatePair(resume, job); err != nil {
		return nil, err
	}

	enc := transformer.Default()
	jobKP := keywords.ExtractKeyPhrases(job, coverageJobPhrases)
	resumeKP := keywords.ExtractKeyPhrases(resume, coverageResumePhrases)

	resumeVectors := make([][]float64, len(resumeKP))
	for i, p := range resumeKP {
		resumeVectors[i] = enc.EncodeToVector(p.Phrase)
	}

	coverage := &types.SkillCoverage{
		PresentSkills: []types.CoveredSkill{},
		MissingSkills: []types.MissingSkill{},
	}
	for _, jp := range jobKP {
		jobVector := enc.EncodeToVector(jp.Phrase)
		best, bestPhrase := 0.0, ""
		for i, rv := range resumeVectors {
			if sim := vecmath.Dot(rv, jobVector); sim > best {
				best, bestPhrase = sim, resumeKP[i].Phrase
			}
		}

		if best > presentThreshold {
			coverage.PresentSkills = append(coverage.PresentSkills, types.CoveredSkill{
				Skill:      jp.Phrase,
				MatchedBy:  bestPhrase,
				Confidence: vecmath.Round(best, scorePlaces),
			})
		} else {
			coverage.MissingSkills = append(coverage.MissingSkills, types.MissingSkill{
				Skill:          jp.Phrase,
				Priority:       vecmath.Round(jp.Score, scorePlaces),
				BestSimilarity: vecmath.Round(best, scorePlaces),
			})
		}
	}

	coverage.Coverage = vecmath.Round(float64(len(coverage.PresentSkills))/float64(max(len(jobKP), 1)), 2)
	if len(coverage.PresentSkills) > maxPresentSkills {
		coverage.PresentSkills = coverage.PresentSkills[:maxPresentSkills]
	}
	sort.SliceStable(coverage.MissingSkills, func(i, j int) bool {
		return coverage.MissingSkills[i].Priority > coverage.MissingSkills[j].Priority
	})
	if len(coverage.MissingSkills) > maxMissingSkills {
		coverage.MissingSkills = coverage.MissingSkills[:maxMissingSkills]
	}
	return coverage, nil
}

// KeywordSuggestions proposes where to add each job keyword the encoder
// found missing from the résumé. Priority follows the TextRank score of the
// first job phrase containing the keyword.
func KeywordSuggestions(resume, job string) ([]types.KeywordSuggestion, error) {
	if err := validatePair(resume, job); err != nil {
		return nil, err
	}

	m := matchWithEncoder(transformer.Default(), resume, job)
	jobKP := keywords.ExtractKeyPhrases(job, suggestionPhrases)

	suggestions := []types.KeywordSuggestion{}
	for _, mk := range m.missing {
		if len(suggestions) == maxSuggestions {
			break
		}
		section := insertionPoint(mk.Keyword)

		score := 0.0
		for _, p := range jobKP {
			if strings.Contains(p.Phrase, mk.Keyword) {
				score = p.Score
				break
			}
		}
		priority := "medium"
		switch {
		case score > criticalRank:
			priority = "critical"
		case score > highRank:
			priority = "high"
		}

		suggestions = append(suggestions, types.KeywordSuggestion{
			Keyword:        mk.Keyword,
			Priority:       priority,
			InsertionPoint: section,
			Context:        fmt.Sprintf("Add %q to your %s section. Example: \"Utilized %s to...\"", mk.Keyword, section, mk.Keyword),
		})
	}
	return suggestions, nil
}

// insertionPoint picks the résumé section a keyword most likely belongs to.
func insertionPoint(keyword string) string {
	kw := strings.ToLower(keyword)
	switch {
	case strings.Contains(kw, "led") || strings.Contains(kw, "managed") || strings.Contains(kw, "developed"):
		return SectionExperience
	case strings.Contains(kw, "project") || strings.Contains(kw, "built"):
		return SectionProjects
	case strings.Contains(kw, "expert") || strings.Contains(kw, "proficient"):
		return SectionSummary
	default:
		return SectionSkills
	}
}
