// Package analysis provides lexicon and pattern based text analyses of a
// résumé: sentiment, named entities, readability and a weighted quality
// score against a job description.
package analysis

import (
	"strings"

	"github.com/jonathan/resume-scorer/internal/types"
)

var positiveWords = map[string]bool{
	"excellent": true, "great": true, "outstanding": true, "successful": true, "achieved": true,
	"led": true, "improved": true, "increased": true, "optimized": true, "streamlined": true,
	"enhanced": true, "innovative": true, "creative": true, "efficient": true, "effective": true,
	"skilled": true, "expert": true, "proficient": true, "strong": true, "proven": true,
	"accomplished": true, "awarded": true, "recognized": true, "certified": true, "advanced": true,
	"senior": true,
}

var negativeWords = map[string]bool{
	"failed": true, "poor": true, "weak": true, "limited": true, "lacking": true,
	"insufficient": true, "inadequate": true, "struggling": true, "difficult": true, "problem": true,
	"issue": true, "challenge": true, "unable": true, "cannot": true,
}

// Sentiment counts lexicon words among the whitespace-separated words of
// text. Score is (positive-negative)/(positive+negative) in [-1, 1] and
// Confidence the share of words carrying sentiment. Words keep their
// punctuation, so "led," does not count.
func Sentiment(text string) types.Sentiment {
	words := strings.Fields(strings.ToLower(text))

	var s types.Sentiment
	for _, w := range words {
		if positiveWords[w] {
			s.Positive++
		}
		if negativeWords[w] {
			s.Negative++
		}
	}

	total := s.Positive + s.Negative
	s.Neutral = len(words) - total
	if total > 0 {
		s.Score = float64(s.Positive-s.Negative) / float64(total)
	}
	if len(words) > 0 {
		s.Confidence = float64(total) / float64(len(words))
	}
	return s
}
