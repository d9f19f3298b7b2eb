package analysis

import (
	"math"
	"regexp"
	"strings"

	"github.com/jonathan/resume-scorer/internal/types"
	"github.com/jonathan/resume-scorer/internal/vecmath"
)

const (
	// wordLengthScale maps an average word length of 8 characters to full complexity
	wordLengthScale = 8

	highComplexity     = 0.7
	longSentenceWords  = 25
	lowComplexity      = 0.4
	lowVocabularyRatio = 0.6
)

var sentenceSplit = regexp.MustCompile(`[.!?]+`)

// Readability measures average word length, vocabulary richness (unique over
// total words) and average sentence length, and recommends a change when the
// text is too dense or too repetitive.
func Readability(text string) types.Readability {
	sentences := 0
	for _, s := range sentenceSplit.Split(text, -1) {
		if strings.TrimSpace(s) != "" {
			sentences++
		}
	}
	words := strings.Fields(text)
	wordCount := float64(max(len(words), 1))

	unique := make(map[string]bool, len(words))
	letters := 0
	for _, w := range words {
		unique[strings.ToLower(w)] = true
		letters += len([]rune(w))
	}

	avgSentence := float64(len(words)) / float64(max(sentences, 1))
	richness := float64(len(unique)) / wordCount
	complexity := math.Min(1, float64(letters)/wordCount/wordLengthScale)

	recommendation := "Good balance of complexity and readability."
	switch {
	case complexity > highComplexity && avgSentence > longSentenceWords:
		recommendation = "Consider simplifying sentences and using shorter words for better ATS parsing."
	case complexity < lowComplexity && richness < lowVocabularyRatio:
		recommendation = "Consider using more varied vocabulary and professional terminology."
	}

	return types.Readability{
		Complexity:         vecmath.Round(complexity, 2),
		VocabularyRichness: vecmath.Round(richness, 2),
		AvgSentenceLength:  vecmath.Round(avgSentence, 1),
		Recommendation:     recommendation,
	}
}
