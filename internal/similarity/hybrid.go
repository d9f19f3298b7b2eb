package similarity

import (
	"math"

	"github.com/jonathan/resume-scorer/internal/parsing"
)

// Hybrid weights for TextSimilarity
const (
	hybridCosineWeight  = 0.5
	hybridJaccardWeight = 0.3
	hybridBigramWeight  = 0.2
)

// TextSimilarity returns a 0-100 score mixing relative term-frequency cosine,
// word-set Jaccard and adjacent-bigram Jaccard. Stop words are kept. It
// returns 0 when either text has no words.
func TextSimilarity(text1, text2 string) int {
	words1 := parsing.Words(text1)
	words2 := parsing.Words(text2)
	if len(words1) == 0 || len(words2) == 0 {
		return 0
	}

	cosine := TermCountCosine(words1, words2)
	jaccard := jaccardIndex(toSet(words1), toSet(words2))
	bigram := jaccardIndex(toSet(bigrams(words1)), toSet(bigrams(words2)))

	combined := hybridCosineWeight*cosine + hybridJaccardWeight*jaccard + hybridBigramWeight*bigram
	return int(math.Round(combined * 100))
}

func toSet(items []string) map[string]bool {
	set := make(map[string]bool, len(items))
	for _, item := range items {
		set[item] = true
	}
	return set
}

func bigrams(words []string) []string {
	if len(words) < 2 {
		return nil
	}
	out := make([]string, 0, len(words)-1)
	for i := 0; i < len(words)-1; i++ {
		out = append(out, words[i]+"_"+words[i+1])
	}
	return out
}

func jaccardIndex(a, b map[string]bool) float64 {
	union := len(a)
	intersection := 0
	for item := range b {
		if a[item] {
			intersection++
		} else {
			union++
		}
	}
	if union == 0 {
		return 0
	}
	return float64(intersection) / float64(union)
}
