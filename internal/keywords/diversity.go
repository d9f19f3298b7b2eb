package keywords

import "math"

// diversityPhrases is the number of key phrases considered by Diversity.
const diversityPhrases = 50

// Diversity returns the normalized Shannon entropy of the top key-phrase
// scores of text in [0, 1]. Text whose importance is spread across many terms
// scores higher than text dominated by a few.
func Diversity(text string) float64 {
	phrases := ExtractKeyPhrases(text, diversityPhrases)
	if len(phrases) == 0 {
		return 0
	}

	total := 0.0
	for _, p := range phrases {
		total += p.Score
	}
	if total == 0 {
		return 0
	}

	entropy := 0.0
	for _, p := range phrases {
		prob := p.Score / total
		if prob > 0 {
			entropy -= prob * math.Log2(prob)
		}
	}

	maxEntropy := math.Log2(float64(len(phrases)))
	if maxEntropy == 0 {
		return 0
	}
	return entropy / maxEntropy
}
