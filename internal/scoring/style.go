package scoring

import (
	"regexp"
	"strings"
	"sync"
)

const (
	// wordsPerPage is the estimated number of words on one résumé page
	wordsPerPage = 500
)

var digitPattern = regexp.MustCompile(`\d`)

// BulletStyle holds the style checks of a single bullet line.
type BulletStyle struct {
	StrongVerb bool `json:"strong_verb"`
	Quantified bool `json:"quantified"`
}

// CheckBullet reports whether a bullet opens with an action verb and carries a number.
func CheckBullet(line string, verbs []string) BulletStyle {
	textLower := strings.ToLower(strings.TrimSpace(line))
	return BulletStyle{
		StrongVerb: checkStrongVerb(textLower, verbs),
		Quantified: checkQuantifiedImpact(textLower),
	}
}

// checkStrongVerb checks if text starts with one of verbs or a past-tense verb
func checkStrongVerb(textLower string, verbs []string) bool {
	words := strings.Fields(strings.TrimLeft(textLower, bulletMarkers+" \t-*"))
	if len(words) == 0 {
		return false
	}

	firstWord := strings.TrimRight(words[0], ".,!?;:")
	for _, v := range verbs {
		if firstWord == v {
			return true
		}
	}

	// past tense verbs are usually actions
	return strings.HasSuffix(firstWord, "ed") && len(firstWord) > 3
}

// checkQuantifiedImpact checks if text contains numbers or percentages
func checkQuantifiedImpact(text string) bool {
	return digitPattern.MatchString(text) || strings.Contains(text, "%")
}

// countPhrases counts how many of phrases occur in textLower as substrings.
func countPhrases(textLower string, phrases []string) int {
	count := 0
	for _, p := range phrases {
		if p != "" && strings.Contains(textLower, strings.ToLower(p)) {
			count++
		}
	}
	return count
}

// wordPatterns caches compiled whole-word patterns by term.
var wordPatterns sync.Map

// wordPattern matches term as a whole word, case-insensitively. Each term is
// compiled once per process.
func wordPattern(term string) *regexp.Regexp {
	if re, ok := wordPatterns.Load(term); ok {
		return re.(*regexp.Regexp)
	}
	re, _ := wordPatterns.LoadOrStore(term, regexp.MustCompile(`(?i)\b`+regexp.QuoteMeta(term)+`\b`))
	return re.(*regexp.Regexp)
}

// matchWords returns the terms that occur in text as whole words.
func matchWords(text string, terms []string) []string {
	found := make([]string, 0, len(terms))
	for _, term := range terms {
		if wordPattern(term).MatchString(text) {
			found = append(found, term)
		}
	}
	return found
}

// estimatePages estimates the printed page count of text
func estimatePages(text string) float64 {
	return float64(len(strings.Fields(text))) / wordsPerPage
}
