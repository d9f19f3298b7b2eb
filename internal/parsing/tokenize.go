// Package parsing provides text tokenization, skill-name normalization and input validation.
package parsing

import (
	"regexp"
	"strings"
)

// MaxEncoderTokens bounds the sequence length seen by the attention encoder.
const MaxEncoderTokens = 128

var nonWordPattern = regexp.MustCompile(`[^\w\s]`)

// stopWords is the stop list used by the embedding, LSA and TextRank tokenizer.
var stopWords = map[string]bool{
	"the": true, "a": true, "an": true, "and": true, "or": true, "but": true,
	"in": true, "on": true, "at": true, "to": true, "for": true, "of": true,
	"with": true, "by": true, "from": true, "as": true, "is": true, "was": true,
	"are": true, "were": true, "been": true, "be": true, "have": true, "has": true,
	"had": true, "do": true, "does": true, "did": true, "will": true, "would": true,
	"could": true, "should": true, "may": true, "might": true, "must": true, "can": true,
	"this": true, "that": true, "these": true, "those": true, "i": true, "you": true,
	"he": true, "she": true, "it": true, "we": true, "they": true,
}

// keywordStopWords is the broader list used by n-gram keyword extraction,
// including common résumé filler.
var keywordStopWords = map[string]bool{
	"the": true, "be": true, "to": true, "of": true, "and": true, "a": true,
	"in": true, "that": true, "have": true, "i": true, "it": true, "for": true,
	"not": true, "on": true, "with": true, "he": true, "as": true, "you": true,
	"do": true, "at": true, "this": true, "but": true, "his": true, "by": true,
	"from": true, "they": true, "we": true, "say": true, "her": true, "she": true,
	"or": true, "an": true, "will": true, "my": true, "one": true, "all": true,
	"would": true, "there": true, "their": true, "was": true, "were": true, "been": true,
	"has": true, "had": true, "are": true, "is": true, "am": true, "can": true,
	"could": true, "also": true, "which": true, "who": true, "where": true, "when": true,
	"how": true, "what": true, "such": true, "than": true, "some": true, "other": true,
	"into": true, "out": true, "up": true, "down": true, "over": true, "under": true,
	"again": true,
}

// splitWords lowercases text, replaces non-word characters with spaces and
// splits on whitespace.
func splitWords(text string) []string {
	if text == "" {
		return nil
	}
	return strings.Fields(nonWordPattern.ReplaceAllString(strings.ToLower(text), " "))
}

// Words returns the normalized words of text longer than two characters.
// Stop words are kept.
func Words(text string) []string {
	fields := splitWords(text)
	words := make([]string, 0, len(fields))
	for _, f := range fields {
		if len(f) > 2 {
			words = append(words, f)
		}
	}
	return words
}

// Tokenize returns the content tokens of text: normalized words longer than
// two characters with stop words removed. Empty input yields an empty slice.
func Tokenize(text string) []string {
	words := Words(text)
	tokens := words[:0]
	for _, w := range words {
		if !stopWords[w] {
			tokens = append(tokens, w)
		}
	}
	return tokens
}

// TokenizeRaw returns every normalized word of text, without length or stop
// word filtering, capped at MaxEncoderTokens.
func TokenizeRaw(text string) []string {
	tokens := splitWords(text)
	if len(tokens) > MaxEncoderTokens {
		tokens = tokens[:MaxEncoderTokens]
	}
	return tokens
}

// IsStopWord reports whether word is in the content tokenizer stop list.
func IsStopWord(word string) bool {
	return stopWords[word]
}

// IsKeywordStopWord reports whether word is in the keyword extraction stop list.
func IsKeywordStopWord(word string) bool {
	return keywordStopWords[word]
}
