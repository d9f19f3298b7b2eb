package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-scorer/internal/keywords"
	"github.com/jonathan/resume-scorer/internal/parsing"
)

const (
	methodTextRank = "textrank"
	methodNgram    = "ngram"
)

var keywordsCmd = &cobra.Command{
	Use:   "keywords",
	Short: "Extract ranked keywords from a document",
	Long:  "Extracts the top keywords of a résumé or job description with TextRank key phrases or position-weighted n-grams, plus the lexical diversity of the text.",
	RunE:  runKeywords,
}

var (
	keywordsInput  string
	keywordsTopK   int
	keywordsMethod string
	keywordsOutput string
)

// keywordsReport is the result of the keywords command.
type keywordsReport struct {
	Method    string               `json:"method"`
	TopK      int                  `json:"top_k"`
	Phrases   []keywords.KeyPhrase `json:"phrases,omitempty"`
	Keywords  []keywords.Keyword   `json:"keywords,omitempty"`
	Diversity float64              `json:"diversity"`
}

func init() {
	keywordsCmd.Flags().StringVarP(&keywordsInput, "input", "i", "", "Path to input document (required)")
	keywordsCmd.Flags().IntVarP(&keywordsTopK, "top-k", "k", 0, "Number of keywords to return (default from config)")
	keywordsCmd.Flags().StringVarP(&keywordsMethod, "method", "m", methodTextRank, "Extraction method: textrank or ngram")
	keywordsCmd.Flags().StringVarP(&keywordsOutput, "out", "o", "", "Path to output JSON report (required)")
	markRequired(keywordsCmd, "input", "out")

	rootCmd.AddCommand(keywordsCmd)
}

func runKeywords(cmd *cobra.Command, _ []string) error {
	topK := settings.TopK
	if cmd.Flags().Changed("top-k") {
		topK = keywordsTopK
	}
	if topK <= 0 {
		return &parsing.ValidationError{Field: "top_k", Message: "must be positive"}
	}

	text, err := loadDocument(keywordsInput)
	if err != nil {
		return err
	}

	result := keywordsReport{Method: keywordsMethod, TopK: topK, Diversity: keywords.Diversity(text)}
	switch keywordsMethod {
	case methodTextRank:
		result.Phrases = keywords.ExtractKeyPhrases(text, topK)
	case methodNgram:
		result.Keywords = keywords.ExtractKeywords(text, topK)
	default:
		return fmt.Errorf("unknown method %q: use %s or %s", keywordsMethod, methodTextRank, methodNgram)
	}

	return writeReport(cmd.OutOrStdout(), "keywords", keywordsOutput, result)
}
