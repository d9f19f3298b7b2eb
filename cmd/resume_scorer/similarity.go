package main

import (
	"github.com/spf13/cobra"

	"github.com/jonathan/resume-scorer/internal/embedding"
	"github.com/jonathan/resume-scorer/internal/similarity"
	"github.com/jonathan/resume-scorer/internal/transformer"
	"github.com/jonathan/resume-scorer/internal/vecmath"
)

var similarityCmd = &cobra.Command{
	Use:   "similarity",
	Short: "Compare two documents",
	Long:  "Compares two documents with the hybrid term/Jaccard similarity, the word2vec/LSA/TF-IDF ensemble, the attention encoder and word vectors of the configured dimensions.",
	RunE:  runSimilarity,
}

var (
	similarityA      string
	similarityB      string
	similarityOutput string
)

// similarityReport is the result of the similarity command.
type similarityReport struct {
	TextSimilarity        int                       `json:"text_similarity"`
	Semantic              similarity.SemanticResult `json:"semantic"`
	TransformerSimilarity float64                   `json:"transformer_similarity"`
	WordVectorSimilarity  float64                   `json:"word_vector_similarity"`
	Dimensions            int                       `json:"dimensions"`
}

func init() {
	similarityCmd.Flags().StringVarP(&similarityA, "a", "a", "", "Path to first document (required)")
	similarityCmd.Flags().StringVarP(&similarityB, "b", "b", "", "Path to second document (required)")
	similarityCmd.Flags().StringVarP(&similarityOutput, "out", "o", "", "Path to output JSON report (required)")
	markRequired(similarityCmd, "a", "b", "out")

	rootCmd.AddCommand(similarityCmd)
}

func runSimilarity(cmd *cobra.Command, _ []string) error {
	textA, err := loadDocument(similarityA)
	if err != nil {
		return err
	}
	textB, err := loadDocument(similarityB)
	if err != nil {
		return err
	}

	vectors := embedding.BuildWordEmbeddings([]string{textA, textB}, settings.Dimensions)
	result := similarityReport{
		TextSimilarity:        similarity.TextSimilarity(textA, textB),
		Semantic:              similarity.AdvancedSemanticSimilarity(textA, textB),
		TransformerSimilarity: vecmath.Round(transformer.Default().Similarity(textA, textB), 3),
		WordVectorSimilarity:  vecmath.Round(vecmath.Cosine(vectors.Document(textA), vectors.Document(textB)), 3),
		Dimensions:            settings.Dimensions,
	}

	return writeReport(cmd.OutOrStdout(), "similarity", similarityOutput, result)
}
