package similarity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	resumeText = "Backend engineer building Go microservices on Kubernetes with PostgreSQL and Redis."
	jobText    = "We need a backend engineer experienced with Kubernetes, Go microservices and Redis caching."
)

func TestAdvancedSemanticSimilarity_EmptyInput(t *testing.T) {
	got := AdvancedSemanticSimilarity("", "anything")
	assert.Equal(t, 0.0, got.Similarity)
	assert.Equal(t, 0.0, got.Word2VecSim)
	assert.Equal(t, 0.0, got.LSASim)
	assert.Equal(t, 0.0, got.TFIDFSim)
}

func TestAdvancedSemanticSimilarity_Identical(t *testing.T) {
	got := AdvancedSemanticSimilarity(jobText, jobText)
	assert.InDelta(t, 1.0, got.Word2VecSim, 1e-9)
	assert.InDelta(t, 1.0, got.LSASim, 1e-9)
	assert.InDelta(t, 1.0, got.TFIDFSim, 1e-9)
	assert.InDelta(t, 1.0, got.Similarity, 1e-9)
}

func TestAdvancedSemanticSimilarity_Weights(t *testing.T) {
	got := AdvancedSemanticSimilarity(resumeText, jobText)
	expected := 0.40*got.Word2VecSim + 0.35*got.LSASim + 0.25*got.TFIDFSim
	assert.InDelta(t, expected, got.Similarity, 1e-12)
	assert.GreaterOrEqual(t, got.Similarity, -1.0)
	assert.LessOrEqual(t, got.Similarity, 1.0)
}

func TestAdvancedSemanticSimilarity_Deterministic(t *testing.T) {
	first := AdvancedSemanticSimilarity(resumeText, jobText)
	for i := 0; i < 3; i++ {
		assert.Equal(t, first, AdvancedSemanticSimilarity(resumeText, jobText))
	}
}

func TestTermCountCosine(t *testing.T) {
	assert.InDelta(t, 1.0, TermCountCosine([]string{"go", "go"}, []string{"go"}), 1e-12)
	assert.InDelta(t, 0.5, TermCountCosine([]string{"a", "b"}, []string{"a", "c"}), 1e-12)
	assert.Equal(t, 0.0, TermCountCosine(nil, []string{"a"}))
}

func TestSemanticSearch(t *testing.T) {
	documents := []string{
		"Baked sourdough bread and pastries every weekend",
		jobText,
		"Managed retail inventory and cashier schedules",
	}

	results := SemanticSearch(jobText, documents, 2)
	require.Len(t, results, 2)
	assert.Equal(t, 1, results[0].Index)
	assert.InDelta(t, 1.0, results[0].Similarity, 1e-9)
	assert.GreaterOrEqual(t, results[0].Similarity, results[1].Similarity)

	assert.Empty(t, SemanticSearch(jobText, nil, 3))
	assert.Empty(t, SemanticSearch(jobText, documents, 0))
}
