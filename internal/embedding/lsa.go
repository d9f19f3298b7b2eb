package embedding

import (
	"math"

	"github.com/jonathan/resume-scorer/internal/keywords"
	"github.com/jonathan/resume-scorer/internal/parsing"
	"github.com/jonathan/resume-scorer/internal/vecmath"
)

// DefaultLSADimensions is the requested component count for ApplyLSA.
const DefaultLSADimensions = 50

// LSAModel is a reduced document space fitted to one document set.
type LSAModel struct {
	Vocabulary []string
	Components int
	// Vectors holds one unit-length (or zero) vector per input document.
	Vectors [][]float64

	corpus *keywords.Corpus
}

// ApplyLSA weights the term-document matrix of documents with TF-IDF and
// projects each document onto min(dimensions, |vocabulary|, |documents|)
// fixed cosine basis vectors. This is a deterministic stand-in for a truncated
// SVD, not an actual decomposition.
func ApplyLSA(documents []string, dimensions int) *LSAModel {
	if dimensions <= 0 {
		dimensions = DefaultLSADimensions
	}

	corpus := keywords.NewCorpus(documents)
	matrix := corpus.TermDocumentMatrix()
	vocabSize := len(corpus.Vocabulary)
	components := min(dimensions, vocabSize, len(documents))

	m := &LSAModel{
		Vocabulary: corpus.Vocabulary,
		Components: components,
		Vectors:    make([][]float64, len(documents)),
		corpus:     corpus,
	}

	for doc := range documents {
		vec := make([]float64, components)
		for d := 0; d < components; d++ {
			for i := 0; i < vocabSize; i++ {
				vec[d] += matrix[i][doc] * basisWeight(i, d, vocabSize)
			}
		}
		m.Vectors[doc] = vecmath.Normalize(vec)
	}

	return m
}

// Transform projects unseen text into the fitted space using raw counts of
// known vocabulary terms.
func (m *LSAModel) Transform(text string) []float64 {
	vec := make([]float64, m.Components)
	vocabSize := len(m.Vocabulary)
	for _, token := range parsing.Tokenize(text) {
		idx, ok := m.corpus.TermIndex(token)
		if !ok {
			continue
		}
		for d := 0; d < m.Components; d++ {
			vec[d] += basisWeight(idx, d, vocabSize)
		}
	}
	return vecmath.Normalize(vec)
}

// Similarity returns the cosine similarity of documents i and j.
func (m *LSAModel) Similarity(i, j int) float64 {
	if i < 0 || j < 0 || i >= len(m.Vectors) || j >= len(m.Vectors) {
		return 0
	}
	return vecmath.Cosine(m.Vectors[i], m.Vectors[j])
}

func basisWeight(term, component, vocabSize int) float64 {
	return math.Cos(float64(term*(component+1)) * math.Pi / float64(vocabSize))
}
