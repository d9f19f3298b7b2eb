// Package embedding builds per-call pseudo embeddings: co-occurrence refined
// word vectors, mean-pooled document vectors and a cosine-projection LSA.
package embedding

import (
	"hash/fnv"
	"math/rand/v2"

	"github.com/jonathan/resume-scorer/internal/parsing"
	"github.com/jonathan/resume-scorer/internal/vecmath"
)

const (
	// DefaultWordDimensions is the word and document vector size.
	DefaultWordDimensions = 100

	contextWindow = 5
	learningRate  = 0.01
	initSpread    = 0.1

	// seedStream is the fixed PCG stream shared by every word seed.
	seedStream = 0x9e3779b97f4a7c15
)

// WordEmbeddings maps vocabulary words to unit-length vectors. It is built
// for one analysis and must not be reused across unrelated document sets.
type WordEmbeddings struct {
	Dimensions int
	Vectors    map[string][]float64
}

// BuildWordEmbeddings initializes a small seeded vector per vocabulary word,
// nudges each word toward its neighbors within a five-token window and
// normalizes the result. Initial vectors depend only on the word, so output is
// reproducible for a given document list.
func BuildWordEmbeddings(documents []string, dimensions int) *WordEmbeddings {
	if dimensions <= 0 {
		dimensions = DefaultWordDimensions
	}

	tokenized := make([][]string, len(documents))
	vectors := make(map[string][]float64)
	for i, doc := range documents {
		tokenized[i] = parsing.Tokenize(doc)
		for _, token := range tokenized[i] {
			if _, ok := vectors[token]; !ok {
				vectors[token] = initialVector(token, dimensions)
			}
		}
	}

	for _, tokens := range tokenized {
		for i, target := range tokens {
			targetVec := vectors[target]
			lo := max(0, i-contextWindow)
			hi := min(len(tokens), i+contextWindow+1)
			for j := lo; j < hi; j++ {
				if j == i {
					continue
				}
				contextVec := vectors[tokens[j]]
				for d := 0; d < dimensions; d++ {
					targetVec[d] += (contextVec[d] - targetVec[d]) * learningRate
				}
			}
		}
	}

	for word, vec := range vectors {
		if vecmath.Norm(vec) > 0 {
			vectors[word] = vecmath.Normalize(vec)
		}
	}

	return &WordEmbeddings{Dimensions: dimensions, Vectors: vectors}
}

// initialVector derives a vector with entries in [-initSpread/2, initSpread/2)
// from a PCG generator seeded by the FNV-1a hash of word.
func initialVector(word string, dimensions int) []float64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(word))
	rng := rand.New(rand.NewPCG(h.Sum64(), seedStream))

	vec := make([]float64, dimensions)
	for d := range vec {
		vec[d] = (rng.Float64() - 0.5) * initSpread
	}
	return vec
}

// Document returns the normalized mean of the known word vectors in text, or
// a zero vector when no token is known.
func (w *WordEmbeddings) Document(text string) []float64 {
	var known [][]float64
	for _, token := range parsing.Tokenize(text) {
		if vec, ok := w.Vectors[token]; ok {
			known = append(known, vec)
		}
	}
	if len(known) == 0 {
		return make([]float64, w.Dimensions)
	}
	return vecmath.Normalize(vecmath.Mean(known, w.Dimensions))
}
