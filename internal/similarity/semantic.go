// Package similarity compares texts with word-vector, LSA and term-frequency
// cosine measures and their fixed-weight ensembles.
package similarity

import (
	"sort"

	"github.com/jonathan/resume-scorer/internal/embedding"
	"github.com/jonathan/resume-scorer/internal/parsing"
	"github.com/jonathan/resume-scorer/internal/vecmath"
)

// Ensemble weights for AdvancedSemanticSimilarity
const (
	word2vecWeight = 0.40
	lsaWeight      = 0.35
	tfidfWeight    = 0.25
)

// SemanticResult is the ensemble similarity of two texts with its parts.
type SemanticResult struct {
	Similarity  float64 `json:"similarity"`
	Word2VecSim float64 `json:"word2vec_similarity"`
	LSASim      float64 `json:"lsa_similarity"`
	TFIDFSim    float64 `json:"tfidf_similarity"`
}

// AdvancedSemanticSimilarity blends word-vector cosine (0.40), LSA cosine
// (0.35) and raw term-count cosine (0.25). Embeddings and the LSA space are
// fitted to the two texts alone. Empty input on either side yields zero.
func AdvancedSemanticSimilarity(text1, text2 string) SemanticResult {
	words := embedding.BuildWordEmbeddings([]string{text1, text2}, embedding.DefaultWordDimensions)
	word2vec := vecmath.Cosine(words.Document(text1), words.Document(text2))

	lsa := embedding.ApplyLSA([]string{text1, text2}, embedding.DefaultLSADimensions)
	lsaSim := lsa.Similarity(0, 1)

	tfidf := TermCountCosine(parsing.Tokenize(text1), parsing.Tokenize(text2))

	return SemanticResult{
		Similarity:  word2vecWeight*word2vec + lsaWeight*lsaSim + tfidfWeight*tfidf,
		Word2VecSim: word2vec,
		LSASim:      lsaSim,
		TFIDFSim:    tfidf,
	}
}

// TermCountCosine returns the cosine of the raw term-count vectors of two
// token sequences over their joint vocabulary.
func TermCountCosine(tokens1, tokens2 []string) float64 {
	vocab := make(map[string]int)
	order := make([]string, 0, len(tokens1)+len(tokens2))
	for _, t := range append(append([]string{}, tokens1...), tokens2...) {
		if _, ok := vocab[t]; !ok {
			vocab[t] = len(order)
			order = append(order, t)
		}
	}

	vec1 := make([]float64, len(order))
	vec2 := make([]float64, len(order))
	for _, t := range tokens1 {
		vec1[vocab[t]]++
	}
	for _, t := range tokens2 {
		vec2[vocab[t]]++
	}
	return vecmath.Cosine(vec1, vec2)
}

// SearchResult is one ranked document from SemanticSearch.
type SearchResult struct {
	Index      int     `json:"index"`
	Document   string  `json:"document"`
	Similarity float64 `json:"similarity"`
}

// SemanticSearch ranks documents by word-vector similarity to query using
// embeddings fitted to the query and all documents together. Equal scores keep
// input order.
func SemanticSearch(query string, documents []string, topK int) []SearchResult {
	if len(documents) == 0 || topK <= 0 {
		return []SearchResult{}
	}

	words := embedding.BuildWordEmbeddings(append([]string{query}, documents...), embedding.DefaultWordDimensions)
	queryVec := words.Document(query)

	results := make([]SearchResult, len(documents))
	for i, doc := range documents {
		results[i] = SearchResult{
			Index:      i,
			Document:   doc,
			Similarity: vecmath.Cosine(queryVec, words.Document(doc)),
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Similarity > results[j].Similarity
	})
	if len(results) > topK {
		results = results[:topK]
	}
	return results
}
