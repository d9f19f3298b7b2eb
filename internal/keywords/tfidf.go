// Package keywords provides TF-IDF weighting, TextRank key-phrase ranking and
// n-gram keyword extraction over résumé and job-description text.
package keywords

import (
	"math"

	"github.com/jonathan/resume-scorer/internal/parsing"
)

// Corpus holds per-document term frequencies and corpus-wide document
// frequencies for a fixed set of documents. A Corpus is built per call and
// never shared between analyses.
type Corpus struct {
	Vocabulary      []string             // Terms in first-seen order
	TermFrequencies []map[string]float64 // count/token-count per document
	DocFrequencies  map[string]int       // Number of documents containing each term
	TotalDocuments  int

	index map[string]int
}

// NewCorpus tokenizes each document and pre-computes TF and DF tables.
func NewCorpus(documents []string) *Corpus {
	c := &Corpus{
		Vocabulary:      []string{},
		TermFrequencies: make([]map[string]float64, len(documents)),
		DocFrequencies:  make(map[string]int),
		TotalDocuments:  len(documents),
		index:           make(map[string]int),
	}

	for docIdx, doc := range documents {
		tokens := parsing.Tokenize(doc)
		counts := make(map[string]int)
		for _, token := range tokens {
			if _, seen := c.index[token]; !seen {
				c.index[token] = len(c.Vocabulary)
				c.Vocabulary = append(c.Vocabulary, token)
			}
			counts[token]++
		}

		tf := make(map[string]float64, len(counts))
		for term, count := range counts {
			tf[term] = float64(count) / float64(len(tokens))
			c.DocFrequencies[term]++
		}
		c.TermFrequencies[docIdx] = tf
	}

	return c
}

// TermIndex returns the vocabulary position of term.
func (c *Corpus) TermIndex(term string) (int, bool) {
	idx, ok := c.index[term]
	return idx, ok
}

// IDF returns ln(N/(df+1)) for term. Terms present in every document of a
// small corpus get a negative weight.
func (c *Corpus) IDF(term string) float64 {
	if c.TotalDocuments == 0 {
		return 0
	}
	return math.Log(float64(c.TotalDocuments) / float64(c.DocFrequencies[term]+1))
}

// TFIDF returns the weight of term in the document at docIndex.
func (c *Corpus) TFIDF(docIndex int, term string) float64 {
	if docIndex < 0 || docIndex >= len(c.TermFrequencies) {
		return 0
	}
	tf := c.TermFrequencies[docIndex][term]
	if tf == 0 {
		return 0
	}
	return tf * c.IDF(term)
}

// TermDocumentMatrix returns the weighted matrix indexed [term][document] in
// vocabulary order.
func (c *Corpus) TermDocumentMatrix() [][]float64 {
	matrix := make([][]float64, len(c.Vocabulary))
	for i, term := range c.Vocabulary {
		row := make([]float64, c.TotalDocuments)
		for d := range row {
			row[d] = c.TFIDF(d, term)
		}
		matrix[i] = row
	}
	return matrix
}
