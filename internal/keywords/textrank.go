package keywords

import (
	"sort"

	"github.com/jonathan/resume-scorer/internal/parsing"
)

const (
	// textRankWindow is the co-occurrence span: each token links to the next
	// textRankWindow-1 tokens.
	textRankWindow     = 4
	textRankDamping    = 0.85
	textRankIterations = 30
)

// KeyPhrase is a ranked TextRank term.
type KeyPhrase struct {
	Phrase string  `json:"phrase"`
	Score  float64 `json:"score"`
}

// cooccurrenceGraph is an undirected weighted graph with nodes and neighbor
// lists kept in first-seen order so that floating point sums are reproducible.
type cooccurrenceGraph struct {
	nodes     []string
	index     map[string]int
	neighbors [][]int
	weights   []map[int]float64
}

func newCooccurrenceGraph() *cooccurrenceGraph {
	return &cooccurrenceGraph{index: make(map[string]int)}
}

func (g *cooccurrenceGraph) node(word string) int {
	if idx, ok := g.index[word]; ok {
		return idx
	}
	idx := len(g.nodes)
	g.index[word] = idx
	g.nodes = append(g.nodes, word)
	g.neighbors = append(g.neighbors, nil)
	g.weights = append(g.weights, make(map[int]float64))
	return idx
}

func (g *cooccurrenceGraph) addEdge(from, to int) {
	if _, ok := g.weights[from][to]; !ok {
		g.neighbors[from] = append(g.neighbors[from], to)
	}
	g.weights[from][to]++
}

func buildGraph(tokens []string) *cooccurrenceGraph {
	g := newCooccurrenceGraph()
	for i, token := range tokens {
		word := g.node(token)
		for j := i + 1; j < min(i+textRankWindow, len(tokens)); j++ {
			co := g.node(tokens[j])
			g.addEdge(word, co)
			g.addEdge(co, word)
		}
	}
	return g
}

// ExtractKeyPhrases ranks the content tokens of text with a damped
// PageRank-style iteration over their co-occurrence graph and returns the
// topK highest scoring terms. The iteration count is fixed; convergence is
// not checked. Ties keep first-seen order, so a smaller topK always yields a
// prefix of a larger one.
func ExtractKeyPhrases(text string, topK int) []KeyPhrase {
	tokens := parsing.Tokenize(text)
	if len(tokens) == 0 || topK <= 0 {
		return []KeyPhrase{}
	}

	g := buildGraph(tokens)
	n := len(g.nodes)

	totals := make([]float64, n)
	for i := range g.nodes {
		for _, nb := range g.neighbors[i] {
			totals[i] += g.weights[i][nb]
		}
	}

	scores := make([]float64, n)
	for i := range scores {
		scores[i] = 1.0
	}

	next := make([]float64, n)
	for iter := 0; iter < textRankIterations; iter++ {
		for i := range g.nodes {
			score := 1 - textRankDamping
			for _, nb := range g.neighbors[i] {
				if totals[nb] == 0 {
					continue
				}
				score += textRankDamping * scores[nb] * (g.weights[i][nb] / totals[nb])
			}
			next[i] = score
		}
		scores, next = next, scores
	}

	phrases := make([]KeyPhrase, n)
	for i, word := range g.nodes {
		phrases[i] = KeyPhrase{Phrase: word, Score: scores[i]}
	}
	sort.SliceStable(phrases, func(i, j int) bool {
		return phrases[i].Score > phrases[j].Score
	})

	if len(phrases) > topK {
		phrases = phrases[:topK]
	}
	return phrases
}

// PhraseSet returns the phrases of ps as a lookup set.
func PhraseSet(ps []KeyPhrase) map[string]bool {
	set := make(map[string]bool, len(ps))
	for _, p := range ps {
		set[p.Phrase] = true
	}
	return set
}
