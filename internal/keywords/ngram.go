package keywords

import (
	"math"
	"sort"

	"github.com/jonathan/resume-scorer/internal/parsing"
)

const (
	technicalBoost = 2.0
	bigramBoost    = 1.5
)

// technicalTerms receive technicalBoost in ExtractKeywords.
var technicalTerms = map[string]bool{
	"python": true, "java": true, "javascript": true, "typescript": true, "react": true,
	"angular": true, "vue": true, "node": true, "nodejs": true, "express": true,
	"django": true, "flask": true, "spring": true, "kubernetes": true, "docker": true,
	"aws": true, "azure": true, "gcp": true, "terraform": true, "jenkins": true,
	"git": true, "github": true, "sql": true, "nosql": true, "mongodb": true,
	"postgresql": true, "redis": true, "elasticsearch": true, "microservices": true,
	"api": true, "rest": true, "graphql": true, "agile": true, "scrum": true,
	"machine learning": true, "deep learning": true, "data science": true,
	"analytics": true, "leadership": true, "management": true, "strategy": true,
	"architecture": true, "design": true,
}

// Keyword is a unigram or bigram with its extraction score.
type Keyword struct {
	Term  string  `json:"term"`
	Score float64 `json:"score"`
}

type termStats struct {
	term      string
	freq      int
	positions int
}

// ExtractKeywords scores unigrams and bigrams of text by log-scaled frequency,
// an early-position weight and technical-term and bigram boosts, returning the
// topN best. Unigrams precede bigrams on equal scores.
func ExtractKeywords(text string, topN int) []Keyword {
	words := parsing.Words(text)
	if len(words) == 0 || topN <= 0 {
		return []Keyword{}
	}

	unigrams := collect(len(words), func(emit func(string, int)) {
		for i, w := range words {
			if !parsing.IsKeywordStopWord(w) {
				emit(w, i)
			}
		}
	})
	bigrams := collect(len(words), func(emit func(string, int)) {
		for i := 0; i < len(words)-1; i++ {
			if parsing.IsKeywordStopWord(words[i]) || parsing.IsKeywordStopWord(words[i+1]) {
				continue
			}
			emit(words[i]+" "+words[i+1], i)
		}
	})

	total := float64(len(words))
	scored := make([]Keyword, 0, len(unigrams)+len(bigrams))
	for _, s := range unigrams {
		scored = append(scored, Keyword{Term: s.term, Score: ngramScore(s, total, 1.0)})
	}
	for _, s := range bigrams {
		scored = append(scored, Keyword{Term: s.term, Score: ngramScore(s, total, bigramBoost)})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})
	if len(scored) > topN {
		scored = scored[:topN]
	}
	return scored
}

// Terms returns the terms of ks in order.
func Terms(ks []Keyword) []string {
	terms := make([]string, len(ks))
	for i, k := range ks {
		terms[i] = k.Term
	}
	return terms
}

func collect(capacity int, walk func(emit func(string, int))) []*termStats {
	index := make(map[string]*termStats, capacity)
	ordered := make([]*termStats, 0, capacity)
	walk(func(term string, pos int) {
		s, ok := index[term]
		if !ok {
			s = &termStats{term: term}
			index[term] = s
			ordered = append(ordered, s)
		}
		s.freq++
		s.positions += pos
	})
	return ordered
}

func ngramScore(s *termStats, totalWords, boost float64) float64 {
	tf := 1 + math.Log(float64(s.freq))
	avgPosition := float64(s.positions) / float64(s.freq)
	positionWeight := 1 / (1 + math.Log(1+avgPosition/totalWords))
	score := tf * positionWeight * boost
	if technicalTerms[s.term] {
		score *= technicalBoost
	}
	return score
}
