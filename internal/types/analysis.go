package types

// QualityScore is a general résumé quality score against a job description.
type QualityScore struct {
	OverallScore int              `json:"overall_score"`
	Breakdown    QualityBreakdown `json:"breakdown"`
	Strengths    []string         `json:"strengths"`
	Weaknesses   []string         `json:"weaknesses"`
}

// QualityBreakdown holds the 0-100 component scores of a QualityScore.
type QualityBreakdown struct {
	Keywords   int `json:"keywords"`
	Experience int `json:"experience"`
	Education  int `json:"education"`
	Skills     int `json:"skills"`
	Formatting int `json:"formatting"`
	Sentiment  int `json:"sentiment"`
}

// Sentiment is a lexicon sentiment reading of a text.
type Sentiment struct {
	Score      float64 `json:"score"`
	Confidence float64 `json:"confidence"`
	Positive   int     `json:"positive"`
	Negative   int     `json:"negative"`
	Neutral    int     `json:"neutral"`
}

// Entity is a pattern-matched skill, degree or certification.
type Entity struct {
	Type       string  `json:"type"`
	Value      string  `json:"value"`
	Confidence float64 `json:"confidence"`
}

// Readability summarizes sentence and vocabulary complexity.
type Readability struct {
	Complexity         float64 `json:"complexity"`
	VocabularyRichness float64 `json:"vocabulary_richness"`
	AvgSentenceLength  float64 `json:"avg_sentence_length"`
	Recommendation     string  `json:"recommendation"`
}

// TextAnalysis bundles the per-résumé text analyses.
type TextAnalysis struct {
	Quality     *QualityScore `json:"quality,omitempty"`
	Sentiment   Sentiment     `json:"sentiment"`
	Entities    []Entity      `json:"entities"`
	Readability Readability   `json:"readability"`
	Diversity   float64       `json:"diversity"`
}
