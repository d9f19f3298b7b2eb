// Package types provides type definitions for structured data used throughout the resume-scorer system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// MatchResult is the encoder-based match between a résumé and a job description.
type MatchResult struct {
	OverallScore       float64          `json:"overall_score"`
	SemanticSimilarity float64          `json:"semantic_similarity"`
	KeywordOverlap     float64          `json:"keyword_overlap"`
	MatchedKeywords    []string         `json:"matched_keywords"`
	MissingKeywords    []MissingKeyword `json:"missing_keywords"`
}

// MissingKeyword is a job keyword absent from the résumé, with its attention importance.
type MissingKeyword struct {
	Keyword    string  `json:"keyword"`
	Importance float64 `json:"importance"`
}

// EnhancedAnalysis blends the encoder match, ensemble semantic similarity and
// keyword overlap into one score, with phrase-level detail.
type EnhancedAnalysis struct {
	OverallScore        float64          `json:"overall_score"`
	TransformerScore    float64          `json:"transformer_score"`
	SemanticSimilarity  float64          `json:"semantic_similarity"`
	KeywordOverlap      float64          `json:"keyword_overlap"`
	Word2VecSimilarity  float64          `json:"word2vec_similarity"`
	LSASimilarity       float64          `json:"lsa_similarity"`
	TFIDFSimilarity     float64          `json:"tfidf_similarity"`
	MissingKeywords     []PhraseGap      `json:"missing_keywords"`
	Strengths           []string         `json:"strengths"`
	ImprovementAreas    []string         `json:"improvement_areas"`
	AttentionHighlights []TokenHighlight `json:"attention_highlights"`
}

// PhraseGap is a job phrase missing from the résumé.
type PhraseGap struct {
	Phrase           string  `json:"phrase"`
	Importance       float64 `json:"importance"`
	SemanticDistance float64 `json:"semantic_distance"`
}

// TokenHighlight is a résumé token and its attention importance.
type TokenHighlight struct {
	Token      string  `json:"token"`
	Importance float64 `json:"importance"`
}

// SkillCoverage reports which job phrases the résumé covers semantically.
type SkillCoverage struct {
	PresentSkills []CoveredSkill `json:"present_skills"`
	MissingSkills []MissingSkill `json:"missing_skills"`
	Coverage      float64        `json:"coverage"`
}

// CoveredSkill is a job phrase matched by a résumé phrase.
type CoveredSkill struct {
	Skill      string  `json:"skill"`
	MatchedBy  string  `json:"matched_by"`
	Confidence float64 `json:"confidence"`
}

// MissingSkill is a job phrase with no close résumé phrase.
type MissingSkill struct {
	Skill          string  `json:"skill"`
	Priority       float64 `json:"priority"`
	BestSimilarity float64 `json:"best_similarity"`
}

// KeywordSuggestion proposes where and how to add a missing keyword.
type KeywordSuggestion struct {
	Keyword        string `json:"keyword"`
	Priority       string `json:"priority"`
	InsertionPoint string `json:"insertion_point"`
	Context        string `json:"context"`
}

// ATSOptimization is keyword coverage of the job's top keywords.
type ATSOptimization struct {
	Score           int      `json:"score"`
	PresentKeywords []string `json:"present_keywords"`
	MissingKeywords []string `json:"missing_keywords"`
	Suggestions     []string `json:"suggestions"`
}

// JobMatchPrediction estimates how well a candidate fits a job.
type JobMatchPrediction struct {
	MatchScore     int     `json:"match_score"`
	Probability    float64 `json:"probability"`
	Confidence     float64 `json:"confidence"`
	RecommendApply bool    `json:"recommend_apply"`
	Reasoning      string  `json:"reasoning"`
}
