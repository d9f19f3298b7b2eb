package types

// RankedResumes is a set of résumés ordered by match against one job.
type RankedResumes struct {
	Ranked []RankedResume `json:"ranked"`
}

// RankedResume is one résumé with its rank, scores and a short explanation.
type RankedResume struct {
	ResumeID         string   `json:"resume_id"`
	Rank             int      `json:"rank"`
	Score            float64  `json:"score"`
	TransformerScore float64  `json:"transformer_score"`
	SemanticScore    float64  `json:"semantic_score"`
	SkillOverlap     float64  `json:"skill_overlap"`
	KeywordOverlap   float64  `json:"keyword_overlap"`
	MatchedSkills    []string `json:"matched_skills"`
	Notes            string   `json:"notes"`
}

// ResumeDocument is a named résumé text submitted for ranking.
type ResumeDocument struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}
