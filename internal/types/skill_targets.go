package types

// SkillTargets is the weighted list of catalog skills a job description asks for.
type SkillTargets struct {
	Skills []Skill `json:"skills"`
}

// Skill is a required skill with the priority inferred from the job text.
type Skill struct {
	Name     string  `json:"name"`
	Priority string  `json:"priority"`
	Mentions int     `json:"mentions"`
	Weight   float64 `json:"weight"`
}

// CandidateSkill is a catalog skill found in a résumé with its estimated level.
type CandidateSkill struct {
	Name            string `json:"name"`
	Level           string `json:"level"`
	YearsExperience int    `json:"years_experience"`
}
