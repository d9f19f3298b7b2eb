package types

// GapAnalysis compares the skills a job requires with those a résumé shows.
type GapAnalysis struct {
	OverallReadiness   int                     `json:"overall_readiness"`
	CriticalGaps       []SkillGap              `json:"critical_gaps"`
	HighPriorityGaps   []SkillGap              `json:"high_priority_gaps"`
	MediumPriorityGaps []SkillGap              `json:"medium_priority_gaps"`
	LowPriorityGaps    []SkillGap              `json:"low_priority_gaps"`
	Strengths          []string                `json:"strengths"`
	TransferableSkills []string                `json:"transferable_skills"`
	LearningPaths      map[string]LearningPath `json:"learning_paths"`
	TimeToReady        int                     `json:"time_to_ready_hours"`
	EstimatedCost      float64                 `json:"estimated_cost"`
	QuickWins          []string                `json:"quick_wins"`
	Recommendations    []string                `json:"recommendations"`
}

// SkillGap is a required skill the candidate lacks or holds below the required level.
type SkillGap struct {
	Skill         string   `json:"skill"`
	Category      string   `json:"category"`
	Priority      string   `json:"priority"`
	Impact        int      `json:"impact"`
	CurrentLevel  string   `json:"current_level"`
	RequiredLevel string   `json:"required_level"`
	TimeToLearn   int      `json:"time_to_learn_hours"`
	RelatedSkills []string `json:"related_skills"`
	DemandTrend   string   `json:"demand_trend"`
	MarketValue   int      `json:"market_value"`
}

// LearningPath walks a skill from the current level to the target level.
type LearningPath struct {
	Skill          string          `json:"skill"`
	CurrentLevel   string          `json:"current_level"`
	TargetLevel    string          `json:"target_level"`
	TotalTime      int             `json:"total_time_hours"`
	Phases         []LearningPhase `json:"phases"`
	Projects       []string        `json:"projects"`
	Certifications []string        `json:"certifications"`
}

// LearningPhase is one level step of a LearningPath.
type LearningPhase struct {
	Phase       int                `json:"phase"`
	Level       string             `json:"level"`
	Description string             `json:"description"`
	Duration    int                `json:"duration_hours"`
	Milestones  []string           `json:"milestones"`
	Resources   []LearningResource `json:"resources"`
}

// LearningResource is a course, book or certification for learning a skill.
type LearningResource struct {
	Title         string  `json:"title" yaml:"title" validate:"required"`
	Type          string  `json:"type" yaml:"type" validate:"oneof=course tutorial book certification bootcamp documentation practice project"`
	Provider      string  `json:"provider" yaml:"provider" validate:"required"`
	URL           string  `json:"url" yaml:"url" validate:"required,url"`
	Duration      int     `json:"duration_hours" yaml:"duration" validate:"gt=0"`
	Cost          float64 `json:"cost" yaml:"cost" validate:"gte=0"`
	Rating        float64 `json:"rating" yaml:"rating" validate:"gte=0,lte=5"`
	Relevance     int     `json:"relevance" yaml:"relevance" validate:"gte=0,lte=100"`
	Difficulty    string  `json:"difficulty" yaml:"difficulty" validate:"oneof=beginner intermediate advanced expert"`
	Certification bool    `json:"certification" yaml:"certification"`
	Description   string  `json:"description" yaml:"description"`
}
