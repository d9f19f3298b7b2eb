package types

// Dimension keys of RoleScoreResult.DimensionScores for the SDR/BDR scorer.
const (
	DimensionActivity   = "activity_metrics"
	DimensionConversion = "conversion_metrics"
	DimensionPipeline   = "pipeline_impact"
	DimensionTechnical  = "technical_skills"
	DimensionFormat     = "format"
)

// RoleScoreResult is the dimension-level breakdown of a role-specific score.
type RoleScoreResult struct {
	Role            string         `json:"role"`
	Region          string         `json:"region"`
	OverallScore    int            `json:"overall_score"`
	DimensionScores map[string]int `json:"dimension_scores"`
	Penalties       map[string]int `json:"penalties"`
	RedFlags        []string       `json:"red_flags"`
	Strengths       []string       `json:"strengths"`
	CapsApplied     []string       `json:"caps_applied"`
}

// RoleReport is the result of scoring a résumé for a role in a region.
type RoleReport struct {
	Role       string                   `json:"role"`
	Region     string                   `json:"region"`
	Score      int                      `json:"score"`
	ATSScore   int                      `json:"ats_score"`
	Insights   []string                 `json:"insights"`
	Penalties  []string                 `json:"penalties"`
	Breakdown  *RoleScoreResult         `json:"breakdown,omitempty"`
	Benchmarks map[string]BenchmarkBand `json:"benchmarks,omitempty"`
}

// BenchmarkBand is a regional min/target/excellent band for one metric.
// Numeric bands leave the label fields empty and label bands leave the numbers zero.
type BenchmarkBand struct {
	Min            float64 `json:"min,omitempty" yaml:"min"`
	Target         float64 `json:"target,omitempty" yaml:"target" validate:"gtefield=Min"`
	Excellent      float64 `json:"excellent,omitempty" yaml:"excellent" validate:"gtefield=Target"`
	MinLabel       string  `json:"min_label,omitempty" yaml:"min_label"`
	TargetLabel    string  `json:"target_label,omitempty" yaml:"target_label"`
	ExcellentLabel string  `json:"excellent_label,omitempty" yaml:"excellent_label"`
}

// ATSResult is the outcome of the ATS compatibility checks.
type ATSResult struct {
	Score           int           `json:"score"`
	Issues          []string      `json:"issues"`
	Recommendations []string      `json:"recommendations"`
	Bullets         BulletSummary `json:"bullets"`
}

// BulletSummary counts bullet lines and how many pass each style check.
type BulletSummary struct {
	Total      int `json:"total"`
	StrongVerb int `json:"strong_verb"`
	Quantified int `json:"quantified"`
}
