package analysis

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-scorer/internal/types"
)

// Entity types
const (
	EntitySkill         = "skill"
	EntityEducation     = "education"
	EntityCertification = "certification"
)

type entityPattern struct {
	kind       string
	pattern    *regexp.Regexp
	confidence float64
}

var entityPatterns = []entityPattern{
	{EntitySkill, regexp.MustCompile(`(?i)\b(JavaScript|TypeScript|Python|Java|C\+\+|C#|Ruby|Go|Rust|PHP|Swift|Kotlin)\b`), 0.9},
	{EntitySkill, regexp.MustCompile(`(?i)\b(React|Angular|Vue|Node\.?js|Express|Django|Flask|Spring|Laravel)\b`), 0.9},
	{EntitySkill, regexp.MustCompile(`(?i)\b(AWS|Azure|GCP|Docker|Kubernetes|Jenkins|CI/CD|DevOps)\b`), 0.9},
	{EntitySkill, regexp.MustCompile(`(?i)\b(SQL|MySQL|PostgreSQL|MongoDB|Redis|DynamoDB)\b`), 0.9},
	{EntitySkill, regexp.MustCompile(`(?i)\b(Git|GitHub|GitLab|Bitbucket|Jira|Confluence)\b`), 0.9},
	{EntityEducation, regexp.MustCompile(`(?i)\b(Bachelor|Master|PhD|BS|MS|MBA|BA|MA|Associate)\b`), 0.85},
	{EntityCertification, regexp.MustCompile(`(?i)\b(AWS Certified|Google Cloud|Azure|PMP|Scrum Master|CPA|CFA)\b`), 0.95},
}

// Entities returns every skill, degree and certification mention in text, in
// pattern order and then text order. Repeated mentions are kept.
func Entities(text string) []types.Entity {
	entities := []types.Entity{}
	for _, p := range entityPatterns {
		for _, m := range p.pattern.FindAllString(text, -1) {
			entities = append(entities, types.Entity{
				Type:       p.kind,
				Value:      m,
				Confidence: p.confidence,
			})
		}
	}
	return entities
}

// SkillEntities returns the skill mentions of text.
func SkillEntities(text string) []string {
	skills := []string{}
	for _, e := range Entities(text) {
		if e.Type == EntitySkill {
			skills = append(skills, e.Value)
		}
	}
	return skills
}

// CountMatching counts the mentions in values that also occur in reference,
// ignoring case.
func CountMatching(values, reference []string) int {
	ref := make(map[string]bool, len(reference))
	for _, r := range reference {
		ref[strings.ToLower(r)] = true
	}
	count := 0
	for _, v := range values {
		if ref[strings.ToLower(v)] {
			count++
		}
	}
	return count
}
