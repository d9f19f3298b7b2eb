package parsing

import (
	"sort"
	"strings"
)

// skillNormalizations maps skill spellings found in résumés and job posts to
// canonical names. Keys are lowercase.
var skillNormalizations = map[string]string{
	"golang":              "Go",
	"go lang":             "Go",
	"javascript":          "JavaScript",
	"js":                  "JavaScript",
	"ecmascript":          "JavaScript",
	"typescript":          "TypeScript",
	"ts":                  "TypeScript",
	"k8s":                 "Kubernetes",
	"kubernetes":          "Kubernetes",
	"react.js":            "React",
	"reactjs":             "React",
	"vue.js":              "Vue",
	"vuejs":               "Vue",
	"angularjs":           "Angular",
	"node.js":             "Node.js",
	"nodejs":              "Node.js",
	"node":                "Node.js",
	"postgres":            "PostgreSQL",
	"postgresql":          "PostgreSQL",
	"mongo":               "MongoDB",
	"mongodb":             "MongoDB",
	"gcp":                 "GCP",
	"google cloud":        "GCP",
	"aws":                 "AWS",
	"amazon web services": "AWS",
	"sql":                 "SQL",
	"ci/cd":               "CI/CD",
	"ml":                  "Machine Learning",
	"pytorch":             "PyTorch",
	"tensorflow":          "TensorFlow",
	"springboot":          "Spring Boot",
	"hubspot":             "HubSpot",
	"salesloft":           "SalesLoft",
	"zoominfo":            "ZoomInfo",
}

// SkillVariants returns the known spellings of skill, lowercase and longest
// first, including skill itself.
func SkillVariants(skill string) []string {
	lower := strings.ToLower(strings.TrimSpace(skill))
	if lower == "" {
		return nil
	}
	canonical := strings.ToLower(NormalizeSkillName(lower))
	variants := []string{lower}
	for variant, name := range skillNormalizations {
		if variant != lower && strings.ToLower(name) == canonical {
			variants = append(variants, variant)
		}
	}
	sort.Slice(variants, func(i, j int) bool {
		if len(variants[i]) != len(variants[j]) {
			return len(variants[i]) > len(variants[j])
		}
		return variants[i] < variants[j]
	})
	return variants
}

// NormalizeSkillName maps a skill spelling to its canonical name. Unknown
// single words are capitalized and unknown multi-word names are only trimmed.
func NormalizeSkillName(skillName string) string {
	name := strings.TrimSpace(skillName)
	lower := strings.ToLower(name)
	if canonical, ok := skillNormalizations[lower]; ok {
		return canonical
	}
	if name == "" || strings.Contains(name, " ") {
		return name
	}

	upper := strings.ToUpper(name)
	switch {
	case name == upper && len(name) > 1:
		// all-caps word that is not a known acronym
		return upper[:1] + lower[1:]
	case name == lower:
		return upper[:1] + name[1:]
	default:
		return name
	}
}
