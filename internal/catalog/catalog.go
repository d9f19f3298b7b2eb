// Package catalog holds the static reference data used by scoring: regional
// role benchmarks, role keyword lists, the skill dictionary and learning
// resources. The data is embedded YAML, validated once and read-only after.
package catalog

import (
	"bytes"
	_ "embed"
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/jonathan/resume-scorer/internal/parsing"
	"github.com/jonathan/resume-scorer/internal/types"
)

// Skill levels in ladder order. LevelNone marks a skill the candidate lacks.
const (
	LevelNone         = "none"
	LevelBeginner     = "beginner"
	LevelIntermediate = "intermediate"
	LevelAdvanced     = "advanced"
	LevelExpert       = "expert"
)

// Levels is the skill ladder from LevelNone to LevelExpert.
var Levels = []string{LevelNone, LevelBeginner, LevelIntermediate, LevelAdvanced, LevelExpert}

//go:embed data/standards.yaml
var standardsYAML []byte

//go:embed data/skills.yaml
var skillsYAML []byte

//go:embed data/resources.yaml
var resourcesYAML []byte

// Region is a benchmark region and the alternative names accepted for it.
type Region struct {
	Name    string   `yaml:"name" validate:"required"`
	Aliases []string `yaml:"aliases"`
}

// Role carries the keyword lists and regional benchmarks of one job family.
type Role struct {
	Name             string                                    `yaml:"name" validate:"required"`
	Aliases          []string                                  `yaml:"aliases"`
	CriticalKeywords []string                                  `yaml:"critical_keywords" validate:"required,min=1,dive,required"`
	WeakPhrases      []string                                  `yaml:"weak_phrases" validate:"dive,required"`
	StrongVerbs      []string                                  `yaml:"strong_verbs" validate:"dive,required"`
	Tools            []string                                  `yaml:"tools" validate:"dive,required"`
	Benchmarks       map[string]map[string]types.BenchmarkBand `yaml:"benchmarks" validate:"required,dive,required,dive"`
}

// Benchmark returns the band of metric in region.
func (r *Role) Benchmark(region, metric string) (types.BenchmarkBand, bool) {
	band, ok := r.Benchmarks[region][metric]
	return band, ok
}

// LearningTime is the hours needed to reach each level of a skill.
type LearningTime struct {
	Beginner     int `yaml:"beginner" validate:"gt=0"`
	Intermediate int `yaml:"intermediate" validate:"gt=0"`
	Advanced     int `yaml:"advanced" validate:"gt=0"`
}

// Hours returns the learning time for level. Levels without an entry report false.
func (lt LearningTime) Hours(level string) (int, bool) {
	switch level {
	case LevelBeginner:
		return lt.Beginner, true
	case LevelIntermediate:
		return lt.Intermediate, true
	case LevelAdvanced:
		return lt.Advanced, true
	default:
		return 0, false
	}
}

// Skill is one entry of the skill dictionary.
type Skill struct {
	Name           string              `yaml:"name" validate:"required"`
	Category       string              `yaml:"category" validate:"oneof=technical framework tool certification soft"`
	RelatedSkills  []string            `yaml:"related_skills"`
	LearningTime   LearningTime        `yaml:"learning_time"`
	MarketValue    int                 `yaml:"market_value" validate:"gt=0"`
	DemandTrend    string              `yaml:"demand_trend" validate:"oneof=rising stable declining"`
	Prerequisites  []string            `yaml:"prerequisites"`
	Projects       map[string][]string `yaml:"projects" validate:"dive,keys,oneof=beginner intermediate advanced expert,endkeys"`
	Certifications []string            `yaml:"certifications"`

	mention *regexp.Regexp
	years   *regexp.Regexp
}

// MentionPattern matches any spelling of the skill as a whole word.
func (s *Skill) MentionPattern() *regexp.Regexp { return s.mention }

// YearsPattern captures the years in statements like "5+ years ... go".
// It expects lowercased text.
func (s *Skill) YearsPattern() *regexp.Regexp { return s.years }

func (s *Skill) compilePatterns() {
	variants := parsing.SkillVariants(s.Name)
	quoted := make([]string, len(variants))
	for i, v := range variants {
		quoted[i] = regexp.QuoteMeta(v)
	}
	s.mention = regexp.MustCompile(`(?i)\b(?:` + strings.Join(quoted, "|") + `)\b`)
	s.years = regexp.MustCompile(`(\d+)\+?\s*years?.*\b` + regexp.QuoteMeta(strings.ToLower(s.Name)) + `\b`)
}

// Catalog is the validated reference data. It is never mutated after Load.
type Catalog struct {
	Regions   []Region
	Roles     []Role
	Skills    []Skill
	Resources map[string][]types.LearningResource

	regionIndex map[string]int
	roleIndex   map[string]int
	skillIndex  map[string]int
}

type standardsFile struct {
	Regions []Region `yaml:"regions" validate:"required,min=1,dive"`
	Roles   []Role   `yaml:"roles" validate:"required,min=1,dive"`
}

type skillsFile struct {
	Skills []Skill `yaml:"skills" validate:"required,min=1,dive"`
}

type resourcesFile struct {
	Resources map[string][]types.LearningResource `yaml:"resources" validate:"dive,dive"`
}

var defaultCatalog = sync.OnceValues(func() (*Catalog, error) {
	return Load(standardsYAML, skillsYAML, resourcesYAML)
})

// Default returns the catalog built from the embedded data files.
func Default() (*Catalog, error) {
	return defaultCatalog()
}

// Load parses and validates the three catalog documents.
func Load(standards, skills, resources []byte) (*Catalog, error) {
	var sf standardsFile
	if err := decodeStrict(standards, &sf); err != nil {
		return nil, &LoadError{Message: "failed to parse standards", Cause: err}
	}
	var kf skillsFile
	if err := decodeStrict(skills, &kf); err != nil {
		return nil, &LoadError{Message: "failed to parse skills", Cause: err}
	}
	var rf resourcesFile
	if err := decodeStrict(resources, &rf); err != nil {
		return nil, &LoadError{Message: "failed to parse resources", Cause: err}
	}

	validate := validator.New()
	if err := validate.Struct(&sf); err != nil {
		return nil, &LoadError{Message: "invalid standards", Cause: err}
	}
	if err := validate.Struct(&kf); err != nil {
		return nil, &LoadError{Message: "invalid skills", Cause: err}
	}
	if err := validate.Struct(&rf); err != nil {
		return nil, &LoadError{Message: "invalid resources", Cause: err}
	}

	c := &Catalog{
		Regions:     sf.Regions,
		Roles:       sf.Roles,
		Skills:      kf.Skills,
		Resources:   rf.Resources,
		regionIndex: make(map[string]int),
		roleIndex:   make(map[string]int),
		skillIndex:  make(map[string]int, len(kf.Skills)),
	}
	for i, r := range c.Regions {
		if err := addKeys(c.regionIndex, i, r.Name, r.Aliases); err != nil {
			return nil, &LoadError{Message: "region", Cause: err}
		}
	}
	for i, r := range c.Roles {
		if err := addKeys(c.roleIndex, i, r.Name, r.Aliases); err != nil {
			return nil, &LoadError{Message: "role", Cause: err}
		}
		for region := range r.Benchmarks {
			if _, ok := c.regionIndex[key(region)]; !ok {
				return nil, &LoadError{Message: fmt.Sprintf("role %s has benchmarks for unknown region %q", r.Name, region)}
			}
		}
	}
	for i := range c.Skills {
		if err := addKeys(c.skillIndex, i, c.Skills[i].Name, nil); err != nil {
			return nil, &LoadError{Message: "skill", Cause: err}
		}
		c.Skills[i].compilePatterns()
	}
	for skill := range c.Resources {
		if _, ok := c.skillIndex[key(skill)]; !ok {
			return nil, &LoadError{Message: fmt.Sprintf("resources listed for unknown skill %q", skill)}
		}
	}
	return c, nil
}

func decodeStrict(data []byte, out any) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	return dec.Decode(out)
}

func key(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

func addKeys(index map[string]int, pos int, name string, aliases []string) error {
	for _, n := range append([]string{name}, aliases...) {
		k := key(n)
		if prev, ok := index[k]; ok && prev != pos {
			return fmt.Errorf("duplicate name %q", n)
		}
		index[k] = pos
	}
	return nil
}

// Region resolves a region name or alias, case-insensitively.
func (c *Catalog) Region(name string) (*Region, error) {
	i, ok := c.regionIndex[key(name)]
	if !ok {
		return nil, &UnsupportedOptionError{Kind: "region", Value: name, Supported: c.RegionNames()}
	}
	return &c.Regions[i], nil
}

// Role resolves a role name or alias, case-insensitively.
func (c *Catalog) Role(name string) (*Role, error) {
	i, ok := c.roleIndex[key(name)]
	if !ok {
		return nil, &UnsupportedOptionError{Kind: "role", Value: name, Supported: c.RoleNames()}
	}
	return &c.Roles[i], nil
}

// Skill looks up a dictionary skill by name.
func (c *Catalog) Skill(name string) (*Skill, bool) {
	i, ok := c.skillIndex[key(name)]
	if !ok {
		return nil, false
	}
	return &c.Skills[i], true
}

// ResourcesFor returns the learning resources of skill, optionally limited to
// one difficulty. An empty difficulty returns all of them.
func (c *Catalog) ResourcesFor(skill, difficulty string) []types.LearningResource {
	out := []types.LearningResource{}
	for _, r := range c.Resources[key(skill)] {
		if difficulty == "" || r.Difficulty == difficulty {
			out = append(out, r)
		}
	}
	return out
}

// RegionNames lists canonical region names in catalog order.
func (c *Catalog) RegionNames() []string {
	names := make([]string, len(c.Regions))
	for i, r := range c.Regions {
		names[i] = r.Name
	}
	return names
}

// RoleNames lists canonical role names in catalog order.
func (c *Catalog) RoleNames() []string {
	names := make([]string, len(c.Roles))
	for i, r := range c.Roles {
		names[i] = r.Name
	}
	return names
}
