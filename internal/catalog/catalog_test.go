package catalog

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_LoadsEmbeddedData(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	assert.Equal(t, []string{"North America", "Europe", "LATAM"}, c.RegionNames())
	assert.Equal(t, []string{"SDR/BDR", "Software Engineering", "Marketing", "Data Science", "Product Management"}, c.RoleNames())
	assert.Len(t, c.Skills, 32)
	assert.Equal(t, "javascript", c.Skills[0].Name)
}

func TestDefault_ReturnsSameInstance(t *testing.T) {
	a, err := Default()
	require.NoError(t, err)
	b, err := Default()
	require.NoError(t, err)
	assert.Same(t, a, b)
}

func TestRegion_AliasesAndCase(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	tests := []struct {
		in   string
		want string
	}{
		{"North America", "North America"},
		{"north america", "North America"},
		{"NA", "North America"},
		{" eu ", "Europe"},
		{"latin america", "LATAM"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			r, err := c.Region(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, r.Name)
		})
	}
}

func TestRegion_Unsupported(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	_, err = c.Region("Antarctica")
	var optErr *UnsupportedOptionError
	require.True(t, errors.As(err, &optErr))
	assert.Equal(t, "region", optErr.Kind)
	assert.Equal(t, "Antarctica", optErr.Value)
	assert.Contains(t, err.Error(), "North America")
}

func TestRole_LookupAndBenchmarks(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	sdr, err := c.Role("sdr")
	require.NoError(t, err)
	assert.Equal(t, "SDR/BDR", sdr.Name)
	assert.Contains(t, sdr.CriticalKeywords, "cold calling")
	assert.Len(t, sdr.Tools, 7)

	calls, ok := sdr.Benchmark("North America", "calls_per_day")
	require.True(t, ok)
	assert.Equal(t, 60.0, calls.Min)
	assert.Equal(t, 80.0, calls.Target)
	assert.Equal(t, 100.0, calls.Excellent)

	connect, ok := sdr.Benchmark("LATAM", "connect_rate")
	require.True(t, ok)
	assert.Equal(t, 25.0, connect.Target)

	_, ok = sdr.Benchmark("Europe", "lines_of_code")
	assert.False(t, ok)

	swe, err := c.Role("Software Engineering")
	require.NoError(t, err)
	scale, ok := swe.Benchmark("Europe", "system_scale")
	require.True(t, ok)
	assert.Equal(t, "500K+ users", scale.ExcellentLabel)

	mkt, err := c.Role("marketing")
	require.NoError(t, err)
	conv, ok := mkt.Benchmark("Europe", "conversion_rate")
	require.True(t, ok)
	assert.InDelta(t, 1.5, conv.Min, 1e-9)

	_, err = c.Role("Astronaut")
	var optErr *UnsupportedOptionError
	require.True(t, errors.As(err, &optErr))
	assert.Equal(t, "role", optErr.Kind)
}

func TestSkill_Lookup(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	k8s, ok := c.Skill("Kubernetes")
	require.True(t, ok)
	assert.Equal(t, "tool", k8s.Category)
	assert.Equal(t, 18000, k8s.MarketValue)
	assert.Equal(t, []string{"docker"}, k8s.Prerequisites)
	assert.Equal(t, []string{"CKA: Certified Kubernetes Administrator", "CKAD: Certified Kubernetes Application Developer"}, k8s.Certifications)

	hours, ok := k8s.LearningTime.Hours(LevelAdvanced)
	assert.True(t, ok)
	assert.Equal(t, 320, hours)
	_, ok = k8s.LearningTime.Hours(LevelExpert)
	assert.False(t, ok)

	_, ok = c.Skill("cobol")
	assert.False(t, ok)
}

func TestSkill_PatternsCompiledOnLoad(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	for i := range c.Skills {
		s := &c.Skills[i]
		require.NotNil(t, s.MentionPattern(), s.Name)
		require.NotNil(t, s.YearsPattern(), s.Name)
	}

	k8s, ok := c.Skill("kubernetes")
	require.True(t, ok)
	assert.True(t, k8s.MentionPattern().MatchString("Ran K8s clusters"))
	assert.False(t, k8s.MentionPattern().MatchString("ran k8sx clusters"))

	golang, ok := c.Skill("go")
	require.True(t, ok)
	assert.Same(t, golang.MentionPattern(), golang.MentionPattern())
	assert.Equal(t, []string{"5 years building services in go", "5"},
		golang.YearsPattern().FindStringSubmatch("5 years building services in go"))
	assert.Nil(t, golang.YearsPattern().FindStringSubmatch("5 years of golf"))
}

func TestResourcesFor(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	all := c.ResourcesFor("kubernetes", "")
	require.Len(t, all, 2)

	advanced := c.ResourcesFor("kubernetes", LevelAdvanced)
	require.Len(t, advanced, 1)
	assert.Equal(t, "CKA: Certified Kubernetes Administrator", advanced[0].Title)
	assert.Equal(t, 395.0, advanced[0].Cost)

	assert.Empty(t, c.ResourcesFor("rust", ""))
	assert.NotNil(t, c.ResourcesFor("rust", ""))
}

func TestLoad_RejectsInvalidData(t *testing.T) {
	tests := []struct {
		name      string
		standards string
		skills    string
	}{
		{
			name:      "malformed yaml",
			standards: "regions: [",
			skills:    string(skillsYAML),
		},
		{
			name:      "unknown field",
			standards: string(standardsYAML),
			skills:    "skills:\n  - name: go\n    colour: blue\n",
		},
		{
			name:      "bad category",
			standards: string(standardsYAML),
			skills:    "skills:\n  - name: go\n    category: magic\n    learning_time: {beginner: 1, intermediate: 2, advanced: 3}\n    market_value: 1\n    demand_trend: rising\n",
		},
		{
			name: "inverted band",
			standards: `regions:
  - name: North America
roles:
  - name: SDR/BDR
    critical_keywords: [crm]
    benchmarks:
      North America:
        calls_per_day: {min: 100, target: 80, excellent: 60}
`,
			skills: string(skillsYAML),
		},
		{
			name: "benchmark for unknown region",
			standards: `regions:
  - name: North America
roles:
  - name: SDR/BDR
    critical_keywords: [crm]
    benchmarks:
      Mars:
        calls_per_day: {min: 1, target: 2, excellent: 3}
`,
			skills: string(skillsYAML),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load([]byte(tt.standards), []byte(tt.skills), resourcesYAML)
			var loadErr *LoadError
			require.True(t, errors.As(err, &loadErr), "got %v", err)
		})
	}
}

func TestLoad_RejectsResourcesForUnknownSkill(t *testing.T) {
	resources := `resources:
  cobol:
    - title: COBOL Basics
      type: course
      provider: Example
      url: https://example.com/cobol
      duration: 10
      cost: 0
      rating: 4
      relevance: 50
      difficulty: beginner
`
	_, err := Load(standardsYAML, skillsYAML, []byte(resources))
	var loadErr *LoadError
	require.True(t, errors.As(err, &loadErr))
	assert.Contains(t, err.Error(), "cobol")
}
