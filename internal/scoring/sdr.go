// Package scoring implements rule-based, regionalized résumé scoring: the
// SDR/BDR metric scorer with its hard caps, a keyword and quantification
// scorer for other roles, and the ATS compatibility checks.
package scoring

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/jonathan/resume-scorer/internal/catalog"
	"github.com/jonathan/resume-scorer/internal/parsing"
	"github.com/jonathan/resume-scorer/internal/types"
)

// SDRRole is the catalog name of the sales development role.
const SDRRole = "SDR/BDR"

// Dimension weights of the SDR/BDR overall score
const (
	activityWeight   = 0.30
	conversionWeight = 0.25
	pipelineWeight   = 0.25
	technicalWeight  = 0.10
	formatWeight     = 0.10
)

// Penalty keys of RoleScoreResult.Penalties
const (
	PenaltyOverOnePage    = "over_one_page"
	PenaltyEducationHeavy = "education_heavy"
	PenaltyNoMetrics      = "no_metrics"
	PenaltyWeakVerbs      = "weak_verbs"
)

// Penalty points
const (
	missingOutreachPenalty = 15
	missingMeetingsPenalty = 15
	missingConnectPenalty  = 10
	missingResponsePenalty = 10
	missingPipelinePenalty = 12
	missingQuotaPenalty    = 15
	overOnePagePenalty     = 15
	educationHeavyPenalty  = 10
	weakPhrasePenalty      = 3
	maxWeakPhrasePenalty   = 15
)

// scoreCap limits the overall score when a dimension scores below Threshold.
type scoreCap struct {
	Dimension string
	Threshold int
	Max       float64
	Flag      string
}

// sdrCaps are applied in order after penalties.
var sdrCaps = []scoreCap{
	{Dimension: types.DimensionActivity, Threshold: 20, Max: 45, Flag: "CRITICAL: No activity metrics = max 45/100 score"},
	{Dimension: types.DimensionConversion, Threshold: 20, Max: 60, Flag: "No conversion metrics = max 60/100 score"},
	{Dimension: types.DimensionPipeline, Threshold: 20, Max: 65, Flag: "No pipeline impact = max 65/100 score"},
}

// tierPoints awards points for a value against a min/target/excellent band.
type tierPoints struct {
	Excellent, Target, Min, Below int
}

func (p tierPoints) award(value float64, band types.BenchmarkBand) int {
	switch {
	case value >= band.Excellent:
		return p.Excellent
	case value >= band.Target:
		return p.Target
	case value >= band.Min:
		return p.Min
	default:
		return p.Below
	}
}

var (
	// Calls and emails are one merged outreach channel: the better of the two earns
	// these points and there is no separate email tier or missing-email penalty.
	outreachPoints = tierPoints{Excellent: 60, Target: 45, Min: 25, Below: 10}
	meetingPoints  = tierPoints{Excellent: 40, Target: 30, Min: 15, Below: 5}
	connectPoints  = tierPoints{Excellent: 30, Target: 20, Min: 10}
	responsePoints = tierPoints{Excellent: 35, Target: 25, Min: 12}
)

// Activity patterns accept "per day", "/day", "daily" and "weekly" alike. A
// weekly figure is compared against the daily band unchanged.
var (
	callsPattern      = regexp.MustCompile(`(?i)(\d+)\+?\s*(?:cold\s*)?calls?\s*(?:per\s*|/\s*)?(?:day|daily|weekly)`)
	emailsPattern     = regexp.MustCompile(`(?i)(\d+)\+?\s*emails?\s*(?:per\s*|/\s*)?(?:day|daily|weekly)`)
	meetingsPattern   = regexp.MustCompile(`(?i)(\d+)[-+]?(?:\d+)?\s*(?:qualified\s*)?meetings?\s*(?:per\s*|/\s*)?(?:week|weekly|month)`)
	connectPattern    = regexp.MustCompile(`(?i)(\d+)%\s*(?:connect|connection)\s*rate`)
	responsePattern   = regexp.MustCompile(`(?i)(\d+)%\s*(?:email\s*)?(?:response|reply)\s*rate`)
	showPattern       = regexp.MustCompile(`(?i)(\d+)%\s*(?:show|attendance)\s*rate`)
	conversionPattern = regexp.MustCompile(`(?i)(\d+)%\s*conversion`)
	pipelinePattern   = regexp.MustCompile(`(?i)\$(\d+(?:\.\d+)?)\s*([kmb])?(?:\s*in)?\s*(?:qualified\s*)?pipeline`)
	quotaPattern      = regexp.MustCompile(`(?i)(\d+)%\s*(?:of\s*)?quota`)
	revenuePattern    = regexp.MustCompile(`(?i)\$(\d+(?:\.\d+)?)\s*([kmb])?(?:\s*(?:in|of))?\s*(?:closed[-\s]?won|revenue|sales)`)
)

var educationKeywords = []string{"university", "college", "bachelor", "degree", "gpa", "coursework", "education"}

// ScoreSDRResume scores a sales development résumé against the benchmarks of
// region. Each dimension is 0-100; the overall score is their weighted sum
// minus penalties, then capped when activity, conversion or pipeline evidence
// is missing.
func ScoreSDRResume(text string, years float64, region string) (*types.RoleScoreResult, error) {
	if err := parsing.ValidateText("resume", text); err != nil {
		return nil, err
	}
	if err := parsing.ValidateYears("experience_years", years); err != nil {
		return nil, err
	}
	cat, err := catalog.Default()
	if err != nil {
		return nil, err
	}
	role, err := cat.Role(SDRRole)
	if err != nil {
		return nil, err
	}
	reg, err := cat.Region(region)
	if err != nil {
		return nil, err
	}
	return scoreSDR(text, role, reg.Name), nil
}

// sdrScorer accumulates the findings of one SDR scoring run.
type sdrScorer struct {
	text      string
	role      *catalog.Role
	region    string
	redFlags  []string
	strengths []string
	penalties map[string]int
}

func (s *sdrScorer) flag(format string, args ...any) {
	s.redFlags = append(s.redFlags, fmt.Sprintf(format, args...))
}

func (s *sdrScorer) strength(format string, args ...any) {
	s.strengths = append(s.strengths, fmt.Sprintf(format, args...))
}

func (s *sdrScorer) band(metric string) types.BenchmarkBand {
	band, _ := s.role.Benchmark(s.region, metric)
	return band
}

func scoreSDR(text string, role *catalog.Role, region string) *types.RoleScoreResult {
	s := &sdrScorer{
		text:      text,
		role:      role,
		region:    region,
		redFlags:  []string{},
		strengths: []string{},
		penalties: map[string]int{
			PenaltyOverOnePage:    0,
			PenaltyEducationHeavy: 0,
			PenaltyNoMetrics:      0,
			PenaltyWeakVerbs:      0,
		},
	}

	dims := map[string]int{
		types.DimensionActivity:   s.activity(),
		types.DimensionConversion: s.conversion(),
		types.DimensionPipeline:   s.pipeline(),
		types.DimensionTechnical:  s.technical(),
		types.DimensionFormat:     s.format(),
	}

	overall := float64(dims[types.DimensionActivity])*activityWeight +
		float64(dims[types.DimensionConversion])*conversionWeight +
		float64(dims[types.DimensionPipeline])*pipelineWeight +
		float64(dims[types.DimensionTechnical])*technicalWeight +
		float64(dims[types.DimensionFormat])*formatWeight

	total := 0
	for _, p := range s.penalties {
		total += p
	}
	overall = math.Max(0, overall-float64(total))

	caps := []string{}
	for _, c := range sdrCaps {
		if dims[c.Dimension] < c.Threshold {
			overall = math.Min(c.Max, overall)
			s.redFlags = append(s.redFlags, c.Flag)
			caps = append(caps, c.Flag)
		}
	}

	return &types.RoleScoreResult{
		Role:            role.Name,
		Region:          region,
		OverallScore:    int(math.Round(overall)),
		DimensionScores: dims,
		Penalties:       s.penalties,
		RedFlags:        s.redFlags,
		Strengths:       s.strengths,
		CapsApplied:     caps,
	}
}

// firstNumber returns the first capture group of the first match of pattern.
func firstNumber(pattern *regexp.Regexp, text string) (float64, bool) {
	m := pattern.FindStringSubmatch(text)
	if m == nil {
		return 0, false
	}
	v, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func (s *sdrScorer) activity() int {
	score := 0

	calls, hasCalls := firstNumber(callsPattern, s.text)
	emails, hasEmails := firstNumber(emailsPattern, s.text)
	if hasCalls || hasEmails {
		outreach := 0
		if hasCalls {
			band := s.band("calls_per_day")
			outreach = max(outreach, outreachPoints.award(calls, band))
			if calls >= band.Target {
				s.strength("Strong call activity: %s calls/day", formatNumber(calls))
			}
		}
		if hasEmails {
			band := s.band("emails_per_day")
			outreach = max(outreach, outreachPoints.award(emails, band))
			if emails >= band.Target {
				s.strength("Strong email outreach: %s emails/day", formatNumber(emails))
			}
		}
		score += outreach
	} else {
		s.flag("No daily call or email activity metrics found")
		s.penalties[PenaltyNoMetrics] += missingOutreachPenalty
	}

	if meetings, ok := firstNumber(meetingsPattern, s.text); ok {
		band := s.band("meetings_per_week")
		score += meetingPoints.award(meetings, band)
		if meetings >= band.Target {
			s.strength("Excellent meeting booking: %s/week", formatNumber(meetings))
		}
	} else {
		s.flag("No meeting booking metrics found")
		s.penalties[PenaltyNoMetrics] += missingMeetingsPenalty
	}

	return min(100, score)
}

func (s *sdrScorer) conversion() int {
	score := 0

	if rate, ok := firstNumber(connectPattern, s.text); ok {
		band := s.band("connect_rate")
		score += connectPoints.award(rate, band)
		if rate >= band.Target {
			s.strength("Strong connect rate: %s%%", formatNumber(rate))
		}
	} else {
		s.flag("No connect rate percentage")
		s.penalties[PenaltyNoMetrics] += missingConnectPenalty
	}

	if rate, ok := firstNumber(responsePattern, s.text); ok {
		band := s.band("email_response_rate")
		score += responsePoints.award(rate, band)
		if rate >= band.Target {
			s.strength("Excellent email response: %s%%", formatNumber(rate))
		}
	} else {
		s.flag("No email response rate")
		s.penalties[PenaltyNoMetrics] += missingResponsePenalty
	}

	if rate, ok := firstNumber(showPattern, s.text); ok {
		switch {
		case rate >= 30:
			score += 20
		case rate >= 20:
			score += 12
		default:
			score += 5
		}
	}

	if rate, ok := firstNumber(conversionPattern, s.text); ok {
		switch {
		case rate >= 50:
			score += 15
		case rate >= 30:
			score += 10
		default:
			score += 5
		}
	}

	return min(100, score)
}

// dollarAmount parses the amount and k/m/b suffix captured by pattern.
func dollarAmount(pattern *regexp.Regexp, text string) (float64, bool) {
	m := pattern.FindStringSubmatch(text)
	if m == nil {
		return 0, false
	}
	amount, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0, false
	}
	switch strings.ToLower(m[2]) {
	case "k":
		amount *= 1e3
	case "m":
		amount *= 1e6
	case "b":
		amount *= 1e9
	}
	return amount, true
}

func (s *sdrScorer) pipeline() int {
	score := 0

	if amount, ok := dollarAmount(pipelinePattern, s.text); ok {
		switch {
		case amount >= 2e6:
			score += 40
		case amount >= 1e6:
			score += 30
		case amount >= 5e5:
			score += 20
		case amount >= 2.5e5:
			score += 10
		}
		if amount >= 1e6 {
			s.strength("Strong pipeline generation: $%.1fM", amount/1e6)
		}
	} else {
		s.flag("No pipeline $ amount found")
		s.penalties[PenaltyNoMetrics] += missingPipelinePenalty
	}

	if quota, ok := firstNumber(quotaPattern, s.text); ok {
		band := s.band("quota_attainment")
		switch {
		case quota >= band.Excellent:
			score += 40
		case quota >= band.Target:
			score += 30
		case quota >= (band.Min+band.Target)/2:
			score += 20
		case quota >= band.Min:
			score += 10
		}
		if quota >= band.Target {
			s.strength("Hit quota: %s%%", formatNumber(quota))
		} else {
			s.flag("Below quota: %s%%", formatNumber(quota))
		}
	} else {
		s.flag("No quota attainment %% found - CRITICAL for SDR roles")
		s.penalties[PenaltyNoMetrics] += missingQuotaPenalty
	}

	if revenuePattern.MatchString(s.text) {
		score += 20
		s.strength("Shows revenue impact")
	}

	return min(100, score)
}

func (s *sdrScorer) technical() int {
	tools := countPhrases(strings.ToLower(s.text), s.role.Tools)
	if tools >= 3 {
		s.strength("Strong tech stack: %d tools", tools)
	} else if tools == 0 {
		s.flag("No CRM/sales tools mentioned")
	}
	return min(100, tools*15)
}

func (s *sdrScorer) format() int {
	score := 0

	switch pages := estimatePages(s.text); {
	case pages <= 1.2:
		score += 50
		s.strength("Concise 1-page format")
	case pages <= 1.5:
		score += 30
	default:
		score += 10
		s.flag("Resume is over 1 page - SDR resumes must be 1 page")
		s.penalties[PenaltyOverOnePage] = overOnePagePenalty
	}

	runes := []rune(s.text)
	top := strings.ToLower(string(runes[:len(runes)/3]))
	if countPhrases(top, educationKeywords) >= 3 {
		s.flag("Education-heavy top section - push sales experience up")
		s.penalties[PenaltyEducationHeavy] = educationHeavyPenalty
		score -= 20
	} else {
		score += 30
	}

	if weak := countPhrases(strings.ToLower(s.text), s.role.WeakPhrases); weak >= 3 {
		s.flag("%d weak/passive phrases found", weak)
		s.penalties[PenaltyWeakVerbs] = min(maxWeakPhrasePenalty, weak*weakPhrasePenalty)
		score -= s.penalties[PenaltyWeakVerbs]
	} else {
		score += 20
	}

	return max(0, min(100, score))
}
