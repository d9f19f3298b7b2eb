package scoring

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/jonathan/resume-scorer/internal/types"
)

// Point deductions of the ATS compatibility checks
const (
	atsComplexFormatting = 20
	atsHeaderFooter      = 15
	atsMissingSections   = 15
	atsMissingEmail      = 10
	atsMissingPhone      = 5
	atsMixedDateFormats  = 10
	atsFewBullets        = 10
	atsFewActionVerbs    = 10
)

const (
	boxDrawing    = "│┤╡╢╖╕╣║╗╝╜╛┐└┴┬├─┼╞╟╚╔╩╦╠═╬╧╨╤╥╙╘╒╓╫╪┘┌"
	bulletMarkers = "•●○▪▫■□◆◇★☆"

	headerLineMaxRunes = 50
	minSections        = 2
	minBullets         = 3
	minActionVerbs     = 3
)

var (
	emailPattern  = regexp.MustCompile(`[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`)
	phonePattern  = regexp.MustCompile(`(\+?\d{1,3}[-.\s]?)?\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}`)
	bulletPattern = regexp.MustCompile(`(?m)^\s*[` + bulletMarkers + `]\s+`)

	dateFormats = []*regexp.Regexp{
		regexp.MustCompile(`\d{4}\s*[-–]\s*\d{4}`),
		regexp.MustCompile(`\d{1,2}/\d{4}`),
		regexp.MustCompile(`(?i)(Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)\s+\d{4}`),
	}

	sectionHeaders = []string{"experience", "education", "skills", "work experience", "professional experience"}

	atsActionVerbs = []string{
		"achieved", "improved", "increased", "reduced", "generated", "led",
		"managed", "developed", "implemented", "optimized", "created", "built",
		"designed", "launched", "delivered", "exceeded", "accelerated",
	}
)

// AnalyzeATSCompatibility runs the applicant-tracking-system parsing checks on
// a résumé. The score starts at 100 and each failed check deducts a fixed
// number of points; it never drops below zero.
func AnalyzeATSCompatibility(text string) types.ATSResult {
	score := 100
	issues := []string{}
	recommendations := []string{}
	fail := func(points int, issue, recommendation string) {
		score -= points
		issues = append(issues, issue)
		recommendations = append(recommendations, recommendation)
	}

	if strings.ContainsAny(text, boxDrawing) {
		fail(atsComplexFormatting,
			"Contains table borders or special characters that ATS cannot parse",
			"Use simple bullet points instead of tables or borders")
	}

	firstLine, _, _ := strings.Cut(text, "\n")
	if utf8.RuneCountInString(firstLine) < headerLineMaxRunes &&
		(strings.Contains(firstLine, "|") || strings.Contains(firstLine, "Page")) {
		fail(atsHeaderFooter,
			"May contain headers/footers that confuse ATS",
			"Remove headers and footers - they break ATS parsing")
	}

	if len(matchWords(text, sectionHeaders)) < minSections {
		fail(atsMissingSections,
			"Missing standard section headers (Experience, Education, Skills)",
			"Add clear section headers like 'EXPERIENCE', 'EDUCATION', 'SKILLS'")
	}

	if !emailPattern.MatchString(text) {
		fail(atsMissingEmail,
			"No email address detected",
			"Add email address in a standard format")
	}

	if !phonePattern.MatchString(text) {
		fail(atsMissingPhone,
			"No phone number detected",
			"Add phone number in standard format (123-456-7890)")
	}

	formats := 0
	for _, f := range dateFormats {
		if f.MatchString(text) {
			formats++
		}
	}
	if formats > 1 {
		fail(atsMixedDateFormats,
			"Inconsistent date formatting detected",
			"Use consistent date format throughout (e.g., 'Jan 2020 - Dec 2023')")
	}

	if len(bulletPattern.FindAllStringIndex(text, -1)) < minBullets {
		fail(atsFewBullets,
			"Limited use of bullet points for achievements",
			"Use bullet points to highlight key achievements and responsibilities")
	}

	if len(matchWords(text, atsActionVerbs)) < minActionVerbs {
		fail(atsFewActionVerbs,
			"Limited use of strong action verbs",
			"Start bullet points with strong action verbs (Achieved, Improved, Led, etc.)")
	}

	return types.ATSResult{
		Score:           max(0, score),
		Issues:          issues,
		Recommendations: recommendations,
		Bullets:         summarizeBullets(text),
	}
}

// summarizeBullets applies CheckBullet to every bullet line of text.
func summarizeBullets(text string) types.BulletSummary {
	var summary types.BulletSummary
	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		marker, _ := utf8.DecodeRuneInString(trimmed)
		if trimmed == "" || !strings.ContainsRune(bulletMarkers+"-*", marker) {
			continue
		}
		summary.Total++
		style := CheckBullet(trimmed, atsActionVerbs)
		if style.StrongVerb {
			summary.StrongVerb++
		}
		if style.Quantified {
			summary.Quantified++
		}
	}
	return summary
}
