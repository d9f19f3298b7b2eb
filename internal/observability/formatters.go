// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-scorer/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// truncate shortens s to at most width runes, ending in "..." when cut.
func truncate(s string, width int) string {
	r := []rune(s)
	if len(r) <= width {
		return s
	}
	return string(r[:width-3]) + "..."
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, truncate(line, boxWidth-4))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// writeList writes up to limit items as bullets under heading, then a
// "... and N more" line when items were cut.
func writeList(sb *strings.Builder, heading string, items []string, limit int) {
	if len(items) == 0 {
		return
	}
	sb.WriteString(heading + ":\n")
	count := min(len(items), limit)
	for i := 0; i < count; i++ {
		sb.WriteString(fmt.Sprintf("  • %s\n", items[i]))
	}
	if len(items) > limit {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(items)-limit))
	}
	sb.WriteString("\n")
}

// PrintMatchResult outputs the encoder match score and keyword detail.
func (p *Printer) PrintMatchResult(result *types.MatchResult) {
	if result == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Overall:   %.3f\n", result.OverallScore))
	sb.WriteString(fmt.Sprintf("Semantic:  %.3f\n", result.SemanticSimilarity))
	sb.WriteString(fmt.Sprintf("Overlap:   %.3f\n", result.KeywordOverlap))
	sb.WriteString("\n")

	writeList(&sb, "Matched Keywords", result.MatchedKeywords, maxItemsToShow)

	missing := make([]string, len(result.MissingKeywords))
	for i, m := range result.MissingKeywords {
		missing[i] = fmt.Sprintf("%s (%.2f)", m.Keyword, m.Importance)
	}
	writeList(&sb, "Missing Keywords", missing, maxItemsToShow)

	p.printBox("RESUME / JOB MATCH", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintEnhancedAnalysis outputs the blended match scores, strengths and missing phrases.
func (p *Printer) PrintEnhancedAnalysis(result *types.EnhancedAnalysis) {
	if result == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Overall:      %.2f\n", result.OverallScore))
	sb.WriteString(fmt.Sprintf("Transformer:  %.3f\n", result.TransformerScore))
	sb.WriteString(fmt.Sprintf("Semantic:     %.3f\n", result.SemanticSimilarity))
	sb.WriteString(fmt.Sprintf("Overlap:      %.3f\n", result.KeywordOverlap))
	sb.WriteString("\n")

	writeList(&sb, "Strengths", result.Strengths, maxItemsToShow)

	missing := make([]string, len(result.MissingKeywords))
	for i, m := range result.MissingKeywords {
		missing[i] = m.Phrase
	}
	writeList(&sb, "Missing Phrases", missing, maxItemsToShow)

	p.printBox("ENHANCED KEYWORD ANALYSIS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintRoleReport outputs a role score with its insights and penalties.
func (p *Printer) PrintRoleReport(report *types.RoleReport) {
	if report == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Role:    %s\n", report.Role))
	sb.WriteString(fmt.Sprintf("Region:  %s\n", report.Region))
	sb.WriteString(fmt.Sprintf("Score:   %d/100 (ATS %d/100)\n", report.Score, report.ATSScore))
	sb.WriteString("\n")

	if report.Breakdown != nil && len(report.Breakdown.CapsApplied) > 0 {
		writeList(&sb, "Caps Applied", report.Breakdown.CapsApplied, 3)
	}
	writeList(&sb, "Insights", report.Insights, maxItemsToShow)
	writeList(&sb, "Penalties", report.Penalties, maxItemsToShow)

	p.printBox("ROLE SCORE", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintATSResult outputs ATS issues, or a single line when there are none.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintATSResult(result *types.ATSResult) {
	if result == nil {
		return
	}
	if len(result.Issues) == 0 {
		fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, fmt.Sprintf("✅ NO ATS ISSUES FOUND (score %d)", result.Score))
		fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Score: %d/100\n", result.Score))
	sb.WriteString(fmt.Sprintf("Bullets: %d (%d strong verb, %d quantified)\n\n",
		result.Bullets.Total, result.Bullets.StrongVerb, result.Bullets.Quantified))

	for i, issue := range result.Issues {
		sb.WriteString(fmt.Sprintf("⚠ %s\n", issue))
		if i < len(result.Recommendations) {
			sb.WriteString(fmt.Sprintf("  %s\n", result.Recommendations[i]))
		}
	}

	p.printBox("ATS COMPATIBILITY", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintGapAnalysis outputs readiness, the most urgent gaps and quick wins.
func (p *Printer) PrintGapAnalysis(analysis *types.GapAnalysis) {
	if analysis == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Readiness:      %d%%\n", analysis.OverallReadiness))
	sb.WriteString(fmt.Sprintf("Time to ready:  %d hours\n", analysis.TimeToReady))
	sb.WriteString(fmt.Sprintf("Estimated cost: $%.2f\n", analysis.EstimatedCost))
	sb.WriteString("\n")

	gaps := make([]string, 0, len(analysis.CriticalGaps)+len(analysis.HighPriorityGaps))
	for _, g := range append(append([]types.SkillGap{}, analysis.CriticalGaps...), analysis.HighPriorityGaps...) {
		gaps = append(gaps, fmt.Sprintf("%s [%s] %s → %s (impact %d)", g.Skill, g.Priority, g.CurrentLevel, g.RequiredLevel, g.Impact))
	}
	writeList(&sb, "Top Gaps", gaps, maxItemsToShow)
	writeList(&sb, "Strengths", analysis.Strengths, 3)
	writeList(&sb, "Quick Wins", analysis.QuickWins, 3)

	p.printBox("SKILLS GAP ANALYSIS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintRankedResumes outputs the top N ranked résumés with scores and matched skills.
func (p *Printer) PrintRankedResumes(resumes *types.RankedResumes) {
	if resumes == nil || len(resumes.Ranked) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Total resumes ranked: %d\n\n", len(resumes.Ranked)))

	count := min(len(resumes.Ranked), maxItemsToShow)
	for i := 0; i < count; i++ {
		r := resumes.Ranked[i]
		sb.WriteString(fmt.Sprintf("#%d  %s\n", r.Rank, r.ResumeID))
		sb.WriteString(fmt.Sprintf("    Score: %.3f (transformer %.2f, semantic %.2f)\n", r.Score, r.TransformerScore, r.SemanticScore))
		if len(r.MatchedSkills) > 0 {
			sb.WriteString(fmt.Sprintf("    Skills: %s\n", truncate(strings.Join(r.MatchedSkills, ", "), 40)))
		}
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(resumes.Ranked) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more resumes", len(resumes.Ranked)-maxItemsToShow))
	}

	p.printBox("TOP RANKED RESUMES", sb.String())
}

// PrintTextAnalysis outputs quality, sentiment and readability of a résumé.
func (p *Printer) PrintTextAnalysis(analysis *types.TextAnalysis) {
	if analysis == nil {
		return
	}

	var sb strings.Builder
	if analysis.Quality != nil {
		sb.WriteString(fmt.Sprintf("Quality:      %d/100\n", analysis.Quality.OverallScore))
	}
	sb.WriteString(fmt.Sprintf("Sentiment:    %.2f (+%d / -%d)\n",
		analysis.Sentiment.Score, analysis.Sentiment.Positive, analysis.Sentiment.Negative))
	sb.WriteString(fmt.Sprintf("Complexity:   %.2f\n", analysis.Readability.Complexity))
	sb.WriteString(fmt.Sprintf("Diversity:    %.2f\n", analysis.Diversity))
	sb.WriteString(fmt.Sprintf("Entities:     %d\n", len(analysis.Entities)))
	sb.WriteString("\n")
	sb.WriteString(analysis.Readability.Recommendation + "\n\n")

	if analysis.Quality != nil {
		writeList(&sb, "Strengths", analysis.Quality.Strengths, 3)
		writeList(&sb, "Weaknesses", analysis.Quality.Weaknesses, 3)
	}

	p.printBox("TEXT ANALYSIS", strings.TrimSuffix(sb.String(), "\n"))
}
