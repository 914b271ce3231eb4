package export

import (
	"fmt"
	"strings"

	"github.com/HendryAvila/briefcheck/internal/analyzer"
)

// Markdown renders a human-readable report of the analysis.
func Markdown(title string, a analyzer.ProjectAnalysis) string {
	var sb strings.Builder
	level := analyzer.LevelFor(a.RiskScore)
	personality := a.ClientPersonality.Info()

	fmt.Fprintf(&sb, "# %s\n\n", reportTitle(title))
	fmt.Fprintf(&sb, "**Project type:** %s | **Risk score:** %d/100 (%s)\n\n", a.ProjectType, a.RiskScore, level)
	fmt.Fprintf(&sb, "%s\n\n", level.Summary())

	sb.WriteString("## Estimate\n\n")
	fmt.Fprintf(&sb, "- **Hours:** %dh\n", a.EstimatedHours)
	fmt.Fprintf(&sb, "- **Budget:** %s\n", a.SuggestedBudget)
	fmt.Fprintf(&sb, "- **Timeline:** %s\n\n", a.Timeline)

	fmt.Fprintf(&sb, "## Red flags (%d)\n\n", len(a.RedFlags))
	if len(a.RedFlags) == 0 {
		sb.WriteString("No red flags detected.\n\n")
	}
	for _, f := range a.RedFlags {
		fmt.Fprintf(&sb, "- %s **%s** (%s, %s): %s\n", f.Icon, f.Title, f.Type, f.Severity, f.Description)
		fmt.Fprintf(&sb, "  - _Suggestion:_ %s\n", f.Suggestion)
	}
	if len(a.RedFlags) > 0 {
		sb.WriteString("\n")
	}

	sb.WriteString("## Technical requirements\n\n")
	for _, req := range a.TechnicalRequirements {
		fmt.Fprintf(&sb, "### %s\n\n", req.Category)
		for _, r := range req.Requirements {
			fmt.Fprintf(&sb, "- %s\n", r)
		}
		sb.WriteString("\n")
	}

	sb.WriteString("## Client personality\n\n")
	fmt.Fprintf(&sb, "%s **%s**: %s\n\n", personality.Icon, personality.Label, personality.Description)

	sb.WriteString("## Suggested questions\n\n")
	for i, q := range a.SuggestedQuestions {
		fmt.Fprintf(&sb, "%d. %s\n", i+1, q)
	}
	sb.WriteString("\n")

	sb.WriteString("## Reply email\n\n")
	sb.WriteString("```text\n")
	sb.WriteString(a.EmailTemplate)
	sb.WriteString("\n```\n")

	return sb.String()
}
