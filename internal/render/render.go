// Package render prints analysis reports for terminals and pipes.
package render

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/HendryAvila/briefcheck/internal/analyzer"
	"github.com/HendryAvila/briefcheck/internal/briefs"
	"github.com/HendryAvila/briefcheck/internal/export"
	"github.com/fatih/color"
)

// Output names accepted by Write. Anything other than human is an export format.
const OutputHuman = "human"

// Write renders the analysis to w in the named output format.
func Write(w io.Writer, output, title string, a analyzer.ProjectAnalysis) error {
	if output == "" || output == OutputHuman {
		Human(w, a)
		return nil
	}
	f, err := export.ParseFormat(output)
	if err != nil {
		return err
	}
	data, err := export.Encode(f, title, a)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, strings.TrimRight(string(data), "\n"))
	return err
}

// Human prints a colored report.
func Human(w io.Writer, a analyzer.ProjectAnalysis) {
	red := color.New(color.FgRed, color.Bold)
	yellow := color.New(color.FgYellow, color.Bold)
	cyan := color.New(color.FgCyan, color.Bold)
	white := color.New(color.FgWhite, color.Bold)

	level := analyzer.LevelFor(a.RiskScore)

	fmt.Fprintln(w)
	levelColor(level).Fprintf(w, "📊 RISK SCORE: %d/100 (%s)\n", a.RiskScore, strings.ToUpper(string(level)))
	fmt.Fprintf(w, "   %s\n\n", level.Summary())

	white.Fprintln(w, "🗂  PROJECT:")
	fmt.Fprintf(w, "   Type: %s\n", a.ProjectType)
	fmt.Fprintf(w, "   Estimate: %dh | %s | %s\n\n", a.EstimatedHours, a.SuggestedBudget, a.Timeline)

	if len(a.RedFlags) > 0 {
		red.Fprintf(w, "🚩 RED FLAGS (%d):\n", len(a.RedFlags))
		for i, f := range a.RedFlags {
			fmt.Fprintf(w, "   %d. %s %s %s\n", i+1, severityIcon(f.Severity), f.Title, color.HiBlackString("[%s]", f.Type))
			fmt.Fprintf(w, "      %s\n", f.Description)
			fmt.Fprintf(w, "      Suggestion: %s\n", color.YellowString(f.Suggestion))
		}
		fmt.Fprintln(w)
	}

	if len(a.TechnicalRequirements) > 0 {
		cyan.Fprintln(w, "🛠  TECHNICAL REQUIREMENTS:")
		for _, req := range a.TechnicalRequirements {
			fmt.Fprintf(w, "   %s: %s\n", req.Category, strings.Join(req.Requirements, ", "))
		}
		fmt.Fprintln(w)
	}

	info := a.ClientPersonality.Info()
	white.Fprintln(w, "👤 CLIENT:")
	fmt.Fprintf(w, "   %s %s: %s\n\n", info.Icon, info.Label, info.Description)

	yellow.Fprintln(w, "❓ QUESTIONS TO ASK:")
	for i, q := range a.SuggestedQuestions {
		fmt.Fprintf(w, "   %d. %s\n", i+1, q)
	}
	fmt.Fprintln(w)

	white.Fprintln(w, "✉️  REPLY EMAIL:")
	fmt.Fprintln(w, indent(a.EmailTemplate, "   "))
	fmt.Fprintln(w)

	fmt.Fprintln(w, strings.Repeat("─", 80))
	fmt.Fprintf(w, "💡 %s\n", color.HiBlackString("Run with -o json, yaml, markdown or html for machine-readable output"))
}

// BriefList prints one line per saved brief, newest first.
func BriefList(w io.Writer, list []briefs.SavedBrief) {
	if len(list) == 0 {
		fmt.Fprintln(w, "No saved briefs.")
		return
	}
	for _, b := range list {
		level := analyzer.LevelFor(b.Analysis.RiskScore)
		fmt.Fprintf(w, "%s  %s  %s  %s\n",
			color.HiBlackString(b.ID),
			b.CreatedAt.Local().Format(time.DateTime),
			levelColor(level).Sprintf("%3d", b.Analysis.RiskScore),
			b.Title,
		)
	}
}

func levelColor(level analyzer.RiskLevel) *color.Color {
	switch level {
	case analyzer.RiskHigh:
		return color.New(color.FgRed, color.Bold)
	case analyzer.RiskMedium:
		return color.New(color.FgYellow, color.Bold)
	default:
		return color.New(color.FgGreen, color.Bold)
	}
}

func severityIcon(s analyzer.Severity) string {
	switch s {
	case analyzer.SeverityHigh:
		return "🔴"
	case analyzer.SeverityMedium:
		return "🟡"
	case analyzer.SeverityLow:
		return "🟢"
	default:
		return "⚪"
	}
}

func indent(text, prefix string) string {
	lines := strings.Split(text, "\n")
	for i, l := range lines {
		if l != "" {
			lines[i] = prefix + l
		}
	}
	return strings.Join(lines, "\n")
}
