package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"quality-metrics/src/model"
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.AdaptiveColor{Light: "#5A56E0", Dark: "#7571F9"})
	labelStyle = lipgloss.NewStyle().
			Faint(true).
			Width(20)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
)

// renderSummary formats the end-of-run summary printed to stderr
func renderSummary(report *model.AnalysisReport) string {
	s := report.Summary
	var b strings.Builder

	b.WriteString(headerStyle.Render("Analysis complete: "+report.ProjectName) + "\n")
	row := func(label, value string) {
		b.WriteString("  " + labelStyle.Render(label) + value + "\n")
	}
	row("Values", fmt.Sprint(s.TotalValues))
	row("Classes measured", fmt.Sprint(s.ClassesMeasured))
	row("Methods measured", fmt.Sprint(s.MethodsMeasured))
	row("Errors", errorStyle.Render(fmt.Sprint(s.ByClassification[model.ClassificationError])))
	row("Warnings", warningStyle.Render(fmt.Sprint(s.ByClassification[model.ClassificationWarning])))
	if len(report.Failures) > 0 {
		row("Failed entities", errorStyle.Render(fmt.Sprint(len(report.Failures))))
	}
	if n := report.Diagnostics.OpaqueConstructs; n > 0 {
		row("Unsupported nodes", fmt.Sprint(n))
	}

	for i, hs := range s.HotspotClasses {
		if i == 0 {
			b.WriteString(headerStyle.Render("Hotspots") + "\n")
		}
		row(hs.ClassName, fmt.Sprintf("%s / %s",
			errorStyle.Render(fmt.Sprintf("%d errors", hs.Errors)),
			warningStyle.Render(fmt.Sprintf("%d warnings", hs.Warnings))))
	}

	return strings.TrimRight(b.String(), "\n")
}
