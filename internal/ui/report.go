// Package ui renders the probe run summary for the console.
package ui

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/nvolker/neoprobe/internal/probe"
)

// Color palette - keeping it minimal and accessible.
var (
	colorSuccess = lipgloss.Color("34")  // Green
	colorError   = lipgloss.Color("196") // Red
	colorMuted   = lipgloss.Color("240") // Dark gray
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true)

	passStyle = lipgloss.NewStyle().Foreground(colorSuccess)
	failStyle = lipgloss.NewStyle().Foreground(colorError).Bold(true)
	skipStyle = lipgloss.NewStyle().Foreground(colorMuted)
)

// RenderReport writes a per-step summary of the run to w. Steps that
// never ran because an earlier one failed are listed as skipped.
// lipgloss degrades to plain text when w is not a terminal.
func RenderReport(w io.Writer, report *probe.Report, planned []probe.Step) {
	fmt.Fprintln(w, titleStyle.Render(fmt.Sprintf("Probe run %s", report.RunID)))

	// Results are in execution order, a prefix of the planned order, so
	// walk the plan and index into results positionally.
	for i, step := range planned {
		var line string
		switch {
		case i < len(report.Results):
			res := report.Results[i]
			if res.Err != nil {
				line = failStyle.Render(fmt.Sprintf("  ✗ %-8s %v", res.Name, res.Err))
			} else {
				line = passStyle.Render(fmt.Sprintf("  ✓ %-8s", res.Name)) +
					skipStyle.Render(fmt.Sprintf(" %s (%s)", res.Detail, res.Duration.Round(time.Millisecond)))
			}
		default:
			line = skipStyle.Render(fmt.Sprintf("  - %-8s skipped", step.Name))
		}
		fmt.Fprintln(w, line)
	}

	if report.Failed() {
		fmt.Fprintln(w, failStyle.Render("Result: FAILED"))
	} else {
		fmt.Fprintln(w, passStyle.Render("Result: PASSED"))
	}
}
