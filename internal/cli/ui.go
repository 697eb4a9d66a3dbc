package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/macro-ai/archdiagrams/pkg/errors"
	"github.com/macro-ai/archdiagrams/pkg/pipeline"
	"github.com/macro-ai/archdiagrams/pkg/scenes"
)

// =============================================================================
// Color Palette
// =============================================================================

var (
	colorCyan   = lipgloss.Color("36")  // Teal - primary actions
	colorGreen  = lipgloss.Color("35")  // Green - success
	colorYellow = lipgloss.Color("220") // Amber - warnings
	colorRed    = lipgloss.Color("167") // Soft red - errors
	colorWhite  = lipgloss.Color("255") // Bright white - values
	colorGray   = lipgloss.Color("245") // Gray - secondary text
	colorDim    = lipgloss.Color("240") // Dim gray - muted text
)

// =============================================================================
// Public Styles
// =============================================================================

var (
	// StyleTitle for main headings.
	StyleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)

	// StyleHighlight for emphasized values.
	StyleHighlight = lipgloss.NewStyle().Foreground(colorCyan)

	// StyleDim for secondary/muted text.
	StyleDim = lipgloss.NewStyle().Foreground(colorDim)

	// StyleValue for data values.
	StyleValue = lipgloss.NewStyle().Foreground(colorWhite)

	// StyleNumber for numeric values.
	StyleNumber = lipgloss.NewStyle().Foreground(colorCyan)

	// StyleSuccess for success messages.
	StyleSuccess = lipgloss.NewStyle().Foreground(colorGreen)

	// StyleError for failure messages.
	StyleError = lipgloss.NewStyle().Foreground(colorRed)

	// StyleWarning for warning messages.
	StyleWarning = lipgloss.NewStyle().Foreground(colorYellow)
)

// =============================================================================
// Internal Styles
// =============================================================================

var (
	styleIconSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleIconError   = lipgloss.NewStyle().Foreground(colorRed)
	styleIconWarning = lipgloss.NewStyle().Foreground(colorYellow)
	styleIconInfo    = lipgloss.NewStyle().Foreground(colorGray)
)

// =============================================================================
// Icons
// =============================================================================

const (
	iconSuccess = "✓"
	iconError   = "✗"
	iconWarning = "!"
	iconInfo    = "›"
	iconArrow   = "→"
)

// =============================================================================
// Printer
// =============================================================================

// printer writes styled, human-readable lines. It implements
// scenes.Reporter so per-scene progress appears as each scene finishes.
type printer struct {
	w io.Writer
}

func newPrinter(w io.Writer) *printer {
	return &printer{w: w}
}

// success prints a success message.
func (p *printer) success(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(p.w, styleIconSuccess.Render(iconSuccess)+" "+msg)
}

// failure prints an error message.
func (p *printer) failure(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(p.w, styleIconError.Render(iconError)+" "+msg)
}

// warning prints a warning message.
func (p *printer) warning(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(p.w, styleIconWarning.Render(iconWarning)+" "+StyleWarning.Render(msg))
}

// info prints an info/status message.
func (p *printer) info(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(p.w, styleIconInfo.Render(iconInfo)+" "+msg)
}

// detail prints a detail line (indented).
func (p *printer) detail(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(p.w, "  "+StyleDim.Render(msg))
}

// file prints a file output line.
func (p *printer) file(name string) {
	fmt.Fprintln(p.w, "  "+StyleDim.Render("-")+" "+StyleValue.Render(name))
}

// keyValue prints a labeled value.
func (p *printer) keyValue(key, value string) {
	width := 18
	if w := lipgloss.Width(key); w >= width {
		width = w + 1
	}
	keyStyle := lipgloss.NewStyle().Foreground(colorGray).Width(width)
	fmt.Fprintln(p.w, keyStyle.Render(key)+" "+StyleValue.Render(value))
}

func (p *printer) newline() {
	fmt.Fprintln(p.w)
}

// Generated implements scenes.Reporter.
func (p *printer) Generated(r scenes.Result) {
	p.success("Generated: %s", r.Title)
}

// Failed implements scenes.Reporter.
func (p *printer) Failed(r scenes.Result) {
	p.failure("Failed to generate %s: %s", r.Name, errors.UserMessage(r.Err))
}

// =============================================================================
// Run Summary
// =============================================================================

// summary prints the per-scene status table, the tally, the output
// directory and the files found there.
func (p *printer) summary(report *pipeline.Report) {
	p.newline()
	fmt.Fprintln(p.w, StyleTitle.Render("Generation Results:"))
	for _, res := range report.Results {
		status := StyleSuccess.Render(iconSuccess + " SUCCESS")
		if !res.OK() {
			status = StyleError.Render(iconError + " FAILED")
		}
		fmt.Fprintf(p.w, "  %s: %s\n", res.Name, status)
	}

	p.newline()
	fmt.Fprintf(p.w, "Generated %s diagrams successfully\n",
		StyleNumber.Render(fmt.Sprintf("%d/%d", report.Succeeded(), report.Total())))
	fmt.Fprintf(p.w, "Diagrams saved to: %s\n", StyleHighlight.Render(report.Dir))

	if len(report.Files) == 0 {
		return
	}
	p.newline()
	fmt.Fprintln(p.w, "Generated files:")
	for _, f := range report.Files {
		p.file(f)
	}
}
