package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/permtrace/pkg/perm"
)

// =============================================================================
// Color Palette
// =============================================================================

var (
	colorCyan   = lipgloss.Color("36")  // Teal - primary actions
	colorGreen  = lipgloss.Color("35")  // Green - success
	colorYellow = lipgloss.Color("220") // Amber - warnings
	colorRed    = lipgloss.Color("167") // Soft red - errors
	colorBlue   = lipgloss.Color("75")  // Light blue - links
	colorWhite  = lipgloss.Color("255") // Bright white - values
	colorGray   = lipgloss.Color("245") // Gray - secondary text
	colorDim    = lipgloss.Color("240") // Dim gray - muted text
	colorInk    = lipgloss.Color("232") // Near black - text on badges
)

// kindColors gives every step kind its own color.
var kindColors = map[perm.Kind]lipgloss.Color{
	perm.KindSort:              lipgloss.Color("141"), // purple
	perm.KindFindPivot:         lipgloss.Color("75"),  // blue
	perm.KindFindSwapCandidate: lipgloss.Color("78"),  // green
	perm.KindSwap:              lipgloss.Color("208"), // orange
	perm.KindReverse:           lipgloss.Color("167"), // red
	perm.KindEmit:              lipgloss.Color("42"),  // emerald
	perm.KindComplete:          lipgloss.Color("245"), // gray
}

// =============================================================================
// Public Styles
// =============================================================================

var (
	// StyleTitle for main headings.
	StyleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)

	// StyleDim for secondary/muted text.
	StyleDim = lipgloss.NewStyle().Foreground(colorDim)

	// StyleValue for data values.
	StyleValue = lipgloss.NewStyle().Foreground(colorWhite)

	// StyleNumber for numeric values.
	StyleNumber = lipgloss.NewStyle().Foreground(colorCyan)

	// StyleSuccess for success messages.
	StyleSuccess = lipgloss.NewStyle().Foreground(colorGreen)

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
	styleIconSpinner = lipgloss.NewStyle().Foreground(colorCyan)

	styleCode = lipgloss.NewStyle().Foreground(colorBlue).Italic(true)
	styleKey  = lipgloss.NewStyle().Foreground(colorGray).Width(12)
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
	iconCurrent = "▸"
)

// badgeWidth fits the longest kind tag, find_swap_candidate.
const badgeWidth = 19

// =============================================================================
// Theme
// =============================================================================

// theme renders step output with or without ANSI styling. The plain theme
// marks highlighted characters with brackets so the output stays readable
// in logs and pipes.
type theme struct {
	color bool
}

func newTheme(color bool) theme {
	return theme{color: color}
}

// render applies s when color is on.
func (t theme) render(s lipgloss.Style, text string) string {
	if !t.color {
		return text
	}
	return s.Render(text)
}

// badge renders a kind tag padded to a fixed width.
func (t theme) badge(k perm.Kind) string {
	if !t.color {
		return fmt.Sprintf("%-*s", badgeWidth, k)
	}
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(kindColors[k]).
		Width(badgeWidth).
		Render(string(k))
}

// cells renders the step's permutation one character per cell, marking the
// highlighted positions.
func (t theme) cells(step perm.Step) string {
	var b strings.Builder
	on := lipgloss.NewStyle().Bold(true).Foreground(colorInk).Background(kindColors[step.Kind])
	for i, r := range []rune(step.Permutation) {
		ch := string(r)
		switch {
		case step.Highlighted(i) && t.color:
			b.WriteString(on.Render(" " + ch + " "))
		case step.Highlighted(i):
			b.WriteString("[" + ch + "]")
		case t.color:
			b.WriteString(StyleValue.Render(" " + ch + " "))
		default:
			b.WriteString(" " + ch + " ")
		}
	}
	return b.String()
}

// indices renders the pivot and swap-candidate positions carried by a step,
// or "" when it carries none.
func (t theme) indices(step perm.Step) string {
	var parts []string
	if i, ok := step.PivotIndex(); ok {
		parts = append(parts, fmt.Sprintf("i=%d", i))
	}
	if j, ok := step.SwapIndex(); ok {
		parts = append(parts, fmt.Sprintf("j=%d", j))
	}
	return t.render(StyleDim, strings.Join(parts, " "))
}

// step renders one trace step as a header line, the detail and an optional
// code hint. n is the one-based step number.
func (t theme) step(n int, step perm.Step, hints bool) string {
	var b strings.Builder
	b.WriteString(t.render(StyleDim, fmt.Sprintf("%4d", n)))
	b.WriteString("  ")
	b.WriteString(t.badge(step.Kind))
	b.WriteString("  ")
	b.WriteString(t.cells(step))
	if idx := t.indices(step); idx != "" {
		b.WriteString("  ")
		b.WriteString(idx)
	}
	b.WriteString("\n      ")
	b.WriteString(step.Detail)
	if hint := step.CodeHint(); hints && hint != "" {
		b.WriteString("\n      ")
		b.WriteString(t.render(styleCode, hint))
	}
	return b.String()
}

// =============================================================================
// Status Output
// =============================================================================

// printSuccess prints a success message.
func printSuccess(w io.Writer, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(w, styleIconSuccess.Render(iconSuccess)+" "+StyleSuccess.Render(msg))
}

// printError prints an error message.
func printError(w io.Writer, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(w, styleIconError.Render(iconError)+" "+msg)
}

// printWarning prints a warning message.
func printWarning(w io.Writer, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(w, styleIconWarning.Render(iconWarning)+" "+StyleWarning.Render(msg))
}

// printInfo prints an info/status message.
func printInfo(w io.Writer, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(w, styleIconInfo.Render(iconInfo)+" "+msg)
}

// printFile prints a file output line.
func printFile(w io.Writer, path string) {
	fmt.Fprintln(w, "  "+StyleDim.Render(iconArrow)+" "+StyleValue.Render(path))
}

// printKeyValue prints a labeled value.
func printKeyValue(w io.Writer, key, value string) {
	fmt.Fprintln(w, "  "+styleKey.Render(key)+" "+StyleValue.Render(value))
}

// =============================================================================
// Summaries
// =============================================================================

// algorithmSteps lists the kinds that make up one pass of the algorithm.
func algorithmSteps() []perm.Kind {
	return perm.Kinds[:len(perm.Kinds)-1]
}

// describeInput returns "N characters, M unique".
func describeInput(s perm.Summary) string {
	return fmt.Sprintf("%d characters, %d unique", s.Length, s.Unique)
}

// complexity returns the algorithm's cost summary.
func complexity() string {
	return "time O(n! × n), space O(1)"
}
