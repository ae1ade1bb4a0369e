package output

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/manav03panchal/gitfiti/internal/model"
)

// Styles for CLI output.
var (
	// Colors
	colorPrimary = lipgloss.Color("#196127") // Darkest green
	colorMuted   = lipgloss.Color("#6B7280") // Gray
	colorWarning = lipgloss.Color("#F59E0B") // Yellow
	colorError   = lipgloss.Color("#EF4444") // Red
	colorSuccess = lipgloss.Color("#10B981") // Green

	// Styles
	styleTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

	styleSuccess = lipgloss.NewStyle().
			Foreground(colorSuccess)

	styleWarning = lipgloss.NewStyle().
			Foreground(colorWarning)

	styleError = lipgloss.NewStyle().
			Foreground(colorError)

	styleMuted = lipgloss.NewStyle().
			Foreground(colorMuted)

	styleBold = lipgloss.NewStyle().
			Bold(true)
)

// CLIFormatter provides CLI-specific formatting.
type CLIFormatter struct {
	*Formatter
}

// NewCLIFormatter creates a new CLI formatter.
func NewCLIFormatter(f *Formatter) *CLIFormatter {
	return &CLIFormatter{Formatter: f}
}

// Title prints a title.
func (c *CLIFormatter) Title(text string) {
	if c.IsColorEnabled() {
		c.Println(styleTitle.Render(text))
	} else {
		c.Println(text)
	}
}

// Success prints a success message.
func (c *CLIFormatter) Success(text string) {
	if c.IsColorEnabled() {
		c.Println(styleSuccess.Render("✓ " + text))
	} else {
		c.Println("✓ " + text)
	}
}

// Warning prints a warning message.
func (c *CLIFormatter) Warning(text string) {
	if c.IsColorEnabled() {
		c.Println(styleWarning.Render("⚠ " + text))
	} else {
		c.Println("⚠ " + text)
	}
}

// Error prints an error message.
func (c *CLIFormatter) Error(text string) {
	if c.IsColorEnabled() {
		c.Println(styleError.Render("✗ " + text))
	} else {
		c.Println("✗ " + text)
	}
}

// Muted prints muted text.
func (c *CLIFormatter) Muted(text string) {
	if c.IsColorEnabled() {
		c.Println(styleMuted.Render(text))
	} else {
		c.Println(text)
	}
}

// Swatch renders a colour sample, or nothing without colour.
func (c *CLIFormatter) Swatch(color string) string {
	if !c.IsColorEnabled() {
		return ""
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render("■■")
}

// PrintBrackets lists the palette.
func (c *CLIFormatter) PrintBrackets(brackets model.Brackets, maxCount int) {
	c.Title("Palette")

	rows := make([]TableRow, 0, len(brackets))
	for i, b := range brackets {
		upper := "∞"
		if i+1 < len(brackets) {
			upper = fmt.Sprint(brackets[i+1].Min - 1)
		}
		rows = append(rows, TableRow{Columns: []string{
			fmt.Sprintf("#%d", i),
			fmt.Sprintf("%d-%s", b.Min, upper),
			b.Color,
			c.Swatch(b.Color),
		}})
	}
	c.PrintTable([]string{"BRACKET", "COUNTS", "COLOR", ""}, rows)
	c.Println()
	c.Muted(fmt.Sprintf("Cells painted with the darkest bracket (%d) are sent as %d on verify.", brackets.Darkest(), maxCount))
}

// PrintSummary prints the outcome of a painting session.
func (c *CLIFormatter) PrintSummary(s Summary) {
	c.Title("Canvas")
	c.Printf("  Range: %s to %s\n", FormatDate(s.Start), FormatDate(s.End))
	c.Printf("  Painted days: %d\n", s.PaintedDays)
	c.Printf("  Brush: %s\n", s.Brush)
	c.Printf("  State: %s\n", s.State)
	if s.SVGPath != "" {
		c.Printf("  SVG: %s\n", s.SVGPath)
	}

	switch s.State {
	case "ready":
		c.Success(s.Verify)
		c.Muted("Nothing was pushed. Run 'gitfiti paint' again and press p after verifying.")
	case "invalid":
		c.Error(s.Verify)
	case "pushed":
		c.Success(s.Push)
	case "push_failed":
		c.Error(s.Push)
	default:
		if s.PaintedDays > 0 {
			c.Warning("Canvas was not verified.")
		}
	}
}

// TableRow is one row of PrintTable output.
type TableRow struct {
	Columns []string
}

// PrintTable prints a simple table.
func (c *CLIFormatter) PrintTable(headers []string, rows []TableRow) {
	if len(rows) == 0 {
		return
	}

	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range rows {
		for i, col := range row.Columns {
			if i < len(widths) && lipgloss.Width(col) > widths[i] {
				widths[i] = lipgloss.Width(col)
			}
		}
	}

	var headerLine strings.Builder
	for i, h := range headers {
		headerLine.WriteString(pad(h, widths[i]) + "  ")
	}
	header := strings.TrimRight(headerLine.String(), " ")
	if c.IsColorEnabled() {
		header = styleBold.Render(header)
	}
	c.Println(header)

	var sep strings.Builder
	for _, w := range widths {
		if w > 0 {
			sep.WriteString(strings.Repeat("─", w) + "  ")
		}
	}
	c.Println(strings.TrimRight(sep.String(), " "))

	for _, row := range rows {
		var rowLine strings.Builder
		for i, col := range row.Columns {
			if i < len(widths) {
				rowLine.WriteString(pad(col, widths[i]) + "  ")
			}
		}
		c.Println(strings.TrimRight(rowLine.String(), " "))
	}
}

// pad right-pads s to width display cells.
func pad(s string, width int) string {
	if w := lipgloss.Width(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}
