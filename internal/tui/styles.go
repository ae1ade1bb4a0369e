// Package tui provides the terminal painter for gitfiti.
package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/manav03panchal/gitfiti/internal/painter"
)

// Color palette for the painter.
var (
	ColorPrimary = lipgloss.Color("#7C3AED") // Purple
	ColorMuted   = lipgloss.Color("#6B7280") // Gray
	ColorWarning = lipgloss.Color("#F59E0B") // Yellow
	ColorError   = lipgloss.Color("#EF4444") // Red
	ColorSuccess = lipgloss.Color("#10B981") // Green
	ColorPending = lipgloss.Color("#3B82F6") // Blue
	ColorBorder  = lipgloss.Color("#4B5563") // Dark gray
)

// Base styles for the painter.
var (
	// StyleTitle is used for the header line.
	StyleTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	// StyleSubtitle is used for secondary information.
	StyleSubtitle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	StyleWarning = lipgloss.NewStyle().
			Foreground(ColorWarning)

	StyleError = lipgloss.NewStyle().
			Foreground(ColorError)

	StyleSuccess = lipgloss.NewStyle().
			Foreground(ColorSuccess)

	StylePending = lipgloss.NewStyle().
			Foreground(ColorPending)

	// StyleBrush marks an unselected brush option.
	StyleBrush = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Padding(0, 1)

	// StyleBrushSelected marks the armed brush option.
	StyleBrushSelected = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorPrimary).
				Underline(true).
				Padding(0, 1)

	// StyleHelp wraps the key help at the bottom.
	StyleHelp = lipgloss.NewStyle().
			MarginTop(1)
)

// StyleCanvasBox frames the heatmap. The chart's origin sits one border
// column and one padding column in from the left, one border row down.
var StyleCanvasBox = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(ColorBorder).
	Padding(0, 1)

const (
	canvasInsetX = 2
	canvasInsetY = 1
)

// MessageStyle returns the style for a status message kind.
func MessageStyle(kind painter.Kind) lipgloss.Style {
	switch kind {
	case painter.KindSuccess:
		return StyleSuccess
	case painter.KindError:
		return StyleError
	case painter.KindPending:
		return StylePending
	default:
		return StyleSubtitle
	}
}
