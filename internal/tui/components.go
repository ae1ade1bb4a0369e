package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/lipgloss"

	"github.com/manav03panchal/gitfiti/internal/model"
	"github.com/manav03panchal/gitfiti/internal/painter"
)

// BrushComponent displays the brush options: Auto, then one swatch per
// bracket, with the armed option highlighted.
type BrushComponent struct {
	Brackets model.Brackets
	Selected int
}

// NewBrushComponent creates a brush selector for p.
func NewBrushComponent(p *painter.Painter) *BrushComponent {
	return &BrushComponent{
		Brackets: p.Brackets(),
		Selected: p.Selected(),
	}
}

// View renders the brush selector.
func (bc *BrushComponent) View() string {
	options := make([]string, 0, len(bc.Brackets)+1)
	options = append(options, bc.option(0, "Auto"))
	for i, b := range bc.Brackets {
		swatch := lipgloss.NewStyle().Foreground(lipgloss.Color(b.Color)).Render("■")
		options = append(options, bc.option(i+1, fmt.Sprintf("%s %d", swatch, b.Min)))
	}
	return StyleSubtitle.Render("Brush") + " " + strings.Join(options, "")
}

func (bc *BrushComponent) option(i int, label string) string {
	if i == bc.Selected {
		return StyleBrushSelected.Render("[" + label + "]")
	}
	return StyleBrush.Render(" " + label + " ")
}

// StatusComponent displays the verify and push messages.
type StatusComponent struct {
	Verify  painter.Message
	Push    painter.Message
	Spinner spinner.Model
}

// View renders the visible messages, one per line.
func (sc *StatusComponent) View() string {
	var lines []string
	if sc.Verify.Visible() {
		lines = append(lines, MessageStyle(sc.Verify.Kind).Render(sc.Verify.Text))
	}
	if sc.Push.Visible() {
		text := MessageStyle(sc.Push.Kind).Render(sc.Push.Text)
		if sc.Push.Kind == painter.KindPending {
			text = sc.Spinner.View() + " " + text
		}
		lines = append(lines, text)
	}
	return strings.Join(lines, "\n")
}
