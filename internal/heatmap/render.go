package heatmap

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Terminal layout. Every cell is CellWidth columns wide; the grid starts
// below one row of month labels and right of the weekday labels.
const (
	LabelWidth   = 4
	CellWidth    = 2
	HeaderHeight = 1
)

const (
	glyphCell   = "■"
	glyphCursor = "▣"
)

var (
	months   = []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}
	weekdays = []string{"", "Mon", "", "Wed", "", "Fri", ""}

	styleLabel = lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280"))
)

// Width returns the rendered width of the chart in terminal columns.
func (c *Chart) Width() int {
	return LabelWidth + c.Weeks()*CellWidth
}

// Height returns the rendered height of the chart in terminal rows.
func (c *Chart) Height() int {
	return HeaderHeight + DaysPerWeek
}

// CellAtPoint maps a terminal position, relative to the chart's top-left
// corner, to a grid position. ok is false outside the cell area.
func (c *Chart) CellAtPoint(x, y int) (col, row int, ok bool) {
	if x < LabelWidth || y < HeaderHeight {
		return 0, 0, false
	}
	col = (x - LabelWidth) / CellWidth
	row = y - HeaderHeight
	if col >= c.Weeks() || row >= DaysPerWeek {
		return 0, 0, false
	}
	return col, row, true
}

// View draws the chart using each cell's current fill. cursor, if non-nil,
// is drawn with a distinct glyph.
func (c *Chart) View(cursor *Cell) string {
	var sb strings.Builder

	sb.WriteString(c.monthLabels())
	sb.WriteString("\n")

	for row := 0; row < DaysPerWeek; row++ {
		sb.WriteString(styleLabel.Render(padRight(weekdays[row], LabelWidth)))
		for col := 0; col < c.Weeks(); col++ {
			cell := c.grid[col][row]
			if cell == nil {
				sb.WriteString(strings.Repeat(" ", CellWidth))
				continue
			}
			glyph := glyphCell
			if cursor == cell {
				glyph = glyphCursor
			}
			sb.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(cell.Fill)).Render(glyph))
			sb.WriteString(strings.Repeat(" ", CellWidth-1))
		}
		if row < DaysPerWeek-1 {
			sb.WriteString("\n")
		}
	}

	return sb.String()
}

// monthLabels places a month name over the first week that starts in it.
func (c *Chart) monthLabels() string {
	line := []rune(strings.Repeat(" ", c.Width()+3))
	lastMonth := -1
	for col := 0; col < c.Weeks(); col++ {
		first := c.firstCellInColumn(col)
		if first == nil {
			continue
		}
		month := int(first.Date.Month()) - 1
		if month == lastMonth {
			continue
		}
		if lastMonth != -1 && first.Date.Day() > DaysPerWeek {
			continue
		}
		lastMonth = month
		x := LabelWidth + col*CellWidth
		copy(line[x:], []rune(months[month]))
	}
	return styleLabel.Render(strings.TrimRight(string(line), " "))
}

func (c *Chart) firstCellInColumn(col int) *Cell {
	for row := 0; row < DaysPerWeek; row++ {
		if cell := c.grid[col][row]; cell != nil {
			return cell
		}
	}
	return nil
}

// Legend draws "Less ■ ■ ■ ■ ■ More" using the bracket colours.
func (c *Chart) Legend() string {
	parts := []string{styleLabel.Render("Less")}
	for _, b := range c.brackets {
		parts = append(parts, lipgloss.NewStyle().Foreground(lipgloss.Color(b.Color)).Render(glyphCell))
	}
	parts = append(parts, styleLabel.Render("More"))
	return strings.Join(parts, " ")
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}
