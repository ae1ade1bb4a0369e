package heatmap

import (
	"fmt"
	"html"
	"strings"
)

// SVGOptions configures SVG rendering.
type SVGOptions struct {
	CellSize    int    // size of each day cell (px)
	CellPadding int    // padding between cells (px)
	FontSize    int    // font size for month labels (px)
	FontFamily  string // font family for labels
	Title       string // optional title above the grid
}

// DefaultSVGOptions returns GitHub-like sizing.
func DefaultSVGOptions() SVGOptions {
	return SVGOptions{
		CellSize:    12,
		CellPadding: 2,
		FontSize:    10,
		FontFamily:  "sans-serif",
	}
}

// SVG renders the chart's current cell fills as a standalone SVG document.
func (c *Chart) SVG(opts SVGOptions) string {
	if c.Weeks() == 0 {
		return ""
	}

	titleHeight := 0
	if opts.Title != "" {
		titleHeight = opts.FontSize + 8
	}
	step := opts.CellSize + opts.CellPadding
	width := c.Weeks()*step + opts.CellPadding
	height := DaysPerWeek*step + opts.CellPadding + opts.FontSize + 4 + titleHeight

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<svg width="%d" height="%d" xmlns="http://www.w3.org/2000/svg">`+"\n", width, height))
	sb.WriteString(fmt.Sprintf(`  <style>.label{font-family:%s;font-size:%dpx;fill:#666}.title{font-family:%s;font-size:%dpx;fill:#333;font-weight:bold}</style>`+"\n",
		opts.FontFamily, opts.FontSize, opts.FontFamily, opts.FontSize))

	if opts.Title != "" {
		sb.WriteString(fmt.Sprintf(`  <text x="%d" y="%d" class="title">%s</text>`+"\n",
			opts.CellPadding, opts.FontSize, html.EscapeString(opts.Title)))
	}

	// month labels
	lastMonth := -1
	labelY := opts.FontSize + titleHeight
	for col := 0; col < c.Weeks(); col++ {
		first := c.firstCellInColumn(col)
		if first == nil {
			continue
		}
		month := int(first.Date.Month()) - 1
		if month == lastMonth || (lastMonth != -1 && first.Date.Day() > DaysPerWeek) {
			continue
		}
		lastMonth = month
		sb.WriteString(fmt.Sprintf(`  <text x="%d" y="%d" class="label">%s</text>`+"\n",
			opts.CellPadding+col*step, labelY, months[month]))
	}

	for col := 0; col < c.Weeks(); col++ {
		for row := 0; row < DaysPerWeek; row++ {
			cell := c.grid[col][row]
			if cell == nil {
				continue
			}
			count := c.Record(cell).Count
			x := opts.CellPadding + col*step
			y := opts.CellPadding + opts.FontSize + 4 + titleHeight + row*step
			key := cell.Date.Format("2006-01-02")

			sb.WriteString(fmt.Sprintf(`  <rect x="%d" y="%d" width="%d" height="%d" fill="%s" data-date="%s" data-count="%d">`+"\n",
				x, y, opts.CellSize, opts.CellSize, cell.Fill, key, count))
			sb.WriteString(fmt.Sprintf(`    <title>%d %s on %s</title>`+"\n",
				count, c.Unit(count), cell.Date.Format("Jan 2, 2006")))
			sb.WriteString(`  </rect>` + "\n")
		}
	}

	sb.WriteString(`</svg>`)
	return sb.String()
}
