// Package heatmap renders a GitHub-like calendar heatmap of day cells and
// dispatches pointer events on those cells to registered handlers.
package heatmap

import (
	"fmt"
	"time"

	"github.com/manav03panchal/gitfiti/internal/model"
)

// DaysPerWeek is the number of rows in the grid, Sunday first.
const DaysPerWeek = 7

// TooltipUnit labels counts >= Min (up to the next unit) in tooltips.
type TooltipUnit struct {
	Min  int
	Unit string
}

// DefaultTooltipUnits returns singular/plural labels for contributions.
func DefaultTooltipUnits() []TooltipUnit {
	return []TooltipUnit{
		{Min: 0, Unit: "contributions"},
		{Min: 1, Unit: "contribution"},
		{Min: 2, Unit: "contributions"},
	}
}

// Cell is one rendered day square. Fill may be changed directly by handlers
// and stays until the next full Render.
type Cell struct {
	Date time.Time
	Col  int
	Row  int
	Fill string
}

// Handler receives the current record for a cell and the cell itself.
// The record is looked up at dispatch time, so Count is always current.
type Handler func(rec model.DayRecord, cell *Cell)

// Config configures a Chart.
type Config struct {
	Data           []model.DayRecord
	MaxValue       int
	Brackets       model.Brackets
	TooltipEnabled bool
	TooltipUnits   []TooltipUnit
	OnPointerDown  Handler
	OnPointerEnter Handler
}

// Chart lays out records by week and weekday.
type Chart struct {
	data     []model.DayRecord
	maxValue int
	brackets model.Brackets
	units    []TooltipUnit
	tooltip  bool

	onPointerDown  Handler
	onPointerEnter Handler

	// grid[col][row], nil outside the data's date range
	grid [][]*Cell
}

// New creates a chart from cfg. Call Render before displaying it.
func New(cfg Config) *Chart {
	units := cfg.TooltipUnits
	if len(units) == 0 {
		units = DefaultTooltipUnits()
	}
	brackets := cfg.Brackets
	if len(brackets) == 0 {
		brackets = model.DefaultBrackets()
	}
	maxValue := cfg.MaxValue
	if maxValue <= 0 {
		maxValue = model.DefaultMaxCount
	}

	return &Chart{
		data:           cfg.Data,
		maxValue:       maxValue,
		brackets:       brackets,
		units:          units,
		tooltip:        cfg.TooltipEnabled,
		onPointerDown:  cfg.OnPointerDown,
		onPointerEnter: cfg.OnPointerEnter,
	}
}

// Render rebuilds the cell grid from the data and recomputes every fill.
// data should be sorted in ascending order by date.
func (c *Chart) Render() {
	c.grid = nil
	if len(c.data) == 0 {
		return
	}

	start := c.data[0].Date
	end := c.data[len(c.data)-1].Date

	// align first column to Sunday
	firstSunday := start.AddDate(0, 0, -int(start.Weekday()))

	for day := 0; ; day++ {
		date := firstSunday.AddDate(0, 0, day)
		if date.After(end) && !model.SameDay(date, end) {
			break
		}
		col, row := day/DaysPerWeek, day%DaysPerWeek
		if row == 0 {
			c.grid = append(c.grid, make([]*Cell, DaysPerWeek))
		}
		if date.Before(start) && !model.SameDay(date, start) {
			continue
		}

		count := 0
		if i := model.FindDay(c.data, date); i >= 0 {
			count = c.data[i].Count
		}
		c.grid[col][row] = &Cell{
			Date: date,
			Col:  col,
			Row:  row,
			Fill: c.brackets.ColorFor(count),
		}
	}
}

// Data returns the backing records. Mutating an element updates the chart's
// data in place; cell fills are only recomputed by Render.
func (c *Chart) Data() []model.DayRecord {
	return c.data
}

// SetData replaces the backing records.
func (c *Chart) SetData(data []model.DayRecord) {
	c.data = data
}

// MaxValue returns the scale maximum.
func (c *Chart) MaxValue() int {
	return c.maxValue
}

// Brackets returns the colour brackets.
func (c *Chart) Brackets() model.Brackets {
	return c.brackets
}

// TooltipEnabled reports whether tooltips are shown.
func (c *Chart) TooltipEnabled() bool {
	return c.tooltip
}

// SetTooltipEnabled toggles tooltip display.
func (c *Chart) SetTooltipEnabled(enabled bool) {
	c.tooltip = enabled
}

// Weeks returns the number of columns.
func (c *Chart) Weeks() int {
	return len(c.grid)
}

// CellAt returns the cell at col/row, or nil when there is none.
func (c *Chart) CellAt(col, row int) *Cell {
	if col < 0 || col >= len(c.grid) || row < 0 || row >= DaysPerWeek {
		return nil
	}
	return c.grid[col][row]
}

// CellForDate returns the cell on the same calendar day as date, or nil.
func (c *Chart) CellForDate(date time.Time) *Cell {
	for _, week := range c.grid {
		for _, cell := range week {
			if cell != nil && model.SameDay(cell.Date, date) {
				return cell
			}
		}
	}
	return nil
}

// LastCell returns the most recent day's cell.
func (c *Chart) LastCell() *Cell {
	for col := len(c.grid) - 1; col >= 0; col-- {
		for row := DaysPerWeek - 1; row >= 0; row-- {
			if cell := c.grid[col][row]; cell != nil {
				return cell
			}
		}
	}
	return nil
}

// Record returns the current record for cell. A day without a record
// reports a zero count.
func (c *Chart) Record(cell *Cell) model.DayRecord {
	if i := model.FindDay(c.data, cell.Date); i >= 0 {
		return c.data[i]
	}
	return model.DayRecord{Date: cell.Date}
}

// PointerDown dispatches a pointer press on col/row. It reports whether a
// cell was hit.
func (c *Chart) PointerDown(col, row int) bool {
	return c.dispatch(c.onPointerDown, col, row)
}

// PointerEnter dispatches the pointer moving onto col/row.
func (c *Chart) PointerEnter(col, row int) bool {
	return c.dispatch(c.onPointerEnter, col, row)
}

func (c *Chart) dispatch(h Handler, col, row int) bool {
	cell := c.CellAt(col, row)
	if cell == nil {
		return false
	}
	if h != nil {
		h(c.Record(cell), cell)
	}
	return true
}

// Unit returns the tooltip unit label for count.
func (c *Chart) Unit(count int) string {
	unit := ""
	for _, u := range c.units {
		if count >= u.Min {
			unit = u.Unit
		}
	}
	return unit
}

// Tooltip describes cell, or returns "" when tooltips are disabled.
func (c *Chart) Tooltip(cell *Cell) string {
	if !c.tooltip || cell == nil {
		return ""
	}
	count := c.Record(cell).Count
	return fmt.Sprintf("%d %s on %s", count, c.Unit(count), cell.Date.Format("Jan 2, 2006"))
}
