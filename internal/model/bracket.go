package model

import (
	"fmt"
	"regexp"

	"github.com/manav03panchal/gitfiti/internal/errors"
)

// ColorBracket maps every count >= Min (up to the next bracket) to Color.
type ColorBracket struct {
	Min   int    `json:"min" yaml:"min"`
	Color string `json:"color" yaml:"color"`
}

// Brackets is a step function from count to colour, sorted ascending by Min.
type Brackets []ColorBracket

// DefaultBrackets returns the stock five-step green palette.
func DefaultBrackets() Brackets {
	return Brackets{
		{Min: 0, Color: "#eeeeee"},
		{Min: 1, Color: "#c6e48b"},
		{Min: 5, Color: "#7bc96f"},
		{Min: 10, Color: "#239a3b"},
		{Min: 14, Color: "#196127"},
	}
}

// hexColorRegex validates hex color format.
var hexColorRegex = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// ValidateColor checks if a color string is a valid hex color.
func ValidateColor(color string) bool {
	return hexColorRegex.MatchString(color)
}

// Validate checks the bracket invariants: non-empty, first Min is 0,
// strictly ascending Mins, hex colours.
func (b Brackets) Validate() error {
	if len(b) == 0 {
		return errors.Wrap(errors.ErrInvalidPalette, "no brackets defined")
	}
	if b[0].Min != 0 {
		return errors.Wrapf(errors.ErrInvalidPalette, "first bracket must start at 0, got %d", b[0].Min)
	}
	for i, br := range b {
		if !ValidateColor(br.Color) {
			return errors.Wrapf(errors.ErrInvalidPalette, "bracket %d has invalid color %q", i, br.Color)
		}
		if i > 0 && br.Min <= b[i-1].Min {
			return errors.Wrapf(errors.ErrInvalidPalette, "bracket %d min %d is not above %d", i, br.Min, b[i-1].Min)
		}
	}
	return nil
}

// Index returns the index of the bracket with the greatest Min <= count.
// Counts below the first bracket resolve to bracket 0.
func (b Brackets) Index(count int) int {
	for i := len(b) - 1; i >= 0; i-- {
		if count >= b[i].Min {
			return i
		}
	}
	return 0
}

// ColorFor returns the display colour for count.
func (b Brackets) ColorFor(count int) string {
	if len(b) == 0 {
		return ""
	}
	return b[b.Index(count)].Color
}

// Next returns the count one bracket darker than count, wrapping to the
// first bracket after the last.
func (b Brackets) Next(count int) int {
	i := b.Index(count)
	if i == len(b)-1 {
		return b[0].Min
	}
	return b[i+1].Min
}

// Darkest returns the last bracket's Min, the placeholder for the scale max.
func (b Brackets) Darkest() int {
	return b[len(b)-1].Min
}

func (b ColorBracket) String() string {
	return fmt.Sprintf("%d+ %s", b.Min, b.Color)
}
