package model

import (
	"strconv"
	"strings"

	"github.com/manav03panchal/gitfiti/internal/errors"
)

// BrushKind distinguishes the two brush variants.
type BrushKind int

const (
	// BrushAuto advances a cell to the next bracket on every stroke.
	BrushAuto BrushKind = iota
	// BrushFixed paints an exact count.
	BrushFixed
)

// Brush decides which count a paint stroke applies. The zero value is Auto.
type Brush struct {
	Kind  BrushKind
	Count int
}

// AutoBrush returns the cycling brush.
func AutoBrush() Brush {
	return Brush{Kind: BrushAuto}
}

// FixedBrush returns a brush that paints exactly count.
func FixedBrush(count int) Brush {
	return Brush{Kind: BrushFixed, Count: count}
}

// IsAuto reports whether this is the cycling brush.
func (b Brush) IsAuto() bool {
	return b.Kind == BrushAuto
}

// Apply returns the count a stroke leaves on a cell currently holding current.
func (b Brush) Apply(current int, brackets Brackets) int {
	if b.IsAuto() {
		return brackets.Next(current)
	}
	return b.Count
}

func (b Brush) String() string {
	if b.IsAuto() {
		return "auto"
	}
	return strconv.Itoa(b.Count)
}

// ParseBrush parses "auto", a bracket reference "#N", or a plain count.
func ParseBrush(s string, brackets Brackets) (Brush, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	if s == "" || s == "auto" {
		return AutoBrush(), nil
	}

	if ref, ok := strings.CutPrefix(s, "#"); ok {
		idx, err := strconv.Atoi(ref)
		if err != nil || idx < 0 || idx >= len(brackets) {
			return Brush{}, errors.NewUserErrorWithField("brush", s,
				"Unknown bracket", errors.GetSuggestion(errors.ErrBracketOutOfRange)).For(errors.ErrBracketOutOfRange)
		}
		return FixedBrush(brackets[idx].Min), nil
	}

	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return Brush{}, errors.NewUserErrorWithField("brush", s,
			"Invalid brush", errors.GetSuggestion(errors.ErrInvalidBrush)).For(errors.ErrInvalidBrush)
	}
	return FixedBrush(n), nil
}
