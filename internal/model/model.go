// Package model defines the domain models for Gitfiti.
package model

import "time"

// Grid and scale constants.
const (
	// GridDays is the number of day cells on the canvas: today and the 365 days before it.
	GridDays = 366

	// DefaultMaxCount is the real upper bound of the contribution scale.
	// The darkest bracket is painted with a placeholder count and the first
	// occurrence is remapped to this value when verifying.
	DefaultMaxCount = 24
)

// CommitDateLayout is the wire format for commit dates: UTC, literal Z suffix.
const CommitDateLayout = "2006-01-02T15:04:05Z"

// FormatCommitDate formats t as an ISO-8601 UTC timestamp ending in "Z".
func FormatCommitDate(t time.Time) string {
	return t.UTC().Format(CommitDateLayout)
}

// SameDay reports whether a and b fall on the same calendar day.
// b is compared in a's location.
func SameDay(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.In(a.Location()).Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
