package parser

import (
	"fmt"
	"strings"

	"github.com/manav03panchal/gitfiti/internal/errors"
)

// DateParseError represents a date parsing error with helpful suggestions.
type DateParseError struct {
	Input      string
	Field      string
	Message    string
	Examples   []string
	Suggestion string
}

func (e *DateParseError) Error() string {
	return fmt.Sprintf("invalid %s '%s': %s", e.Field, e.Input, e.Message)
}

func (e *DateParseError) Unwrap() error {
	return errors.ErrInvalidDate
}

// FormatWithExamples returns the error message with example suggestions.
func (e *DateParseError) FormatWithExamples() string {
	var sb strings.Builder
	sb.WriteString(e.Error())

	if len(e.Examples) > 0 {
		sb.WriteString("\n\nValid examples:\n")
		for _, ex := range e.Examples {
			sb.WriteString("  - ")
			sb.WriteString(ex)
			sb.WriteString("\n")
		}
	}

	if e.Suggestion != "" {
		sb.WriteString("\n")
		sb.WriteString(e.Suggestion)
	}

	return sb.String()
}

// EndDateExamples provides example --end values.
var EndDateExamples = []string{
	"today",
	"yesterday",
	"-2w",
	"last friday",
	"2024-12-31",
}

// NewEndDateError creates an end date parse error with standard examples.
func NewEndDateError(input, message string) *DateParseError {
	return &DateParseError{
		Input:      input,
		Field:      "end date",
		Message:    message,
		Examples:   EndDateExamples,
		Suggestion: "The canvas ends on this day and covers the 365 days before it.",
	}
}

// ToUserError converts a DateParseError to a UserError for consistent handling.
func (e *DateParseError) ToUserError() *errors.UserError {
	suggestion := e.Suggestion
	if len(e.Examples) > 0 && suggestion == "" {
		suggestion = fmt.Sprintf("Try: %s", strings.Join(e.Examples[:min(3, len(e.Examples))], ", "))
	}
	return errors.NewUserErrorWithField(e.Field, e.Input, e.Message, suggestion).For(errors.ErrInvalidDate)
}
