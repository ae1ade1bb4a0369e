package output

import (
	"github.com/manav03panchal/gitfiti/internal/model"
)

// JSONFormatter provides JSON-specific formatting.
type JSONFormatter struct {
	*Formatter
}

// NewJSONFormatter creates a new JSON formatter.
func NewJSONFormatter(f *Formatter) *JSONFormatter {
	return &JSONFormatter{Formatter: f}
}

// BracketOutput represents a bracket in JSON output.
type BracketOutput struct {
	Index int    `json:"index"`
	Min   int    `json:"min"`
	Color string `json:"color"`
}

// BracketsResponse represents the brackets listing in JSON.
type BracketsResponse struct {
	Max      int             `json:"max"`
	Darkest  int             `json:"darkest"`
	Brackets []BracketOutput `json:"brackets"`
}

// NewBracketsResponse creates a BracketsResponse from a palette.
func NewBracketsResponse(brackets model.Brackets, maxCount int) BracketsResponse {
	resp := BracketsResponse{
		Max:      maxCount,
		Darkest:  brackets.Darkest(),
		Brackets: make([]BracketOutput, len(brackets)),
	}
	for i, b := range brackets {
		resp.Brackets[i] = BracketOutput{Index: i, Min: b.Min, Color: b.Color}
	}
	return resp
}

// SummaryResponse represents a finished session in JSON.
type SummaryResponse struct {
	State       string         `json:"state"`
	Brush       string         `json:"brush"`
	Start       string         `json:"start"`
	End         string         `json:"end"`
	PaintedDays int            `json:"painted_days"`
	Verify      string         `json:"verify_message,omitempty"`
	Push        string         `json:"push_message,omitempty"`
	Commits     []model.Commit `json:"commits,omitempty"`
	Total       int            `json:"total,omitempty"`
	SVGPath     string         `json:"svg,omitempty"`
}

// NewSummaryResponse creates a SummaryResponse from a Summary.
func NewSummaryResponse(s Summary) SummaryResponse {
	return SummaryResponse{
		State:       s.State,
		Brush:       s.Brush,
		Start:       FormatDate(s.Start),
		End:         FormatDate(s.End),
		PaintedDays: s.PaintedDays,
		Verify:      s.Verify,
		Push:        s.Push,
		Commits:     s.Pending.Commits,
		Total:       s.Pending.Total,
		SVGPath:     s.SVGPath,
	}
}

// ErrorResponse represents an error in JSON.
type ErrorResponse struct {
	Status     string `json:"status"`
	Error      string `json:"error"`
	Suggestion string `json:"suggestion,omitempty"`
}

// PrintBrackets outputs the palette in JSON format.
func (j *JSONFormatter) PrintBrackets(brackets model.Brackets, maxCount int) error {
	return j.JSON(NewBracketsResponse(brackets, maxCount))
}

// PrintSummary outputs a session summary in JSON format.
func (j *JSONFormatter) PrintSummary(s Summary) error {
	return j.JSON(NewSummaryResponse(s))
}

// PrintError outputs an error in JSON format.
func (j *JSONFormatter) PrintError(errMsg, suggestion string) error {
	return j.JSON(ErrorResponse{
		Status:     "error",
		Error:      errMsg,
		Suggestion: suggestion,
	})
}
