package errors

import "errors"

// Suggestions maps common errors to helpful suggestions.
var Suggestions = map[error]string{
	// User input errors
	ErrNoDarkestBracket:  "Paint at least one day with the darkest color, then verify again.",
	ErrNotVerified:       "Press 'v' to verify the canvas before pushing.",
	ErrPushInFlight:      "Wait for the current push to finish.",
	ErrNothingToPush:     "Paint some days and verify before pushing.",
	ErrBracketOutOfRange: "Use 'gitfiti brackets' to see the available brackets.",
	ErrInvalidBrush:      "Use 'auto', a bracket like '#2', or a non-negative count like '7'.",
	ErrInvalidPalette:    "Brackets must start at 0, ascend strictly, and use colors like '#196127'.",
	ErrInvalidServerURL:  "Provide a URL like 'http://localhost:5000' via --server or GITFITI_SERVER_URL.",
	ErrInvalidDate:       "Try formats like 'today', 'yesterday', '2024-12-31', or '3 days ago'.",
	ErrNotATerminal:      "Run 'gitfiti paint' from an interactive terminal.",

	// System errors
	ErrPushFailed:         "Check the server logs; verify again to retry the push.",
	ErrNetworkUnavailable: "Check that the gitfiti server is running and reachable.",
	ErrTimeout:            "The operation took too long. Try again or check your network connection.",
	ErrPermissionDenied:   "Check file permissions in your config and state directories (~/.config/gitfiti/, ~/.local/state/gitfiti/).",
}

// GetSuggestion returns a suggestion for an error, if available.
// It walks the error chain to find matching suggestions.
func GetSuggestion(err error) string {
	if err == nil {
		return ""
	}

	// A UserError's own suggestion is the most specific
	if ue, ok := AsUserError(err); ok && ue.Suggestion != "" {
		return ue.Suggestion
	}

	for knownErr, suggestion := range Suggestions {
		if errors.Is(err, knownErr) {
			return suggestion
		}
	}

	return ""
}

// GetCategorySuggestion returns a generic suggestion based on error category.
func GetCategorySuggestion(err error) string {
	if IsUserError(err) {
		return "Check your input and try again. Use --help for usage information."
	}
	if IsSystemError(err) {
		return "This is a system error. Check system resources and try again."
	}
	if IsRecoverableError(err) {
		return "This error may resolve itself. Verify again and push once more."
	}
	return ""
}

// CommandExamples provides example commands for common errors.
var CommandExamples = map[error][]string{
	ErrInvalidBrush: {
		"gitfiti paint --brush auto",
		"gitfiti paint --brush '#4'",
		"gitfiti paint --brush 7",
	},
	ErrInvalidDate: {
		"gitfiti paint --end today",
		"gitfiti paint --end '2024-12-31'",
	},
	ErrInvalidServerURL: {
		"gitfiti paint --server http://localhost:5000",
		"GITFITI_SERVER_URL=https://gitfiti.example.com gitfiti paint",
	},
}

// GetExamples returns example commands for an error.
func GetExamples(err error) []string {
	for knownErr, examples := range CommandExamples {
		if errors.Is(err, knownErr) {
			return examples
		}
	}
	return nil
}
