// Package parser turns user-supplied text into canvas parameters.
package parser

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/markusmobius/go-dateparser"
)

// DateResult holds the parsed end date and any error.
type DateResult struct {
	Time  time.Time
	Error error
}

// relativeDayRegex matches offsets like "-3d" or "-2w".
var relativeDayRegex = regexp.MustCompile(`^-(\d+)([dw])$`)

// ParseEndDate parses the last day of the canvas relative to now. It accepts
// "today", day offsets like "-3d", ISO dates and natural language such as
// "yesterday" or "last friday". The result keeps now's wall clock and
// location so that it lands on the intended calendar day.
func ParseEndDate(input string, now time.Time) DateResult {
	input = strings.TrimSpace(input)
	switch strings.ToLower(input) {
	case "", "now", "today":
		return DateResult{Time: now}
	}

	if match := relativeDayRegex.FindStringSubmatch(input); match != nil {
		n, err := strconv.Atoi(match[1])
		if err != nil {
			return DateResult{Error: NewEndDateError(input, "offset too large")}
		}
		if match[2] == "w" {
			n *= 7
		}
		return DateResult{Time: now.AddDate(0, 0, -n)}
	}

	cfg := &dateparser.Configuration{
		CurrentTime: now,
	}
	result, err := dateparser.Parse(cfg, input)
	if err != nil || result.Time.IsZero() {
		return DateResult{Error: NewEndDateError(input, "could not parse date")}
	}

	y, m, d := result.Time.Date()
	end := time.Date(y, m, d, now.Hour(), now.Minute(), now.Second(), now.Nanosecond(), now.Location())
	if end.After(now) {
		return DateResult{Error: NewEndDateError(input, "date is in the future")}
	}
	return DateResult{Time: end}
}
