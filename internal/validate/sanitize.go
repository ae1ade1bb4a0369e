package validate

import (
	"os"
	"strings"
	"unicode"
	"unicode/utf8"
)

// MaxMessageLength bounds server-provided text shown in the painter.
const MaxMessageLength = 200

// StripControlChars removes all control characters from a string.
func StripControlChars(s string) string {
	var sb strings.Builder
	for _, r := range s {
		if !unicode.IsControl(r) {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

// TruncateString truncates s to maxLen runes, adding "..." if truncated.
func TruncateString(s string, maxLen int) string {
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}
	runes := []rune(s)
	if maxLen <= 3 {
		return string(runes[:maxLen])
	}
	return string(runes[:maxLen-3]) + "..."
}

// ServerMessage cleans a message received from the commit server so it can
// be printed on a single status line.
func ServerMessage(msg string) string {
	msg = StripControlChars(strings.Join(strings.Fields(msg), " "))
	return TruncateString(msg, MaxMessageLength)
}

func statDir(dir string) (bool, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return false, err
	}
	return info.IsDir(), nil
}
