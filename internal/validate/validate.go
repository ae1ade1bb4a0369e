// Package validate provides input validation helpers for the Gitfiti CLI.
package validate

import (
	"net/url"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/manav03panchal/gitfiti/internal/errors"
)

const (
	// MaxURLLength is the maximum length for a URL.
	MaxURLLength = 2048
	// MaxCountLimit caps the scale maximum a palette or flag may request.
	MaxCountLimit = 1000
)

// HexColor validates a #rrggbb colour code.
func HexColor(color string) error {
	if !strings.HasPrefix(color, "#") {
		return errors.NewUserErrorWithField("color", color,
			"Invalid color format",
			"Use hex format like '#196127' or '#eeeeee'")
	}
	hex := strings.TrimPrefix(color, "#")
	if len(hex) != 6 {
		return errors.NewUserErrorWithField("color", color,
			"Invalid color format",
			"Use 6-digit hex format like '#196127'")
	}
	for _, c := range hex {
		if !((c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')) {
			return errors.NewUserErrorWithField("color", color,
				"Invalid hex character in color",
				"Use only hex digits (0-9, A-F)")
		}
	}
	return nil
}

// ServerURL validates the commit server's base URL. Plain http is accepted
// for any host since the server usually runs next to the painter.
func ServerURL(rawURL string) error {
	if rawURL == "" {
		return errors.NewUserError("Server URL cannot be empty", errors.GetSuggestion(errors.ErrInvalidServerURL)).For(errors.ErrInvalidServerURL)
	}
	if len(rawURL) > MaxURLLength {
		return errors.NewUserError("Server URL too long", "URLs must be 2048 characters or fewer").For(errors.ErrInvalidServerURL)
	}

	parsed, err := url.Parse(rawURL)
	if err != nil {
		return errors.NewUserErrorWithField("server", rawURL,
			"Invalid server URL", errors.GetSuggestion(errors.ErrInvalidServerURL)).For(errors.ErrInvalidServerURL)
	}
	if parsed.Scheme != "https" && parsed.Scheme != "http" {
		return errors.NewUserErrorWithField("server", rawURL,
			"Invalid server URL scheme",
			"Server URLs must start with http:// or https://").For(errors.ErrInvalidServerURL)
	}
	if parsed.Hostname() == "" {
		return errors.NewUserErrorWithField("server", rawURL,
			"Invalid server URL: missing hostname",
			"Provide a URL like http://localhost:5000").For(errors.ErrInvalidServerURL)
	}
	if parsed.RawQuery != "" || parsed.Fragment != "" {
		return errors.NewUserErrorWithField("server", rawURL,
			"Server URL must not carry a query or fragment",
			"Provide only the scheme, host and optional path prefix").For(errors.ErrInvalidServerURL)
	}
	return nil
}

// SVGPath validates an output path for the SVG export.
func SVGPath(path string) error {
	if strings.TrimSpace(path) == "" {
		return errors.NewUserError("SVG path cannot be empty", "Provide a file name like canvas.svg")
	}
	if !strings.EqualFold(filepath.Ext(path), ".svg") {
		return errors.NewUserErrorWithField("svg", path,
			"SVG path must end in .svg",
			"Provide a file name like canvas.svg")
	}
	if isDir, err := statDir(filepath.Dir(path)); err != nil || !isDir {
		return errors.NewUserErrorWithField("svg", path,
			"Directory does not exist",
			"Create the directory first or write the file elsewhere")
	}
	return nil
}

// NonEmpty validates that a string is not empty.
func NonEmpty(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return errors.NewUserError(
			field+" cannot be empty",
			"Provide a value for "+field)
	}
	return nil
}

// InRange validates that an integer is within [min, max].
func InRange(field string, value, min, max int) error {
	if value < min || value > max {
		return errors.NewUserErrorWithField(field, strconv.Itoa(value),
			"Value out of range",
			"Must be between "+strconv.Itoa(min)+" and "+strconv.Itoa(max))
	}
	return nil
}
