package logging

import (
	"net/url"
	"regexp"
	"strings"
)

const redacted = "xxxxx"

// urlPattern matches HTTP(S) URLs.
var urlPattern = regexp.MustCompile(`https?://[^\s"']+`)

// RedactURL hides credentials and query values in raw. Strings that do not
// parse as URLs are returned unchanged.
func RedactURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return raw
	}
	if u.User != nil {
		// a bare userinfo is usually a token
		if _, ok := u.User.Password(); ok {
			u.User = url.UserPassword(u.User.Username(), redacted)
		} else {
			u.User = url.User(redacted)
		}
	}
	if u.RawQuery != "" {
		q := u.Query()
		for k := range q {
			q.Set(k, redacted)
		}
		u.RawQuery = q.Encode()
	}
	return u.String()
}

// SanitizeLogMessage redacts every URL embedded in msg. Transport errors
// quote the request URL, so they go through here before being logged.
func SanitizeLogMessage(msg string) string {
	if !strings.Contains(msg, "://") {
		return msg
	}
	return urlPattern.ReplaceAllStringFunc(msg, RedactURL)
}
