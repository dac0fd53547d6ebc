package logging

import (
	"log/slog"
	"regexp"

	"github.com/m-mizutani/masq"
)

// SensitiveHeaders lists HTTP header names (lowercase) whose values are never
// logged. The HTTP middleware's RedactHeaders reads the same set.
var SensitiveHeaders = map[string]bool{
	"authorization": true,
	"cookie":        true,
	"set-cookie":    true,
}

// SessionIDKey is the attribute key for session ids. Values logged under it
// are redacted.
const SessionIDKey = "session_id"

// sessionAssignPattern matches inline "session-id=<uuid>" fragments, such as
// a cookie header copied into an error string.
var sessionAssignPattern = regexp.MustCompile(
	`(?i)session[_\-]?id\s*[:=]\s*[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}`)

// bearerPattern matches "Bearer <token>" strings that appear as raw values.
var bearerPattern = regexp.MustCompile(`(?i)bearer\s+[a-zA-Z0-9\-._~+/]+=*`)

// newRedactAttr returns a masq ReplaceAttr that redacts known sensitive keys
// and any value matching the session or bearer patterns.
func newRedactAttr() func([]string, slog.Attr) slog.Attr {
	opts := make([]masq.Option, 0, len(SensitiveHeaders)+6)

	for name := range SensitiveHeaders {
		opts = append(opts, masq.WithFieldName(name))
	}

	opts = append(opts,
		masq.WithFieldName(SessionIDKey),
		masq.WithFieldName("password"),
		masq.WithFieldName("secret"),
		masq.WithFieldPrefix("secret_"),
		masq.WithRegex(sessionAssignPattern),
		masq.WithRegex(bearerPattern),
	)

	return masq.New(opts...)
}
