// Package logging provides secret masking and error presentation for the
// datsan client. Anything that may reach a terminal or a log line passes
// through Mask first so that passwords, bearer tokens, and refresh tokens
// stored by the session layer are never echoed back to the user.
package logging

import (
	"regexp"
	"strings"
)

var (
	rePassword = regexp.MustCompile(`(?i)("?(?:old_|new_)?password"?\s*[=:]\s*"?)([^\s",;]+)`)
	reBearer   = regexp.MustCompile(`(?i)(bearer\s+)([A-Za-z0-9._-]+)`)
	reToken    = regexp.MustCompile(`(?i)("?(?:access|refresh)(?:_token)?"?\s*[=:]\s*"?)([A-Za-z0-9._-]+)`)
)

// Mask replaces sensitive values in the input string with "***".
// It covers password fields in JSON or key=value form, Authorization
// headers, and access/refresh token pairs.
func Mask(s string) string {
	out := s
	out = rePassword.ReplaceAllString(out, "$1***")
	out = reBearer.ReplaceAllString(out, "$1***")
	out = reToken.ReplaceAllString(out, "$1***")
	for _, k := range []string{"DATSAN_PASSWORD", "ACCESS_TOKEN", "REFRESH_TOKEN"} {
		out = strings.ReplaceAll(out, k+"=", k+"=***")
	}
	return out
}
