// Package redact provides utilities for redacting sensitive information from strings
// before they are logged or returned in error responses. It prevents the accidental
// leakage of credentials, connection strings, the hero directory API token (which
// travels in the request path), and SQL fragments that might appear in error messages.
package redact

import "regexp"

// Constants for redaction placeholders
const (
	RedactionPlaceholder          = "[REDACTED]"
	RedactedCredentialPlaceholder = "[REDACTED_CREDENTIAL]"
	RedactedKeyPlaceholder        = "[REDACTED_KEY]"
	RedactedTokenPlaceholder      = "[REDACTED_TOKEN]"
	RedactedSQLPlaceholder        = "[REDACTED_SQL]"
)

type rule struct {
	pattern     *regexp.Regexp
	replacement string
}

var (
	// Database connection strings
	dbConnRegex = regexp.MustCompile(`(?i)(postgres|postgresql|mysql|db|database)://[^@\s]+@`)

	// The hero directory embeds its token as the path segment after /api/
	apiPathTokenRegex = regexp.MustCompile(`(/api/)[^/\s"]+(/search/)`)

	// Credentials and tokens in key=value or key: value form
	passwordRegex = regexp.MustCompile(`(?i)(password|passwd|pwd)([=:\s]+['"]?)[^'"&\s]{3,}`)
	apiKeyRegex   = regexp.MustCompile(
		`(?i)(api[_-]?key|api[_-]?token|token|secret)(['"\s:=]+)[A-Za-z0-9_\-.~+/]{8,}`,
	)

	// SQL queries and fragments
	sqlRegex = regexp.MustCompile(
		`(?i)(SELECT|INSERT|UPDATE|DELETE|CREATE|ALTER|DROP)[\s\w,*()$=<>.']+(?:FROM|INTO|SET|TABLE|INDEX)(?:[\s\w,*()$=<>.']+)?`,
	)

	// secretRules strip credentials only; the rest of the message stays readable.
	secretRules = []rule{
		{dbConnRegex, "$1://" + RedactedCredentialPlaceholder + "@"},
		{apiPathTokenRegex, "${1}" + RedactedTokenPlaceholder + "${2}"},
		{passwordRegex, "${1}${2}" + RedactedCredentialPlaceholder},
		{apiKeyRegex, "${1}${2}" + RedactedKeyPlaceholder},
	}

	// logRules additionally hide SQL text.
	logRules = append(append([]rule{}, secretRules...), rule{sqlRegex, RedactedSQLPlaceholder})
)

// String redacts credentials and SQL fragments from the input string.
// Use it for anything that ends up in logs.
func String(input string) string {
	return apply(input, logRules)
}

// Error redacts sensitive information from an error's Error() output
func Error(err error) string {
	if err == nil {
		return ""
	}
	return String(err.Error())
}

// Secrets removes credentials and tokens but keeps the rest of the message,
// which makes it suitable for error messages returned to API clients.
func Secrets(input string) string {
	return apply(input, secretRules)
}

func apply(input string, rules []rule) string {
	if input == "" {
		return input
	}
	result := input
	for _, r := range rules {
		result = r.pattern.ReplaceAllString(result, r.replacement)
	}
	return result
}
