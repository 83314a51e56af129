package rules

import (
	"regexp"
	"strings"
)

var spaceRuns = regexp.MustCompile(`\s+`)

// NormalizeSpace collapses every run of whitespace into a single space and
// trims both ends. Every transform output passes through this, so two steps
// that differ only in spacing are the same step.
func NormalizeSpace(expr string) string {
	return strings.TrimSpace(spaceRuns.ReplaceAllString(expr, " "))
}

// containsToken reports whether the raw token occurs in the expression.
// Tokens are matched literally; rule predicates never interpret the markup.
func containsToken(expr, token string) bool {
	return strings.Contains(expr, token)
}

// replaceExact substitutes the first occurrence of token with repl, or fails
// with a TransformError naming the token when it is absent.
func replaceExact(ruleID, expr, token, repl string) (string, error) {
	if !strings.Contains(expr, token) {
		return "", transformErr(ruleID, token)
	}
	return strings.Replace(expr, token, repl, 1), nil
}
