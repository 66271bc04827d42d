// pkg/model/missing.go
package model

import "strings"

// DefaultMissingTokens lists the string placeholders treated as missing
// values when scanning text cells
var DefaultMissingTokens = []string{"n/a", "na", "--", "-", "none", "null", "", "nan"}

// IsMissingToken reports whether a raw string cell matches one of the
// configured missing tokens. Matching is case-insensitive and ignores
// surrounding whitespace.
func IsMissingToken(value string, tokens []string) bool {
	normalized := strings.ToLower(strings.TrimSpace(value))
	for _, token := range tokens {
		if normalized == token {
			return true
		}
	}
	return false
}
