package sanitizer

import (
	"strings"
	"unicode"
)

// Trim removes leading and trailing whitespace from a string.
func Trim(s string) string {
	return strings.TrimSpace(s)
}

// ToLower converts a string to lowercase.
func ToLower(s string) string {
	return strings.ToLower(s)
}

// ToUpper converts a string to uppercase.
func ToUpper(s string) string {
	return strings.ToUpper(s)
}

// TrimToLower removes leading and trailing whitespace and converts to lowercase.
func TrimToLower(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// RemoveWhitespace drops every whitespace rune, including inner ones.
func RemoveWhitespace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}

// RemoveExtraWhitespace normalizes whitespace by replacing multiple consecutive
// whitespace characters with a single space and trimming.
func RemoveExtraWhitespace(s string) string {
	return strings.TrimSpace(whitespaceRegex.ReplaceAllString(s, " "))
}

// RemoveControlChars removes control characters from a string,
// keeping only printable characters and common whitespace.
func RemoveControlChars(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsControl(r) && r != '\n' && r != '\r' && r != '\t' {
			return -1
		}
		return r
	}, s)
}

// EnsurePrefix returns a transform that prepends prefix when s does not
// already start with it. Empty input is returned unchanged.
func EnsurePrefix(prefix string) func(string) string {
	return func(s string) string {
		if s == "" || strings.HasPrefix(s, prefix) {
			return s
		}
		return prefix + s
	}
}
