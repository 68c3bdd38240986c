package textutil

import (
	"regexp"
	"strings"
)

var whitespaceRegex = regexp.MustCompile(`\s+`)

// NormalizeKey canonicalizes a user-supplied family key so "Olive Oil"
// and "olive  oil" address the same family: lowercased, trimmed,
// inner whitespace collapsed to underscores.
func NormalizeKey(key string) string {
	key = strings.ToLower(strings.TrimSpace(key))
	return whitespaceRegex.ReplaceAllString(key, "_")
}
