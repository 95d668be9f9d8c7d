package summary

import (
	"regexp"
	"strings"
)

// warningPattern matches the first bracketed identifier after each "Warning:".
// "." stops at newlines, so a match never spans lines.
var warningPattern = regexp.MustCompile(`Warning:.*?\[([a-zA-Z0-9_]+)\]`)

var newlineNormalizer = strings.NewReplacer("\r\n", "\n", "\r", "\n")

// Scan returns every captured WarningID in text, in file order.
// Carriage returns count as line breaks.
func Scan(text string) []WarningID {
	text = newlineNormalizer.Replace(text)
	matches := warningPattern.FindAllStringSubmatch(text, -1)
	ids := make([]WarningID, 0, len(matches))
	for _, m := range matches {
		ids = append(ids, WarningID(m[1]))
	}
	return ids
}
