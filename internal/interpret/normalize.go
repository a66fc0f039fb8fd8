package interpret

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// terminalPunctuation is stripped from the end of a phrase only
const terminalPunctuation = `.,!?;:'"`

// Normalize prepares a phrase for catalog matching: compatibility-folded,
// lowercased, whitespace collapsed, terminal punctuation removed.
func Normalize(phrase string) string {
	s := norm.NFKC.String(phrase)
	s = strings.ToLower(s)
	s = strings.Join(strings.Fields(s), " ")
	s = strings.TrimRight(s, terminalPunctuation)
	return strings.TrimSpace(s)
}
