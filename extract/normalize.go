package extract

import (
	"regexp"
	"strings"
)

var (
	whitespaceRun  = regexp.MustCompile(`\s+`)
	pageNumberLine = regexp.MustCompile(`\n\s*\d+\s*\n`)
	missingSpace   = regexp.MustCompile(`([.!?])([A-Za-z])`)
)

// Normalize cleans raw extracted text for speech synthesis. It is a pure
// function and never fails. The steps run in a fixed order: whitespace
// collapsing first, then page-number artifact removal, ligature
// substitution, punctuation-spacing repair, and a final trim.
func Normalize(raw string) string {
	// Collapse any run of whitespace to a single space.
	text := whitespaceRun.ReplaceAllString(raw, " ")

	// Remove lines that are nothing but a page number.
	text = pageNumberLine.ReplaceAllString(text, "\n")

	// Replace single-codepoint ligatures with their ASCII equivalents.
	text = strings.ReplaceAll(text, "ﬁ", "fi")
	text = strings.ReplaceAll(text, "ﬂ", "fl")

	// Repair text that lost the space after sentence punctuation.
	text = missingSpace.ReplaceAllString(text, "$1 $2")

	return strings.TrimSpace(text)
}
