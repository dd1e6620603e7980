// Package textnorm canonicalizes raw input before linguistic analysis.
package textnorm

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Normalize applies Unicode canonical composition (NFC), collapses every
// run of whitespace (spaces, tabs, newlines) to a single ASCII space, and
// trims the ends. Normalize is idempotent.
func Normalize(text string) string {
	if text == "" {
		return ""
	}

	text = norm.NFC.String(text)

	var b strings.Builder
	b.Grow(len(text))
	inSpace := false
	for _, r := range text {
		if unicode.IsSpace(r) {
			inSpace = true
			continue
		}
		if inSpace && b.Len() > 0 {
			b.WriteByte(' ')
		}
		inSpace = false
		b.WriteRune(r)
	}
	return b.String()
}

// CountParagraphs counts blank-line separated blocks in the raw,
// pre-normalization text. Normalization flattens newlines, so paragraph
// structure has to be read off the original input. Non-empty text has at
// least one paragraph.
func CountParagraphs(raw string) int {
	if strings.TrimSpace(raw) == "" {
		return 0
	}

	count := 0
	for _, block := range strings.Split(strings.ReplaceAll(raw, "\r\n", "\n"), "\n\n") {
		if strings.TrimSpace(block) != "" {
			count++
		}
	}
	if count == 0 {
		count = 1
	}
	return count
}
