// Package ingest extracts analyzable plain text from submissions that
// arrive as HTML (word-processor exports, LMS rich-text fields). Main
// content is distilled with go-readability, then block elements are
// walked so paragraph boundaries survive as blank lines.
package ingest

import (
	"bufio"
	"fmt"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-shiori/go-readability"

	"github.com/ecorpuz/textgauge/models"
)

// FromHTML returns the plain text of an HTML document, one block
// element per paragraph. Input that cannot be parsed at all wraps
// models.ErrMalformedInput.
func FromHTML(html string) (string, error) {
	// go-readability wants a document URL for resolving links; student
	// submissions have none.
	docURL, _ := url.Parse("https://localhost/submission")

	content := html
	readabilityParser := readability.NewParser()
	article, err := readabilityParser.Parse(strings.NewReader(html), docURL)
	if err == nil && strings.TrimSpace(article.Content) != "" {
		content = article.Content
	}
	// Short fragments (a pasted paragraph or two) often fail main-content
	// detection; fall through to the raw markup in that case.

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(content))
	if err != nil {
		return "", fmt.Errorf("%w: %v", models.ErrMalformedInput, err)
	}

	var blocks []string
	doc.Find("h1,h2,h3,h4,p,li,blockquote").Each(func(i int, s *goquery.Selection) {
		text := collapseLines(s.Text())
		if text != "" {
			blocks = append(blocks, text)
		}
	})

	// Markup with no block elements at all: take the bare text.
	if len(blocks) == 0 {
		if text := collapseLines(doc.Text()); text != "" {
			blocks = append(blocks, text)
		}
	}

	return strings.Join(blocks, "\n\n"), nil
}

// Title derives a submission title: the caller-provided name when
// present, otherwise the first non-blank line capped at 80 characters.
func Title(text, name string) string {
	if name != "" {
		return name
	}
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		runes := []rune(line)
		if len(runes) > 80 {
			return string(runes[:80])
		}
		return line
	}
	return "Submission"
}

// collapseLines trims each line and joins non-empty ones with single
// spaces.
func collapseLines(input string) string {
	var b strings.Builder
	b.Grow(len(input))
	scanner := bufio.NewScanner(strings.NewReader(input))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			b.WriteString(line)
			b.WriteString(" ")
		}
	}
	return strings.TrimSpace(b.String())
}
