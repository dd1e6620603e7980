// Package nlp wraps the linguistic analyzer behind a small interface so
// the pipeline can run against a fake in tests. The default
// implementation is built on prose for tokenization, sentence
// segmentation, and part-of-speech tagging.
package nlp

import (
	"fmt"
	"strings"
	"unicode"

	prose "github.com/jdkato/prose/v2"

	"github.com/ecorpuz/textgauge/models"
	"github.com/ecorpuz/textgauge/pkg/analytics"
)

// Analyzer turns normalized text into tokens and sentences. Analyze must
// either return a complete Doc or an error wrapping
// models.ErrAnalyzerUnavailable; it never returns a half-empty Doc that
// could be mistaken for a genuinely simple text.
type Analyzer interface {
	Analyze(text string) (*models.Doc, error)
}

// ProseAnalyzer is the production Analyzer. It is read-only after
// construction and safe for concurrent use.
type ProseAnalyzer struct{}

// NewProseAnalyzer returns the prose-backed analyzer.
func NewProseAnalyzer() *ProseAnalyzer {
	return &ProseAnalyzer{}
}

// Analyze segments text into sentences, tags each sentence, and
// assembles the Doc with character offsets and heuristic head links.
func (a *ProseAnalyzer) Analyze(text string) (*models.Doc, error) {
	doc := &models.Doc{Text: text}
	if strings.TrimSpace(text) == "" {
		return doc, nil
	}

	segDoc, err := prose.NewDocument(text, prose.WithTagging(false), prose.WithExtraction(false))
	if err != nil {
		return nil, fmt.Errorf("%w: sentence segmentation failed: %v", models.ErrAnalyzerUnavailable, err)
	}

	cursor := 0
	for _, sent := range segDoc.Sentences() {
		sentText := sent.Text
		charStart := strings.Index(text[cursor:], sentText)
		if charStart < 0 {
			charStart = cursor
		} else {
			charStart += cursor
		}

		tagged, err := prose.NewDocument(sentText, prose.WithSegmentation(false), prose.WithExtraction(false))
		if err != nil {
			return nil, fmt.Errorf("%w: tagging failed: %v", models.ErrAnalyzerUnavailable, err)
		}

		tokenStart := len(doc.Tokens)
		sentCursor := 0
		for _, tok := range tagged.Tokens() {
			offset := strings.Index(sentText[sentCursor:], tok.Text)
			if offset < 0 {
				offset = sentCursor
			} else {
				offset += sentCursor
				sentCursor = offset + len(tok.Text)
			}

			doc.Tokens = append(doc.Tokens, buildToken(tok, charStart+offset))
		}

		assignHeads(doc.Tokens[tokenStart:], tokenStart)

		doc.Sentences = append(doc.Sentences, models.Sentence{
			Start:     tokenStart,
			End:       len(doc.Tokens),
			CharStart: charStart,
			CharEnd:   charStart + len(sentText),
		})
		cursor = charStart + len(sentText)
	}

	return doc, nil
}

func buildToken(tok prose.Token, offset int) models.Token {
	isAlpha := isAlphabetic(tok.Text)
	pos := coarsePOS(tok.Tag, tok.Text)
	return models.Token{
		Text:       tok.Text,
		Lemma:      strings.ToLower(tok.Text),
		Pos:        pos,
		IsAlpha:    isAlpha,
		IsPunct:    pos == models.PosPunct,
		IsStopword: isAlpha && analytics.IsStopword(tok.Text),
		Offset:     offset,
	}
}

// coarsePOS collapses Penn Treebank tags onto the pipeline's small tag
// set.
func coarsePOS(tag, text string) models.POS {
	switch {
	case strings.HasPrefix(tag, "VB"), tag == "MD":
		return models.PosVerb
	case strings.HasPrefix(tag, "NN"):
		return models.PosNoun
	case strings.HasPrefix(tag, "JJ"):
		return models.PosAdj
	case strings.HasPrefix(tag, "RB"), tag == "WRB":
		return models.PosAdv
	case tag == "PRP", tag == "PRP$", tag == "WP", tag == "WP$":
		return models.PosPron
	case tag == "CC":
		return models.PosConj
	}
	if !isAlphabetic(text) && !hasDigit(text) {
		return models.PosPunct
	}
	return models.PosOther
}

// assignHeads links every token of one sentence to a head. This is a
// deliberately light proxy for dependency parsing: the first verb of the
// sentence acts as the root and everything attaches to it; without a
// verb the first token is the root. Average head distance derived from
// these links tracks sentence spread, not true syntactic depth.
func assignHeads(sentTokens []models.Token, base int) {
	if len(sentTokens) == 0 {
		return
	}

	root := 0
	for i, t := range sentTokens {
		if t.Pos == models.PosVerb {
			root = i
			break
		}
	}

	for i := range sentTokens {
		sentTokens[i].Head = base + root
	}
}

func isAlphabetic(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

func hasDigit(s string) bool {
	for _, r := range s {
		if unicode.IsDigit(r) {
			return true
		}
	}
	return false
}
