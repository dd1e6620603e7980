package models

// POS is the coarse part-of-speech tag set the pipeline works with.
// Fine-grained tagger output is collapsed onto these before any counting.
type POS string

const (
	PosVerb  POS = "VERB"
	PosNoun  POS = "NOUN"
	PosAdj   POS = "ADJ"
	PosAdv   POS = "ADV"
	PosPron  POS = "PRON"
	PosConj  POS = "CONJ"
	PosPunct POS = "PUNCT"
	PosOther POS = "OTHER"
)

// Token is a single unit of analyzed text. Tokens are produced once per
// analysis by the linguistic analyzer and never mutated afterwards.
type Token struct {
	Text       string `json:"text"`
	Lemma      string `json:"lemma"`
	Pos        POS    `json:"pos"`
	IsAlpha    bool   `json:"is_alpha"`
	IsPunct    bool   `json:"is_punct"`
	IsStopword bool   `json:"is_stopword"`
	Offset     int    `json:"offset"`
	// Head is the index (into the owning Doc's token slice) of the token
	// this one attaches to. A token that heads its own sentence points at
	// itself.
	Head int `json:"head"`
}

// Sentence is a contiguous span of tokens.
type Sentence struct {
	Start int `json:"start"` // index of first token in Doc.Tokens
	End   int `json:"end"`   // index one past the last token
	// Character offsets into the normalized text.
	CharStart int `json:"char_start"`
	CharEnd   int `json:"char_end"`
}

// Doc is the result of one linguistic-analyzer pass over a document.
// Both the feature vector and the display metrics are derived from the
// same Doc so they cannot drift apart.
type Doc struct {
	Text      string
	Tokens    []Token
	Sentences []Sentence
}

// SentenceTokens returns the tokens belonging to sentence s.
func (d *Doc) SentenceTokens(s Sentence) []Token {
	return d.Tokens[s.Start:s.End]
}

// Words returns the surface forms of all alphabetic tokens.
func (d *Doc) Words() []string {
	words := make([]string, 0, len(d.Tokens))
	for _, t := range d.Tokens {
		if t.IsAlpha {
			words = append(words, t.Text)
		}
	}
	return words
}
