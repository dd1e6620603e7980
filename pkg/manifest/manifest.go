package manifest

// SummaryManifest represents the structure of the summary JSON file.
// It provides a lightweight overview of a batch extraction run: which
// rows succeeded, their labels, and top keywords across the corpus,
// without requiring a reader to open the full feature dump.
type SummaryManifest struct {
	GeneratedAt       string       `json:"generated_at"`
	TotalRows         int          `json:"total_rows"`
	Successful        int          `json:"successful"`
	Failed            int          `json:"failed"`
	AggregateKeywords []string     `json:"aggregate_keywords"`
	LabelCounts       map[string]int `json:"label_counts"`
	Results           []RowSummary `json:"results"`
}

// RowSummary represents summary information for a single corpus row.
type RowSummary struct {
	Row           int      `json:"row"`
	Status        string   `json:"status"` // "success" or "error"
	Label         string   `json:"label,omitempty"`
	ErrorMessage  string   `json:"error_message,omitempty"`
	WordCount     int      `json:"word_count,omitempty"`
	SentenceCount int      `json:"sentence_count,omitempty"`
	Truncated     bool     `json:"truncated,omitempty"`
	TopKeywords   []string `json:"top_keywords,omitempty"`
}
