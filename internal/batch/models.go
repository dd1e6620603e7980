package batch

// Job is one corpus row queued to a worker. A non-nil Err marks a row
// that was already rejected during CSV parsing; the worker reports it
// as skipped without analyzing anything.
type Job struct {
	Row   int
	Text  string
	Score float64
	Err   error
}

// Result is the outcome of extracting features from one corpus row.
type Result struct {
	Row           int
	Label         string
	Vector        []float64
	WordCount     int
	SentenceCount int
	Truncated     bool
	WordCounts    map[string]int
	Error         error
}

// Dataset is the persisted output of a batch extraction run: every
// successful row's vector and label, in row order, plus the feature
// names so downstream training code never has to guess column meaning.
type Dataset struct {
	GeneratedAt  string      `json:"generated_at"`
	SourceHash   string      `json:"source_hash"`
	Dim          int         `json:"dim"`
	FeatureNames []string    `json:"feature_names"`
	Vectors      [][]float64 `json:"vectors"`
	Labels       []string    `json:"labels"`
	Rows         int         `json:"rows"`
	Skipped      int         `json:"skipped"`
}

// Stats summarizes a batch run for stdout.
type Stats struct {
	TotalRows        int      `json:"total_rows"`
	Successful       int      `json:"successful"`
	Skipped          int      `json:"skipped"`
	TotalTimeSeconds float64  `json:"total_time_seconds"`
	TopKeywords      []string `json:"top_keywords"`
}
