package help

const ColdstartYAML = `# textgauge Quick Start

analysis_types:
  proficiency: "Student reading proficiency (Independent/Instructional/Frustration)"
  complexity: "Text complexity level (Literal/Inferential/Evaluative)"
  both: "Both reports in one pass (default)"

commands:
  basic_analyze: |
    textgauge analyze --text "The cat sat on the mat."

  analyze_file: |
    textgauge analyze --file essay.txt --analysis proficiency

  analyze_html: |
    textgauge analyze --file page.html --html --analysis complexity

  analyze_stdin: |
    cat essay.txt | textgauge analyze --format yaml

  batch_extract: |
    textgauge batch --corpus corpus.csv --workers 8

  evaluation_report: |
    textgauge evaluation --models-dir models

  import_lexicon: |
    textgauge lexicon import --wordlist cefr-j.tsv --lexicon cefr-lexicon.db

  lexicon_stats: |
    textgauge lexicon stats --lexicon cefr-lexicon.db

key_files:
  - "config.yaml (models dir, lexicon path, language, workers)"
  - "models/proficiency_model.json (optional trained model)"
  - "models/complexity_model.json (optional trained model)"
  - "models/evaluation_metrics.json (offline evaluation results)"
  - "results/dataset-YYYY-MM-DD.json (batch feature vectors + labels)"
  - "results/summary-YYYY-MM-DD.json (batch run manifest)"

model_behavior:
  - "Missing model files are not errors: heuristics take over"
  - "Vector width mismatch against a loaded model is a hard error"
  - "Same text always produces the same report"

batch_corpus:
  - "CSV with a text column (default full_text) and score column (default score)"
  - "Score >= 4 labels Independent, >= 3 Instructional, else Frustration"
  - "Texts over 10k characters are truncated at a word boundary"
  - "Bad rows are skipped and counted, never abort the run"
  - "Unchanged corpus = feature cache hit, extraction skipped"

error_behavior:
  - "Exit codes: 0=success, 1=partial failure, 2=complete failure"
  - "Logs are JSON on stderr; reports are JSON/YAML on stdout"
`
