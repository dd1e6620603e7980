package db

const schema = `
-- Performance and reliability settings
PRAGMA journal_mode = WAL;
PRAGMA synchronous = NORMAL;
PRAGMA temp_store = MEMORY;

-- CEFR word levels: one row per known English word form.
-- level is a continuous estimate in [1,6]; consumers round and bucket.
CREATE TABLE IF NOT EXISTS cefr_words (
    word TEXT PRIMARY KEY,
    level REAL NOT NULL CHECK (level >= 1 AND level <= 6)
) WITHOUT ROWID;

CREATE INDEX IF NOT EXISTS idx_cefr_level ON cefr_words(level);

-- Lexicon provenance: which wordlists were imported and when.
CREATE TABLE IF NOT EXISTS lexicon_sources (
    source_id INTEGER PRIMARY KEY AUTOINCREMENT,
    name TEXT NOT NULL,
    word_count INTEGER NOT NULL,
    imported_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);
`
