package common

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestContentHash(t *testing.T) {
	a := ContentHash([]byte("hello"))
	b := ContentHash([]byte("hello"))
	c := ContentHash([]byte("world"))

	if a != b {
		t.Error("same content produced different hashes")
	}
	if a == c {
		t.Error("different content produced the same hash")
	}
	if len(a) != 64 {
		t.Errorf("hash length = %d, want 64 hex chars", len(a))
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		limit int
		want  string
	}{
		{"under limit passes through", "short text", 100, "short text"},
		{"exactly at limit passes through", "abcde", 5, "abcde"},
		{"cuts back to last space", "one two three", 9, "one two"},
		{"no space inside cut keeps the cut", "abcdefghij", 5, "abcde"},
		{"zero limit passes through", "anything", 0, "anything"},
		{"empty text", "", 10, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Truncate(tt.text, tt.limit); got != tt.want {
				t.Errorf("Truncate(%q, %d) = %q, want %q", tt.text, tt.limit, got, tt.want)
			}
		})
	}
}

func TestTruncateNeverSplitsWords(t *testing.T) {
	text := strings.Repeat("word ", 100)
	got := Truncate(text, 42)

	if utf8.RuneCountInString(got) > 42 {
		t.Errorf("truncated to %d runes, want <= 42", utf8.RuneCountInString(got))
	}
	for _, w := range strings.Fields(got) {
		if w != "word" {
			t.Errorf("split word %q in output", w)
		}
	}
}

func TestFilterResultFields(t *testing.T) {
	type sample struct {
		Title     string `json:"title"`
		WordCount int    `json:"word_count"`
		Status    string `json:"status"`
	}
	in := sample{Title: "Essay", WordCount: 120, Status: "success"}

	filtered := FilterResultFields(in, "title,word_count", false)
	if len(filtered) != 2 {
		t.Fatalf("got %d fields, want 2: %v", len(filtered), filtered)
	}
	if filtered["title"] != "Essay" {
		t.Errorf("title = %v, want Essay", filtered["title"])
	}
	if _, ok := filtered["status"]; ok {
		t.Error("status not filtered out")
	}

	// No filter returns everything.
	all := FilterResultFields(in, "", false)
	if len(all) != 3 {
		t.Errorf("got %d fields without filter, want 3", len(all))
	}
}

func TestFilterResultFieldsTerse(t *testing.T) {
	type report struct {
		Proficiency string  `json:"proficiency"`
		NatScore    float64 `json:"natScore"`
		Other       string  `json:"other"`
	}
	in := report{Proficiency: "Independent", NatScore: 82, Other: "x"}

	terse := FilterResultFields(in, "proficiency,natScore", true)
	if len(terse) != 2 {
		t.Fatalf("got %d fields, want 2: %v", len(terse), terse)
	}
	if terse["pf"] != "Independent" {
		t.Errorf("pf = %v, want Independent", terse["pf"])
	}
	if terse["ns"] != 82.0 {
		t.Errorf("ns = %v, want 82", terse["ns"])
	}

	// Keys without a terse alias keep their names.
	full := FilterResultFields(in, "", true)
	if full["other"] != "x" {
		t.Errorf("other = %v, want unmapped key kept verbatim", full["other"])
	}
}
