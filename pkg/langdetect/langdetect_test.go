package langdetect

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"english", English},
		{"English", English},
		{"EN", English},
		{"filipino", Filipino},
		{"tagalog", Filipino},
		{"fil", Filipino},
		{"tl", Filipino},
		{" Tagalog ", Filipino},
		{"spanish", ""},
		{"", ""},
	}

	for _, tt := range tests {
		if got := Normalize(tt.input); got != tt.want {
			t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestDetect(t *testing.T) {
	detector := NewDetector()

	tests := []struct {
		name string
		text string
		want string
	}{
		{
			name: "plain English sentence",
			text: "The students wrote their essays about the summer vacation.",
			want: English,
		},
		{
			name: "plain Tagalog sentence",
			text: "Ang mga mag-aaral ay nagsulat ng kanilang mga sanaysay tungkol sa bakasyon.",
			want: Filipino,
		},
		{
			name: "empty defaults to English",
			text: "",
			want: English,
		},
		{
			name: "whitespace defaults to English",
			text: "   \n  ",
			want: English,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := detector.Detect(tt.text); got != tt.want {
				t.Errorf("Detect(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}
