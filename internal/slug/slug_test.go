package slug

import "testing"

// TestDerive exercises the slug transform with typical titles, punctuation,
// unicode, and edge cases.
func TestDerive(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		// --- Normal titles ---
		{
			name:  "simple two words",
			input: "Hello World",
			want:  "hello-world",
		},
		{
			name:  "title with year",
			input: "Hello, World! 2026",
			want:  "hello-world-2026",
		},
		{
			name:  "already a slug",
			input: "already-a-slug",
			want:  "already-a-slug",
		},
		{
			name:  "mixed case sentence",
			input: "The Journal: Design Resources, Interviews, and Industry News",
			want:  "the-journal-design-resources-interviews-and-industry-news",
		},

		// --- Punctuation runs collapse to one hyphen ---
		{
			name:  "apostrophes and question mark",
			input: "How's it going?",
			want:  "how-s-it-going",
		},
		{
			name:  "ampersand between words",
			input: "Rock & Roll",
			want:  "rock-roll",
		},
		{
			name:  "dotted version number",
			input: "Version 2.0 (Beta)",
			want:  "version-2-0-beta",
		},
		{
			name:  "slash separated",
			input: "Frontend/Backend",
			want:  "frontend-backend",
		},

		// --- Non-ASCII is outside [a-z0-9] and becomes a separator ---
		{
			name:  "accented characters",
			input: "Café Résumé",
			want:  "caf-r-sum",
		},
		{
			name:  "only symbols",
			input: "!!! ???",
			want:  "",
		},

		// --- Whitespace and hyphen trimming ---
		{
			name:  "surrounding whitespace",
			input: "  hello world  ",
			want:  "hello-world",
		},
		{
			name:  "leading punctuation",
			input: "...and then",
			want:  "and-then",
		},
		{
			name:  "empty string",
			input: "",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Derive(tt.input); got != tt.want {
				t.Errorf("Derive(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

// TestDeriveIdempotent verifies that deriving a slug from a slug is a no-op
// and that output stays within [a-z0-9-] without edge hyphens.
func TestDeriveIdempotent(t *testing.T) {
	inputs := []string{
		"Hello World",
		"  Mixed CASE & symbols!  ",
		"Issue #42 costs $100",
		"---already---hyphenated---",
		"日本語 Title",
		"",
	}

	for _, in := range inputs {
		got := Derive(in)
		if again := Derive(got); again != got {
			t.Errorf("Derive not idempotent for %q: %q → %q", in, got, again)
		}
		if len(got) > 0 && (got[0] == '-' || got[len(got)-1] == '-') {
			t.Errorf("Derive(%q) = %q has edge hyphen", in, got)
		}
		for _, c := range got {
			if !(c >= 'a' && c <= 'z' || c >= '0' && c <= '9' || c == '-') {
				t.Errorf("Derive(%q) = %q contains %q outside [a-z0-9-]", in, got, c)
			}
		}
	}
}
