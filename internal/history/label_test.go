package history

import (
	"strings"
	"testing"
)

func TestRender(t *testing.T) {
	tests := []struct {
		name         string
		text         string
		showNewlines bool
		want         string
	}{
		{"short verbatim", "hello", false, "hello"},
		{"exactly 20 chars", strings.Repeat("x", 20), false, strings.Repeat("x", 20)},
		{"21 chars truncated", strings.Repeat("x", 21), false, strings.Repeat("x", 17) + "..."},
		{"newlines collapsed", "line1\nline2", false, "line1 line2"},
		{"newlines kept", "line1\nline2", true, "line1\nline2"},
		{"multiline short after collapse", "a\nb\nc", false, "a b c"},
		{
			// Collapse happens before the length check: 9 lines of two
			// chars join to 26 chars and get truncated.
			"long multiline collapsed",
			"aa\nbb\ncc\ndd\nee\nff\ngg\nhh\nii",
			false,
			"aa bb cc dd ee ff...",
		},
		{
			"long multiline kept",
			"aa\nbb\ncc\ndd\nee\nff\ngg\nhh\nii",
			true,
			"aa\nbb\ncc\ndd\nee\nff...",
		},
		{"empty", "", false, ""},
		{"only newlines", "\n\n\n", false, "   "},
		// Rune counting: 21 multi-byte characters must cut at rune 17,
		// never mid-character.
		{"unicode truncated", strings.Repeat("é", 21), false, strings.Repeat("é", 17) + "..."},
		{"unicode verbatim", strings.Repeat("日", 20), true, strings.Repeat("日", 20)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Render(tt.text, tt.showNewlines)
			if got != tt.want {
				t.Errorf("Render(%q, %v) = %q, want %q", tt.text, tt.showNewlines, got, tt.want)
			}
			// Render must be deterministic.
			if again := Render(tt.text, tt.showNewlines); again != got {
				t.Errorf("Render not stable: %q then %q", got, again)
			}
		})
	}
}

func TestRenderTruncatedLength(t *testing.T) {
	got := Render(strings.Repeat("a", 100), false)
	if n := len([]rune(got)); n != 20 {
		t.Errorf("truncated label length: got %d runes (%q), want 20", n, got)
	}
	if !strings.HasSuffix(got, "...") {
		t.Errorf("truncated label %q missing ellipsis", got)
	}
}
