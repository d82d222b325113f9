package history

import "strings"

const (
	// maxLabel is the longest label returned verbatim.
	maxLabel = 20
	// truncateAt is how much of an over-long label survives before the ellipsis.
	truncateAt = 17
)

// Render produces the display label for text. With showNewlines false every
// newline is replaced by a single space first. If the resulting text is
// longer than 20 characters it is cut to the first 17 plus "...". Lengths
// are counted in runes so multi-byte text is never split mid-character.
// Render is pure: identical input yields byte-identical output.
func Render(text string, showNewlines bool) string {
	label := text
	if !showNewlines {
		label = strings.ReplaceAll(label, "\n", " ")
	}
	runes := []rune(label)
	if len(runes) > maxLabel {
		return string(runes[:truncateAt]) + "..."
	}
	return label
}
