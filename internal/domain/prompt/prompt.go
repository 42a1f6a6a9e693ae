package prompt

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/kailas-cloud/sage/internal/domain"
)

// DefaultMaxChars is the longest accepted prompt, in characters.
const DefaultMaxChars = 4000

// Prompt is a validated, trimmed question (immutable value object).
type Prompt struct {
	text string
}

// New validates raw and returns it trimmed of surrounding whitespace.
// Length is measured in characters before trimming, so whitespace-only input
// within bounds is accepted and becomes an empty query.
func New(raw string, maxChars int) (Prompt, error) {
	if maxChars <= 0 {
		maxChars = DefaultMaxChars
	}
	n := utf8.RuneCountInString(raw)
	if n == 0 {
		return Prompt{}, domain.ErrPromptEmpty
	}
	if n > maxChars {
		return Prompt{}, fmt.Errorf("%w (max %d characters, got %d)", domain.ErrPromptTooLong, maxChars, n)
	}
	return Prompt{text: strings.TrimSpace(raw)}, nil
}

// String returns the trimmed prompt text.
func (p Prompt) String() string { return p.text }
