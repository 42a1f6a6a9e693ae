package corpus

import (
	"fmt"
	"iter"
	"slices"
	"strings"
)

// Entry is one quotable passage with its citation and keyword tags (immutable value object).
type Entry struct {
	source    string
	tags      []string
	text      string
	lowerText string
}

// NewEntry validates and creates an Entry.
// Tags are lowercased, trimmed and de-duplicated here so scoring never re-normalises them.
func NewEntry(source, text string, tags ...string) (Entry, error) {
	source = strings.TrimSpace(source)
	if source == "" {
		return Entry{}, fmt.Errorf("entry source is required")
	}
	if strings.TrimSpace(text) == "" {
		return Entry{}, fmt.Errorf("entry %q: text is required", source)
	}

	norm := make([]string, 0, len(tags))
	for _, t := range tags {
		t = strings.ToLower(strings.TrimSpace(t))
		if t == "" || slices.Contains(norm, t) {
			continue
		}
		norm = append(norm, t)
	}

	return Entry{
		source:    source,
		tags:      norm,
		text:      text,
		lowerText: strings.ToLower(text),
	}, nil
}

// Source returns the citation, unique within a corpus.
func (e Entry) Source() string { return e.source }

// Text returns the quotable passage.
func (e Entry) Text() string { return e.text }

// LowerText returns the passage lowercased once at construction.
func (e Entry) LowerText() string { return e.lowerText }

// Tags returns a copy of the normalised tags.
func (e Entry) Tags() []string { return slices.Clone(e.tags) }

// AllTags iterates the normalised tags without copying.
func (e Entry) AllTags() iter.Seq[string] { return slices.Values(e.tags) }
