package corpus

import (
	"errors"
	"fmt"
	"slices"
)

// ErrDuplicateSource signals two entries sharing one citation.
var ErrDuplicateSource = errors.New("duplicate entry source")

// Corpus is a fixed ordered sequence of entries. It has no mutation API,
// so any number of goroutines may read it without synchronisation.
type Corpus struct {
	entries []Entry
	index   map[string]int
}

// New builds a Corpus preserving the given order.
func New(entries ...Entry) (Corpus, error) {
	c := Corpus{
		entries: make([]Entry, 0, len(entries)),
		index:   make(map[string]int, len(entries)),
	}
	for _, e := range entries {
		if e.source == "" {
			return Corpus{}, fmt.Errorf("entry at position %d has no source", len(c.entries))
		}
		if _, ok := c.index[e.source]; ok {
			return Corpus{}, fmt.Errorf("%w: %q", ErrDuplicateSource, e.source)
		}
		c.index[e.source] = len(c.entries)
		c.entries = append(c.entries, e)
	}
	return c, nil
}

// Len returns the number of entries.
func (c Corpus) Len() int { return len(c.entries) }

// At returns the entry at position i in corpus order.
func (c Corpus) At(i int) Entry { return c.entries[i] }

// Entries returns a copy of the entries in corpus order.
func (c Corpus) Entries() []Entry { return slices.Clone(c.entries) }

// Lookup returns the entry with the given source.
func (c Corpus) Lookup(source string) (Entry, bool) {
	i, ok := c.index[source]
	if !ok {
		return Entry{}, false
	}
	return c.entries[i], true
}
