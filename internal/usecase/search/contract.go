package search

import "github.com/kailas-cloud/sage/internal/domain/corpus"

// Corpus is the read-only, ordered entry source the service ranks.
type Corpus interface {
	Len() int
	At(i int) corpus.Entry
}
