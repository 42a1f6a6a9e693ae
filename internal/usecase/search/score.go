package search

import (
	"strings"
	"unicode/utf8"

	"github.com/kailas-cloud/sage/internal/domain/corpus"
)

const (
	// tagWeight is added for every entry tag found inside the query.
	tagWeight = 2
	// wordWeight is added for every long query word found inside the entry text.
	wordWeight = 1
	// minWordLen is the length a query word must exceed to count.
	minWordLen = 4
)

// Score computes the relevance of e to query.
//
// Tags match as plain substrings of the lowercased query, so short tags may
// match inside longer words. Query words are split on whitespace only and keep
// their punctuation.
func Score(e corpus.Entry, query string) int {
	q := newQuery(query)
	return q.score(e)
}

// preparedQuery holds the per-call normalisation shared by every entry.
type preparedQuery struct {
	lower string
	words []string
}

func newQuery(query string) preparedQuery {
	lower := strings.ToLower(query)
	var words []string
	for _, w := range strings.Fields(lower) {
		if utf8.RuneCountInString(w) > minWordLen {
			words = append(words, w)
		}
	}
	return preparedQuery{lower: lower, words: words}
}

func (q preparedQuery) score(e corpus.Entry) int {
	score := 0
	for tag := range e.AllTags() {
		if strings.Contains(q.lower, tag) {
			score += tagWeight
		}
	}
	text := e.LowerText()
	for _, w := range q.words {
		if strings.Contains(text, w) {
			score += wordWeight
		}
	}
	return score
}
