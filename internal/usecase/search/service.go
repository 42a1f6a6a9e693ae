package search

import (
	"slices"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/kailas-cloud/sage/internal/domain/corpus"
)

// DefaultLimit is the number of picks a reply is built from.
const DefaultLimit = 2

// Pick is a corpus entry chosen for a reply, with the score it earned.
// Entries added by the fallback fill carry a zero score.
type Pick struct {
	Entry corpus.Entry
	Score int
}

type cacheKey struct {
	query string
	limit int
}

// Service ranks corpus entries against free-text queries.
type Service struct {
	corpus Corpus
	cache  *lru.Cache[cacheKey, []Pick]
}

// New creates a Service over the given corpus.
func New(c Corpus) *Service {
	return &Service{corpus: c}
}

// WithCache memoises selections for up to size distinct (query, limit) pairs.
// A non-positive size leaves caching disabled.
func (s *Service) WithCache(size int) *Service {
	if size <= 0 {
		return s
	}
	cache, err := lru.New[cacheKey, []Pick](size)
	if err != nil {
		return s
	}
	s.cache = cache
	return s
}

// Rank scores every entry and returns them by descending score.
// Equal scores keep corpus order.
func (s *Service) Rank(query string) []Pick {
	q := newQuery(query)
	ranked := make([]Pick, s.corpus.Len())
	for i := range ranked {
		e := s.corpus.At(i)
		ranked[i] = Pick{Entry: e, Score: q.score(e)}
	}
	slices.SortStableFunc(ranked, func(a, b Pick) int {
		return b.Score - a.Score
	})
	return ranked
}

// Select returns at most limit distinct entries for query.
//
// The top limit entries with a positive score come first. If fewer survive,
// the result is filled with unused entries in corpus order, so a non-empty
// corpus always yields min(limit, corpus size) picks.
func (s *Service) Select(query string, limit int) []Pick {
	if limit <= 0 || s.corpus.Len() == 0 {
		return []Pick{}
	}

	key := cacheKey{query: query, limit: limit}
	if s.cache != nil {
		if cached, ok := s.cache.Get(key); ok {
			return slices.Clone(cached)
		}
	}

	picks := s.selectUncached(query, limit)

	if s.cache != nil {
		s.cache.Add(key, slices.Clone(picks))
	}
	return picks
}

func (s *Service) selectUncached(query string, limit int) []Pick {
	ranked := s.Rank(query)

	picks := make([]Pick, 0, limit)
	seen := make(map[string]struct{}, limit)

	for _, p := range ranked[:min(limit, len(ranked))] {
		if p.Score <= 0 {
			continue
		}
		if _, dup := seen[p.Entry.Source()]; dup {
			continue
		}
		seen[p.Entry.Source()] = struct{}{}
		picks = append(picks, p)
	}

	// Fallback fill
	for i := 0; i < s.corpus.Len() && len(picks) < limit; i++ {
		e := s.corpus.At(i)
		if _, dup := seen[e.Source()]; dup {
			continue
		}
		seen[e.Source()] = struct{}{}
		picks = append(picks, Pick{Entry: e})
	}

	if len(picks) > limit {
		picks = picks[:limit]
	}
	return picks
}

// Entries strips scores from picks.
func Entries(picks []Pick) []corpus.Entry {
	out := make([]corpus.Entry, len(picks))
	for i, p := range picks {
		out[i] = p.Entry
	}
	return out
}

// FallbackCount reports how many picks came from the fallback fill.
func FallbackCount(picks []Pick) int {
	n := 0
	for _, p := range picks {
		if p.Score <= 0 {
			n++
		}
	}
	return n
}
