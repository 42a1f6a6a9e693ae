package redis

import (
	"context"
	"slices"
	"strings"

	"github.com/kailas-cloud/sage/internal/db"
)

// maxScanRounds bounds the SCAN fallback on large keyspaces.
const maxScanRounds = 10

// ListCollections returns up to limit search index names via FT._LIST.
// Servers without the search module fall back to distinct key namespaces
// (the part of each key before the first ':').
func (s *Store) ListCollections(ctx context.Context, limit int) ([]string, error) {
	if limit <= 0 {
		return []string{}, nil
	}

	cmd := s.b().Arbitrary(db.OpFTList).Build()
	names, err := s.do(ctx, cmd).AsStrSlice()
	if err != nil {
		if isRedisErr(err, "unknown command") {
			return s.scanNamespaces(ctx, limit)
		}
		return nil, &db.Error{Op: db.OpFTList, Err: err}
	}

	slices.Sort(names)
	if len(names) > limit {
		names = names[:limit]
	}
	return names, nil
}

func (s *Store) scanNamespaces(ctx context.Context, limit int) ([]string, error) {
	seen := make(map[string]struct{})
	out := []string{}
	var cursor uint64

	for round := 0; round < maxScanRounds; round++ {
		cmd := s.b().Scan().Cursor(cursor).Count(100).Build()
		res, err := s.do(ctx, cmd).AsScanEntry()
		if err != nil {
			return nil, &db.Error{Op: db.OpScan, Err: err}
		}
		for _, key := range res.Elements {
			ns, _, _ := strings.Cut(key, ":")
			if _, ok := seen[ns]; ok {
				continue
			}
			seen[ns] = struct{}{}
			out = append(out, ns)
			if len(out) == limit {
				slices.Sort(out)
				return out, nil
			}
		}
		cursor = res.Cursor
		if cursor == 0 {
			break
		}
	}

	slices.Sort(out)
	return out, nil
}
