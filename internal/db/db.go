package db

import (
	"context"
	"time"
)

// Store is the optional external data store. The reply core never touches it;
// it only backs the health and diagnostic endpoints.
type Store interface {
	Pinger
	CollectionLister
	Close()
	WaitForReady(ctx context.Context, timeout time.Duration) error
}

// Pinger checks database connectivity.
type Pinger interface {
	Ping(ctx context.Context) error
}

// CollectionLister enumerates named collections (search indexes, or key
// namespaces when the server has no search module).
type CollectionLister interface {
	ListCollections(ctx context.Context, limit int) ([]string, error)
}
