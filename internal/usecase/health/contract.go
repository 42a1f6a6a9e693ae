package health

import "context"

// Database is the optional external store inspected by health checks.
type Database interface {
	Ping(ctx context.Context) error
	ListCollections(ctx context.Context, limit int) ([]string, error)
}
