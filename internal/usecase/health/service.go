package health

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"
)

// Status represents the aggregated health status.
type Status string

const (
	// Healthy indicates all components are operational.
	Healthy Status = "ok"
	// Degraded indicates partial failure.
	Degraded Status = "degraded"
)

// CheckResult represents an individual component health check outcome.
type CheckResult string

const (
	// CheckOK indicates a passing health check.
	CheckOK CheckResult = "ok"
	// CheckError indicates a failing health check.
	CheckError CheckResult = "error"
)

// Report aggregates health check results.
type Report struct {
	Status Status
	Checks map[string]CheckResult
}

// DatabaseState describes what the diagnostic learned about the store.
type DatabaseState string

// Database states reported by Diagnose.
const (
	DatabaseNotConfigured      DatabaseState = "not_configured"
	DatabaseUnreachable        DatabaseState = "unreachable"
	DatabaseConnected          DatabaseState = "connected"
	DatabaseConnectedWithError DatabaseState = "connected_with_error"
)

// MaxListedCollections caps the collection names in a diagnostic.
const MaxListedCollections = 10

// maxErrorLen caps error text exposed by the diagnostic.
const maxErrorLen = 50

// Settings describes which database settings were supplied, without their values.
type Settings struct {
	URLSet  bool
	NameSet bool
}

// Diagnostics is the detailed database reachability report.
type Diagnostics struct {
	Backend     string
	Database    DatabaseState
	URLSet      bool
	NameSet     bool
	Connected   bool
	Collections []string
	Error       string
	Latency     time.Duration
}

// Service coordinates health checks.
type Service struct {
	db       Database
	settings Settings
	timeout  time.Duration
}

// New creates a Service. db can be nil when no store is configured.
func New(db Database, settings Settings) *Service {
	return &Service{db: db, settings: settings, timeout: 2 * time.Second}
}

// WithTimeout bounds each database probe.
func (s *Service) WithTimeout(d time.Duration) *Service {
	if d > 0 {
		s.timeout = d
	}
	return s
}

// Check runs health checks against all configured components.
func (s *Service) Check(ctx context.Context) Report {
	checks := make(map[string]CheckResult)

	if s.db != nil {
		ctx, cancel := context.WithTimeout(ctx, s.timeout)
		defer cancel()
		if err := s.db.Ping(ctx); err != nil {
			checks["database"] = CheckError
		} else {
			checks["database"] = CheckOK
		}
	}

	status := Healthy
	for _, v := range checks {
		if v == CheckError {
			status = Degraded
			break
		}
	}

	return Report{Status: status, Checks: checks}
}

// Diagnose reports on the store's reachability. It never fails: problems are
// described in the returned Diagnostics.
func (s *Service) Diagnose(ctx context.Context) Diagnostics {
	d := Diagnostics{
		Backend:     "running",
		Database:    DatabaseNotConfigured,
		URLSet:      s.settings.URLSet,
		NameSet:     s.settings.NameSet,
		Collections: []string{},
	}
	if s.db == nil {
		return d
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	start := time.Now()
	var (
		pingErr, listErr error
		names            []string
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		pingErr = s.db.Ping(gctx)
		return nil
	})
	g.Go(func() error {
		names, listErr = s.db.ListCollections(gctx, MaxListedCollections)
		return nil
	})
	_ = g.Wait()
	d.Latency = time.Since(start)

	switch {
	case pingErr != nil:
		d.Database = DatabaseUnreachable
		d.Error = truncate(pingErr.Error(), maxErrorLen)
	case listErr != nil:
		d.Database = DatabaseConnectedWithError
		d.Connected = true
		d.Error = truncate(listErr.Error(), maxErrorLen)
	default:
		d.Database = DatabaseConnected
		d.Connected = true
		if len(names) > MaxListedCollections {
			names = names[:MaxListedCollections]
		}
		if names != nil {
			d.Collections = names
		}
	}
	return d
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
