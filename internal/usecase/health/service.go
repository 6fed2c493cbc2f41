package health

import (
	"context"
	"time"
)

// DefaultTimeout bounds each individual check.
const DefaultTimeout = 2 * time.Second

// Status represents the aggregated health status.
type Status string

const (
	// Healthy indicates all components are operational.
	Healthy Status = "ok"
	// Degraded indicates the store answers but search cannot serve results.
	Degraded Status = "degraded"
	// Unhealthy indicates the store is unreachable.
	Unhealthy Status = "error"
)

// CheckResult represents an individual component health check outcome.
type CheckResult string

const (
	// CheckOK indicates a passing health check.
	CheckOK CheckResult = "ok"
	// CheckError indicates a failing health check.
	CheckError CheckResult = "error"
	// CheckSkipped indicates a check that depends on a failed one.
	CheckSkipped CheckResult = "skipped"
)

// Check names.
const (
	CheckDatabase     = "database"
	CheckCatalogIndex = "catalog_index"
)

// Report aggregates health check results.
type Report struct {
	Status Status
	Checks map[string]CheckResult
}

// Service coordinates health checks.
type Service struct {
	db      DBPinger
	index   IndexChecker
	timeout time.Duration
}

// New creates a Service. index can be nil.
func New(db DBPinger, index IndexChecker) *Service {
	return &Service{db: db, index: index, timeout: DefaultTimeout}
}

// WithTimeout overrides the per-check timeout. Non-positive values are ignored.
func (s *Service) WithTimeout(d time.Duration) *Service {
	if d > 0 {
		s.timeout = d
	}
	return s
}

// Check pings the store, then verifies the catalog index.
func (s *Service) Check(ctx context.Context) Report {
	checks := make(map[string]CheckResult, 2)

	if err := s.run(ctx, s.db.Ping); err != nil {
		checks[CheckDatabase] = CheckError
		if s.index != nil {
			checks[CheckCatalogIndex] = CheckSkipped
		}
		return Report{Status: Unhealthy, Checks: checks}
	}
	checks[CheckDatabase] = CheckOK

	status := Healthy
	if s.index != nil {
		var ready bool
		err := s.run(ctx, func(ctx context.Context) error {
			var err error
			ready, err = s.index.IndexReady(ctx)
			return err
		})
		if err != nil || !ready {
			checks[CheckCatalogIndex] = CheckError
			status = Degraded
		} else {
			checks[CheckCatalogIndex] = CheckOK
		}
	}

	return Report{Status: status, Checks: checks}
}

func (s *Service) run(ctx context.Context, check func(context.Context) error) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	return check(ctx)
}
