package health

import (
	"context"
	"errors"
	"testing"
	"time"
)

// --- Mocks ---

type mockDBPinger struct {
	err   error
	block bool
}

func (m *mockDBPinger) Ping(ctx context.Context) error {
	if m.block {
		<-ctx.Done()
		return ctx.Err()
	}
	return m.err
}

type mockIndexChecker struct {
	ready  bool
	err    error
	called bool
}

func (m *mockIndexChecker) IndexReady(_ context.Context) (bool, error) {
	m.called = true
	return m.ready, m.err
}

// --- Tests ---

func TestCheck_AllHealthy(t *testing.T) {
	svc := New(&mockDBPinger{}, &mockIndexChecker{ready: true})
	r := svc.Check(context.Background())

	if r.Status != Healthy {
		t.Errorf("expected %q, got %q", Healthy, r.Status)
	}
	if r.Checks[CheckDatabase] != CheckOK {
		t.Errorf("expected database %q, got %q", CheckOK, r.Checks[CheckDatabase])
	}
	if r.Checks[CheckCatalogIndex] != CheckOK {
		t.Errorf("expected catalog_index %q, got %q", CheckOK, r.Checks[CheckCatalogIndex])
	}
}

func TestCheck_DBError(t *testing.T) {
	idx := &mockIndexChecker{ready: true}
	svc := New(&mockDBPinger{err: errors.New("conn refused")}, idx)
	r := svc.Check(context.Background())

	if r.Status != Unhealthy {
		t.Errorf("expected %q, got %q", Unhealthy, r.Status)
	}
	if r.Checks[CheckDatabase] != CheckError {
		t.Errorf("expected database %q, got %q", CheckError, r.Checks[CheckDatabase])
	}
	if r.Checks[CheckCatalogIndex] != CheckSkipped {
		t.Errorf("expected catalog_index %q, got %q", CheckSkipped, r.Checks[CheckCatalogIndex])
	}
	if idx.called {
		t.Error("index check must not run when the database is down")
	}
}

func TestCheck_IndexMissing(t *testing.T) {
	svc := New(&mockDBPinger{}, &mockIndexChecker{ready: false})
	r := svc.Check(context.Background())

	if r.Status != Degraded {
		t.Errorf("expected %q, got %q", Degraded, r.Status)
	}
	if r.Checks[CheckCatalogIndex] != CheckError {
		t.Errorf("expected catalog_index %q, got %q", CheckError, r.Checks[CheckCatalogIndex])
	}
}

func TestCheck_IndexError(t *testing.T) {
	svc := New(&mockDBPinger{}, &mockIndexChecker{err: errors.New("timeout")})
	r := svc.Check(context.Background())

	if r.Status != Degraded {
		t.Errorf("expected %q, got %q", Degraded, r.Status)
	}
}

func TestCheck_NilIndexChecker(t *testing.T) {
	svc := New(&mockDBPinger{}, nil)
	r := svc.Check(context.Background())

	if r.Status != Healthy {
		t.Errorf("expected %q, got %q", Healthy, r.Status)
	}
	if _, exists := r.Checks[CheckCatalogIndex]; exists {
		t.Error("expected no catalog_index check when checker is nil")
	}
}

func TestCheck_SlowStoreTimesOut(t *testing.T) {
	svc := New(&mockDBPinger{block: true}, &mockIndexChecker{ready: true}).WithTimeout(10 * time.Millisecond)

	done := make(chan Report, 1)
	go func() { done <- svc.Check(context.Background()) }()

	select {
	case r := <-done:
		if r.Status != Unhealthy {
			t.Errorf("expected %q, got %q", Unhealthy, r.Status)
		}
	case <-time.After(time.Second):
		t.Fatal("health check did not honor its timeout")
	}
}
