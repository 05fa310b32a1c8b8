package queue

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/rs/zerolog"

	"github.com/devhub/admin-console/internal/core/domain"
)

type stubAuditService struct {
	mu        sync.Mutex
	processed []domain.AuditEntry
	processFn func(domain.AuditEntry) error
}

func (s *stubAuditService) Process(_ context.Context, e domain.AuditEntry) error {
	s.mu.Lock()
	s.processed = append(s.processed, e)
	s.mu.Unlock()
	if s.processFn != nil {
		return s.processFn(e)
	}
	return nil
}

func (s *stubAuditService) Recent(context.Context, int) ([]domain.AuditEntry, error) {
	return nil, nil
}

type countingObserver struct {
	mu       sync.Mutex
	failures int
}

func (o *countingObserver) QueueDepth(int, int) {}

func (o *countingObserver) ProcessFailed() {
	o.mu.Lock()
	o.failures++
	o.mu.Unlock()
}

func TestDispatcher_PreservesPerEntityOrder(t *testing.T) {
	svc := &stubAuditService{}
	d := NewDispatcher(4, svc, nil, zerolog.Nop())
	d.Start(context.Background())

	for i := 0; i < 50; i++ {
		d.Record(domain.AuditEntry{Entity: "post", EntityID: 7, Detail: string(rune('a' + i%26))})
		d.Record(domain.AuditEntry{Entity: "account", EntityID: int64(i)})
	}
	d.Close()

	var details []string
	for _, e := range svc.processed {
		if e.Entity == "post" {
			details = append(details, e.Detail)
		}
	}
	if len(details) != 50 {
		t.Fatalf("expected 50 post entries, got %d", len(details))
	}
	for i, got := range details {
		if want := string(rune('a' + i%26)); got != want {
			t.Fatalf("entry %d out of order: got %s want %s", i, got, want)
		}
	}
	if len(svc.processed) != 100 {
		t.Fatalf("expected 100 processed entries, got %d", len(svc.processed))
	}
}

func TestDispatcher_ReportsFailures(t *testing.T) {
	svc := &stubAuditService{processFn: func(domain.AuditEntry) error { return errors.New("boom") }}
	obs := &countingObserver{}
	d := NewDispatcher(1, svc, obs, zerolog.Nop())
	d.Start(context.Background())

	d.Record(domain.AuditEntry{Entity: "category", EntityID: 1})
	d.Close()

	if obs.failures != 1 {
		t.Fatalf("expected 1 failure, got %d", obs.failures)
	}
}

func TestDispatcher_RecordAfterCloseIsDropped(t *testing.T) {
	svc := &stubAuditService{}
	d := NewDispatcher(2, svc, nil, zerolog.Nop())
	d.Start(context.Background())
	d.Close()
	d.Close()

	d.Record(domain.AuditEntry{Entity: "post", EntityID: 1})
	if len(svc.processed) != 0 {
		t.Fatalf("expected no processing after close")
	}
}

func TestDispatcher_ShardIndexIsStable(t *testing.T) {
	d := NewDispatcher(8, &stubAuditService{}, nil, zerolog.Nop())
	a := d.shardIndex("post:1")
	for i := 0; i < 10; i++ {
		if d.shardIndex("post:1") != a {
			t.Fatal("shard index must be deterministic")
		}
	}
	if a < 0 || a >= 8 {
		t.Fatalf("shard index out of range: %d", a)
	}
}
