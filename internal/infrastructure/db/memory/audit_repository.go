package memory

import (
	"context"
	"sync"

	"github.com/devhub/admin-console/internal/core/domain"
)

const auditCapacity = 500

// AuditRepository keeps the most recent entries only; older ones are dropped
// once capacity is reached.
type AuditRepository struct {
	mu       sync.RWMutex
	entries  []domain.AuditEntry
	capacity int
}

func NewAuditRepository(capacity int) *AuditRepository {
	if capacity <= 0 {
		capacity = auditCapacity
	}
	return &AuditRepository{capacity: capacity}
}

func (r *AuditRepository) Insert(_ context.Context, entry *domain.AuditEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = append(r.entries, *entry)
	if over := len(r.entries) - r.capacity; over > 0 {
		r.entries = append([]domain.AuditEntry(nil), r.entries[over:]...)
	}
	return nil
}

// Recent returns entries newest first.
func (r *AuditRepository) Recent(_ context.Context, limit int) ([]domain.AuditEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	n := len(r.entries)
	if limit > n || limit <= 0 {
		limit = n
	}
	out := make([]domain.AuditEntry, 0, limit)
	for i := n - 1; i >= n-limit; i-- {
		out = append(out, r.entries[i])
	}
	return out, nil
}
