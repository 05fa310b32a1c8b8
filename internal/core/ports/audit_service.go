package ports

import (
	"context"

	"github.com/devhub/admin-console/internal/core/domain"
)

// AuditRecorder accepts audit entries for asynchronous persistence.
type AuditRecorder interface {
	Record(entry domain.AuditEntry)
}

// AuditService processes and queries the moderation audit trail.
type AuditService interface {
	// Process persists a single entry. Called by the dispatcher workers.
	Process(ctx context.Context, entry domain.AuditEntry) error
	Recent(ctx context.Context, limit int) ([]domain.AuditEntry, error)
}
