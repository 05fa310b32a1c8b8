package ports

import (
	"context"

	"github.com/devhub/admin-console/internal/core/domain"
)

// AuditRepository persists the moderation audit trail.
type AuditRepository interface {
	Insert(ctx context.Context, entry *domain.AuditEntry) error
	// Recent returns at most limit entries, newest first.
	Recent(ctx context.Context, limit int) ([]domain.AuditEntry, error)
}
