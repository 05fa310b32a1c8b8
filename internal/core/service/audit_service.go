package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/devhub/admin-console/internal/core/domain"
	"github.com/devhub/admin-console/internal/core/ports"
)

const (
	defaultAuditLimit = 20
	maxAuditLimit     = 100
)

type auditService struct {
	repo ports.AuditRepository
	log  zerolog.Logger
}

// NewAuditService returns an AuditService implementation.
func NewAuditService(repo ports.AuditRepository, log zerolog.Logger) ports.AuditService {
	return &auditService{repo: repo, log: log}
}

// Process persists a single audit entry.
func (s *auditService) Process(ctx context.Context, entry domain.AuditEntry) error {
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	if entry.At.IsZero() {
		entry.At = time.Now().UTC()
	}

	if err := s.repo.Insert(ctx, &entry); err != nil {
		return fmt.Errorf("process audit entry: %w", err)
	}

	s.log.Debug().
		Str("action", string(entry.Action)).
		Str("entity", entry.Entity).
		Int64("entity_id", entry.EntityID).
		Msg("audit entry stored")
	return nil
}

// Recent clamps limit to [1, maxAuditLimit], defaulting to defaultAuditLimit.
func (s *auditService) Recent(ctx context.Context, limit int) ([]domain.AuditEntry, error) {
	switch {
	case limit <= 0:
		limit = defaultAuditLimit
	case limit > maxAuditLimit:
		limit = maxAuditLimit
	}
	return s.repo.Recent(ctx, limit)
}

func newAuditEntry(action domain.AuditAction, entity string, id int64, detail, actor string) domain.AuditEntry {
	return domain.AuditEntry{
		ID:       uuid.NewString(),
		Action:   action,
		Entity:   entity,
		EntityID: id,
		Detail:   detail,
		Actor:    actor,
		At:       time.Now().UTC(),
	}
}
