package service

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/devhub/admin-console/internal/core/domain"
	"github.com/devhub/admin-console/internal/core/ports"
)

type AccountService struct {
	repo   ports.AccountRepository
	audit  ports.AuditRecorder
	logger zerolog.Logger
}

func NewAccountService(repo ports.AccountRepository, audit ports.AuditRecorder, logger zerolog.Logger) *AccountService {
	return &AccountService{repo: repo, audit: audit, logger: logger}
}

func (s *AccountService) Search(ctx context.Context, term string) ([]domain.Account, error) {
	return s.repo.Search(ctx, strings.TrimSpace(term))
}

// UpdateStatus bans or reinstates an account. Setting the current status
// again is accepted and still audited, matching a repeated operator click.
func (s *AccountService) UpdateStatus(ctx context.Context, in ports.UpdateAccountStatusInput) (*domain.Account, error) {
	next := domain.AccountStatus(in.Status)
	if !next.Valid() {
		return nil, domain.ErrInvalidStatus
	}

	updated, err := s.repo.UpdateStatus(ctx, in.ID, next)
	if err != nil {
		return nil, err
	}

	s.audit.Record(newAuditEntry(domain.AuditAccountStatus, "account", updated.ID, string(next), in.Actor))
	s.logger.Info().Int64("account_id", updated.ID).Str("status", string(next)).Msg("account status changed")

	return updated, nil
}
