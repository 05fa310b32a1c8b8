package ports

import (
	"context"

	"github.com/devhub/admin-console/internal/core/domain"
)

// UpdateAccountStatusInput bans or reinstates a single account.
type UpdateAccountStatusInput struct {
	ID     int64
	Status string
	Actor  string
}

type AccountService interface {
	Search(ctx context.Context, term string) ([]domain.Account, error)
	UpdateStatus(ctx context.Context, input UpdateAccountStatusInput) (*domain.Account, error)
}
