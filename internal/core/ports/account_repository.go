package ports

import (
	"context"

	"github.com/devhub/admin-console/internal/core/domain"
)

// AccountRepository defines persistence operations for community accounts.
type AccountRepository interface {
	// Search matches usernames case-insensitively by substring. An empty term
	// returns every account.
	Search(ctx context.Context, term string) ([]domain.Account, error)
	FindByID(ctx context.Context, id int64) (*domain.Account, error)
	UpdateStatus(ctx context.Context, id int64, status domain.AccountStatus) (*domain.Account, error)
}
