package ports

import (
	"context"

	"github.com/devhub/admin-console/internal/core/domain"
)

// AdminRepository defines persistence for console operators.
type AdminRepository interface {
	// FindByUsername returns domain.ErrInvalidCredentials when no operator matches.
	FindByUsername(ctx context.Context, username string) (*domain.Admin, error)
	Create(ctx context.Context, admin *domain.Admin) (*domain.Admin, error)
}
