package ports

import (
	"context"

	"github.com/devhub/admin-console/internal/core/domain"
)

type AuthService interface {
	// Login verifies the operator credentials and returns a signed bearer token.
	Login(ctx context.Context, username, password string) (string, *domain.Admin, error)
	// EnsureAdmin creates the operator when it does not exist yet.
	EnsureAdmin(ctx context.Context, username, password string) error
}
