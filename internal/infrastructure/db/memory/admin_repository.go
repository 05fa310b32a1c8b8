package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/devhub/admin-console/internal/core/domain"
)

type AdminRepository struct {
	mu     sync.RWMutex
	admins map[string]domain.Admin
}

func NewAdminRepository() *AdminRepository {
	return &AdminRepository{admins: make(map[string]domain.Admin)}
}

func (r *AdminRepository) FindByUsername(_ context.Context, username string) (*domain.Admin, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.admins[username]
	if !ok {
		return nil, domain.ErrInvalidCredentials
	}
	return &a, nil
}

func (r *AdminRepository) Create(_ context.Context, admin *domain.Admin) (*domain.Admin, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.admins[admin.Username]; ok {
		return nil, domain.ErrAdminExists
	}
	stored := *admin
	stored.ID = uuid.NewString()
	r.admins[stored.Username] = stored
	return &stored, nil
}
