package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/devhub/admin-console/internal/core/domain"
)

type AccountRepository struct {
	mu       sync.RWMutex
	accounts map[int64]domain.Account
}

func NewAccountRepository(seed ...domain.Account) *AccountRepository {
	r := &AccountRepository{accounts: make(map[int64]domain.Account, len(seed))}
	for _, a := range seed {
		r.accounts[a.ID] = a
	}
	return r
}

func (r *AccountRepository) Search(_ context.Context, term string) ([]domain.Account, error) {
	needle := strings.ToLower(term)

	r.mu.RLock()
	out := make([]domain.Account, 0, len(r.accounts))
	for _, a := range r.accounts {
		if needle == "" || strings.Contains(strings.ToLower(a.Username), needle) {
			out = append(out, a)
		}
	}
	r.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *AccountRepository) FindByID(_ context.Context, id int64) (*domain.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.accounts[id]
	if !ok {
		return nil, domain.ErrAccountNotFound
	}
	return &a, nil
}

func (r *AccountRepository) UpdateStatus(_ context.Context, id int64, status domain.AccountStatus) (*domain.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.accounts[id]
	if !ok {
		return nil, domain.ErrAccountNotFound
	}
	a.Status = status
	r.accounts[id] = a
	return &a, nil
}
