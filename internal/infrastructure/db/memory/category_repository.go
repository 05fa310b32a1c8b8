package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/devhub/admin-console/internal/core/domain"
)

type CategoryRepository struct {
	mu     sync.RWMutex
	items  []domain.Category
	lastID int64
}

func NewCategoryRepository(seed ...domain.Category) *CategoryRepository {
	items := make([]domain.Category, len(seed))
	copy(items, seed)
	return &CategoryRepository{items: items, lastID: maxID(items)}
}

func (r *CategoryRepository) List(_ context.Context) ([]domain.Category, error) {
	r.mu.RLock()
	out := make([]domain.Category, len(r.items))
	copy(out, r.items)
	r.mu.RUnlock()

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].SortOrder != out[j].SortOrder {
			return out[i].SortOrder < out[j].SortOrder
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (r *CategoryRepository) FindByName(_ context.Context, name string) (*domain.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, c := range r.items {
		if strings.EqualFold(c.Name, name) {
			found := c
			return &found, nil
		}
	}
	return nil, domain.ErrCategoryNotFound
}

// Create assigns the next id. Ids are never reused after a delete.
func (r *CategoryRepository) Create(_ context.Context, c *domain.Category) (*domain.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.items {
		if strings.EqualFold(existing.Name, c.Name) {
			return nil, domain.ErrDuplicateCategory
		}
	}

	r.lastID++
	stored := *c
	stored.ID = r.lastID
	r.items = append(r.items, stored)
	return &stored, nil
}

func (r *CategoryRepository) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, c := range r.items {
		if c.ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return nil
		}
	}
	return domain.ErrCategoryNotFound
}
