package ports

import (
	"context"

	"github.com/devhub/admin-console/internal/core/domain"
)

// CategoryRepository defines persistence operations for categories.
type CategoryRepository interface {
	// List returns every category ordered by sort order, then id.
	List(ctx context.Context) ([]domain.Category, error)
	// FindByName matches case-insensitively and returns domain.ErrCategoryNotFound on miss.
	FindByName(ctx context.Context, name string) (*domain.Category, error)
	// Create assigns the id and stores the category.
	Create(ctx context.Context, c *domain.Category) (*domain.Category, error)
	Delete(ctx context.Context, id int64) error
}
