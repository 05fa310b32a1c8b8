package ports

import (
	"context"

	"github.com/devhub/admin-console/internal/core/domain"
)

// CreateCategoryInput carries the fields an operator may set on a new category.
type CreateCategoryInput struct {
	Name        string
	Description string
	Actor       string
}

type CategoryService interface {
	List(ctx context.Context) ([]domain.Category, error)
	Create(ctx context.Context, input CreateCategoryInput) (*domain.Category, error)
	Delete(ctx context.Context, id int64, actor string) error
}
