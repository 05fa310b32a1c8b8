package ports

import (
	"context"

	"github.com/devhub/admin-console/internal/core/domain"
)

// UpdatePostStatusInput is the moderation decision for a single post.
type UpdatePostStatusInput struct {
	ID     int64
	Status string
	Actor  string
}

type PostService interface {
	List(ctx context.Context, status string) ([]domain.Post, error)
	UpdateStatus(ctx context.Context, input UpdatePostStatusInput) (*domain.Post, error)
}
