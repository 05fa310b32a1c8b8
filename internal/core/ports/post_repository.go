package ports

import (
	"context"
	"time"

	"github.com/devhub/admin-console/internal/core/domain"
)

// PostRepository defines persistence operations for posts.
type PostRepository interface {
	// ListByStatus returns posts in the given bucket ordered by id. An empty
	// status returns every post.
	ListByStatus(ctx context.Context, status domain.PostStatus) ([]domain.Post, error)
	FindByID(ctx context.Context, id int64) (*domain.Post, error)
	// UpdateStatus sets the status and updatedAt and returns the stored copy.
	UpdateStatus(ctx context.Context, id int64, status domain.PostStatus, at time.Time) (*domain.Post, error)
}
