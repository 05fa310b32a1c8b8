package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/devhub/admin-console/internal/core/domain"
)

type PostRepository struct {
	mu    sync.RWMutex
	posts map[int64]domain.Post
}

func NewPostRepository(seed ...domain.Post) *PostRepository {
	r := &PostRepository{posts: make(map[int64]domain.Post, len(seed))}
	for _, p := range seed {
		r.posts[p.ID] = p
	}
	return r
}

func (r *PostRepository) ListByStatus(_ context.Context, status domain.PostStatus) ([]domain.Post, error) {
	r.mu.RLock()
	out := make([]domain.Post, 0, len(r.posts))
	for _, p := range r.posts {
		if status == "" || p.Status == status {
			out = append(out, p)
		}
	}
	r.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *PostRepository) FindByID(_ context.Context, id int64) (*domain.Post, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.posts[id]
	if !ok {
		return nil, domain.ErrPostNotFound
	}
	return &p, nil
}

func (r *PostRepository) UpdateStatus(_ context.Context, id int64, status domain.PostStatus, at time.Time) (*domain.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.posts[id]
	if !ok {
		return nil, domain.ErrPostNotFound
	}
	p.Status = status
	p.UpdatedAt = at
	r.posts[id] = p
	return &p, nil
}
