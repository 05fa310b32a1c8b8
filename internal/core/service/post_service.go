package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/devhub/admin-console/internal/core/domain"
	"github.com/devhub/admin-console/internal/core/ports"
)

type PostService struct {
	repo   ports.PostRepository
	audit  ports.AuditRecorder
	logger zerolog.Logger
}

func NewPostService(repo ports.PostRepository, audit ports.AuditRecorder, logger zerolog.Logger) *PostService {
	return &PostService{repo: repo, audit: audit, logger: logger}
}

// List returns the posts of one moderation bucket, or all posts for "".
func (s *PostService) List(ctx context.Context, status string) ([]domain.Post, error) {
	st := domain.PostStatus(status)
	if status != "" && !st.Valid() {
		return nil, domain.ErrInvalidStatus
	}
	return s.repo.ListByStatus(ctx, st)
}

// UpdateStatus applies a moderation decision after validating the transition.
func (s *PostService) UpdateStatus(ctx context.Context, in ports.UpdatePostStatusInput) (*domain.Post, error) {
	next := domain.PostStatus(in.Status)
	if !next.Valid() {
		return nil, domain.ErrInvalidStatus
	}

	post, err := s.repo.FindByID(ctx, in.ID)
	if err != nil {
		return nil, err
	}

	if !post.Status.CanTransitionTo(next) {
		return nil, fmt.Errorf("%w (from %s to %s)", domain.ErrInvalidTransition, post.Status, next)
	}

	updated, err := s.repo.UpdateStatus(ctx, in.ID, next, time.Now().UTC())
	if err != nil {
		return nil, fmt.Errorf("update post status: %w", err)
	}

	s.audit.Record(newAuditEntry(domain.AuditPostModerated, "post", updated.ID, string(next), in.Actor))
	s.logger.Info().
		Int64("post_id", updated.ID).
		Str("from", string(post.Status)).
		Str("to", string(next)).
		Msg("post moderated")

	return updated, nil
}
