package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/devhub/admin-console/internal/core/domain"
	"github.com/devhub/admin-console/internal/core/ports"
)

type CategoryService struct {
	repo   ports.CategoryRepository
	audit  ports.AuditRecorder
	logger zerolog.Logger
}

func NewCategoryService(repo ports.CategoryRepository, audit ports.AuditRecorder, logger zerolog.Logger) *CategoryService {
	return &CategoryService{repo: repo, audit: audit, logger: logger}
}

func (s *CategoryService) List(ctx context.Context) ([]domain.Category, error) {
	return s.repo.List(ctx)
}

// Create validates the name, rejects case-insensitive duplicates and appends
// the category at the end of the sort order.
func (s *CategoryService) Create(ctx context.Context, input ports.CreateCategoryInput) (*domain.Category, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domain.ErrInvalidCategory
	}

	if _, err := s.repo.FindByName(ctx, name); err == nil {
		return nil, domain.ErrDuplicateCategory
	} else if !errors.Is(err, domain.ErrCategoryNotFound) {
		return nil, fmt.Errorf("create category: %w", err)
	}

	existing, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("create category: %w", err)
	}

	created, err := s.repo.Create(ctx, &domain.Category{
		Name:        name,
		Description: strings.TrimSpace(input.Description),
		SortOrder:   len(existing),
		CreatedTime: time.Now().UTC(),
	})
	if err != nil {
		s.logger.Error().Err(err).Str("name", name).Msg("failed to create category")
		return nil, err
	}

	s.audit.Record(newAuditEntry(domain.AuditCategoryCreated, "category", created.ID, created.Name, input.Actor))
	s.logger.Info().Int64("category_id", created.ID).Str("name", created.Name).Msg("category created")

	return created, nil
}

func (s *CategoryService) Delete(ctx context.Context, id int64, actor string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.audit.Record(newAuditEntry(domain.AuditCategoryDeleted, "category", id, "", actor))
	s.logger.Info().Int64("category_id", id).Msg("category deleted")
	return nil
}
