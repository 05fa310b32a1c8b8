package view

import (
	"context"

	"github.com/devhub/admin-console/internal/console/client"
	"github.com/devhub/admin-console/internal/core/domain"
)

// The interfaces below are satisfied by the typed resource clients of
// package client.

type CategoryBackend interface {
	List(ctx context.Context) client.Result[[]domain.Category]
	Create(ctx context.Context, in client.CategoryInput) client.Result[domain.Category]
	Delete(ctx context.Context, id int64) client.Result[client.Empty]
}

type PostBackend interface {
	List(ctx context.Context, status domain.PostStatus) client.Result[[]domain.Post]
	UpdateStatus(ctx context.Context, id int64, status domain.PostStatus) client.Result[domain.Post]
}

type UserBackend interface {
	Search(ctx context.Context, term string) client.Result[[]domain.Account]
	UpdateStatus(ctx context.Context, id int64, status domain.AccountStatus) client.Result[domain.Account]
}

type AuditBackend interface {
	Recent(ctx context.Context, limit int) client.Result[[]domain.AuditEntry]
}
