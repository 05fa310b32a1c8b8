package view

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/devhub/admin-console/internal/console/client"
	"github.com/devhub/admin-console/internal/core/domain"
)

type stubCategories struct {
	listFn   func(ctx context.Context) client.Result[[]domain.Category]
	createFn func(ctx context.Context, in client.CategoryInput) client.Result[domain.Category]
	deleteFn func(ctx context.Context, id int64) client.Result[client.Empty]

	createCalls int32
	deleteCalls int32
}

func (s *stubCategories) List(ctx context.Context) client.Result[[]domain.Category] {
	return s.listFn(ctx)
}

func (s *stubCategories) Create(ctx context.Context, in client.CategoryInput) client.Result[domain.Category] {
	atomic.AddInt32(&s.createCalls, 1)
	return s.createFn(ctx, in)
}

func (s *stubCategories) Delete(ctx context.Context, id int64) client.Result[client.Empty] {
	atomic.AddInt32(&s.deleteCalls, 1)
	return s.deleteFn(ctx, id)
}

type stubPosts struct {
	listFn   func(ctx context.Context, status domain.PostStatus) client.Result[[]domain.Post]
	updateFn func(ctx context.Context, id int64, status domain.PostStatus) client.Result[domain.Post]
}

func (s *stubPosts) List(ctx context.Context, status domain.PostStatus) client.Result[[]domain.Post] {
	return s.listFn(ctx, status)
}

func (s *stubPosts) UpdateStatus(ctx context.Context, id int64, status domain.PostStatus) client.Result[domain.Post] {
	return s.updateFn(ctx, id, status)
}

type stubUsers struct {
	searchFn func(ctx context.Context, term string) client.Result[[]domain.Account]
	updateFn func(ctx context.Context, id int64, status domain.AccountStatus) client.Result[domain.Account]

	updateCalls int32
}

func (s *stubUsers) Search(ctx context.Context, term string) client.Result[[]domain.Account] {
	return s.searchFn(ctx, term)
}

func (s *stubUsers) UpdateStatus(ctx context.Context, id int64, status domain.AccountStatus) client.Result[domain.Account] {
	atomic.AddInt32(&s.updateCalls, 1)
	return s.updateFn(ctx, id, status)
}

type stubAudit struct {
	recentFn func(ctx context.Context, limit int) client.Result[[]domain.AuditEntry]
}

func (s *stubAudit) Recent(ctx context.Context, limit int) client.Result[[]domain.AuditEntry] {
	return s.recentFn(ctx, limit)
}

// recorder is a Notifier that keeps every notice.
type recorder struct {
	mu      sync.Mutex
	notices []Notice
}

func (r *recorder) Notify(n Notice) {
	r.mu.Lock()
	r.notices = append(r.notices, n)
	r.mu.Unlock()
}

func (r *recorder) all() []Notice {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Notice(nil), r.notices...)
}

// gate blocks a stubbed call until released and reports when it was entered.
type gate struct {
	entered chan struct{}
	release chan struct{}
}

func newGate() *gate {
	return &gate{entered: make(chan struct{}), release: make(chan struct{})}
}

func (g *gate) wait() {
	close(g.entered)
	<-g.release
}

func okResult[T any](v T) client.Result[T] { return client.Result[T]{Value: v} }

func failResult[T any](e *client.Error) client.Result[T] { return client.Result[T]{Err: e} }
