package service

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/devhub/admin-console/internal/core/domain"
)

// ---------------------------------------------------------------------------
// In-memory stubs shared by the service tests
// ---------------------------------------------------------------------------

type stubAdminRepo struct {
	admins map[string]*domain.Admin
}

func newStubAdminRepo() *stubAdminRepo {
	return &stubAdminRepo{admins: make(map[string]*domain.Admin)}
}

func (r *stubAdminRepo) FindByUsername(_ context.Context, username string) (*domain.Admin, error) {
	a, ok := r.admins[username]
	if !ok {
		return nil, domain.ErrInvalidCredentials
	}
	clone := *a
	return &clone, nil
}

func (r *stubAdminRepo) Create(_ context.Context, a *domain.Admin) (*domain.Admin, error) {
	if _, ok := r.admins[a.Username]; ok {
		return nil, domain.ErrAdminExists
	}
	clone := *a
	clone.ID = "admin-" + a.Username
	r.admins[a.Username] = &clone
	out := clone
	return &out, nil
}

type stubCategoryRepo struct {
	items     []domain.Category
	nextID    int64
	createErr error
}

func (r *stubCategoryRepo) List(context.Context) ([]domain.Category, error) {
	out := make([]domain.Category, len(r.items))
	copy(out, r.items)
	return out, nil
}

func (r *stubCategoryRepo) FindByName(_ context.Context, name string) (*domain.Category, error) {
	for _, c := range r.items {
		if strings.EqualFold(c.Name, name) {
			clone := c
			return &clone, nil
		}
	}
	return nil, domain.ErrCategoryNotFound
}

func (r *stubCategoryRepo) Create(_ context.Context, c *domain.Category) (*domain.Category, error) {
	if r.createErr != nil {
		return nil, r.createErr
	}
	r.nextID++
	clone := *c
	clone.ID = r.nextID
	r.items = append(r.items, clone)
	return &clone, nil
}

func (r *stubCategoryRepo) Delete(_ context.Context, id int64) error {
	for i, c := range r.items {
		if c.ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return nil
		}
	}
	return domain.ErrCategoryNotFound
}

type stubPostRepo struct {
	byID map[int64]*domain.Post
}

func newStubPostRepo(posts ...domain.Post) *stubPostRepo {
	r := &stubPostRepo{byID: make(map[int64]*domain.Post)}
	for i := range posts {
		p := posts[i]
		r.byID[p.ID] = &p
	}
	return r
}

func (r *stubPostRepo) ListByStatus(_ context.Context, status domain.PostStatus) ([]domain.Post, error) {
	var out []domain.Post
	for _, p := range r.byID {
		if status == "" || p.Status == status {
			out = append(out, *p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *stubPostRepo) FindByID(_ context.Context, id int64) (*domain.Post, error) {
	p, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrPostNotFound
	}
	clone := *p
	return &clone, nil
}

func (r *stubPostRepo) UpdateStatus(_ context.Context, id int64, status domain.PostStatus, at time.Time) (*domain.Post, error) {
	p, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrPostNotFound
	}
	p.Status = status
	p.UpdatedAt = at
	clone := *p
	return &clone, nil
}

type stubAccountRepo struct {
	byID map[int64]*domain.Account
}

func newStubAccountRepo(accounts ...domain.Account) *stubAccountRepo {
	r := &stubAccountRepo{byID: make(map[int64]*domain.Account)}
	for i := range accounts {
		a := accounts[i]
		r.byID[a.ID] = &a
	}
	return r
}

func (r *stubAccountRepo) Search(_ context.Context, term string) ([]domain.Account, error) {
	var out []domain.Account
	for _, a := range r.byID {
		if term == "" || strings.Contains(strings.ToLower(a.Username), strings.ToLower(term)) {
			out = append(out, *a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *stubAccountRepo) FindByID(_ context.Context, id int64) (*domain.Account, error) {
	a, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrAccountNotFound
	}
	clone := *a
	return &clone, nil
}

func (r *stubAccountRepo) UpdateStatus(_ context.Context, id int64, status domain.AccountStatus) (*domain.Account, error) {
	a, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrAccountNotFound
	}
	a.Status = status
	clone := *a
	return &clone, nil
}

type recordingAudit struct {
	mu      sync.Mutex
	entries []domain.AuditEntry
}

func (r *recordingAudit) Record(e domain.AuditEntry) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, e)
}

func (r *recordingAudit) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}

type stubAuditRepo struct {
	inserted  []domain.AuditEntry
	insertErr error
	lastLimit int
}

func (r *stubAuditRepo) Insert(_ context.Context, e *domain.AuditEntry) error {
	if r.insertErr != nil {
		return r.insertErr
	}
	r.inserted = append(r.inserted, *e)
	return nil
}

func (r *stubAuditRepo) Recent(_ context.Context, limit int) ([]domain.AuditEntry, error) {
	r.lastLimit = limit
	return r.inserted, nil
}
