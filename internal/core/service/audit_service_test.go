package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/devhub/admin-console/internal/core/domain"
)

func TestAuditService_Process_FillsDefaults(t *testing.T) {
	repo := &stubAuditRepo{}
	svc := NewAuditService(repo, zerolog.Nop())

	if err := svc.Process(context.Background(), domain.AuditEntry{Action: domain.AuditPostModerated, Entity: "post", EntityID: 1}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(repo.inserted) != 1 {
		t.Fatalf("expected one insert")
	}
	if repo.inserted[0].ID == "" || repo.inserted[0].At.IsZero() {
		t.Fatalf("expected id and timestamp to be filled: %+v", repo.inserted[0])
	}
}

func TestAuditService_Process_WrapsRepoError(t *testing.T) {
	boom := errors.New("mongo unavailable")
	svc := NewAuditService(&stubAuditRepo{insertErr: boom}, zerolog.Nop())

	if err := svc.Process(context.Background(), domain.AuditEntry{}); !errors.Is(err, boom) {
		t.Fatalf("expected wrapped repo error, got %v", err)
	}
}

func TestAuditService_Recent_ClampsLimit(t *testing.T) {
	repo := &stubAuditRepo{}
	svc := NewAuditService(repo, zerolog.Nop())

	cases := map[int]int{0: 20, -3: 20, 5: 5, 1000: 100}
	for in, want := range cases {
		if _, err := svc.Recent(context.Background(), in); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if repo.lastLimit != want {
			t.Errorf("Recent(%d) used limit %d, want %d", in, repo.lastLimit, want)
		}
	}
}
