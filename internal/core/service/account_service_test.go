package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/devhub/admin-console/internal/core/domain"
	"github.com/devhub/admin-console/internal/core/ports"
)

func seededAccounts() *stubAccountRepo {
	return newStubAccountRepo(
		domain.Account{ID: 101, Username: "javadev", Status: domain.AccountActive},
		domain.Account{ID: 102, Username: "pythondata", Status: domain.AccountActive},
		domain.Account{ID: 105, Username: "spammer", Status: domain.AccountBanned},
	)
}

func TestAccountService_Search(t *testing.T) {
	svc := NewAccountService(seededAccounts(), &recordingAudit{}, zerolog.Nop())

	got, err := svc.Search(context.Background(), "  JAVA ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || got[0].ID != 101 {
		t.Fatalf("unexpected results: %+v", got)
	}

	all, _ := svc.Search(context.Background(), "")
	if len(all) != 3 {
		t.Fatalf("empty term should return every account, got %d", len(all))
	}

	none, _ := svc.Search(context.Background(), "nobody")
	if len(none) != 0 {
		t.Fatalf("expected no results, got %d", len(none))
	}
}

func TestAccountService_UpdateStatus(t *testing.T) {
	audit := &recordingAudit{}
	svc := NewAccountService(seededAccounts(), audit, zerolog.Nop())

	a, err := svc.UpdateStatus(context.Background(), ports.UpdateAccountStatusInput{ID: 102, Status: "banned", Actor: "admin"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.Status != domain.AccountBanned {
		t.Fatalf("expected banned, got %s", a.Status)
	}
	if audit.count() != 1 {
		t.Fatalf("expected audit entry")
	}

	if _, err := svc.UpdateStatus(context.Background(), ports.UpdateAccountStatusInput{ID: 102, Status: "frozen"}); !errors.Is(err, domain.ErrInvalidStatus) {
		t.Fatalf("expected ErrInvalidStatus, got %v", err)
	}
	if _, err := svc.UpdateStatus(context.Background(), ports.UpdateAccountStatusInput{ID: 999, Status: "banned"}); !errors.Is(err, domain.ErrAccountNotFound) {
		t.Fatalf("expected ErrAccountNotFound, got %v", err)
	}
}
