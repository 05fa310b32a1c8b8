package view

import (
	"context"
	"strings"
	"sync"
	"testing"

	"github.com/rs/zerolog"

	"github.com/devhub/admin-console/internal/console/client"
	"github.com/devhub/admin-console/internal/core/domain"
)

func accounts() []domain.Account {
	return []domain.Account{
		{ID: 101, Username: "javadev", Status: domain.AccountActive},
		{ID: 102, Username: "pythonista", Status: domain.AccountActive},
		{ID: 104, Username: "jsguru", Status: domain.AccountBanned},
	}
}

func searchingUsers() *stubUsers {
	return &stubUsers{
		searchFn: func(_ context.Context, term string) client.Result[[]domain.Account] {
			var out []domain.Account
			for _, a := range accounts() {
				if strings.Contains(a.Username, term) {
					out = append(out, a)
				}
			}
			return okResult(out)
		},
		updateFn: func(_ context.Context, id int64, s domain.AccountStatus) client.Result[domain.Account] {
			for _, a := range accounts() {
				if a.ID == id {
					a.Status = s
					return okResult(a)
				}
			}
			return failResult[domain.Account](&client.Error{Kind: client.KindBusiness, Message: "user not found"})
		},
	}
}

func TestUserView_NoMatch(t *testing.T) {
	rec := &recorder{}
	v := NewUserView(searchingUsers(), rec, zerolog.Nop())

	v.Search(context.Background(), "nobody")

	st := v.State()
	if st.Phase != PhaseNoMatch || len(st.Users) != 0 {
		t.Fatalf("unexpected state %+v", st)
	}
	n := rec.all()
	if len(n) != 1 || n[0].Level != LevelInfo || n[0].Message != `no users match "nobody"` {
		t.Fatalf("unexpected notices %+v", n)
	}
}

func TestUserView_EmptyTermReturnsEverything(t *testing.T) {
	var gotTerm = "unset"
	stub := searchingUsers()
	inner := stub.searchFn
	stub.searchFn = func(ctx context.Context, term string) client.Result[[]domain.Account] {
		gotTerm = term
		return inner(ctx, term)
	}
	rec := &recorder{}
	v := NewUserView(stub, rec, zerolog.Nop())

	v.Search(context.Background(), "  ")

	if gotTerm != "" {
		t.Fatalf("expected empty term, got %q", gotTerm)
	}
	st := v.State()
	if st.Phase != PhaseResults || len(st.Users) != 3 {
		t.Fatalf("unexpected state %+v", st)
	}
	if n := rec.all(); len(n) != 1 || n[0].Message != "found 3 users" {
		t.Fatalf("unexpected notices %+v", n)
	}
}

func TestUserView_ConcurrentTogglesOnDifferentUsers(t *testing.T) {
	gates := map[int64]*gate{101: newGate(), 102: newGate()}
	stub := searchingUsers()
	inner := stub.updateFn
	stub.updateFn = func(ctx context.Context, id int64, s domain.AccountStatus) client.Result[domain.Account] {
		gates[id].wait()
		return inner(ctx, id, s)
	}
	rec := &recorder{}
	v := NewUserView(stub, rec, zerolog.Nop())
	ctx := context.Background()
	v.Search(ctx, "")
	rec.mu.Lock()
	rec.notices = nil
	rec.mu.Unlock()

	var wg sync.WaitGroup
	for _, id := range []int64{101, 102} {
		wg.Add(1)
		go func(id int64) {
			defer wg.Done()
			v.ToggleStatus(ctx, id)
		}(id)
	}
	<-gates[101].entered
	<-gates[102].entered

	st := v.State()
	if !st.Toggling[101] || !st.Toggling[102] {
		t.Fatalf("both users should be in flight: %+v", st.Toggling)
	}

	v.ToggleStatus(ctx, 101)
	if stub.updateCalls != 2 {
		t.Fatalf("second toggle on 101 must be ignored, got %d calls", stub.updateCalls)
	}

	close(gates[102].release)
	close(gates[101].release)
	wg.Wait()

	st = v.State()
	for _, u := range st.Users {
		if (u.ID == 101 || u.ID == 102) && u.Status != domain.AccountBanned {
			t.Fatalf("user %d should be banned, got %s", u.ID, u.Status)
		}
	}
	if len(st.Toggling) != 0 {
		t.Fatalf("no flights should remain: %+v", st.Toggling)
	}
	if n := rec.all(); len(n) != 2 {
		t.Fatalf("expected one notice per toggle, got %+v", n)
	}
}

func TestUserView_ToggleUnbans(t *testing.T) {
	rec := &recorder{}
	v := NewUserView(searchingUsers(), rec, zerolog.Nop())
	ctx := context.Background()
	v.Search(ctx, "jsguru")

	v.ToggleStatus(ctx, 104)

	st := v.State()
	if len(st.Users) != 1 || st.Users[0].Status != domain.AccountActive {
		t.Fatalf("unexpected users %+v", st.Users)
	}
	n := rec.all()
	if last := n[len(n)-1]; last.Message != `user "jsguru" has been unbanned` {
		t.Fatalf("unexpected notice %+v", last)
	}
}

func TestUserView_StaleSearchIsDiscarded(t *testing.T) {
	g := newGate()
	stub := searchingUsers()
	inner := stub.searchFn
	stub.searchFn = func(ctx context.Context, term string) client.Result[[]domain.Account] {
		if term == "java" {
			g.wait()
		}
		return inner(ctx, term)
	}
	v := NewUserView(stub, &recorder{}, zerolog.Nop())
	ctx := context.Background()

	done := make(chan struct{})
	go func() {
		v.Search(ctx, "java")
		close(done)
	}()
	<-g.entered
	v.Search(ctx, "python")
	close(g.release)
	<-done

	st := v.State()
	if st.Term != "python" || len(st.Users) != 1 || st.Users[0].Username != "pythonista" {
		t.Fatalf("unexpected state %+v", st)
	}
}

func TestUserView_Clear(t *testing.T) {
	v := NewUserView(searchingUsers(), &recorder{}, zerolog.Nop())
	v.Search(context.Background(), "java")
	v.Clear()

	st := v.State()
	if st.Phase != PhaseInitial || st.Term != "" || len(st.Users) != 0 || st.Loading {
		t.Fatalf("unexpected state %+v", st)
	}
}
