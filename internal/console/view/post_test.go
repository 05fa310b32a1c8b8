package view

import (
	"context"
	"testing"

	"github.com/rs/zerolog"

	"github.com/devhub/admin-console/internal/console/client"
	"github.com/devhub/admin-console/internal/core/domain"
)

func pendingPosts() []domain.Post {
	return []domain.Post{
		{ID: 1, Title: "one", Status: domain.PostPending, Author: domain.Author{ID: 101, Username: "javadev"}},
		{ID: 2, Title: "two", Status: domain.PostPending, Author: domain.Author{ID: 102, Username: "pythonista"}},
		{ID: 5, Title: "five", Status: domain.PostPending, Author: domain.Author{ID: 105, Username: "gopher"}},
	}
}

// movingPosts answers list calls from buckets and moves posts between them on
// status updates.
func movingPosts() *stubPosts {
	buckets := map[domain.PostStatus][]domain.Post{
		domain.PostPending:  pendingPosts(),
		domain.PostApproved: {{ID: 3, Title: "three", Status: domain.PostApproved}},
	}
	return &stubPosts{
		listFn: func(_ context.Context, s domain.PostStatus) client.Result[[]domain.Post] {
			return okResult(append([]domain.Post(nil), buckets[s]...))
		},
		updateFn: func(_ context.Context, id int64, s domain.PostStatus) client.Result[domain.Post] {
			for _, p := range pendingPosts() {
				if p.ID == id {
					p.Status = s
					return okResult(p)
				}
			}
			return failResult[domain.Post](&client.Error{Kind: client.KindBusiness, Message: "post not found"})
		},
	}
}

func selectedID(st PostState) int64 {
	if st.Selected == nil {
		return 0
	}
	return st.Selected.ID
}

func TestPostView_SetTabSelectsFirst(t *testing.T) {
	v := NewPostView(movingPosts(), &stubUsers{}, &recorder{}, zerolog.Nop())
	v.SetTab(context.Background(), domain.PostPending)

	st := v.State()
	if len(st.Posts) != 3 || selectedID(st) != 1 {
		t.Fatalf("unexpected state %+v", st)
	}
	if v.PendingCount() != 3 {
		t.Fatalf("pending count = %d", v.PendingCount())
	}
}

func TestPostView_ApproveMovesSelection(t *testing.T) {
	rec := &recorder{}
	v := NewPostView(movingPosts(), &stubUsers{}, rec, zerolog.Nop())
	ctx := context.Background()
	v.SetTab(ctx, domain.PostPending)

	if !v.Select(2) {
		t.Fatal("post 2 should be selectable")
	}
	v.Approve(ctx, 2)
	st := v.State()
	if len(st.Posts) != 2 || selectedID(st) != 5 {
		t.Fatalf("selection should move to the next post, got %d in %+v", selectedID(st), st.Posts)
	}

	v.Approve(ctx, 5)
	if st := v.State(); selectedID(st) != 1 {
		t.Fatalf("selection should move to the new last post, got %d", selectedID(st))
	}

	v.Approve(ctx, 1)
	st = v.State()
	if len(st.Posts) != 0 || st.Selected != nil {
		t.Fatalf("empty list must have no selection: %+v", st)
	}
	if v.PendingCount() != 0 {
		t.Fatalf("pending count = %d", v.PendingCount())
	}
	if n := rec.all(); len(n) != 3 || n[0].Message != "post approved" {
		t.Fatalf("unexpected notices %+v", n)
	}
}

func TestPostView_ApproveUnselectedKeepsSelection(t *testing.T) {
	v := NewPostView(movingPosts(), &stubUsers{}, &recorder{}, zerolog.Nop())
	ctx := context.Background()
	v.SetTab(ctx, domain.PostPending)

	v.Reject(ctx, 5)
	if st := v.State(); selectedID(st) != 1 || len(st.Posts) != 2 {
		t.Fatalf("unexpected state %+v", st)
	}
}

func TestPostView_FailedActionLeavesList(t *testing.T) {
	stub := movingPosts()
	stub.updateFn = func(context.Context, int64, domain.PostStatus) client.Result[domain.Post] {
		return failResult[domain.Post](&client.Error{Kind: client.KindHTTP, Status: 500})
	}
	rec := &recorder{}
	v := NewPostView(stub, &stubUsers{}, rec, zerolog.Nop())
	ctx := context.Background()
	v.SetTab(ctx, domain.PostPending)

	v.Approve(ctx, 1)
	st := v.State()
	if len(st.Posts) != 3 || selectedID(st) != 1 {
		t.Fatalf("list must be unchanged: %+v", st)
	}
	if n := rec.all(); len(n) != 1 || n[0].Message != "request failed (HTTP 500)" {
		t.Fatalf("unexpected notices %+v", n)
	}
}

func TestPostView_SameBucketUpdatesInPlace(t *testing.T) {
	stub := movingPosts()
	stub.updateFn = func(_ context.Context, id int64, s domain.PostStatus) client.Result[domain.Post] {
		return okResult(domain.Post{ID: id, Title: "three (edited)", Status: s})
	}
	v := NewPostView(stub, &stubUsers{}, &recorder{}, zerolog.Nop())
	ctx := context.Background()
	v.SetTab(ctx, domain.PostApproved)

	v.Approve(ctx, 3)
	st := v.State()
	if len(st.Posts) != 1 || st.Posts[0].Title != "three (edited)" {
		t.Fatalf("post should be replaced in place: %+v", st.Posts)
	}
}

func TestPostView_StaleTabResponseIsDiscarded(t *testing.T) {
	g := newGate()
	stub := movingPosts()
	inner := stub.listFn
	stub.listFn = func(ctx context.Context, s domain.PostStatus) client.Result[[]domain.Post] {
		if s == domain.PostPending {
			g.wait()
		}
		return inner(ctx, s)
	}
	rec := &recorder{}
	v := NewPostView(stub, &stubUsers{}, rec, zerolog.Nop())
	ctx := context.Background()

	done := make(chan struct{})
	go func() {
		v.SetTab(ctx, domain.PostPending)
		close(done)
	}()
	<-g.entered

	v.SetTab(ctx, domain.PostApproved)
	close(g.release)
	<-done

	st := v.State()
	if st.Tab != domain.PostApproved {
		t.Fatalf("tab = %s", st.Tab)
	}
	if len(st.Posts) != 1 || st.Posts[0].ID != 3 {
		t.Fatalf("pending response must not show under approved: %+v", st.Posts)
	}
	if st.Loading {
		t.Fatal("view should not be loading")
	}
	if len(rec.all()) != 0 {
		t.Fatalf("unexpected notices %+v", rec.all())
	}
}

func TestPostView_SelectUnknownIsRejected(t *testing.T) {
	v := NewPostView(movingPosts(), &stubUsers{}, &recorder{}, zerolog.Nop())
	v.SetTab(context.Background(), domain.PostPending)
	if v.Select(3) {
		t.Fatal("post 3 is not in the pending bucket")
	}
	if selectedID(v.State()) != 1 {
		t.Fatal("selection must not change")
	}
}

func TestPostView_BanAuthor(t *testing.T) {
	g := newGate()
	users := &stubUsers{updateFn: func(_ context.Context, id int64, s domain.AccountStatus) client.Result[domain.Account] {
		g.wait()
		return okResult(domain.Account{ID: id, Status: s})
	}}
	rec := &recorder{}
	v := NewPostView(movingPosts(), users, rec, zerolog.Nop())
	ctx := context.Background()
	v.SetTab(ctx, domain.PostPending)

	done := make(chan struct{})
	go func() {
		v.BanAuthor(ctx, 101, "javadev")
		close(done)
	}()
	<-g.entered

	if !v.State().Banning[101] {
		t.Fatal("author should be marked in flight")
	}
	v.BanAuthor(ctx, 101, "javadev")
	close(g.release)
	<-done

	if users.updateCalls != 1 {
		t.Fatalf("expected one backend call, got %d", users.updateCalls)
	}
	if n := rec.all(); len(n) != 1 || n[0].Message != `user "javadev" has been banned` {
		t.Fatalf("unexpected notices %+v", n)
	}
	if v.State().Banning[101] {
		t.Fatal("flight should be cleared")
	}
}
