package view

import (
	"context"
	"testing"

	"github.com/rs/zerolog"

	"github.com/devhub/admin-console/internal/console/client"
	"github.com/devhub/admin-console/internal/core/domain"
)

func TestDashboard_OneFailureDoesNotBlankOthers(t *testing.T) {
	cats := &stubCategories{listFn: func(context.Context) client.Result[[]domain.Category] {
		return okResult(seededCategories())
	}}
	posts := movingPosts()
	audit := &stubAudit{recentFn: func(context.Context, int) client.Result[[]domain.AuditEntry] {
		return failResult[[]domain.AuditEntry](&client.Error{Kind: client.KindNetwork})
	}}
	rec := &recorder{}
	d := NewDashboard(cats, posts, audit, rec, zerolog.Nop())

	d.Load(context.Background())

	st := d.State()
	if !st.Categories.Loaded || st.Categories.Value != 4 {
		t.Fatalf("categories widget: %+v", st.Categories)
	}
	if !st.Pending.Loaded || st.Pending.Value != 3 {
		t.Fatalf("pending widget: %+v", st.Pending)
	}
	if st.ActivityOK || st.ActivityErr != msgNetwork {
		t.Fatalf("activity widget: ok=%v err=%q", st.ActivityOK, st.ActivityErr)
	}
	if n := rec.all(); len(n) != 1 || n[0].Level != LevelError {
		t.Fatalf("unexpected notices %+v", n)
	}
}

func TestDashboard_AllLoaded(t *testing.T) {
	cats := &stubCategories{listFn: func(context.Context) client.Result[[]domain.Category] {
		return okResult(seededCategories())
	}}
	var gotLimit int
	audit := &stubAudit{recentFn: func(_ context.Context, limit int) client.Result[[]domain.AuditEntry] {
		gotLimit = limit
		return okResult([]domain.AuditEntry{{ID: "a", Action: domain.AuditPostModerated}})
	}}
	rec := &recorder{}
	d := NewDashboard(cats, movingPosts(), audit, rec, zerolog.Nop())

	d.Load(context.Background())

	if gotLimit != recentActivityLimit {
		t.Fatalf("limit = %d", gotLimit)
	}
	st := d.State()
	if !st.ActivityOK || len(st.Activity) != 1 {
		t.Fatalf("activity widget: %+v", st)
	}
	if len(rec.all()) != 0 {
		t.Fatal("successful load must not notify")
	}
}
