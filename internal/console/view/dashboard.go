package view

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/devhub/admin-console/internal/console/client"
	"github.com/devhub/admin-console/internal/core/domain"
)

const recentActivityLimit = 10

// Count is one numeric dashboard widget. Err holds the failure wording when
// the widget could not be loaded.
type Count struct {
	Value  int
	Loaded bool
	Err    string
}

type DashboardState struct {
	Loading     bool
	Categories  Count
	Pending     Count
	Activity    []domain.AuditEntry
	ActivityOK  bool
	ActivityErr string
}

// Dashboard summarises the community. Each widget is fetched on its own so
// one failure does not blank the others.
type Dashboard struct {
	categories CategoryBackend
	posts      PostBackend
	audit      AuditBackend
	notify     Notifier
	log        zerolog.Logger

	mu         sync.Mutex
	state      DashboardState
	generation uint64
}

func NewDashboard(categories CategoryBackend, posts PostBackend, audit AuditBackend, notify Notifier, log zerolog.Logger) *Dashboard {
	return &Dashboard{
		categories: categories,
		posts:      posts,
		audit:      audit,
		notify:     notify,
		log:        log,
	}
}

// Load refreshes every widget. At most one failure notice is issued.
func (d *Dashboard) Load(ctx context.Context) {
	d.mu.Lock()
	d.generation++
	gen := d.generation
	d.state.Loading = true
	d.mu.Unlock()

	var next DashboardState
	var firstErr *client.Error

	if res := d.categories.List(ctx); res.OK() {
		next.Categories = Count{Value: len(res.Value), Loaded: true}
	} else {
		next.Categories.Err = FailureMessage(res.Err, "failed to load categories")
		firstErr = res.Err
	}

	if res := d.posts.List(ctx, domain.PostPending); res.OK() {
		next.Pending = Count{Value: len(res.Value), Loaded: true}
	} else {
		next.Pending.Err = FailureMessage(res.Err, "failed to load posts")
		if firstErr == nil {
			firstErr = res.Err
		}
	}

	if res := d.audit.Recent(ctx, recentActivityLimit); res.OK() {
		next.Activity = res.Value
		next.ActivityOK = true
	} else {
		next.ActivityErr = FailureMessage(res.Err, "failed to load recent activity")
		if firstErr == nil {
			firstErr = res.Err
		}
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	if gen != d.generation {
		d.log.Debug().Msg("discarded stale dashboard")
		return
	}
	if ctx.Err() != nil {
		d.state.Loading = false
		d.log.Debug().Msg("discarded dashboard for abandoned request")
		return
	}
	d.state = next
	if firstErr != nil {
		notifyFailure(d.notify, firstErr, "failed to load dashboard")
	}
}

func (d *Dashboard) State() DashboardState {
	d.mu.Lock()
	defer d.mu.Unlock()
	st := d.state
	st.Activity = append([]domain.AuditEntry(nil), d.state.Activity...)
	return st
}

func (d *Dashboard) Reset() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.state = DashboardState{}
	d.generation++
}
