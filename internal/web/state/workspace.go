// Package state maps each browser to its console workspace: the session
// store, the backend client bound to it, the page views and the pending
// notices.
package state

import (
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/devhub/admin-console/internal/console/client"
	"github.com/devhub/admin-console/internal/console/session"
	"github.com/devhub/admin-console/internal/console/view"
)

type Workspace struct {
	ID string

	Session *session.Store
	Notices *view.Queue
	Client  *client.Client

	Dashboard  *view.Dashboard
	Categories *view.CategoryView
	Posts      *view.PostView
	Users      *view.UserView

	lastSeen atomic.Int64
}

func newWorkspace(id string, p session.Persister, cfg client.Config, log zerolog.Logger) *Workspace {
	ws := &Workspace{
		ID:      id,
		Session: session.NewStore(p),
		Notices: view.NewQueue(),
	}
	ws.Client = client.New(cfg, ws.Session)

	vlog := log.With().Str("workspace", id).Logger()
	ws.Dashboard = view.NewDashboard(ws.Client.Categories, ws.Client.Posts, ws.Client.Audit, ws.Notices, vlog)
	ws.Categories = view.NewCategoryView(ws.Client.Categories, ws.Notices, vlog)
	ws.Posts = view.NewPostView(ws.Client.Posts, ws.Client.Users, ws.Notices, vlog)
	ws.Users = view.NewUserView(ws.Client.Users, ws.Notices, vlog)
	return ws
}

// ResetViews clears every page. Results of calls still outstanding are
// discarded. Pending notices are kept.
func (w *Workspace) ResetViews() {
	w.Dashboard.Reset()
	w.Categories.Reset()
	w.Posts.Reset()
	w.Users.Reset()
}

func (w *Workspace) touch(now time.Time) {
	w.lastSeen.Store(now.UnixNano())
}

func (w *Workspace) idleSince(now time.Time) time.Duration {
	return now.Sub(time.Unix(0, w.lastSeen.Load()))
}
