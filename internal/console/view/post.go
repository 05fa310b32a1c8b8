package view

import (
	"context"
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/devhub/admin-console/internal/core/domain"
)

// PostTabs lists the moderation buckets in display order.
var PostTabs = []domain.PostStatus{domain.PostPending, domain.PostApproved, domain.PostRejected}

// PostState is what the moderation page renders.
type PostState struct {
	Tab          domain.PostStatus
	Posts        []domain.Post
	Loading      bool
	Selected     *domain.Post
	Acting       map[int64]bool
	Banning      map[int64]bool
	PendingCount int
}

// PostView is the List-Detail moderation page. Selection is tracked by post
// id and never points at a post that is not in the list.
type PostView struct {
	posts  PostBackend
	users  UserBackend
	notify Notifier
	log    zerolog.Logger

	mu           sync.Mutex
	tab          domain.PostStatus
	list         List[domain.Post]
	selected     int64
	banning      map[int64]struct{}
	pendingCount int
	resets       uint64
}

func NewPostView(posts PostBackend, users UserBackend, notify Notifier, log zerolog.Logger) *PostView {
	return &PostView{
		posts:  posts,
		users:  users,
		notify: notify,
		log:    log,
		tab:    domain.PostPending,
	}
}

// SetTab switches the active bucket and fetches it. A response that arrives
// after the tab changed again is discarded.
func (v *PostView) SetTab(ctx context.Context, status domain.PostStatus) {
	if !status.Valid() {
		status = domain.PostPending
	}

	v.mu.Lock()
	v.tab = status
	v.selected = 0
	ld := v.list.BeginLoad()
	v.mu.Unlock()

	res := v.posts.List(ctx, status)

	v.mu.Lock()
	defer v.mu.Unlock()
	if ctx.Err() != nil {
		v.list.Abort(ld)
		v.log.Debug().Str("tab", string(status)).Msg("discarded posts for abandoned request")
		return
	}
	if v.tab != status {
		v.log.Debug().Str("tab", string(status)).Msg("discarded posts for inactive tab")
		return
	}
	if !res.OK() {
		if v.list.Abort(ld) {
			notifyFailure(v.notify, res.Err, "failed to load posts")
		}
		return
	}
	if !v.list.Finish(ld, res.Value) {
		v.log.Debug().Str("tab", string(status)).Msg("discarded stale posts")
		return
	}
	if status == domain.PostPending {
		v.pendingCount = v.list.Len()
	}
	v.selected = 0
	if v.list.Len() > 0 {
		v.selected = v.list.items[0].ID
	}
}

// Load refetches the active tab.
func (v *PostView) Load(ctx context.Context) {
	v.SetTab(ctx, v.Tab())
}

func (v *PostView) Tab() domain.PostStatus {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.tab
}

// Select makes id the selected post when it is in the list.
func (v *PostView) Select(id int64) bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.list.Index(id) < 0 {
		return false
	}
	v.selected = id
	return true
}

func (v *PostView) Approve(ctx context.Context, id int64) {
	v.moderate(ctx, id, domain.PostApproved, "post approved", "failed to approve post")
}

func (v *PostView) Reject(ctx context.Context, id int64) {
	v.moderate(ctx, id, domain.PostRejected, "post rejected", "failed to reject post")
}

func (v *PostView) moderate(ctx context.Context, id int64, status domain.PostStatus, okMsg, fallback string) {
	v.mu.Lock()
	f, err := v.list.Begin(id)
	v.mu.Unlock()
	if err != nil {
		v.log.Debug().Err(err).Int64("id", id).Msg("post action ignored")
		return
	}

	res := v.posts.UpdateStatus(context.WithoutCancel(ctx), id, status)

	v.mu.Lock()
	defer v.mu.Unlock()
	if !v.list.End(f) {
		return
	}
	if !res.OK() {
		notifyFailure(v.notify, res.Err, fallback)
		return
	}

	updated := res.Value
	if updated.Status != v.tab {
		v.removeAndReselect(id)
	} else {
		v.list.Update(updated)
	}
	if v.tab == domain.PostPending {
		v.pendingCount = v.list.Len()
	}
	v.notify.Notify(Success(okMsg))
}

// removeAndReselect drops id from the list. When it was selected, selection
// moves to the post that followed it, else to the new last post, else none.
func (v *PostView) removeAndReselect(id int64) {
	idx, ok := v.list.Remove(id)
	if !ok || v.selected != id {
		return
	}
	switch {
	case idx < v.list.Len():
		v.selected = v.list.items[idx].ID
	case v.list.Len() > 0:
		v.selected = v.list.items[v.list.Len()-1].ID
	default:
		v.selected = 0
	}
}

// BanAuthor bans the author of a post. A second ban of the same author while
// the first is outstanding is ignored.
func (v *PostView) BanAuthor(ctx context.Context, userID int64, username string) {
	v.mu.Lock()
	if v.list.Loading() {
		v.mu.Unlock()
		return
	}
	if _, ok := v.banning[userID]; ok {
		v.mu.Unlock()
		return
	}
	if v.banning == nil {
		v.banning = make(map[int64]struct{})
	}
	v.banning[userID] = struct{}{}
	resets := v.resets
	v.mu.Unlock()

	res := v.users.UpdateStatus(context.WithoutCancel(ctx), userID, domain.AccountBanned)

	v.mu.Lock()
	defer v.mu.Unlock()
	if resets != v.resets {
		return
	}
	delete(v.banning, userID)
	if !res.OK() {
		notifyFailure(v.notify, res.Err, "failed to ban user")
		return
	}
	v.notify.Notify(Success(fmt.Sprintf("user %q has been banned", username)))
}

// PendingCount is the size of the pending bucket as last seen.
func (v *PostView) PendingCount() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.pendingCount
}

func (v *PostView) State() PostState {
	v.mu.Lock()
	defer v.mu.Unlock()

	st := PostState{
		Tab:          v.tab,
		Posts:        v.list.Items(),
		Loading:      v.list.Loading(),
		Acting:       make(map[int64]bool),
		Banning:      make(map[int64]bool),
		PendingCount: v.pendingCount,
	}
	for _, p := range st.Posts {
		if v.list.InFlight(p.ID) {
			st.Acting[p.ID] = true
		}
		if p.ID == v.selected {
			sel := p
			st.Selected = &sel
		}
	}
	for id := range v.banning {
		st.Banning[id] = true
	}
	return st
}

// Reset drops all state; results of calls still outstanding are discarded.
func (v *PostView) Reset() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.list.Reset()
	v.tab = domain.PostPending
	v.selected = 0
	v.banning = nil
	v.pendingCount = 0
	v.resets++
}
