package view

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"github.com/devhub/admin-console/internal/core/domain"
)

// SearchPhase is the state of the user search table.
type SearchPhase string

const (
	PhaseInitial SearchPhase = "initial"
	PhaseResults SearchPhase = "results"
	PhaseNoMatch SearchPhase = "no_match"
)

type UserState struct {
	Term     string
	Phase    SearchPhase
	Users    []domain.Account
	Loading  bool
	Toggling map[int64]bool
}

// UserView is the Search-Table page.
type UserView struct {
	backend UserBackend
	notify  Notifier
	log     zerolog.Logger

	mu    sync.Mutex
	term  string
	phase SearchPhase
	list  List[domain.Account]
}

func NewUserView(backend UserBackend, notify Notifier, log zerolog.Logger) *UserView {
	return &UserView{
		backend: backend,
		notify:  notify,
		log:     log,
		phase:   PhaseInitial,
	}
}

// Search fetches the accounts matching term. An empty term returns every
// account. Only the response of the latest search is applied.
func (v *UserView) Search(ctx context.Context, term string) {
	term = strings.TrimSpace(term)

	v.mu.Lock()
	v.term = term
	ld := v.list.BeginLoad()
	v.mu.Unlock()

	res := v.backend.Search(ctx, term)

	v.mu.Lock()
	defer v.mu.Unlock()
	if ctx.Err() != nil {
		v.list.Abort(ld)
		v.log.Debug().Str("term", term).Msg("discarded search for abandoned request")
		return
	}
	if v.term != term {
		v.log.Debug().Str("term", term).Msg("discarded results for replaced search")
		return
	}
	if !res.OK() {
		if v.list.Abort(ld) {
			notifyFailure(v.notify, res.Err, "failed to search users")
		}
		return
	}
	if !v.list.Finish(ld, res.Value) {
		v.log.Debug().Str("term", term).Msg("discarded stale search results")
		return
	}

	if v.list.Len() == 0 {
		v.phase = PhaseNoMatch
		if term == "" {
			v.notify.Notify(Info("no users found"))
		} else {
			v.notify.Notify(Info(fmt.Sprintf("no users match %q", term)))
		}
		return
	}
	v.phase = PhaseResults
	v.notify.Notify(Info(fmt.Sprintf("found %d users", v.list.Len())))
}

// ToggleStatus bans an active account or reinstates a banned one. Toggles on
// different accounts run independently; a second toggle on an account whose
// first is outstanding is ignored.
func (v *UserView) ToggleStatus(ctx context.Context, id int64) {
	v.mu.Lock()
	acc, ok := v.list.Find(id)
	if !ok {
		v.mu.Unlock()
		return
	}
	f, err := v.list.Begin(id)
	v.mu.Unlock()
	if err != nil {
		v.log.Debug().Err(err).Int64("id", id).Msg("user toggle ignored")
		return
	}

	next := acc.Status.Toggled()
	verb, fallback := "banned", "failed to ban user"
	if next == domain.AccountActive {
		verb, fallback = "unbanned", "failed to unban user"
	}

	res := v.backend.UpdateStatus(context.WithoutCancel(ctx), id, next)

	v.mu.Lock()
	defer v.mu.Unlock()
	if !v.list.End(f) {
		return
	}
	if !res.OK() {
		notifyFailure(v.notify, res.Err, fallback)
		return
	}
	v.list.Update(res.Value)
	v.notify.Notify(Success(fmt.Sprintf("user %q has been %s", acc.Username, verb)))
}

// Clear resets the term and the results. Outstanding searches are discarded;
// outstanding toggles still report their outcome.
func (v *UserView) Clear() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.term = ""
	v.phase = PhaseInitial
	v.list.Finish(v.list.BeginLoad(), nil)
}

func (v *UserView) State() UserState {
	v.mu.Lock()
	defer v.mu.Unlock()

	st := UserState{
		Term:     v.term,
		Phase:    v.phase,
		Users:    v.list.Items(),
		Loading:  v.list.Loading(),
		Toggling: make(map[int64]bool),
	}
	for _, u := range st.Users {
		if v.list.InFlight(u.ID) {
			st.Toggling[u.ID] = true
		}
	}
	return st
}

// Reset drops all state; results of calls still outstanding are discarded.
func (v *UserView) Reset() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.list.Reset()
	v.term = ""
	v.phase = PhaseInitial
}
