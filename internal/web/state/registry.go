package state

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/alexedwards/scs/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/devhub/admin-console/internal/console/client"
	"github.com/devhub/admin-console/internal/web/metrics"
)

const workspaceKey = "workspace"

// Registry owns the workspaces of every browser. A browser is identified by
// the workspace id stored in its scs session.
type Registry struct {
	sessions  *scs.SessionManager
	persister *SessionPersister
	clientCfg client.Config
	idle      time.Duration
	now       func() time.Time
	log       zerolog.Logger

	mu         sync.Mutex
	workspaces map[string]*Workspace
}

func NewRegistry(sm *scs.SessionManager, cfg client.Config, idle time.Duration, log zerolog.Logger) *Registry {
	return &Registry{
		sessions:   sm,
		persister:  NewSessionPersister(sm),
		clientCfg:  cfg,
		idle:       idle,
		now:        time.Now,
		log:        log,
		workspaces: make(map[string]*Workspace),
	}
}

// Acquire returns the workspace of the browser behind ctx, creating it when
// the browser has none or its workspace was evicted. A new workspace starts
// from the credential persisted in the browser session and is only published
// once that credential is loaded.
func (r *Registry) Acquire(ctx context.Context) (*Workspace, error) {
	id := r.sessions.GetString(ctx, workspaceKey)

	r.mu.Lock()
	ws, ok := r.workspaces[id]
	if ok {
		ws.touch(r.now())
	}
	r.mu.Unlock()
	if ok {
		return ws, nil
	}

	if id == "" {
		id = uuid.NewString()
		r.sessions.Put(ctx, workspaceKey, id)
	}
	fresh := newWorkspace(id, r.persister, r.clientCfg, r.log)
	if err := fresh.Session.Initialize(ctx); err != nil {
		return nil, fmt.Errorf("state: initialise workspace %s: %w", id, err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if ws, ok := r.workspaces[id]; ok {
		ws.touch(r.now())
		return ws, nil
	}
	fresh.touch(r.now())
	r.workspaces[id] = fresh
	metrics.WorkspacesActive.Set(float64(len(r.workspaces)))
	r.log.Debug().Str("workspace", id).Bool("authenticated", fresh.Session.IsAuthenticated()).Msg("workspace created")
	return fresh, nil
}

// Sweep evicts workspaces idle for longer than the configured timeout and
// returns how many were removed.
func (r *Registry) Sweep() int {
	now := r.now()

	r.mu.Lock()
	var evicted []*Workspace
	for id, ws := range r.workspaces {
		if ws.idleSince(now) > r.idle {
			delete(r.workspaces, id)
			evicted = append(evicted, ws)
		}
	}
	metrics.WorkspacesActive.Set(float64(len(r.workspaces)))
	r.mu.Unlock()

	for _, ws := range evicted {
		ws.ResetViews()
	}
	if len(evicted) > 0 {
		r.log.Info().Int("evicted", len(evicted)).Msg("idle workspaces evicted")
	}
	return len(evicted)
}

// Run sweeps periodically until ctx is cancelled.
func (r *Registry) Run(ctx context.Context) {
	interval := r.idle / 2
	if interval < time.Second {
		interval = time.Second
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.Sweep()
		}
	}
}

func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.workspaces)
}
