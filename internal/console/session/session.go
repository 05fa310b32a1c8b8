// Package session holds the operator credential for one console workspace.
//
// The authenticated flag is never stored: it is derived from the presence of
// the credential on every read, so the two can not disagree.
package session

import (
	"context"
	"fmt"
	"sync"
)

// Persister is the durable storage behind a Store. It holds a single value.
type Persister interface {
	// Load returns the stored credential, or "" when nothing is stored.
	Load(ctx context.Context) (string, error)
	Save(ctx context.Context, credential string) error
	Delete(ctx context.Context) error
}

// Session is a point-in-time view of a Store.
type Session struct {
	Credential      string
	IsAuthenticated bool
}

// Store is safe for concurrent use. Writes are visible to every later read.
type Store struct {
	mu         sync.RWMutex
	credential string
	persister  Persister
}

func NewStore(p Persister) *Store {
	if p == nil {
		p = NewMemoryPersister()
	}
	return &Store{persister: p}
}

// Initialize loads the persisted credential. It makes no network call.
func (s *Store) Initialize(ctx context.Context) error {
	cred, err := s.persister.Load(ctx)
	if err != nil {
		return fmt.Errorf("session: load credential: %w", err)
	}

	s.mu.Lock()
	s.credential = cred
	s.mu.Unlock()
	return nil
}

// SetCredential stores token, or clears the credential when token is empty.
// The in-memory state is updated even when the persister fails; the storage
// error is returned for the caller to log.
func (s *Store) SetCredential(ctx context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.credential = token

	var err error
	if token == "" {
		err = s.persister.Delete(ctx)
	} else {
		err = s.persister.Save(ctx, token)
	}
	if err != nil {
		return fmt.Errorf("session: persist credential: %w", err)
	}
	return nil
}

// Logout clears the credential locally. The token is not revoked server-side.
func (s *Store) Logout(ctx context.Context) error {
	return s.SetCredential(ctx, "")
}

// Credential implements client.CredentialSource.
func (s *Store) Credential() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.credential, s.credential != ""
}

func (s *Store) IsAuthenticated() bool {
	_, ok := s.Credential()
	return ok
}

func (s *Store) Snapshot() Session {
	cred, ok := s.Credential()
	return Session{Credential: cred, IsAuthenticated: ok}
}
