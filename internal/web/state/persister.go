package state

import (
	"context"

	"github.com/alexedwards/scs/v2"
)

const credentialKey = "credential"

// SessionPersister keeps the credential in the browser's scs session. Its
// methods must be called with a request context that went through
// scs.SessionManager.LoadAndSave.
type SessionPersister struct {
	sm *scs.SessionManager
}

func NewSessionPersister(sm *scs.SessionManager) *SessionPersister {
	return &SessionPersister{sm: sm}
}

func (p *SessionPersister) Load(ctx context.Context) (string, error) {
	return p.sm.GetString(ctx, credentialKey), nil
}

func (p *SessionPersister) Save(ctx context.Context, credential string) error {
	p.sm.Put(ctx, credentialKey, credential)
	return nil
}

func (p *SessionPersister) Delete(ctx context.Context) error {
	p.sm.Remove(ctx, credentialKey)
	return nil
}
