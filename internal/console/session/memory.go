package session

import (
	"context"
	"sync"
)

// MemoryPersister keeps the credential in process memory.
type MemoryPersister struct {
	mu    sync.Mutex
	value string
}

func NewMemoryPersister() *MemoryPersister {
	return &MemoryPersister{}
}

func (p *MemoryPersister) Load(context.Context) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.value, nil
}

func (p *MemoryPersister) Save(_ context.Context, credential string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.value = credential
	return nil
}

func (p *MemoryPersister) Delete(context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.value = ""
	return nil
}
