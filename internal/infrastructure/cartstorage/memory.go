// internal/infrastructure/cartstorage/memory.go
package cartstorage

import (
	"encoding/json"
	"sync"

	"github.com/bondex-safety/bondex-backend/internal/domain/cart"
)

type memoryStore struct {
	mu    sync.RWMutex
	blobs map[string][]byte
}

// MemoryAdapter keeps snapshots in process memory, keyed by session ID. It
// backs tests and local development without Redis. Snapshots go through the
// same JSON encoding as the Redis adapter so both exercise identical
// serialization behavior.
type MemoryAdapter struct {
	store     *memoryStore
	sessionID string
}

// NewMemoryAdapter creates an adapter bound to the given session ID
func NewMemoryAdapter(sessionID string) *MemoryAdapter {
	return &MemoryAdapter{
		store:     &memoryStore{blobs: make(map[string][]byte)},
		sessionID: sessionID,
	}
}

// ForSession returns an adapter sharing this adapter's storage but bound to
// another session ID
func (a *MemoryAdapter) ForSession(sessionID string) *MemoryAdapter {
	return &MemoryAdapter{store: a.store, sessionID: sessionID}
}

// Load returns the stored snapshot or (nil, nil) when absent or unparseable
func (a *MemoryAdapter) Load() (*cart.Snapshot, error) {
	a.store.mu.RLock()
	data, ok := a.store.blobs[a.sessionID]
	a.store.mu.RUnlock()
	if !ok {
		return nil, nil
	}

	var snap cart.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, nil
	}

	return &snap, nil
}

// Save stores the snapshot, replacing any prior one
func (a *MemoryAdapter) Save(snap *cart.Snapshot) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return err
	}

	a.store.mu.Lock()
	a.store.blobs[a.sessionID] = data
	a.store.mu.Unlock()
	return nil
}
