// internal/domain/cart/persistence.go
package cart

// PersistenceAdapter is the injected boundary responsible for durable storage
// of a cart snapshot. The store reads once at construction and writes after
// every mutation; writes are best-effort and failures never surface to
// mutation callers.
type PersistenceAdapter interface {
	// Load returns the previously saved snapshot, or (nil, nil) when no
	// snapshot exists. Implementations treat unparseable blobs as absent
	// rather than returning garbage.
	Load() (*Snapshot, error)

	// Save persists the snapshot, replacing any prior one
	Save(snap *Snapshot) error
}
