// internal/domain/cart/store.go
package cart

import (
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

// Store maintains one cart snapshot in memory and keeps it consistent with
// the invariants: one line item per product, quantities clamped to the stock
// cap, at most one discount. Mutations never fail; out-of-range inputs are
// clamped, not rejected. Persistence is best-effort: if the adapter errors,
// the store keeps operating in memory for the rest of the session.
type Store struct {
	mu      sync.Mutex
	snap    Snapshot
	adapter PersistenceAdapter
	logger  logrus.FieldLogger
}

// NewStore creates a store hydrated from the adapter. A load error or corrupt
// snapshot falls back to an empty cart; it is logged, never propagated.
func NewStore(adapter PersistenceAdapter, logger logrus.FieldLogger) *Store {
	s := &Store{
		snap:    Snapshot{SchemaVersion: SnapshotSchemaVersion, Items: []LineItem{}},
		adapter: adapter,
		logger:  logger,
	}

	if adapter == nil {
		return s
	}

	snap, err := adapter.Load()
	if err != nil {
		logger.WithError(err).Warn("Failed to load cart snapshot, starting empty")
		return s
	}
	if snap == nil {
		return s
	}
	if snap.SchemaVersion != SnapshotSchemaVersion {
		logger.WithField("schema_version", snap.SchemaVersion).Warn("Unknown cart snapshot version, starting empty")
		return s
	}
	if snap.Items == nil {
		snap.Items = []LineItem{}
	}
	s.snap = *snap

	return s
}

// AddItem adds a catalog record to the cart. A non-positive quantity is
// treated as 1. If the product is already in the cart its quantity is
// incremented instead of creating a duplicate line. The resulting quantity is
// clamped to the record's stock; a record with no stock is not added at all.
func (s *Store) AddItem(rec CatalogRecord, quantity int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if quantity <= 0 {
		quantity = 1
	}
	if rec.UnitPrice < 0 {
		rec.UnitPrice = 0
	}

	for i := range s.snap.Items {
		if s.snap.Items[i].ProductID == rec.ID {
			s.snap.Items[i].Quantity = clamp(s.snap.Items[i].Quantity+quantity, s.snap.Items[i].StockCap)
			s.persist()
			return
		}
	}

	// Out-of-stock products never produce a zero-quantity line
	if rec.Stock <= 0 {
		return
	}

	s.snap.Items = append(s.snap.Items, LineItem{
		ProductID: rec.ID,
		Name:      rec.Name,
		Brand:     rec.Brand,
		Category:  rec.Category,
		ImageURL:  rec.ImageURL,
		UnitPrice: rec.UnitPrice,
		StockCap:  rec.Stock,
		Quantity:  clamp(quantity, rec.Stock),
		AddedAt:   time.Now().UTC(),
	})
	s.persist()
}

// RemoveItem removes the line item with the given product ID; no-op if absent
func (s *Store) RemoveItem(productID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.snap.Items {
		if s.snap.Items[i].ProductID == productID {
			s.snap.Items = append(s.snap.Items[:i], s.snap.Items[i+1:]...)
			s.persist()
			return
		}
	}
}

// UpdateQuantity sets the quantity for a line item. A quantity of zero or
// less removes the item; anything above the stock cap is clamped down to it.
// No-op if the product is not in the cart.
func (s *Store) UpdateQuantity(productID string, quantity int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.snap.Items {
		if s.snap.Items[i].ProductID == productID {
			if quantity <= 0 {
				s.snap.Items = append(s.snap.Items[:i], s.snap.Items[i+1:]...)
			} else {
				s.snap.Items[i].Quantity = clamp(quantity, s.snap.Items[i].StockCap)
			}
			s.persist()
			return
		}
	}
}

// ClearCart empties the item collection and clears any discount
func (s *Store) ClearCart() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.snap.Items = []LineItem{}
	s.snap.Discount = nil
	s.persist()
}

// ApplyDiscount replaces any existing discount unconditionally. Validating
// the code against a registry is the caller's responsibility; the store does
// not know about specific codes.
func (s *Store) ApplyDiscount(code string, kind DiscountKind, value int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.snap.Discount = &Discount{Code: code, Kind: kind, Value: value}
	s.persist()
}

// RemoveDiscount clears the discount if present; no-op otherwise
func (s *Store) RemoveDiscount() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.snap.Discount == nil {
		return
	}
	s.snap.Discount = nil
	s.persist()
}

// Snapshot returns a copy of the current snapshot
func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := s.snap
	snap.Items = make([]LineItem, len(s.snap.Items))
	copy(snap.Items, s.snap.Items)
	if s.snap.Discount != nil {
		d := *s.snap.Discount
		snap.Discount = &d
	}
	return snap
}

// Totals recomputes derived totals from the current snapshot
func (s *Store) Totals() Totals {
	s.mu.Lock()
	defer s.mu.Unlock()

	return ComputeTotals(&s.snap)
}

// persist writes the snapshot through the adapter. Failures are logged and
// swallowed so a broken storage backend never turns a mutation into an error.
// Caller must hold s.mu.
func (s *Store) persist() {
	if s.adapter == nil {
		return
	}
	if err := s.adapter.Save(&s.snap); err != nil {
		s.logger.WithError(err).Warn("Failed to persist cart snapshot, continuing in memory")
	}
}

func clamp(quantity, stockCap int) int {
	if quantity > stockCap {
		return stockCap
	}
	if quantity < 0 {
		return 0
	}
	return quantity
}
