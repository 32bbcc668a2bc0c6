// internal/domain/cart/entity.go
package cart

import "time"

// SnapshotSchemaVersion is the current persisted snapshot format version.
// Snapshots carrying a different version are discarded on load so a format
// change never crashes hydration.
const SnapshotSchemaVersion = 1

// LineItem represents one product's presence in the cart. Display fields and
// unit price are copied at add time and are not re-synced from the catalog.
type LineItem struct {
	ProductID string    `json:"product_id"`
	Name      string    `json:"name"`
	Brand     string    `json:"brand"`
	Category  string    `json:"category"`
	ImageURL  string    `json:"image_url"`
	UnitPrice int64     `json:"unit_price"` // Price in cents at time of adding
	StockCap  int       `json:"stock_cap"`  // Catalog stock at time of adding
	Quantity  int       `json:"quantity"`
	AddedAt   time.Time `json:"added_at"`
}

// DiscountKind enumerates the supported discount strategies
type DiscountKind string

const (
	// DiscountPercentage applies a percentage-based discount to the subtotal
	DiscountPercentage DiscountKind = "percentage"
	// DiscountFixed applies a fixed amount capped at the subtotal
	DiscountFixed DiscountKind = "fixed"
)

// Discount represents the single optional discount applied to a cart.
// For percentage discounts Value is a whole percent in [0, 100]; for fixed
// discounts Value is an amount in cents, capped at the subtotal when totals
// are computed.
type Discount struct {
	Code  string       `json:"code"`
	Kind  DiscountKind `json:"kind"`
	Value int64        `json:"value"`
}

// Snapshot is the complete serializable cart state and the only unit ever
// written to or read from the PersistenceAdapter
type Snapshot struct {
	SchemaVersion int        `json:"schema_version"`
	Items         []LineItem `json:"items"`
	Discount      *Discount  `json:"discount"`
}

// Totals represents calculated cart totals, always recomputed from the
// snapshot and never stored
type Totals struct {
	ItemCount      int   `json:"item_count"`     // Number of unique items
	TotalQuantity  int   `json:"total_quantity"` // Sum of all quantities
	SubTotal       int64 `json:"sub_total"`      // Total before discount
	DiscountAmount int64 `json:"discount_amount"`
	TotalAmount    int64 `json:"total_amount"` // Final total
}

// CatalogRecord is the product shape AddItem consumes. Callers build it from
// a catalog product; missing numeric fields default to zero and missing
// strings to empty rather than failing.
type CatalogRecord struct {
	ID        string
	Name      string
	Brand     string
	Category  string
	ImageURL  string
	UnitPrice int64 // cents
	Stock     int
}

// ComputeTotals derives totals from a snapshot. Fixed discounts are clamped
// to the subtotal so the final total never goes negative.
func ComputeTotals(snap *Snapshot) Totals {
	var totals Totals

	totals.ItemCount = len(snap.Items)
	for _, item := range snap.Items {
		totals.TotalQuantity += item.Quantity
		totals.SubTotal += item.UnitPrice * int64(item.Quantity)
	}

	if snap.Discount != nil {
		switch snap.Discount.Kind {
		case DiscountPercentage:
			percent := snap.Discount.Value
			if percent < 0 {
				percent = 0
			}
			if percent > 100 {
				percent = 100
			}
			totals.DiscountAmount = totals.SubTotal * percent / 100
		case DiscountFixed:
			totals.DiscountAmount = snap.Discount.Value
			if totals.DiscountAmount < 0 {
				totals.DiscountAmount = 0
			}
			if totals.DiscountAmount > totals.SubTotal {
				totals.DiscountAmount = totals.SubTotal
			}
		}
	}

	totals.TotalAmount = totals.SubTotal - totals.DiscountAmount
	if totals.TotalAmount < 0 {
		totals.TotalAmount = 0
	}

	return totals
}
