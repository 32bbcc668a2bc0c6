package cart

import (
	"fmt"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAdapter struct {
	snap    *Snapshot
	loadErr error
	saveErr error
	saves   int
}

func (f *fakeAdapter) Load() (*Snapshot, error) {
	if f.loadErr != nil {
		return nil, f.loadErr
	}
	return f.snap, nil
}

func (f *fakeAdapter) Save(snap *Snapshot) error {
	f.saves++
	if f.saveErr != nil {
		return f.saveErr
	}
	cp := *snap
	cp.Items = append([]LineItem(nil), snap.Items...)
	if snap.Discount != nil {
		d := *snap.Discount
		cp.Discount = &d
	}
	f.snap = &cp
	return nil
}

func testLogger() logrus.FieldLogger {
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	return logger
}

func helmet() CatalogRecord {
	return CatalogRecord{
		ID:        "prod-helmet",
		Name:      "Bondex Hard Hat",
		Brand:     "Bondex",
		Category:  "head-protection",
		UnitPrice: 2500,
		Stock:     15,
	}
}

func gloves() CatalogRecord {
	return CatalogRecord{
		ID:        "prod-gloves",
		Name:      "Nitrile Work Gloves",
		Brand:     "SafetyPlus",
		Category:  "hand-protection",
		UnitPrice: 4800,
		Stock:     3,
	}
}

func TestAddItem(t *testing.T) {
	store := NewStore(&fakeAdapter{}, testLogger())

	store.AddItem(helmet(), 2)

	totals := store.Totals()
	assert.Equal(t, 1, totals.ItemCount)
	assert.Equal(t, 2, totals.TotalQuantity)
	assert.Equal(t, int64(5000), totals.SubTotal)
}

func TestAddItemDeduplicates(t *testing.T) {
	store := NewStore(&fakeAdapter{}, testLogger())

	store.AddItem(helmet(), 2)
	store.AddItem(helmet(), 1)

	snap := store.Snapshot()
	require.Len(t, snap.Items, 1)
	assert.Equal(t, 3, snap.Items[0].Quantity)
	assert.Equal(t, int64(7500), store.Totals().SubTotal)
}

func TestAddItemClampsToStock(t *testing.T) {
	store := NewStore(&fakeAdapter{}, testLogger())

	store.AddItem(gloves(), 5)

	snap := store.Snapshot()
	require.Len(t, snap.Items, 1)
	assert.Equal(t, 3, snap.Items[0].Quantity)
	assert.Equal(t, int64(14400), store.Totals().SubTotal)
}

func TestAddItemNonPositiveQuantityDefaultsToOne(t *testing.T) {
	store := NewStore(&fakeAdapter{}, testLogger())

	store.AddItem(helmet(), 0)
	store.AddItem(gloves(), -4)

	snap := store.Snapshot()
	require.Len(t, snap.Items, 2)
	assert.Equal(t, 1, snap.Items[0].Quantity)
	assert.Equal(t, 1, snap.Items[1].Quantity)
}

func TestAddItemOutOfStockNotAdded(t *testing.T) {
	store := NewStore(&fakeAdapter{}, testLogger())

	rec := helmet()
	rec.Stock = 0
	store.AddItem(rec, 1)

	assert.Empty(t, store.Snapshot().Items)
	assert.Equal(t, int64(0), store.Totals().SubTotal)
}

func TestAddItemDefensiveDefaults(t *testing.T) {
	store := NewStore(&fakeAdapter{}, testLogger())

	store.AddItem(CatalogRecord{ID: "prod-x", UnitPrice: -100, Stock: 2}, 1)

	snap := store.Snapshot()
	require.Len(t, snap.Items, 1)
	assert.Equal(t, int64(0), snap.Items[0].UnitPrice)
	assert.Equal(t, int64(0), store.Totals().SubTotal)
}

func TestClampInvariantUnderMixedSequences(t *testing.T) {
	store := NewStore(&fakeAdapter{}, testLogger())

	rec := gloves()
	for _, q := range []int{1, 7, -3, 2, 100} {
		store.AddItem(rec, q)
	}
	store.UpdateQuantity(rec.ID, 50)
	store.UpdateQuantity(rec.ID, 2)
	store.AddItem(rec, 10)

	snap := store.Snapshot()
	require.Len(t, snap.Items, 1)
	assert.LessOrEqual(t, snap.Items[0].Quantity, rec.Stock)
	assert.GreaterOrEqual(t, snap.Items[0].Quantity, 0)
}

func TestUpdateQuantity(t *testing.T) {
	store := NewStore(&fakeAdapter{}, testLogger())
	store.AddItem(helmet(), 2)

	store.UpdateQuantity("prod-helmet", 5)
	assert.Equal(t, 5, store.Snapshot().Items[0].Quantity)

	// Clamped to stock cap
	store.UpdateQuantity("prod-helmet", 40)
	assert.Equal(t, 15, store.Snapshot().Items[0].Quantity)

	// Unknown product is a no-op
	store.UpdateQuantity("prod-unknown", 5)
	assert.Len(t, store.Snapshot().Items, 1)
}

func TestUpdateQuantityZeroRemoves(t *testing.T) {
	store := NewStore(&fakeAdapter{}, testLogger())
	store.AddItem(helmet(), 2)

	store.UpdateQuantity("prod-helmet", 0)

	assert.Empty(t, store.Snapshot().Items)
	assert.Equal(t, int64(0), store.Totals().SubTotal)
}

func TestRemoveItem(t *testing.T) {
	store := NewStore(&fakeAdapter{}, testLogger())
	store.AddItem(helmet(), 1)
	store.AddItem(gloves(), 1)

	store.RemoveItem("prod-helmet")

	snap := store.Snapshot()
	require.Len(t, snap.Items, 1)
	assert.Equal(t, "prod-gloves", snap.Items[0].ProductID)

	// Removing an absent item is a no-op
	store.RemoveItem("prod-helmet")
	assert.Len(t, store.Snapshot().Items, 1)
}

func TestPercentageDiscount(t *testing.T) {
	store := NewStore(&fakeAdapter{}, testLogger())
	store.AddItem(gloves(), 3)

	store.ApplyDiscount("WELCOME10", DiscountPercentage, 10)

	totals := store.Totals()
	assert.Equal(t, int64(14400), totals.SubTotal)
	assert.Equal(t, int64(1440), totals.DiscountAmount)
	assert.Equal(t, int64(12960), totals.TotalAmount)
}

func TestFixedDiscountClampedToSubtotal(t *testing.T) {
	store := NewStore(&fakeAdapter{}, testLogger())
	store.AddItem(helmet(), 1)

	store.ApplyDiscount("BONDEX500", DiscountFixed, 50000)

	totals := store.Totals()
	assert.Equal(t, totals.SubTotal, totals.DiscountAmount)
	assert.Equal(t, int64(0), totals.TotalAmount)
}

func TestApplyDiscountReplacesExisting(t *testing.T) {
	store := NewStore(&fakeAdapter{}, testLogger())
	store.AddItem(helmet(), 2)

	store.ApplyDiscount("WELCOME10", DiscountPercentage, 10)
	store.ApplyDiscount("BONDEX500", DiscountFixed, 500)

	snap := store.Snapshot()
	require.NotNil(t, snap.Discount)
	assert.Equal(t, "BONDEX500", snap.Discount.Code)
	assert.Equal(t, int64(500), store.Totals().DiscountAmount)
}

func TestRemoveDiscount(t *testing.T) {
	adapter := &fakeAdapter{}
	store := NewStore(adapter, testLogger())
	store.AddItem(helmet(), 1)
	store.ApplyDiscount("WELCOME10", DiscountPercentage, 10)

	saves := adapter.saves
	store.RemoveDiscount()
	assert.Nil(t, store.Snapshot().Discount)
	assert.Equal(t, saves+1, adapter.saves)

	// No discount present: no-op, no extra write
	store.RemoveDiscount()
	assert.Equal(t, saves+1, adapter.saves)
}

func TestClearCart(t *testing.T) {
	adapter := &fakeAdapter{}
	store := NewStore(adapter, testLogger())
	store.AddItem(helmet(), 2)
	store.ApplyDiscount("WELCOME10", DiscountPercentage, 10)

	store.ClearCart()

	snap := store.Snapshot()
	assert.Empty(t, snap.Items)
	assert.Nil(t, snap.Discount)
	require.NotNil(t, adapter.snap)
	assert.Empty(t, adapter.snap.Items)
	assert.Nil(t, adapter.snap.Discount)
}

func TestTotalsConsistency(t *testing.T) {
	store := NewStore(&fakeAdapter{}, testLogger())
	store.AddItem(helmet(), 4)
	store.AddItem(gloves(), 2)
	store.ApplyDiscount("WELCOME10", DiscountPercentage, 10)

	snap := store.Snapshot()
	var subtotal int64
	for _, item := range snap.Items {
		subtotal += item.UnitPrice * int64(item.Quantity)
	}

	totals := store.Totals()
	assert.Equal(t, subtotal, totals.SubTotal)
	assert.Equal(t, totals.SubTotal-totals.DiscountAmount, totals.TotalAmount)

	fresh := ComputeTotals(&snap)
	assert.Equal(t, totals, fresh)
}

func TestHydratesFromAdapter(t *testing.T) {
	adapter := &fakeAdapter{snap: &Snapshot{
		SchemaVersion: SnapshotSchemaVersion,
		Items: []LineItem{
			{ProductID: "prod-helmet", Name: "Bondex Hard Hat", UnitPrice: 2500, StockCap: 15, Quantity: 3},
		},
		Discount: &Discount{Code: "WELCOME10", Kind: DiscountPercentage, Value: 10},
	}}

	store := NewStore(adapter, testLogger())

	snap := store.Snapshot()
	require.Len(t, snap.Items, 1)
	assert.Equal(t, 3, snap.Items[0].Quantity)
	require.NotNil(t, snap.Discount)
	assert.Equal(t, "WELCOME10", snap.Discount.Code)
	assert.Equal(t, int64(6750), store.Totals().TotalAmount)
}

func TestRoundTripThroughAdapter(t *testing.T) {
	adapter := &fakeAdapter{}
	store := NewStore(adapter, testLogger())
	store.AddItem(helmet(), 2)
	store.AddItem(gloves(), 1)
	store.ApplyDiscount("BONDEX500", DiscountFixed, 500)

	saved := store.Snapshot()

	rehydrated := NewStore(adapter, testLogger())
	got := rehydrated.Snapshot()
	assert.Equal(t, saved.Items, got.Items)
	assert.Equal(t, saved.Discount, got.Discount)
	assert.Equal(t, store.Totals(), rehydrated.Totals())
}

func TestLoadErrorFallsBackToEmpty(t *testing.T) {
	adapter := &fakeAdapter{loadErr: fmt.Errorf("storage unavailable")}

	store := NewStore(adapter, testLogger())

	assert.Empty(t, store.Snapshot().Items)
}

func TestUnknownSchemaVersionDiscarded(t *testing.T) {
	adapter := &fakeAdapter{snap: &Snapshot{
		SchemaVersion: 99,
		Items:         []LineItem{{ProductID: "prod-helmet", Quantity: 2}},
	}}

	store := NewStore(adapter, testLogger())

	assert.Empty(t, store.Snapshot().Items)
}

func TestSaveFailureDoesNotFailMutations(t *testing.T) {
	adapter := &fakeAdapter{saveErr: fmt.Errorf("quota exceeded")}
	store := NewStore(adapter, testLogger())

	store.AddItem(helmet(), 2)
	store.ApplyDiscount("WELCOME10", DiscountPercentage, 10)
	store.UpdateQuantity("prod-helmet", 4)

	// Mutations still applied in memory
	snap := store.Snapshot()
	require.Len(t, snap.Items, 1)
	assert.Equal(t, 4, snap.Items[0].Quantity)
	assert.NotNil(t, snap.Discount)
}

func TestNilAdapterOperatesInMemory(t *testing.T) {
	store := NewStore(nil, testLogger())

	store.AddItem(helmet(), 1)

	assert.Equal(t, int64(2500), store.Totals().SubTotal)
}

func TestSnapshotIsACopy(t *testing.T) {
	store := NewStore(&fakeAdapter{}, testLogger())
	store.AddItem(helmet(), 2)

	snap := store.Snapshot()
	snap.Items[0].Quantity = 99

	assert.Equal(t, 2, store.Snapshot().Items[0].Quantity)
}
