package cartstorage

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bondex-safety/bondex-backend/internal/domain/cart"
)

func TestMemoryAdapterRoundTrip(t *testing.T) {
	adapter := NewMemoryAdapter("session-1")

	snap := &cart.Snapshot{
		SchemaVersion: cart.SnapshotSchemaVersion,
		Items: []cart.LineItem{
			{ProductID: "prod-helmet", Name: "Bondex Hard Hat", Brand: "Bondex", UnitPrice: 2500, StockCap: 15, Quantity: 3},
			{ProductID: "prod-gloves", Name: "Nitrile Work Gloves", UnitPrice: 4800, StockCap: 3, Quantity: 1},
		},
		Discount: &cart.Discount{Code: "WELCOME10", Kind: cart.DiscountPercentage, Value: 10},
	}
	require.NoError(t, adapter.Save(snap))

	got, err := adapter.Load()
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, snap.SchemaVersion, got.SchemaVersion)
	assert.Equal(t, snap.Discount, got.Discount)
	require.Len(t, got.Items, 2)
	assert.Equal(t, snap.Items[0].ProductID, got.Items[0].ProductID)
	assert.Equal(t, snap.Items[1].Quantity, got.Items[1].Quantity)
}

func TestMemoryAdapterMissingSnapshot(t *testing.T) {
	adapter := NewMemoryAdapter("session-1")

	got, err := adapter.Load()
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestMemoryAdapterSessionsAreIsolated(t *testing.T) {
	adapter := NewMemoryAdapter("session-1")
	require.NoError(t, adapter.Save(&cart.Snapshot{SchemaVersion: cart.SnapshotSchemaVersion}))

	other := adapter.ForSession("session-2")
	got, err := other.Load()
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestMemoryAdapterCorruptBlobTreatedAsAbsent(t *testing.T) {
	adapter := NewMemoryAdapter("session-1")
	adapter.store.blobs["session-1"] = []byte("{not json")

	got, err := adapter.Load()
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestStoreHydratesThroughMemoryAdapter(t *testing.T) {
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)

	adapter := NewMemoryAdapter("session-1")
	store := cart.NewStore(adapter, logger)
	store.AddItem(cart.CatalogRecord{ID: "BDX-HH-001", Name: "Bondex Hard Hat", UnitPrice: 2500, Stock: 15}, 2)
	store.ApplyDiscount("WELCOME10", cart.DiscountPercentage, 10)

	rehydrated := cart.NewStore(adapter.ForSession("session-1"), logger)
	assert.Equal(t, store.Snapshot(), rehydrated.Snapshot())
	assert.Equal(t, store.Totals(), rehydrated.Totals())
}
