package discount

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bondex-safety/bondex-backend/internal/domain/cart"
)

func TestIsRedeemable(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	future := now.Add(24 * time.Hour)
	past := now.Add(-24 * time.Hour)

	assert.True(t, (&Code{IsActive: true}).IsRedeemable(now))
	assert.True(t, (&Code{IsActive: true, ExpiresAt: &future}).IsRedeemable(now))
	assert.False(t, (&Code{IsActive: true, ExpiresAt: &past}).IsRedeemable(now))
	assert.False(t, (&Code{IsActive: false}).IsRedeemable(now))
}

func TestCartDiscount(t *testing.T) {
	entry := Code{Code: "WELCOME10", Kind: cart.DiscountPercentage, Value: 10}

	assert.Equal(t, cart.Discount{
		Code:  "WELCOME10",
		Kind:  cart.DiscountPercentage,
		Value: 10,
	}, entry.CartDiscount())
}
