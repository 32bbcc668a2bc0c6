// internal/domain/discount/entity.go
package discount

import (
	"time"

	"gorm.io/gorm"

	"github.com/bondex-safety/bondex-backend/internal/domain/cart"
)

// Code represents a redeemable discount code in the registry. The cart store
// never sees this entity; callers resolve a code here first and hand the
// resulting cart.Discount to the store.
type Code struct {
	ID        uint              `gorm:"primaryKey" json:"id"`
	Code      string            `gorm:"uniqueIndex;not null;size:50" json:"code"`
	Kind      cart.DiscountKind `gorm:"not null;size:20" json:"kind"`
	Value     int64             `gorm:"not null" json:"value"` // percent for percentage, cents for fixed
	IsActive  bool              `gorm:"default:true" json:"is_active"`
	ExpiresAt *time.Time        `json:"expires_at"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
	DeletedAt gorm.DeletedAt    `gorm:"index" json:"-"`
}

// TableName overrides the table name
func (Code) TableName() string {
	return "discount_codes"
}

// IsRedeemable reports whether the code can be applied at the given time
func (c *Code) IsRedeemable(now time.Time) bool {
	if !c.IsActive {
		return false
	}
	if c.ExpiresAt != nil && now.After(*c.ExpiresAt) {
		return false
	}
	return true
}

// CartDiscount converts the registry entry into the discount shape the cart
// store applies
func (c *Code) CartDiscount() cart.Discount {
	return cart.Discount{
		Code:  c.Code,
		Kind:  c.Kind,
		Value: c.Value,
	}
}
