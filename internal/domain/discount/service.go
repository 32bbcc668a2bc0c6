// internal/domain/discount/service.go
package discount

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/bondex-safety/bondex-backend/internal/domain/cart"
)

// ErrUnknownCode is returned when a code does not exist, is inactive, or has
// expired. Callers surface it as a user-facing validation failure.
var ErrUnknownCode = errors.New("unknown or expired discount code")

// Service resolves discount codes against the registry
type Service struct {
	db *gorm.DB
}

// NewService creates a new discount service
func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// Resolve looks up a code and returns the discount to apply. Codes are
// matched case-insensitively.
func (s *Service) Resolve(code string) (cart.Discount, error) {
	normalized := strings.ToUpper(strings.TrimSpace(code))
	if normalized == "" {
		return cart.Discount{}, ErrUnknownCode
	}

	var entry Code
	result := s.db.Where("code = ?", normalized).First(&entry)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return cart.Discount{}, ErrUnknownCode
		}
		return cart.Discount{}, fmt.Errorf("failed to resolve discount code: %w", result.Error)
	}

	if !entry.IsRedeemable(time.Now().UTC()) {
		return cart.Discount{}, ErrUnknownCode
	}

	return entry.CartDiscount(), nil
}
