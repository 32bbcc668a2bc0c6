// internal/interfaces/http/handlers/cart.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/bondex-safety/bondex-backend/internal/config"
	"github.com/bondex-safety/bondex-backend/internal/domain/cart"
	"github.com/bondex-safety/bondex-backend/internal/domain/catalog"
	"github.com/bondex-safety/bondex-backend/internal/domain/discount"
	"github.com/bondex-safety/bondex-backend/internal/infrastructure/cartstorage"
)

// CartHandler handles cart endpoints. Carts are session-scoped: each request
// hydrates a store from the session's persisted snapshot, applies the
// mutation, and the store writes the new snapshot back (last writer wins).
type CartHandler struct {
	redisClient     *redis.Client
	catalogService  *catalog.Service
	discountService *discount.Service
	config          *config.Config
	logger          logrus.FieldLogger
}

// NewCartHandler creates a new cart handler
func NewCartHandler(db *gorm.DB, redisClient *redis.Client, cfg *config.Config, logger logrus.FieldLogger) *CartHandler {
	return &CartHandler{
		redisClient:     redisClient,
		catalogService:  catalog.NewService(db, cfg),
		discountService: discount.NewService(db),
		config:          cfg,
		logger:          logger,
	}
}

// AddToCartRequest represents add to cart request
type AddToCartRequest struct {
	SKU      string `json:"sku" binding:"required"`
	Quantity int    `json:"quantity"`
}

// UpdateCartItemRequest represents update cart item request
type UpdateCartItemRequest struct {
	Quantity *int `json:"quantity" binding:"required"`
}

// ApplyDiscountRequest represents a discount code submission
type ApplyDiscountRequest struct {
	Code string `json:"code" binding:"required"`
}

// GetCart handles GET /cart
func (h *CartHandler) GetCart(c *gin.Context) {
	store := h.storeForSession(c)

	c.JSON(http.StatusOK, gin.H{
		"message": "Cart retrieved successfully",
		"data":    cartView(store),
	})
}

// AddToCart handles POST /cart/items
func (h *CartHandler) AddToCart(c *gin.Context) {
	var req AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	product, err := h.catalogService.GetProductBySKU(req.SKU)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Product not found",
		})
		return
	}

	store := h.storeForSession(c)
	store.AddItem(product.CartRecord(h.config.Catalog.PlaceholderImageURL), req.Quantity)

	c.JSON(http.StatusOK, gin.H{
		"message": "Item added to cart successfully",
		"data":    cartView(store),
	})
}

// UpdateCartItem handles PUT /cart/items/:sku
func (h *CartHandler) UpdateCartItem(c *gin.Context) {
	var req UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	store := h.storeForSession(c)
	store.UpdateQuantity(c.Param("sku"), *req.Quantity)

	c.JSON(http.StatusOK, gin.H{
		"message": "Cart item updated successfully",
		"data":    cartView(store),
	})
}

// RemoveFromCart handles DELETE /cart/items/:sku
func (h *CartHandler) RemoveFromCart(c *gin.Context) {
	store := h.storeForSession(c)
	store.RemoveItem(c.Param("sku"))

	c.JSON(http.StatusOK, gin.H{
		"message": "Item removed from cart successfully",
		"data":    cartView(store),
	})
}

// ClearCart handles DELETE /cart
func (h *CartHandler) ClearCart(c *gin.Context) {
	store := h.storeForSession(c)
	store.ClearCart()

	c.JSON(http.StatusOK, gin.H{
		"message": "Cart cleared successfully",
		"data":    cartView(store),
	})
}

// GetCartCount handles GET /cart/count
func (h *CartHandler) GetCartCount(c *gin.Context) {
	store := h.storeForSession(c)

	c.JSON(http.StatusOK, gin.H{
		"message": "Cart count retrieved successfully",
		"data": gin.H{
			"count": store.Totals().TotalQuantity,
		},
	})
}

// ApplyDiscount handles POST /cart/discount. The code is validated against
// the registry here; the cart store applies whatever it is handed.
func (h *CartHandler) ApplyDiscount(c *gin.Context) {
	var req ApplyDiscountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	resolved, err := h.discountService.Resolve(req.Code)
	if err != nil {
		if errors.Is(err, discount.ErrUnknownCode) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Unknown or expired discount code",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to resolve discount code",
		})
		return
	}

	store := h.storeForSession(c)
	store.ApplyDiscount(resolved.Code, resolved.Kind, resolved.Value)

	c.JSON(http.StatusOK, gin.H{
		"message": "Discount applied successfully",
		"data":    cartView(store),
	})
}

// RemoveDiscount handles DELETE /cart/discount
func (h *CartHandler) RemoveDiscount(c *gin.Context) {
	store := h.storeForSession(c)
	store.RemoveDiscount()

	c.JSON(http.StatusOK, gin.H{
		"message": "Discount removed successfully",
		"data":    cartView(store),
	})
}

// storeForSession hydrates the cart store for this request's session
func (h *CartHandler) storeForSession(c *gin.Context) *cart.Store {
	sessionID := h.getOrCreateSessionID(c)
	adapter := cartstorage.NewRedisAdapter(h.redisClient, sessionID, h.config.Cart.SessionTTL, h.logger)
	return cart.NewStore(adapter, h.logger.WithField("session_id", sessionID))
}

// getOrCreateSessionID gets session ID from cookie or creates a new one
func (h *CartHandler) getOrCreateSessionID(c *gin.Context) string {
	sessionID, err := c.Cookie(h.config.Cart.SessionCookieName)
	if err != nil || sessionID == "" {
		sessionID = uuid.New().String()
		maxAge := int(h.config.Cart.SessionTTL.Seconds())
		c.SetCookie(h.config.Cart.SessionCookieName, sessionID, maxAge, "/", "", false, true)
	}

	return sessionID
}

// cartView renders the snapshot and freshly computed totals
func cartView(store *cart.Store) gin.H {
	snap := store.Snapshot()
	return gin.H{
		"items":    snap.Items,
		"discount": snap.Discount,
		"totals":   store.Totals(),
	}
}
