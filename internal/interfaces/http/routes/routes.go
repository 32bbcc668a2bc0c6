// internal/interfaces/http/routes/routes.go
package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/bondex-safety/bondex-backend/internal/config"
	"github.com/bondex-safety/bondex-backend/internal/interfaces/http/handlers"
)

// SetupRoutes wires all API routes
func SetupRoutes(rg *gin.RouterGroup, db *gorm.DB, redisClient *redis.Client, cfg *config.Config, logger logrus.FieldLogger) {
	setupProductRoutes(rg, db, cfg)
	setupCartRoutes(rg, db, redisClient, cfg, logger)
	setupAdminRoutes(rg, db, cfg)
}

// setupProductRoutes sets up public storefront catalog routes
func setupProductRoutes(rg *gin.RouterGroup, db *gorm.DB, cfg *config.Config) {
	productHandler := handlers.NewProductHandler(db, cfg)
	categoryHandler := handlers.NewCategoryHandler(db, cfg)

	products := rg.Group("/products")
	{
		products.GET("", productHandler.GetProducts)
		products.GET("/:id", productHandler.GetProduct)
		products.GET("/slug/:slug", productHandler.GetProductBySlug)
	}

	rg.GET("/categories", categoryHandler.GetCategories)
	rg.GET("/brands", categoryHandler.GetBrands)
}

// setupCartRoutes sets up session-scoped cart routes
func setupCartRoutes(rg *gin.RouterGroup, db *gorm.DB, redisClient *redis.Client, cfg *config.Config, logger logrus.FieldLogger) {
	cartHandler := handlers.NewCartHandler(db, redisClient, cfg, logger)

	cart := rg.Group("/cart")
	{
		cart.GET("", cartHandler.GetCart)
		cart.DELETE("", cartHandler.ClearCart)
		cart.GET("/count", cartHandler.GetCartCount)
		cart.POST("/items", cartHandler.AddToCart)
		cart.PUT("/items/:sku", cartHandler.UpdateCartItem)
		cart.DELETE("/items/:sku", cartHandler.RemoveFromCart)
		cart.POST("/discount", cartHandler.ApplyDiscount)
		cart.DELETE("/discount", cartHandler.RemoveDiscount)
	}
}

// setupAdminRoutes sets up back-office catalog management routes
func setupAdminRoutes(rg *gin.RouterGroup, db *gorm.DB, cfg *config.Config) {
	productHandler := handlers.NewProductHandler(db, cfg)

	admin := rg.Group("/admin")
	{
		admin.POST("/products", productHandler.CreateProduct)
		admin.PUT("/products/:id", productHandler.UpdateProduct)
		admin.DELETE("/products/:id", productHandler.DeleteProduct)
		admin.PUT("/products/:id/stock", productHandler.UpdateStock)
	}
}
