// internal/interfaces/http/handlers/category.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/bondex-safety/bondex-backend/internal/config"
	"github.com/bondex-safety/bondex-backend/internal/domain/catalog"
)

// CategoryHandler handles category and brand listing endpoints
type CategoryHandler struct {
	catalogService *catalog.Service
}

// NewCategoryHandler creates a new category handler
func NewCategoryHandler(db *gorm.DB, cfg *config.Config) *CategoryHandler {
	return &CategoryHandler{
		catalogService: catalog.NewService(db, cfg),
	}
}

// GetCategories handles GET /categories?kind=protection_type|industry
func (h *CategoryHandler) GetCategories(c *gin.Context) {
	kind := catalog.CategoryKind(c.Query("kind"))
	if kind != "" && kind != catalog.CategoryProtectionType && kind != catalog.CategoryIndustry {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid category kind",
		})
		return
	}

	categories, err := h.catalogService.GetCategories(kind)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to retrieve categories",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Categories retrieved successfully",
		"data":    categories,
	})
}

// GetBrands handles GET /brands
func (h *CategoryHandler) GetBrands(c *gin.Context) {
	brands, err := h.catalogService.GetBrands()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to retrieve brands",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Brands retrieved successfully",
		"data":    brands,
	})
}
