// internal/domain/catalog/entity.go
package catalog

import (
	"time"

	"gorm.io/gorm"

	"github.com/bondex-safety/bondex-backend/internal/domain/cart"
)

// Product represents a PPE product in the storefront catalog
type Product struct {
	ID             uint           `gorm:"primaryKey" json:"id"`
	SKU            string         `gorm:"uniqueIndex;not null;size:100" json:"sku"`
	Name           string         `gorm:"not null;size:255" json:"name"`
	Slug           string         `gorm:"uniqueIndex;not null;size:255" json:"slug"`
	Description    string         `gorm:"type:text" json:"description"`
	Price          int64          `gorm:"not null" json:"price"` // Price in cents (KES)
	ComparePrice   int64          `json:"compare_price"`         // Pre-sale price; > Price means on sale
	ProtectionType string         `gorm:"index;size:100" json:"protection_type"` // Category slug, e.g. head-protection
	Industry       string         `gorm:"index;size:100" json:"industry"`        // Category slug, e.g. construction
	BrandID        *uint          `gorm:"index" json:"brand_id"`
	IsActive       bool           `gorm:"default:true" json:"is_active"`
	IsFeatured     bool           `gorm:"default:false" json:"is_featured"`
	Quantity       int            `gorm:"default:0" json:"quantity"` // Units in stock
	SeoTitle       string         `gorm:"size:255" json:"seo_title"`
	SeoDescription string         `gorm:"size:500" json:"seo_description"`
	Tags           string         `gorm:"size:500" json:"tags"` // Comma-separated tags
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Brand  *Brand         `gorm:"foreignKey:BrandID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"brand,omitempty"`
	Images []ProductImage `gorm:"foreignKey:ProductID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"images,omitempty"`
}

// CategoryKind distinguishes the two category axes the storefront filters on
type CategoryKind string

const (
	CategoryProtectionType CategoryKind = "protection_type"
	CategoryIndustry       CategoryKind = "industry"
)

// Category represents a protection-type or industry category
type Category struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	Kind        CategoryKind   `gorm:"not null;index;size:50" json:"kind"`
	Name        string         `gorm:"not null;size:255" json:"name"`
	Slug        string         `gorm:"uniqueIndex;not null;size:255" json:"slug"`
	Description string         `gorm:"size:500" json:"description"`
	Image       string         `gorm:"size:500" json:"image"`
	SortOrder   int            `gorm:"default:0" json:"sort_order"`
	IsActive    bool           `gorm:"default:true" json:"is_active"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

// Brand represents product brands
type Brand struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Name      string         `gorm:"not null;size:255" json:"name"`
	Slug      string         `gorm:"uniqueIndex;not null;size:255" json:"slug"`
	Logo      string         `gorm:"size:500" json:"logo"`
	IsActive  bool           `gorm:"default:true" json:"is_active"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Products []Product `gorm:"foreignKey:BrandID" json:"products,omitempty"`
}

// ProductImage represents product images hosted on the CDN
type ProductImage struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	ProductID uint      `gorm:"not null;index" json:"product_id"`
	URL       string    `gorm:"not null;size:500" json:"url"`
	AltText   string    `gorm:"size:255" json:"alt_text"`
	SortOrder int       `gorm:"default:0" json:"sort_order"`
	IsPrimary bool      `gorm:"default:false" json:"is_primary"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName overrides
func (Product) TableName() string      { return "products" }
func (Category) TableName() string     { return "categories" }
func (Brand) TableName() string        { return "brands" }
func (ProductImage) TableName() string { return "product_images" }

// IsOnSale reports whether the product has a markdown price
func (p *Product) IsOnSale() bool {
	return p.ComparePrice > p.Price
}

// CartRecord converts the product into the shape the cart store consumes.
// The image falls back from the primary image to the first image to the
// placeholder; missing fields come through as zero values, which the cart
// store tolerates.
func (p *Product) CartRecord(placeholderURL string) cart.CatalogRecord {
	imageURL := placeholderURL
	for i := range p.Images {
		if p.Images[i].IsPrimary {
			imageURL = p.Images[i].URL
			break
		}
	}
	if imageURL == placeholderURL && len(p.Images) > 0 {
		imageURL = p.Images[0].URL
	}

	brand := ""
	if p.Brand != nil {
		brand = p.Brand.Name
	}

	return cart.CatalogRecord{
		ID:        p.SKU,
		Name:      p.Name,
		Brand:     brand,
		Category:  p.ProtectionType,
		ImageURL:  imageURL,
		UnitPrice: p.Price,
		Stock:     p.Quantity,
	}
}
