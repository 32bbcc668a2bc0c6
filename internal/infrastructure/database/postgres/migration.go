// internal/infrastructure/database/postgres/migration.go
package postgres

import (
	"fmt"
	"log"

	"gorm.io/gorm"

	"github.com/bondex-safety/bondex-backend/internal/domain/cart"
	"github.com/bondex-safety/bondex-backend/internal/domain/catalog"
	"github.com/bondex-safety/bondex-backend/internal/domain/discount"
)

// Migration handles database migrations
type Migration struct {
	db *gorm.DB
}

// NewMigration creates a new migration instance
func NewMigration(db *gorm.DB) *Migration {
	return &Migration{
		db: db,
	}
}

// RunAutoMigrations runs GORM auto-migrations for all models
func (m *Migration) RunAutoMigrations() error {
	log.Println("🔄 Running database auto-migrations...")

	// Models in dependency order
	models := []interface{}{
		&catalog.Category{},
		&catalog.Brand{},
		&catalog.Product{},
		&catalog.ProductImage{},
		&discount.Code{},
	}

	for _, model := range models {
		log.Printf("Migrating model: %T", model)
		if err := m.db.AutoMigrate(model); err != nil {
			return fmt.Errorf("failed to migrate model %T: %w", model, err)
		}
	}

	log.Println("✅ Database auto-migrations completed successfully")
	return nil
}

// CreateIndexes creates additional indexes for better performance
func (m *Migration) CreateIndexes() error {
	log.Println("🔄 Creating additional database indexes...")

	indexes := []string{
		// Product indexes
		"CREATE INDEX IF NOT EXISTS idx_products_protection_active ON products(protection_type, is_active)",
		"CREATE INDEX IF NOT EXISTS idx_products_industry_active ON products(industry, is_active)",
		"CREATE INDEX IF NOT EXISTS idx_products_featured ON products(is_featured, is_active)",
		"CREATE INDEX IF NOT EXISTS idx_products_price ON products(price)",
		"CREATE INDEX IF NOT EXISTS idx_products_created_at ON products(created_at DESC)",
		"CREATE INDEX IF NOT EXISTS idx_products_sku ON products(sku)",
		"CREATE INDEX IF NOT EXISTS idx_products_slug ON products(slug)",

		// Category indexes
		"CREATE INDEX IF NOT EXISTS idx_categories_kind_active ON categories(kind, is_active)",
		"CREATE INDEX IF NOT EXISTS idx_categories_slug ON categories(slug)",
		"CREATE INDEX IF NOT EXISTS idx_categories_sort_order ON categories(sort_order)",

		// Product image indexes
		"CREATE INDEX IF NOT EXISTS idx_product_images_product_primary ON product_images(product_id, is_primary)",
		"CREATE INDEX IF NOT EXISTS idx_product_images_sort_order ON product_images(product_id, sort_order)",

		// Discount code indexes
		"CREATE INDEX IF NOT EXISTS idx_discount_codes_code_active ON discount_codes(code, is_active)",
	}

	for _, index := range indexes {
		if err := m.db.Exec(index).Error; err != nil {
			return fmt.Errorf("failed to create index: %w", err)
		}
	}

	log.Println("✅ Database indexes created successfully")
	return nil
}

// SeedInitialData seeds development data: PPE categories, brands, sample
// products, and the launch discount codes
func (m *Migration) SeedInitialData() error {
	log.Println("🔄 Seeding initial data...")

	var count int64
	m.db.Model(&catalog.Category{}).Count(&count)
	if count > 0 {
		log.Println("Initial data already present, skipping seed")
		return nil
	}

	categories := []catalog.Category{
		{Kind: catalog.CategoryProtectionType, Name: "Head Protection", Slug: "head-protection", SortOrder: 1, IsActive: true},
		{Kind: catalog.CategoryProtectionType, Name: "Eye Protection", Slug: "eye-protection", SortOrder: 2, IsActive: true},
		{Kind: catalog.CategoryProtectionType, Name: "Hand Protection", Slug: "hand-protection", SortOrder: 3, IsActive: true},
		{Kind: catalog.CategoryProtectionType, Name: "Foot Protection", Slug: "foot-protection", SortOrder: 4, IsActive: true},
		{Kind: catalog.CategoryProtectionType, Name: "Respiratory Protection", Slug: "respiratory-protection", SortOrder: 5, IsActive: true},
		{Kind: catalog.CategoryProtectionType, Name: "Hearing Protection", Slug: "hearing-protection", SortOrder: 6, IsActive: true},
		{Kind: catalog.CategoryProtectionType, Name: "Body Protection", Slug: "body-protection", SortOrder: 7, IsActive: true},
		{Kind: catalog.CategoryIndustry, Name: "Construction", Slug: "construction", SortOrder: 1, IsActive: true},
		{Kind: catalog.CategoryIndustry, Name: "Manufacturing", Slug: "manufacturing", SortOrder: 2, IsActive: true},
		{Kind: catalog.CategoryIndustry, Name: "Oil & Gas", Slug: "oil-and-gas", SortOrder: 3, IsActive: true},
		{Kind: catalog.CategoryIndustry, Name: "Agriculture", Slug: "agriculture", SortOrder: 4, IsActive: true},
		{Kind: catalog.CategoryIndustry, Name: "Healthcare", Slug: "healthcare", SortOrder: 5, IsActive: true},
	}
	if err := m.db.Create(&categories).Error; err != nil {
		return fmt.Errorf("failed to seed categories: %w", err)
	}

	brands := []catalog.Brand{
		{Name: "Bondex", Slug: "bondex", IsActive: true},
		{Name: "SafetyPlus", Slug: "safetyplus", IsActive: true},
		{Name: "ProGuard", Slug: "proguard", IsActive: true},
	}
	if err := m.db.Create(&brands).Error; err != nil {
		return fmt.Errorf("failed to seed brands: %w", err)
	}

	products := []catalog.Product{
		{
			SKU: "BDX-HH-001", Name: "Bondex Hard Hat", Slug: "bondex-hard-hat",
			Description: "Impact-rated HDPE hard hat with ratchet suspension",
			Price:       250000, ProtectionType: "head-protection", Industry: "construction",
			BrandID: &brands[0].ID, IsActive: true, IsFeatured: true, Quantity: 15,
			Tags: "helmet,hard hat,head",
		},
		{
			SKU: "SP-GL-014", Name: "Nitrile Work Gloves", Slug: "nitrile-work-gloves",
			Description: "Cut-resistant nitrile-coated work gloves, pair",
			Price:       480000, ComparePrice: 520000, ProtectionType: "hand-protection", Industry: "manufacturing",
			BrandID: &brands[1].ID, IsActive: true, Quantity: 3,
			Tags: "gloves,nitrile,hand",
		},
		{
			SKU: "PG-GG-007", Name: "ProGuard Safety Goggles", Slug: "proguard-safety-goggles",
			Description: "Anti-fog indirect-vent chemical splash goggles",
			Price:       120000, ProtectionType: "eye-protection", Industry: "healthcare",
			BrandID: &brands[2].ID, IsActive: true, Quantity: 40,
			Tags: "goggles,eye,splash",
		},
	}
	if err := m.db.Create(&products).Error; err != nil {
		return fmt.Errorf("failed to seed products: %w", err)
	}

	codes := []discount.Code{
		{Code: "WELCOME10", Kind: cart.DiscountPercentage, Value: 10, IsActive: true},
		{Code: "BONDEX500", Kind: cart.DiscountFixed, Value: 50000, IsActive: true},
	}
	if err := m.db.Create(&codes).Error; err != nil {
		return fmt.Errorf("failed to seed discount codes: %w", err)
	}

	log.Println("✅ Initial data seeded successfully")
	return nil
}
