package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultFilterOmitsEverything(t *testing.T) {
	params := DefaultFilterState().ToQueryParams()
	assert.Empty(t, params)
}

func TestToQueryParamsOmitsSentinels(t *testing.T) {
	f := DefaultFilterState()
	f.ProtectionType = "head-protection"
	f.MinPrice = 1000
	f.InStock = true

	params := f.ToQueryParams()

	assert.Equal(t, map[string]string{
		"protectionType": "head-protection",
		"minPrice":       "1000",
		"inStock":        "true",
	}, params)
}

func TestFilterRoundTrip(t *testing.T) {
	cases := []map[string]string{
		{},
		{"protectionType": "head-protection"},
		{"industry": "construction", "featured": "true"},
		{"search": "nitrile gloves", "minPrice": "500", "maxPrice": "10000"},
		{"sort": "price_asc", "inStock": "true", "onSale": "true"},
		{"page": "3", "protectionType": "eye-protection", "industry": "manufacturing"},
		{
			"protectionType": "hand-protection",
			"industry":       "oil-and-gas",
			"search":         "impact",
			"minPrice":       "2500",
			"maxPrice":       "99900",
			"sort":           "name_desc",
			"inStock":        "true",
			"featured":       "true",
			"onSale":         "true",
			"page":           "7",
		},
	}

	for _, params := range cases {
		got := FilterFromQueryParams(params).ToQueryParams()
		assert.Equal(t, params, got)
	}
}

func TestFromQueryParamsDefaults(t *testing.T) {
	f := FilterFromQueryParams(map[string]string{})

	assert.Equal(t, FilterAll, f.ProtectionType)
	assert.Equal(t, FilterAll, f.Industry)
	assert.Equal(t, "", f.Search)
	assert.Equal(t, int64(0), f.MinPrice)
	assert.Equal(t, int64(0), f.MaxPrice)
	assert.Equal(t, SortNewest, f.Sort)
	assert.False(t, f.InStock)
	assert.False(t, f.Featured)
	assert.False(t, f.OnSale)
	assert.Equal(t, 1, f.Page)
}

func TestFromQueryParamsMalformedValues(t *testing.T) {
	f := FilterFromQueryParams(map[string]string{
		"minPrice": "abc",
		"maxPrice": "-5",
		"page":     "zero",
		"inStock":  "yes-please",
		"sort":     "cheapest-first",
	})

	assert.Equal(t, DefaultFilterState(), f)
}

func TestFromQueryParamsIgnoresUnknownKeys(t *testing.T) {
	f := FilterFromQueryParams(map[string]string{
		"utm_source": "newsletter",
		"search":     "helmet",
	})

	assert.Equal(t, "helmet", f.Search)
	assert.Equal(t, map[string]string{"search": "helmet"}, f.ToQueryParams())
}

func TestExplicitSentinelsRoundTripToEmpty(t *testing.T) {
	// A URL carrying explicit defaults normalizes to the minimal form
	f := FilterFromQueryParams(map[string]string{
		"protectionType": "all",
		"industry":       "all",
		"sort":           "newest",
		"featured":       "false",
		"page":           "1",
	})

	assert.Empty(t, f.ToQueryParams())
}

func TestBuildOrderClause(t *testing.T) {
	assert.Equal(t, "price ASC", buildOrderClause(SortPriceAsc))
	assert.Equal(t, "price DESC", buildOrderClause(SortPriceDesc))
	assert.Equal(t, "name ASC", buildOrderClause(SortNameAsc))
	assert.Equal(t, "created_at DESC", buildOrderClause(SortNewest))
	assert.Equal(t, "created_at DESC", buildOrderClause("garbage"))
}

func TestProductIsOnSale(t *testing.T) {
	assert.True(t, (&Product{Price: 2000, ComparePrice: 2500}).IsOnSale())
	assert.False(t, (&Product{Price: 2500, ComparePrice: 0}).IsOnSale())
	assert.False(t, (&Product{Price: 2500, ComparePrice: 2500}).IsOnSale())
}

func TestCartRecordImageFallbackChain(t *testing.T) {
	placeholder := "https://cdn.example.com/placeholder.png"

	p := Product{SKU: "BDX-001", Name: "Hard Hat", Price: 2500, Quantity: 15}
	assert.Equal(t, placeholder, p.CartRecord(placeholder).ImageURL)

	p.Images = []ProductImage{{URL: "https://cdn.example.com/a.png"}}
	assert.Equal(t, "https://cdn.example.com/a.png", p.CartRecord(placeholder).ImageURL)

	p.Images = append(p.Images, ProductImage{URL: "https://cdn.example.com/b.png", IsPrimary: true})
	assert.Equal(t, "https://cdn.example.com/b.png", p.CartRecord(placeholder).ImageURL)
}

func TestCartRecordFields(t *testing.T) {
	p := Product{
		SKU:            "BDX-001",
		Name:           "Hard Hat",
		ProtectionType: "head-protection",
		Price:          2500,
		Quantity:       15,
		Brand:          &Brand{Name: "Bondex"},
	}

	rec := p.CartRecord("")
	assert.Equal(t, "BDX-001", rec.ID)
	assert.Equal(t, "Hard Hat", rec.Name)
	assert.Equal(t, "Bondex", rec.Brand)
	assert.Equal(t, "head-protection", rec.Category)
	assert.Equal(t, int64(2500), rec.UnitPrice)
	assert.Equal(t, 15, rec.Stock)
}
