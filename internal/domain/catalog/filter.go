// internal/domain/catalog/filter.go
package catalog

import "strconv"

// Sort keys accepted by the product listing. Anything else falls back to
// SortNewest.
const (
	SortNewest    = "newest"
	SortPriceAsc  = "price_asc"
	SortPriceDesc = "price_desc"
	SortNameAsc   = "name_asc"
	SortNameDesc  = "name_desc"
	SortFeatured  = "featured"
)

// FilterAll is the unset sentinel for the category pickers
const FilterAll = "all"

// FilterState holds the storefront listing filters. Its query-parameter
// mapping is canonical: a shared URL reproduces the same filtered view.
type FilterState struct {
	ProtectionType string
	Industry       string
	Search         string
	MinPrice       int64 // cents, 0 = unset
	MaxPrice       int64 // cents, 0 = unset
	Sort           string
	InStock        bool
	Featured       bool
	OnSale         bool
	Page           int
}

// DefaultFilterState returns a state with every field at its unset sentinel
func DefaultFilterState() FilterState {
	return FilterState{
		ProtectionType: FilterAll,
		Industry:       FilterAll,
		Sort:           SortNewest,
		Page:           1,
	}
}

// ToQueryParams renders the state as a minimal query-parameter map: keys at
// their unset sentinel are omitted so shared URLs stay short.
func (f FilterState) ToQueryParams() map[string]string {
	params := make(map[string]string)

	if f.ProtectionType != "" && f.ProtectionType != FilterAll {
		params["protectionType"] = f.ProtectionType
	}
	if f.Industry != "" && f.Industry != FilterAll {
		params["industry"] = f.Industry
	}
	if f.Search != "" {
		params["search"] = f.Search
	}
	if f.MinPrice > 0 {
		params["minPrice"] = strconv.FormatInt(f.MinPrice, 10)
	}
	if f.MaxPrice > 0 {
		params["maxPrice"] = strconv.FormatInt(f.MaxPrice, 10)
	}
	if f.Sort != "" && f.Sort != SortNewest {
		params["sort"] = f.Sort
	}
	if f.InStock {
		params["inStock"] = "true"
	}
	if f.Featured {
		params["featured"] = "true"
	}
	if f.OnSale {
		params["onSale"] = "true"
	}
	if f.Page > 1 {
		params["page"] = strconv.Itoa(f.Page)
	}

	return params
}

// FilterFromQueryParams parses a query-parameter map back into a FilterState.
// Unrecognized keys are ignored and malformed values resolve to defaults, so
// this is the left inverse of ToQueryParams for well-formed inputs.
func FilterFromQueryParams(params map[string]string) FilterState {
	f := DefaultFilterState()

	if v, ok := params["protectionType"]; ok && v != "" {
		f.ProtectionType = v
	}
	if v, ok := params["industry"]; ok && v != "" {
		f.Industry = v
	}
	if v, ok := params["search"]; ok {
		f.Search = v
	}
	if v, ok := params["minPrice"]; ok {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil && n > 0 {
			f.MinPrice = n
		}
	}
	if v, ok := params["maxPrice"]; ok {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil && n > 0 {
			f.MaxPrice = n
		}
	}
	if v, ok := params["sort"]; ok && isValidSort(v) {
		f.Sort = v
	}
	if v, ok := params["inStock"]; ok {
		if b, err := strconv.ParseBool(v); err == nil {
			f.InStock = b
		}
	}
	if v, ok := params["featured"]; ok {
		if b, err := strconv.ParseBool(v); err == nil {
			f.Featured = b
		}
	}
	if v, ok := params["onSale"]; ok {
		if b, err := strconv.ParseBool(v); err == nil {
			f.OnSale = b
		}
	}
	if v, ok := params["page"]; ok {
		if n, err := strconv.Atoi(v); err == nil && n > 1 {
			f.Page = n
		}
	}

	return f
}

func isValidSort(sort string) bool {
	switch sort {
	case SortNewest, SortPriceAsc, SortPriceDesc, SortNameAsc, SortNameDesc, SortFeatured:
		return true
	}
	return false
}
