package domain

// CategoryAll is the sentinel category meaning "no category filter".
const CategoryAll = "all"

// SortOption enumerates the supported catalog sort orders.
type SortOption string

const (
	SortPriceAsc  SortOption = "price-asc"
	SortPriceDesc SortOption = "price-desc"
	SortPopular   SortOption = "popular"
)

// FilterState captures the storefront's current filter and sort selection.
// It is a derived view over the catalog and is never persisted.
type FilterState struct {
	Category    string     `json:"category"`
	SearchQuery string     `json:"searchQuery"`
	SortBy      SortOption `json:"sortBy"`
}

// DefaultFilterState returns the filter state used before any user interaction.
func DefaultFilterState() FilterState {
	return FilterState{
		Category: CategoryAll,
		SortBy:   SortPopular,
	}
}
