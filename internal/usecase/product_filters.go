package usecase

import (
	"math"
	"sort"
	"strings"

	"github.com/luminaweb/backend/internal/domain"
)

// FilterProducts returns the subset of products matching the filter state.
// The category check short-circuits: a product outside the selected category
// is dropped regardless of the search query. A non-empty query must match the
// product's name, description or one of its feature strings, case-insensitive.
// The input slice is never mutated.
func FilterProducts(products []domain.Product, state domain.FilterState) []domain.Product {
	query := normalizeQuery(state.SearchQuery)

	filtered := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if state.Category != domain.CategoryAll && state.Category != "" &&
			string(p.Category) != state.Category {
			continue
		}
		if query != "" && !matchesQuery(p, query) {
			continue
		}
		filtered = append(filtered, p)
	}
	return filtered
}

// matchesQuery reports whether the normalized query is a substring of the
// product's name, description or any feature.
func matchesQuery(p domain.Product, query string) bool {
	if strings.Contains(strings.ToLower(p.Name), query) {
		return true
	}
	if strings.Contains(strings.ToLower(p.Description), query) {
		return true
	}
	for _, feature := range p.Features {
		if strings.Contains(strings.ToLower(feature), query) {
			return true
		}
	}
	return false
}

// normalizeQuery lowercases a search query and collapses surrounding whitespace.
func normalizeQuery(query string) string {
	return strings.ToLower(strings.TrimSpace(query))
}

// SortProducts returns a new slice ordered by the given option. The input is
// never mutated. Unrecognized options fall back to the popularity order.
// All orders are stable: ties keep their relative input order.
func SortProducts(products []domain.Product, sortBy domain.SortOption) []domain.Product {
	sorted := make([]domain.Product, len(products))
	copy(sorted, products)

	switch sortBy {
	case domain.SortPriceAsc:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Price < sorted[j].Price
		})
	case domain.SortPriceDesc:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Price > sorted[j].Price
		})
	default:
		// Popularity is the default order for the storefront grid
		sort.SliceStable(sorted, func(i, j int) bool {
			return PopularityScore(sorted[i]) > PopularityScore(sorted[j])
		})
	}

	return sorted
}

// PopularityScore ranks a product for the default sort: a badge is worth 10,
// a visible discount 5.
func PopularityScore(p domain.Product) int {
	score := 0
	if p.Badge != "" {
		score += 10
	}
	if p.OriginalPrice > 0 {
		score += 5
	}
	return score
}

// CalculateDiscount returns the rounded discount percentage between an
// original and a current price. A non-positive original price yields 0
// rather than a division by zero.
func CalculateDiscount(original, current float64) int {
	if original <= 0 {
		return 0
	}
	return int(math.Round((original - current) / original * 100))
}
