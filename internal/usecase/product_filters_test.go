package usecase

import (
	"testing"

	"github.com/luminaweb/backend/internal/domain"
)

func sampleProducts() []domain.Product {
	return []domain.Product{
		{
			ID:          "web-business",
			Name:        "Business Website",
			Description: "Multi-page company website",
			Category:    domain.CategoryWeb,
			Price:       2400,
			Badge:       "popular",
		},
		{
			ID:            "seo-audit",
			Name:          "SEO Audit",
			Description:   "Full technical audit with action plan",
			Category:      domain.CategorySEO,
			Price:         600,
			OriginalPrice: 800,
		},
		{
			ID:          "seo-monthly",
			Name:        "Ongoing SEO",
			Description: "Monthly optimization",
			Category:    domain.CategorySEO,
			Price:       750,
			Features:    []string{"Rank tracking", "Monthly report"},
		},
		{
			ID:          "branding-identity",
			Name:        "Brand Identity",
			Description: "Logo and brand guide",
			Category:    domain.CategoryBranding,
			Price:       1800,
		},
	}
}

func TestFilterProducts(t *testing.T) {
	products := sampleProducts()

	t.Run("all category with empty query returns full list in order", func(t *testing.T) {
		got := FilterProducts(products, domain.FilterState{Category: domain.CategoryAll})
		if len(got) != len(products) {
			t.Fatalf("len = %d, want %d", len(got), len(products))
		}
		for i := range got {
			if got[i].ID != products[i].ID {
				t.Errorf("order changed at %d: %s, want %s", i, got[i].ID, products[i].ID)
			}
		}
	})

	t.Run("filters by category", func(t *testing.T) {
		got := FilterProducts(products, domain.FilterState{Category: "seo"})
		if len(got) != 2 {
			t.Fatalf("len = %d, want 2", len(got))
		}
		for _, p := range got {
			if p.Category != domain.CategorySEO {
				t.Errorf("category = %s, want seo", p.Category)
			}
		}
	})

	t.Run("category excludes products regardless of query match", func(t *testing.T) {
		got := FilterProducts(products, domain.FilterState{Category: "web", SearchQuery: "audit"})
		if len(got) != 0 {
			t.Errorf("len = %d, want 0", len(got))
		}
	})

	t.Run("query matches name description and features case-insensitive", func(t *testing.T) {
		got := FilterProducts(products, domain.FilterState{Category: domain.CategoryAll, SearchQuery: "AUDIT"})
		if len(got) != 1 || got[0].ID != "seo-audit" {
			t.Fatalf("got %v, want [seo-audit]", got)
		}

		got = FilterProducts(products, domain.FilterState{Category: domain.CategoryAll, SearchQuery: "rank tracking"})
		if len(got) != 1 || got[0].ID != "seo-monthly" {
			t.Fatalf("feature match got %v, want [seo-monthly]", got)
		}
	})

	t.Run("category and query combine conjunctively", func(t *testing.T) {
		got := FilterProducts(products, domain.FilterState{Category: "seo", SearchQuery: "audit"})
		if len(got) != 1 || got[0].ID != "seo-audit" {
			t.Fatalf("got %v, want [seo-audit]", got)
		}
	})

	t.Run("no matches returns empty slice", func(t *testing.T) {
		got := FilterProducts(products, domain.FilterState{Category: domain.CategoryAll, SearchQuery: "nonexistent"})
		if len(got) != 0 {
			t.Errorf("len = %d, want 0", len(got))
		}
	})

	t.Run("does not mutate input", func(t *testing.T) {
		before := products[0].ID
		_ = FilterProducts(products, domain.FilterState{Category: "seo"})
		if products[0].ID != before {
			t.Error("input slice mutated")
		}
	})
}

func TestSortProducts(t *testing.T) {
	t.Run("price ascending and descending are exact reverses", func(t *testing.T) {
		products := sampleProducts()
		asc := SortProducts(products, domain.SortPriceAsc)
		desc := SortProducts(products, domain.SortPriceDesc)

		if len(asc) != len(desc) {
			t.Fatalf("length mismatch: %d vs %d", len(asc), len(desc))
		}
		for i := range asc {
			if asc[i].ID != desc[len(desc)-1-i].ID {
				t.Errorf("asc[%d] = %s, want %s", i, asc[i].ID, desc[len(desc)-1-i].ID)
			}
		}
		if asc[0].ID != "seo-audit" {
			t.Errorf("cheapest = %s, want seo-audit", asc[0].ID)
		}
	})

	t.Run("popular ranks badge above discount above plain", func(t *testing.T) {
		products := []domain.Product{
			{ID: "plain", Price: 100},
			{ID: "discounted", Price: 100, OriginalPrice: 150},
			{ID: "badged", Price: 100, Badge: "popular"},
		}
		got := SortProducts(products, domain.SortPopular)

		want := []string{"badged", "discounted", "plain"}
		for i, id := range want {
			if got[i].ID != id {
				t.Errorf("got[%d] = %s, want %s", i, got[i].ID, id)
			}
		}
	})

	t.Run("popular sort matches documented example", func(t *testing.T) {
		products := []domain.Product{
			{ID: "a", Price: 100, Badge: "popular"},
			{ID: "b", Price: 50},
		}
		popular := SortProducts(products, domain.SortPopular)
		if popular[0].ID != "a" || popular[1].ID != "b" {
			t.Errorf("popular order = [%s %s], want [a b]", popular[0].ID, popular[1].ID)
		}

		asc := SortProducts(products, domain.SortPriceAsc)
		if asc[0].ID != "b" || asc[1].ID != "a" {
			t.Errorf("price-asc order = [%s %s], want [b a]", asc[0].ID, asc[1].ID)
		}
	})

	t.Run("popular sort is stable on ties", func(t *testing.T) {
		products := []domain.Product{
			{ID: "first", Price: 10},
			{ID: "second", Price: 20},
			{ID: "third", Price: 30},
		}
		got := SortProducts(products, domain.SortPopular)
		for i, id := range []string{"first", "second", "third"} {
			if got[i].ID != id {
				t.Errorf("tie order broken at %d: got %s, want %s", i, got[i].ID, id)
			}
		}
	})

	t.Run("unrecognized option falls back to popular", func(t *testing.T) {
		products := []domain.Product{
			{ID: "plain", Price: 10},
			{ID: "badged", Price: 20, Badge: "new"},
		}
		got := SortProducts(products, domain.SortOption("price-random"))
		if got[0].ID != "badged" {
			t.Errorf("got[0] = %s, want badged", got[0].ID)
		}
	})

	t.Run("does not mutate input", func(t *testing.T) {
		products := sampleProducts()
		first := products[0].ID
		_ = SortProducts(products, domain.SortPriceAsc)
		if products[0].ID != first {
			t.Error("input slice mutated")
		}
	})
}

func TestCalculateDiscount(t *testing.T) {
	tests := []struct {
		name     string
		original float64
		current  float64
		want     int
	}{
		{"quarter off", 800, 600, 25},
		{"half off", 100, 50, 50},
		{"no discount", 100, 100, 0},
		{"rounds to nearest percent", 300, 200, 33},
		{"rounds half up", 200, 149, 26},
		{"zero original clamps to zero", 0, 50, 0},
		{"negative original clamps to zero", -100, 50, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CalculateDiscount(tt.original, tt.current); got != tt.want {
				t.Errorf("CalculateDiscount(%v, %v) = %d, want %d", tt.original, tt.current, got, tt.want)
			}
		})
	}
}

func TestPopularityScore(t *testing.T) {
	tests := []struct {
		name    string
		product domain.Product
		want    int
	}{
		{"badge and discount", domain.Product{Badge: "popular", OriginalPrice: 100, Price: 80}, 15},
		{"badge only", domain.Product{Badge: "new"}, 10},
		{"discount only", domain.Product{OriginalPrice: 100, Price: 80}, 5},
		{"neither", domain.Product{Price: 80}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PopularityScore(tt.product); got != tt.want {
				t.Errorf("score = %d, want %d", got, tt.want)
			}
		})
	}
}
