package cms

import (
	"github.com/luminaweb/backend/internal/domain"
)

// fallbackRecords is the bundled static dataset served when the CMS is
// unreachable or returns nothing. It uses the same record shape as the CMS
// so the regular mapper applies; keep it in sync with the live catalog only
// loosely, stale data is acceptable here.
var fallbackRecords = []domain.CMSProductRecord{
	{
		ID:          "web-starter",
		Name:        "Starter Website",
		Description: "A fast one-page website for small businesses, built and launched in a week.",
		Category:    "web",
		Features:    []string{"Responsive design", "Contact form", "Basic SEO setup", "1 revision round"},
		Pricing:     map[string]float64{"usd": 900, "eur": 830},
		DeliveryTime: "7 days",
		SortOrder:    1,
		Active:       true,
	},
	{
		ID:          "web-business",
		Name:        "Business Website",
		Description: "A multi-page company website with CMS-managed content and analytics.",
		Category:    "web",
		Features:    []string{"Up to 10 pages", "Headless CMS setup", "Analytics integration", "3 revision rounds"},
		Pricing:     map[string]float64{"usd": 2400, "eur": 2200},
		OriginalPricing: map[string]float64{"usd": 2900, "eur": 2650},
		Badge:        "popular",
		DeliveryTime: "21 days",
		SortOrder:    2,
		Active:       true,
	},
	{
		ID:          "seo-audit",
		Name:        "SEO Audit",
		Description: "A full technical and content audit of your site with a prioritized action plan.",
		Category:    "seo",
		Features:    []string{"Technical audit", "Keyword gap analysis", "Competitor review", "Action plan"},
		Pricing:     map[string]float64{"usd": 600, "eur": 550},
		DeliveryTime: "10 days",
		SortOrder:    3,
		Active:       true,
	},
	{
		ID:          "seo-monthly",
		Name:        "Ongoing SEO",
		Description: "Monthly on-page and off-page optimization with reporting.",
		Category:    "seo",
		Features:    []string{"Monthly content optimization", "Link building", "Rank tracking", "Monthly report"},
		Pricing:     map[string]float64{"usd": 750, "eur": 690},
		Badge:        "bestseller",
		Recurring:    true,
		BillingCycle: "monthly",
		SortOrder:    4,
		Active:       true,
	},
	{
		ID:          "marketing-social",
		Name:        "Social Media Management",
		Description: "Planning, creation and scheduling of social content across two channels.",
		Category:    "marketing",
		Features:    []string{"Content calendar", "12 posts per month", "Community management", "Performance report"},
		Pricing:     map[string]float64{"usd": 550, "eur": 500},
		Recurring:    true,
		BillingCycle: "monthly",
		SortOrder:    5,
		Active:       true,
	},
	{
		ID:          "branding-identity",
		Name:        "Brand Identity",
		Description: "Logo, color system and typography with a compact brand guide.",
		Category:    "branding",
		Features:    []string{"Logo design", "Color palette", "Typography", "Brand guide PDF"},
		Pricing:     map[string]float64{"usd": 1800, "eur": 1650},
		OriginalPricing: map[string]float64{"usd": 2100, "eur": 1900},
		DeliveryTime:    "14 days",
		SortOrder:       6,
		Active:          true,
	},
}

// FallbackProducts returns the static dataset mapped for the given currency.
func FallbackProducts(currency domain.Currency) []domain.Product {
	resp := &domain.CMSProductsResponse{Items: fallbackRecords, Total: len(fallbackRecords)}
	return MapToProducts(resp, currency)
}
