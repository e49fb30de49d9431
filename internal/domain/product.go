package domain

// Category identifies the fixed set of service categories sold on the site.
type Category string

const (
	CategoryWeb       Category = "web"
	CategorySEO       Category = "seo"
	CategoryMarketing Category = "marketing"
	CategoryBranding  Category = "branding"
)

// BillingCycle describes how a recurring product is billed.
type BillingCycle string

const (
	BillingMonthly BillingCycle = "monthly"
	BillingYearly  BillingCycle = "yearly"
)

// Product represents a single catalog entry as served to the storefront.
// Products are immutable once constructed; a catalog refresh replaces the
// whole list rather than patching entries in place.
type Product struct {
	ID            string       `json:"id"`
	Name          string       `json:"name"`
	Description   string       `json:"description"`
	Category      Category     `json:"category"`
	Price         float64      `json:"price"`
	OriginalPrice float64      `json:"originalPrice,omitempty"` // 0 means no discount
	Features      []string     `json:"features,omitempty"`
	Badge         string       `json:"badge,omitempty"`
	DeliveryTime  string       `json:"deliveryTime,omitempty"`
	Recurring     bool         `json:"recurring"`
	BillingCycle  BillingCycle `json:"billingCycle,omitempty"`
}

// HasDiscount reports whether the product carries an original (pre-discount) price.
func (p Product) HasDiscount() bool {
	return p.OriginalPrice > 0 && p.OriginalPrice > p.Price
}

// badgeLabels maps known badge codes to their display labels.
var badgeLabels = map[string]string{
	"popular":      "Most Popular",
	"bestseller":   "Best Seller",
	"new":          "New",
	"limited":      "Limited Offer",
	"recommended":  "Recommended",
	"professional": "Professional",
}

// BadgeLabel resolves a badge code to its display label. Unknown codes fall
// back to the raw badge string so the storefront always has something to show.
func BadgeLabel(badge string) string {
	if label, ok := badgeLabels[badge]; ok {
		return label
	}
	return badge
}
