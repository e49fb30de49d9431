package domain

// CMSProductRecord is a single product entry as returned by the headless CMS.
// Localized fields (name, description, features, delivery time) are already
// resolved for the requested locale; pricing stays keyed by currency code so
// the mapper can select the active currency.
type CMSProductRecord struct {
	ID              string             `json:"id"`
	Name            string             `json:"name"`
	Description     string             `json:"description"`
	Category        string             `json:"category"`
	Features        []string           `json:"features"`
	DeliveryTime    string             `json:"deliveryTime,omitempty"`
	Pricing         map[string]float64 `json:"pricing"`
	OriginalPricing map[string]float64 `json:"originalPricing,omitempty"`
	Badge           string             `json:"badge,omitempty"`
	Recurring       bool               `json:"recurring"`
	BillingCycle    string             `json:"billingCycle,omitempty"`
	SortOrder       int                `json:"sortOrder"`
	Active          bool               `json:"active"`
}

// CMSProductsResponse is the envelope returned by the CMS product query.
type CMSProductsResponse struct {
	Items []CMSProductRecord `json:"items"`
	Total int                `json:"total"`
}
