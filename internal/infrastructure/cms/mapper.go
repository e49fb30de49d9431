package cms

import (
	"github.com/luminaweb/backend/internal/domain"
)

// MapToProduct converts a CMS record to the internal Product shape, selecting
// the price for the active currency. It returns false when the record has no
// price for that currency; such records are skipped rather than shown with a
// zero price.
func MapToProduct(record domain.CMSProductRecord, currency domain.Currency) (domain.Product, bool) {
	price, ok := record.Pricing[string(currency)]
	if !ok {
		return domain.Product{}, false
	}

	product := domain.Product{
		ID:           record.ID,
		Name:         record.Name,
		Description:  record.Description,
		Category:     domain.Category(record.Category),
		Price:        price,
		Features:     record.Features,
		Badge:        record.Badge,
		DeliveryTime: record.DeliveryTime,
		Recurring:    record.Recurring,
		BillingCycle: domain.BillingCycle(record.BillingCycle),
	}

	if original, ok := record.OriginalPricing[string(currency)]; ok {
		product.OriginalPrice = original
	}

	return product, true
}

// MapToProducts converts a full CMS response, dropping inactive records and
// records without a price in the active currency. Input order is preserved;
// the CMS already orders records by their sort-order field.
func MapToProducts(resp *domain.CMSProductsResponse, currency domain.Currency) []domain.Product {
	if resp == nil {
		return nil
	}

	products := make([]domain.Product, 0, len(resp.Items))
	for _, record := range resp.Items {
		if !record.Active {
			continue
		}
		if product, ok := MapToProduct(record, currency); ok {
			products = append(products, product)
		}
	}
	return products
}
