package domain

import "time"

// TaxRate is the flat tax applied to the cart subtotal.
const TaxRate = 0.10

// CartItem pairs a product snapshot with the quantity selected by the visitor.
// A cart holds at most one item per product ID.
type CartItem struct {
	Product  Product   `json:"product"`
	Quantity int       `json:"quantity"`
	AddedAt  time.Time `json:"addedAt"`
}

// Cart is the session-scoped list of selected products with derived totals.
// Subtotal, Tax and Total are always recomputed from Items; they are never
// mutated independently and never restored verbatim from a snapshot.
type Cart struct {
	Items    []CartItem `json:"items"`
	Subtotal float64    `json:"subtotal"`
	Tax      float64    `json:"tax"`
	Total    float64    `json:"total"`
}

// CartSnapshot is the persisted form of a cart. Only the items are stored;
// totals are derived state and must be regenerated on load.
type CartSnapshot struct {
	Items []CartItem `json:"items"`
}

// NewCart returns an empty cart with zeroed totals.
func NewCart() Cart {
	return Cart{Items: []CartItem{}}
}

// RestoreCart rebuilds a cart from a persisted snapshot, recomputing totals.
func RestoreCart(snapshot CartSnapshot) Cart {
	c := Cart{Items: snapshot.Items}
	if c.Items == nil {
		c.Items = []CartItem{}
	}
	return c.recompute()
}

// Snapshot returns the persistable form of the cart.
func (c Cart) Snapshot() CartSnapshot {
	return CartSnapshot{Items: c.Items}
}

// Add returns a new cart with the product added. If the product is already
// present its quantity is incremented; otherwise a new item is appended with
// the given timestamp. The caller validates quantity and price beforehand.
func (c Cart) Add(p Product, quantity int, at time.Time) Cart {
	items := make([]CartItem, len(c.Items))
	copy(items, c.Items)

	merged := false
	for i := range items {
		if items[i].Product.ID == p.ID {
			items[i].Quantity += quantity
			merged = true
			break
		}
	}
	if !merged {
		items = append(items, CartItem{Product: p, Quantity: quantity, AddedAt: at})
	}

	return Cart{Items: items}.recompute()
}

// Remove returns a new cart without the given product. Removing a product
// that is not present is a no-op, not an error.
func (c Cart) Remove(productID string) Cart {
	items := make([]CartItem, 0, len(c.Items))
	for _, item := range c.Items {
		if item.Product.ID != productID {
			items = append(items, item)
		}
	}
	return Cart{Items: items}.recompute()
}

// SetQuantity returns a new cart with the product's quantity replaced.
// A quantity of zero or less is equivalent to Remove.
func (c Cart) SetQuantity(productID string, quantity int) Cart {
	if quantity <= 0 {
		return c.Remove(productID)
	}

	items := make([]CartItem, len(c.Items))
	copy(items, c.Items)
	for i := range items {
		if items[i].Product.ID == productID {
			items[i].Quantity = quantity
			break
		}
	}
	return Cart{Items: items}.recompute()
}

// Contains reports whether the cart holds an item for the given product.
func (c Cart) Contains(productID string) bool {
	for _, item := range c.Items {
		if item.Product.ID == productID {
			return true
		}
	}
	return false
}

// ItemCount returns the total quantity across all items, used for the
// cart badge in the storefront header.
func (c Cart) ItemCount() int {
	count := 0
	for _, item := range c.Items {
		count += item.Quantity
	}
	return count
}

// IsEmpty reports whether the cart holds no items.
func (c Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

// recompute derives subtotal, tax and total from the item list.
func (c Cart) recompute() Cart {
	subtotal := 0.0
	for _, item := range c.Items {
		subtotal += item.Product.Price * float64(item.Quantity)
	}
	c.Subtotal = subtotal
	c.Tax = subtotal * TaxRate
	c.Total = c.Subtotal + c.Tax
	return c
}
