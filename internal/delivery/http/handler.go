package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/luminaweb/backend/internal/domain"
	"github.com/luminaweb/backend/internal/usecase"
)

// Handler holds dependencies for HTTP handlers
type Handler struct {
	catalog  *usecase.CatalogService
	cart     *usecase.CartService
	currency *usecase.CurrencyService
}

// NewHandler creates a new HTTP handler
func NewHandler(catalog *usecase.CatalogService, cart *usecase.CartService, currency *usecase.CurrencyService) *Handler {
	return &Handler{
		catalog:  catalog,
		cart:     cart,
		currency: currency,
	}
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "lumina-backend",
		"version": "1.0.0",
	})
}

// productView is a Product enriched with display fields for the storefront.
type productView struct {
	domain.Product
	FormattedPrice         string `json:"formattedPrice"`
	FormattedOriginalPrice string `json:"formattedOriginalPrice,omitempty"`
	DiscountPercent        int    `json:"discountPercent,omitempty"`
	BadgeLabel             string `json:"badgeLabel,omitempty"`
}

func (h *Handler) productView(p domain.Product) productView {
	view := productView{
		Product:        p,
		FormattedPrice: h.currency.Format(p.Price),
	}
	if p.HasDiscount() {
		view.FormattedOriginalPrice = h.currency.Format(p.OriginalPrice)
		view.DiscountPercent = usecase.CalculateDiscount(p.OriginalPrice, p.Price)
	}
	if p.Badge != "" {
		view.BadgeLabel = domain.BadgeLabel(p.Badge)
	}
	return view
}

// ListProducts returns the catalog filtered and sorted by query parameters.
func (h *Handler) ListProducts(c *gin.Context) {
	filter := domain.DefaultFilterState()
	if category := c.Query("category"); category != "" {
		filter.Category = category
	}
	filter.SearchQuery = c.Query("q")
	if sortBy := c.Query("sort"); sortBy != "" {
		filter.SortBy = domain.SortOption(sortBy)
	}

	products, degraded := h.catalog.Products(filter)

	views := make([]productView, 0, len(products))
	for _, p := range products {
		views = append(views, h.productView(p))
	}

	c.JSON(http.StatusOK, gin.H{
		"products": views,
		"count":    len(views),
		"degraded": degraded,
		"currency": h.currency.Current(),
	})
}

// GetProduct returns a single product by ID.
func (h *Handler) GetProduct(c *gin.Context) {
	product, err := h.catalog.GetProduct(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
		return
	}
	c.JSON(http.StatusOK, h.productView(product))
}

// RefreshCatalog triggers a CMS re-fetch for the given locale.
func (h *Handler) RefreshCatalog(c *gin.Context) {
	state, err := h.catalog.Refresh(c.Request.Context(), c.Query("locale"))
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "catalog refresh failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"count":     len(state.Products),
		"degraded":  state.Degraded,
		"locale":    state.Locale,
		"fetchedAt": state.FetchedAt,
	})
}

// cartItemView is a CartItem with display pricing.
type cartItemView struct {
	Product            productView `json:"product"`
	Quantity           int         `json:"quantity"`
	AddedAt            string      `json:"addedAt"`
	FormattedLineTotal string      `json:"formattedLineTotal"`
}

// cartResponse renders the cart with derived and formatted totals.
func (h *Handler) cartResponse(cart domain.Cart) gin.H {
	items := make([]cartItemView, 0, len(cart.Items))
	for _, item := range cart.Items {
		items = append(items, cartItemView{
			Product:            h.productView(item.Product),
			Quantity:           item.Quantity,
			AddedAt:            item.AddedAt.UTC().Format(time.RFC3339),
			FormattedLineTotal: h.currency.Format(item.Product.Price * float64(item.Quantity)),
		})
	}

	return gin.H{
		"items":             items,
		"itemCount":         cart.ItemCount(),
		"subtotal":          cart.Subtotal,
		"tax":               cart.Tax,
		"total":             cart.Total,
		"formattedSubtotal": h.currency.Format(cart.Subtotal),
		"formattedTax":      h.currency.Format(cart.Tax),
		"formattedTotal":    h.currency.Format(cart.Total),
		"currency":          h.currency.Current(),
	}
}

// GetCart returns the current cart with derived totals.
func (h *Handler) GetCart(c *gin.Context) {
	c.JSON(http.StatusOK, h.cartResponse(h.cart.Cart()))
}

// addCartItemRequest is the payload for adding a product to the cart.
type addCartItemRequest struct {
	ProductID string `json:"productId" binding:"required"`
	Quantity  int    `json:"quantity"`
}

// AddCartItem puts a catalog product into the cart.
func (h *Handler) AddCartItem(c *gin.Context) {
	var req addCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "productId is required"})
		return
	}

	product, err := h.catalog.GetProduct(req.ProductID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
		return
	}

	cart, err := h.cart.Add(c.Request.Context(), product, req.Quantity)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidQuantity) || errors.Is(err, domain.ErrInvalidPrice) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not update cart"})
		return
	}

	c.JSON(http.StatusOK, h.cartResponse(cart))
}

// updateCartItemRequest is the payload for replacing an item's quantity.
type updateCartItemRequest struct {
	Quantity int `json:"quantity"`
}

// UpdateCartItem replaces the quantity for a cart item. Zero or negative
// quantities remove the item.
func (h *Handler) UpdateCartItem(c *gin.Context) {
	var req updateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	cart := h.cart.UpdateQuantity(c.Request.Context(), c.Param("id"), req.Quantity)
	c.JSON(http.StatusOK, h.cartResponse(cart))
}

// RemoveCartItem removes a product from the cart.
func (h *Handler) RemoveCartItem(c *gin.Context) {
	cart := h.cart.Remove(c.Request.Context(), c.Param("id"))
	c.JSON(http.StatusOK, h.cartResponse(cart))
}

// ClearCart empties the cart.
func (h *Handler) ClearCart(c *gin.Context) {
	c.JSON(http.StatusOK, h.cartResponse(h.cart.Clear(c.Request.Context())))
}

// GetCurrency returns the active display currency.
func (h *Handler) GetCurrency(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"currency": h.currency.Current()})
}

// setCurrencyRequest is the payload for switching the display currency.
type setCurrencyRequest struct {
	Code string `json:"code" binding:"required"`
}

// SetCurrency switches the display currency and re-fetches the catalog so
// prices are replaced wholesale in the new currency.
func (h *Handler) SetCurrency(c *gin.Context) {
	var req setCurrencyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "code is required"})
		return
	}

	currency, err := h.currency.Set(c.Request.Context(), req.Code)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unsupported currency code"})
		return
	}

	state, _ := h.catalog.Refresh(c.Request.Context(), "")
	c.JSON(http.StatusOK, gin.H{
		"currency": currency,
		"count":    len(state.Products),
		"degraded": state.Degraded,
	})
}
