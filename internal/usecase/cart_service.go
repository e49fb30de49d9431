package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"math"
	"sync"
	"time"

	"github.com/luminaweb/backend/internal/domain"
	"go.uber.org/zap"
)

// StateKeyCart is the state-store key holding the serialized cart snapshot.
const StateKeyCart = "lumina_cart"

// CartService owns the session cart. Pure transitions live on domain.Cart;
// this service validates input, applies a transition and persists the new
// snapshot. Persistence failures are logged and the in-memory state stays
// authoritative, so a broken store never blocks the shop.
type CartService struct {
	store  domain.StateStore
	logger *zap.Logger

	mutex sync.Mutex
	cart  domain.Cart

	now func() time.Time // injectable for tests
}

// NewCartService creates a cart service and restores any persisted snapshot.
// A corrupt snapshot is discarded with a log line and the cart starts empty;
// this is deliberate local recovery, not a fatal condition.
func NewCartService(ctx context.Context, store domain.StateStore, logger *zap.Logger) *CartService {
	if logger == nil {
		logger = zap.NewNop()
	}

	s := &CartService{
		store:  store,
		logger: logger,
		cart:   domain.NewCart(),
		now:    time.Now,
	}

	data, err := store.Get(ctx, StateKeyCart)
	switch {
	case err == nil:
		var snapshot domain.CartSnapshot
		if jsonErr := json.Unmarshal(data, &snapshot); jsonErr != nil {
			logger.Warn("discarding corrupt cart snapshot", zap.Error(jsonErr))
		} else {
			s.cart = domain.RestoreCart(snapshot)
		}
	case errors.Is(err, domain.ErrKeyNotFound):
		// No persisted cart, start empty
	default:
		logger.Warn("could not load cart snapshot", zap.Error(err))
	}

	return s
}

// Add puts a product in the cart, merging by product ID. Quantity defaults
// to 1 when zero is passed; negative quantities and non-finite prices are
// rejected explicitly.
func (s *CartService) Add(ctx context.Context, product domain.Product, quantity int) (domain.Cart, error) {
	if quantity == 0 {
		quantity = 1
	}
	if quantity < 0 {
		return s.Cart(), domain.ErrInvalidQuantity
	}
	if product.Price < 0 || math.IsNaN(product.Price) || math.IsInf(product.Price, 0) {
		return s.Cart(), domain.ErrInvalidPrice
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.cart = s.cart.Add(product, quantity, s.now())
	s.persist(ctx)
	return s.cart, nil
}

// Remove takes a product out of the cart. Removing an absent product is a
// no-op, not an error.
func (s *CartService) Remove(ctx context.Context, productID string) domain.Cart {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.cart = s.cart.Remove(productID)
	s.persist(ctx)
	return s.cart
}

// UpdateQuantity replaces the quantity for a product. A quantity of zero or
// less removes the item.
func (s *CartService) UpdateQuantity(ctx context.Context, productID string, quantity int) domain.Cart {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.cart = s.cart.SetQuantity(productID, quantity)
	s.persist(ctx)
	return s.cart
}

// Clear empties the cart and removes the persisted snapshot.
func (s *CartService) Clear(ctx context.Context) domain.Cart {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.cart = domain.NewCart()
	s.persist(ctx)
	return s.cart
}

// Cart returns the current cart with derived totals.
func (s *CartService) Cart() domain.Cart {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	return s.cart
}

// IsInCart reports whether a product is currently in the cart.
func (s *CartService) IsInCart(productID string) bool {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	return s.cart.Contains(productID)
}

// ItemCount returns the total quantity across all items.
func (s *CartService) ItemCount() int {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	return s.cart.ItemCount()
}

// persist writes the current snapshot to the state store, or deletes the key
// when the cart is empty. Must be called with the mutex held.
func (s *CartService) persist(ctx context.Context) {
	if s.cart.IsEmpty() {
		if err := s.store.Delete(ctx, StateKeyCart); err != nil {
			s.logger.Warn("could not delete cart snapshot", zap.Error(err))
		}
		return
	}

	data, err := json.Marshal(s.cart.Snapshot())
	if err != nil {
		s.logger.Warn("could not serialize cart snapshot", zap.Error(err))
		return
	}
	if err := s.store.Set(ctx, StateKeyCart, data); err != nil {
		s.logger.Warn("could not persist cart snapshot", zap.Error(err))
	}
}
