package usecase

import (
	"context"
	"sync"
	"time"

	"github.com/luminaweb/backend/internal/domain"
	"github.com/luminaweb/backend/internal/infrastructure/cms"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// CatalogState is the current product list together with its provenance.
// Degraded is set when the list comes from the bundled fallback dataset
// because the CMS was unreachable or empty.
type CatalogState struct {
	Products  []domain.Product `json:"products"`
	Degraded  bool             `json:"degraded"`
	Locale    string           `json:"locale"`
	FetchedAt time.Time        `json:"fetchedAt"`
}

// CatalogService fetches the product catalog from the CMS and serves it to
// the storefront. Refreshes are last-request-wins: each refresh gets a
// monotonically increasing generation and a result is discarded when a newer
// refresh has already been applied, so a slow old response can never
// overwrite newer data. Identical in-flight fetches are collapsed with
// singleflight to avoid hammering the CMS.
type CatalogService struct {
	client        domain.CMSClient
	currency      *CurrencyService
	defaultLocale string
	logger        *zap.Logger

	sfGroup singleflight.Group

	mutex      sync.Mutex
	state      CatalogState
	nextGen    uint64
	appliedGen uint64
}

// NewCatalogService creates a catalog service. The catalog starts empty;
// call Refresh to populate it.
func NewCatalogService(client domain.CMSClient, currency *CurrencyService, defaultLocale string, logger *zap.Logger) *CatalogService {
	if defaultLocale == "" {
		defaultLocale = "en"
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CatalogService{
		client:        client,
		currency:      currency,
		defaultLocale: defaultLocale,
		logger:        logger,
		state:         CatalogState{Products: []domain.Product{}},
	}
}

// Refresh fetches the catalog for a locale and replaces the product list
// wholesale. On CMS failure or an empty result the bundled fallback dataset
// is served instead and the state is marked degraded; the storefront stays
// functional either way, so no error is returned for that path.
func (s *CatalogService) Refresh(ctx context.Context, locale string) (CatalogState, error) {
	if locale == "" {
		locale = s.defaultLocale
	}
	currency := s.currency.Current()

	s.mutex.Lock()
	s.nextGen++
	gen := s.nextGen
	s.mutex.Unlock()

	// Collapse identical concurrent fetches into one CMS call
	key := locale + ":" + string(currency)
	result, err, _ := s.sfGroup.Do(key, func() (interface{}, error) {
		return s.client.FetchProducts(ctx, locale)
	})

	s.mutex.Lock()
	defer s.mutex.Unlock()

	if gen <= s.appliedGen {
		s.logger.Debug("discarding stale catalog fetch",
			zap.Uint64("generation", gen), zap.Uint64("applied", s.appliedGen))
		return s.state, nil
	}
	s.appliedGen = gen

	if err != nil {
		s.logger.Warn("CMS fetch failed, serving fallback catalog",
			zap.String("locale", locale), zap.Error(err))
		s.state = CatalogState{
			Products:  cms.FallbackProducts(currency),
			Degraded:  true,
			Locale:    locale,
			FetchedAt: time.Now(),
		}
		return s.state, nil
	}

	resp := result.(*domain.CMSProductsResponse)
	products := cms.MapToProducts(resp, currency)
	if len(products) == 0 {
		// Every record was inactive or unpriced for the active currency
		s.logger.Warn("CMS catalog unusable, serving fallback catalog",
			zap.String("locale", locale), zap.String("currency", string(currency)))
		s.state = CatalogState{
			Products:  cms.FallbackProducts(currency),
			Degraded:  true,
			Locale:    locale,
			FetchedAt: time.Now(),
		}
		return s.state, nil
	}

	s.state = CatalogState{
		Products:  products,
		Degraded:  false,
		Locale:    locale,
		FetchedAt: time.Now(),
	}
	s.logger.Info("catalog refreshed",
		zap.String("locale", locale),
		zap.String("currency", string(currency)),
		zap.Int("count", len(products)))
	return s.state, nil
}

// State returns the current catalog state.
func (s *CatalogService) State() CatalogState {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	return s.state
}

// Products returns the current catalog filtered and sorted by the given state.
func (s *CatalogService) Products(filter domain.FilterState) ([]domain.Product, bool) {
	state := s.State()
	filtered := FilterProducts(state.Products, filter)
	return SortProducts(filtered, filter.SortBy), state.Degraded
}

// GetProduct looks up a single product by ID in the current catalog.
func (s *CatalogService) GetProduct(id string) (domain.Product, error) {
	state := s.State()
	for _, p := range state.Products {
		if p.ID == id {
			return p, nil
		}
	}
	return domain.Product{}, domain.ErrProductNotFound
}
