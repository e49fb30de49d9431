package usecase

import (
	"context"
	"errors"
	"sync"

	"github.com/luminaweb/backend/internal/domain"
	"go.uber.org/zap"
)

// StateKeyCurrency is the state-store key holding the selected currency code.
const StateKeyCurrency = "lumina_currency"

// CurrencyService holds the session's selected display currency. The value
// is read once from the state store at startup and only changes through Set,
// which updates memory and rewrites the store key.
type CurrencyService struct {
	store  domain.StateStore
	logger *zap.Logger

	mutex   sync.RWMutex
	current domain.Currency
}

// NewCurrencyService creates a currency service, restoring the persisted
// selection. Unknown or unreadable codes fall back to the default currency.
func NewCurrencyService(ctx context.Context, store domain.StateStore, logger *zap.Logger) *CurrencyService {
	if logger == nil {
		logger = zap.NewNop()
	}

	s := &CurrencyService{
		store:   store,
		logger:  logger,
		current: domain.DefaultCurrency,
	}

	data, err := store.Get(ctx, StateKeyCurrency)
	switch {
	case err == nil:
		currency, parseErr := domain.ParseCurrency(string(data))
		if parseErr != nil {
			logger.Warn("discarding unknown persisted currency",
				zap.String("code", string(data)))
		} else {
			s.current = currency
		}
	case errors.Is(err, domain.ErrKeyNotFound):
		// No persisted selection, keep the default
	default:
		logger.Warn("could not load currency selection", zap.Error(err))
	}

	return s
}

// Current returns the active display currency.
func (s *CurrencyService) Current() domain.Currency {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return s.current
}

// Set switches the active currency and rewrites the persisted selection.
// Unsupported codes are rejected.
func (s *CurrencyService) Set(ctx context.Context, code string) (domain.Currency, error) {
	currency, err := domain.ParseCurrency(code)
	if err != nil {
		return s.Current(), err
	}

	s.mutex.Lock()
	s.current = currency
	s.mutex.Unlock()

	if err := s.store.Set(ctx, StateKeyCurrency, []byte(currency)); err != nil {
		s.logger.Warn("could not persist currency selection", zap.Error(err))
	}
	return currency, nil
}

// Format renders an amount in the active currency's display convention.
func (s *CurrencyService) Format(amount float64) string {
	return domain.FormatPrice(s.Current(), amount)
}
