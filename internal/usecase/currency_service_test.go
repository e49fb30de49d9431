package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/luminaweb/backend/internal/domain"
	"go.uber.org/zap"
)

func TestNewCurrencyService(t *testing.T) {
	ctx := context.Background()

	t.Run("defaults to USD without persisted selection", func(t *testing.T) {
		svc := NewCurrencyService(ctx, NewMockStateStore(), zap.NewNop())
		if svc.Current() != domain.CurrencyUSD {
			t.Errorf("currency = %v, want usd", svc.Current())
		}
	})

	t.Run("restores persisted selection", func(t *testing.T) {
		store := NewMockStateStore()
		store.data[StateKeyCurrency] = []byte("eur")

		svc := NewCurrencyService(ctx, store, zap.NewNop())
		if svc.Current() != domain.CurrencyEUR {
			t.Errorf("currency = %v, want eur", svc.Current())
		}
	})

	t.Run("falls back to default for unknown persisted code", func(t *testing.T) {
		store := NewMockStateStore()
		store.data[StateKeyCurrency] = []byte("doubloons")

		svc := NewCurrencyService(ctx, store, zap.NewNop())
		if svc.Current() != domain.CurrencyUSD {
			t.Errorf("currency = %v, want usd", svc.Current())
		}
	})

	t.Run("falls back to default when store read fails", func(t *testing.T) {
		store := NewMockStateStore()
		store.getError = errors.New("store offline")

		svc := NewCurrencyService(ctx, store, zap.NewNop())
		if svc.Current() != domain.CurrencyUSD {
			t.Errorf("currency = %v, want usd", svc.Current())
		}
	})
}

func TestCurrencyServiceSet(t *testing.T) {
	ctx := context.Background()

	t.Run("updates memory and rewrites storage", func(t *testing.T) {
		store := NewMockStateStore()
		svc := NewCurrencyService(ctx, store, zap.NewNop())

		currency, err := svc.Set(ctx, "eur")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if currency != domain.CurrencyEUR || svc.Current() != domain.CurrencyEUR {
			t.Errorf("currency = %v, want eur", svc.Current())
		}
		if string(store.data[StateKeyCurrency]) != "eur" {
			t.Errorf("persisted = %q, want eur", store.data[StateKeyCurrency])
		}
	})

	t.Run("rejects unsupported codes and keeps current selection", func(t *testing.T) {
		svc := NewCurrencyService(ctx, NewMockStateStore(), zap.NewNop())

		_, err := svc.Set(ctx, "gbp")
		if !errors.Is(err, domain.ErrUnknownCurrency) {
			t.Errorf("error = %v, want ErrUnknownCurrency", err)
		}
		if svc.Current() != domain.CurrencyUSD {
			t.Errorf("currency = %v, want usd", svc.Current())
		}
	})

	t.Run("keeps new selection in memory when persist fails", func(t *testing.T) {
		store := NewMockStateStore()
		store.setError = errors.New("disk full")
		svc := NewCurrencyService(ctx, store, zap.NewNop())

		if _, err := svc.Set(ctx, "eur"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if svc.Current() != domain.CurrencyEUR {
			t.Errorf("currency = %v, want eur", svc.Current())
		}
	})
}

func TestCurrencyServiceFormat(t *testing.T) {
	ctx := context.Background()
	store := NewMockStateStore()
	svc := NewCurrencyService(ctx, store, zap.NewNop())

	if got := svc.Format(1234); got != "$1,234" {
		t.Errorf("Format(1234) = %q, want $1,234", got)
	}

	svc.Set(ctx, "eur")
	if got := svc.Format(1234); got != "€1.234" {
		t.Errorf("Format(1234) = %q, want €1.234", got)
	}
}
