package domain

import "context"

// StateStore defines the interface for the session-scoped key/value state
// owned by this service (cart snapshot, selected currency). Values are opaque
// JSON payloads; Get returns ErrKeyNotFound for absent keys, which callers
// treat as "empty state", never as a failure.
type StateStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

// CMSClient defines the interface for querying the headless CMS.
// Implementations request only active records, ordered by their sort-order
// field, localized for the given locale.
type CMSClient interface {
	FetchProducts(ctx context.Context, locale string) (*CMSProductsResponse, error)
}
