package domain

import "errors"

var (
	// ErrProductNotFound is returned when a product ID is not in the current catalog
	ErrProductNotFound = errors.New("product not found in catalog")

	// ErrCMSFailure is returned when the CMS request fails
	ErrCMSFailure = errors.New("CMS request failed")

	// ErrEmptyCatalog is returned when the CMS responds with no active products
	ErrEmptyCatalog = errors.New("CMS returned no products")

	// ErrKeyNotFound is returned when a state store key is absent
	ErrKeyNotFound = errors.New("state key not found")

	// ErrStoreUnavailable is returned when the state store cannot be reached
	ErrStoreUnavailable = errors.New("state store unavailable")

	// ErrInvalidQuantity is returned when a cart quantity is not a positive finite integer
	ErrInvalidQuantity = errors.New("quantity must be a positive integer")

	// ErrInvalidPrice is returned when a product price is negative or not finite
	ErrInvalidPrice = errors.New("price must be a non-negative finite number")

	// ErrUnknownCurrency is returned when a currency code is outside the supported set
	ErrUnknownCurrency = errors.New("unsupported currency code")

	// ErrInvalidRequest is returned when request parameters are invalid
	ErrInvalidRequest = errors.New("invalid request parameters")

	// ErrStaleFetch is returned when a catalog fetch result is superseded by a newer one
	ErrStaleFetch = errors.New("catalog fetch superseded by a newer request")
)
