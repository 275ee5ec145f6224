package domain

import "errors"

var (
	// ErrRecipeNotFound is returned when a recipe cannot be found in the catalog
	ErrRecipeNotFound = errors.New("recipe not found in catalog")

	// ErrItemNotFound is returned when an inventory item does not exist
	ErrItemNotFound = errors.New("inventory item not found")

	// ErrRateLimited is returned when rate limit is exceeded
	ErrRateLimited = errors.New("rate limit exceeded")

	// ErrInvalidRequest is returned when request parameters are invalid
	ErrInvalidRequest = errors.New("invalid request parameters")

	// ErrCacheMiss is returned when data is not found in cache
	ErrCacheMiss = errors.New("cache miss")

	// ErrCatalogFailure is returned when a recipe catalog request fails
	ErrCatalogFailure = errors.New("recipe catalog request failed")

	// ErrCacheUnavailable is returned when cache service is unavailable
	ErrCacheUnavailable = errors.New("cache service unavailable")

	// ErrStorageFailure is returned when the inventory store fails
	ErrStorageFailure = errors.New("inventory storage failure")
)
