package domain

import (
	"context"
	"time"
)

// CacheRepository defines the interface for caching operations
type CacheRepository interface {
	Get(ctx context.Context, key string) (interface{}, error)
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
}

// RecipeCatalog defines the interface for the third-party recipe catalog
type RecipeCatalog interface {
	SearchRecipes(ctx context.Context, query string) ([]Recipe, error)
	GetRecipe(ctx context.Context, id string) (*Recipe, error)
	RandomRecipe(ctx context.Context) (*Recipe, error)
}

// InventoryRepository defines the interface for the user's pantry inventory
type InventoryRepository interface {
	List(ctx context.Context) ([]InventoryItem, error)
	Get(ctx context.Context, id string) (*InventoryItem, error)
	Add(ctx context.Context, item *InventoryItem) error
	Remove(ctx context.Context, id string) error
}
