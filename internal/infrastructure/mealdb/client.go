package mealdb

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/go-resty/resty/v2"
	"golang.org/x/time/rate"

	"github.com/shelfchef/backend/internal/domain"
)

// mealResponse is the catalog's envelope: a "meals" array that is null when
// nothing matched. Ingredient/measure pairs arrive as twenty numbered
// string fields, so each meal is decoded as a loose map and folded into a
// domain.Recipe by the mapper.
type mealResponse struct {
	Meals []map[string]interface{} `json:"meals"`
}

// Client handles communication with the TheMealDB-style recipe catalog API
type Client struct {
	http        *resty.Client
	rateLimiter *rate.Limiter
	debug       bool
}

// NewClient creates a new recipe catalog client. The free tier keys the API
// version path by API key (e.g. .../api/json/v1/1).
func NewClient(baseURL, apiKey string) *Client {
	httpClient := resty.New().
		SetBaseURL(fmt.Sprintf("%s/api/json/v1/%s", baseURL, apiKey)).
		SetTimeout(30 * time.Second).
		SetRetryCount(2).
		SetRetryWaitTime(500 * time.Millisecond).
		SetHeader("User-Agent", "ShelfChef/1.0")

	// Keep well under the public API's tolerance: 2 req/sec, burst of 5
	limiter := rate.NewLimiter(rate.Limit(2), 5)

	return &Client{
		http:        httpClient,
		rateLimiter: limiter,
	}
}

// SetDebug enables request/response logging
func (c *Client) SetDebug(debug bool) {
	c.debug = debug
}

// SearchRecipes searches the catalog by recipe name or ingredient keyword.
// A search with no hits returns an empty slice, not an error.
func (c *Client) SearchRecipes(ctx context.Context, query string) ([]domain.Recipe, error) {
	result, err := c.fetch(ctx, "/search.php", map[string]string{"s": query})
	if err != nil {
		return nil, err
	}

	recipes := make([]domain.Recipe, 0, len(result.Meals))
	for _, meal := range result.Meals {
		recipes = append(recipes, mapMealToRecipe(meal))
	}

	if c.debug {
		log.Printf("[CATALOG] Search %q returned %d recipes", query, len(recipes))
	}
	return recipes, nil
}

// GetRecipe looks up a single recipe by catalog ID
func (c *Client) GetRecipe(ctx context.Context, id string) (*domain.Recipe, error) {
	result, err := c.fetch(ctx, "/lookup.php", map[string]string{"i": id})
	if err != nil {
		return nil, err
	}

	if len(result.Meals) == 0 {
		return nil, domain.ErrRecipeNotFound
	}

	recipe := mapMealToRecipe(result.Meals[0])
	return &recipe, nil
}

// RandomRecipe fetches one random recipe from the catalog
func (c *Client) RandomRecipe(ctx context.Context) (*domain.Recipe, error) {
	result, err := c.fetch(ctx, "/random.php", nil)
	if err != nil {
		return nil, err
	}

	if len(result.Meals) == 0 {
		return nil, domain.ErrRecipeNotFound
	}

	recipe := mapMealToRecipe(result.Meals[0])
	return &recipe, nil
}

// fetch executes one rate-limited GET against the catalog
func (c *Client) fetch(ctx context.Context, path string, params map[string]string) (*mealResponse, error) {
	if err := c.rateLimiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter error: %w", err)
	}

	var result mealResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(params).
		SetResult(&result).
		Get(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrCatalogFailure, err)
	}

	if resp.IsError() {
		if c.debug {
			log.Printf("[CATALOG] %s returned status %d: %s", path, resp.StatusCode(), resp.String())
		}
		return nil, fmt.Errorf("%w: status %d", domain.ErrCatalogFailure, resp.StatusCode())
	}

	return &result, nil
}
