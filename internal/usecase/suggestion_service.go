package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sort"
	"strings"
	"time"

	"github.com/shelfchef/backend/internal/domain"
)

const (
	defaultSuggestionLimit = 10
	defaultMaxCandidates   = 30
	maxSeedQueries         = 5
)

// SuggestionConfig holds configuration for the suggestion service
type SuggestionConfig struct {
	CacheTTL      time.Duration
	MaxCandidates int
}

// SuggestionService ranks catalog recipes by how much of each one the
// user's inventory already covers.
// Flow: check cache -> fetch candidates from catalog -> score -> rank -> cache
type SuggestionService struct {
	cache         domain.CacheRepository
	catalog       domain.RecipeCatalog
	matcher       *MatcherService
	cacheTTL      time.Duration
	maxCandidates int
}

// NewSuggestionService creates a new suggestion service with dependencies
func NewSuggestionService(
	cache domain.CacheRepository,
	catalog domain.RecipeCatalog,
	matcher *MatcherService,
	config SuggestionConfig,
) *SuggestionService {
	cacheTTL := config.CacheTTL
	if cacheTTL == 0 {
		cacheTTL = 1 * time.Hour
	}

	maxCandidates := config.MaxCandidates
	if maxCandidates <= 0 {
		maxCandidates = defaultMaxCandidates
	}

	return &SuggestionService{
		cache:         cache,
		catalog:       catalog,
		matcher:       matcher,
		cacheTTL:      cacheTTL,
		maxCandidates: maxCandidates,
	}
}

// SuggestRecipes fetches candidate recipes from the catalog, scores each one
// against the owned ingredient list, and returns up to limit suggestions
// ranked by match percentage descending. Owned-side normalization is
// computed once and reused across every candidate recipe.
func (s *SuggestionService) SuggestRecipes(
	ctx context.Context,
	ownedIngredients []string,
	limit int,
) ([]domain.RecipeSuggestion, error) {
	if limit <= 0 {
		limit = defaultSuggestionLimit
	}

	cacheKey := s.suggestionCacheKey(ownedIngredients, limit)
	if cached, err := s.suggestionsFromCache(ctx, cacheKey); err == nil {
		return cached, nil
	}

	candidates, err := s.gatherCandidates(ctx, ownedIngredients)
	if err != nil {
		return nil, err
	}

	owned := buildProfiles(ownedIngredients)

	suggestions := make([]domain.RecipeSuggestion, 0, len(candidates))
	for _, recipe := range candidates {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		suggestions = append(suggestions, domain.RecipeSuggestion{
			Recipe: recipe,
			Match:  s.matcher.computeRecipeMatch(recipe.Ingredients, owned),
		})
	}

	// Rank by coverage descending; more matched ingredients breaks ties
	sort.SliceStable(suggestions, func(i, j int) bool {
		if suggestions[i].Match.MatchPercentage != suggestions[j].Match.MatchPercentage {
			return suggestions[i].Match.MatchPercentage > suggestions[j].Match.MatchPercentage
		}
		return suggestions[i].Match.MatchedCount > suggestions[j].Match.MatchedCount
	})

	if len(suggestions) > limit {
		suggestions = suggestions[:limit]
	}

	if err := s.suggestionsToCache(ctx, cacheKey, suggestions); err != nil {
		log.Printf("[SUGGEST] Failed to cache suggestions: %v", err)
	}

	return suggestions, nil
}

// MatchRecipe fetches a single recipe and scores it against the owned
// ingredient list.
func (s *SuggestionService) MatchRecipe(
	ctx context.Context,
	recipeID string,
	ownedIngredients []string,
) (*domain.RecipeSuggestion, error) {
	if recipeID == "" {
		return nil, domain.ErrInvalidRequest
	}

	recipe, err := s.catalog.GetRecipe(ctx, recipeID)
	if err != nil {
		return nil, err
	}

	return &domain.RecipeSuggestion{
		Recipe: *recipe,
		Match:  s.matcher.ComputeRecipeMatch(recipe.Ingredients, ownedIngredients),
	}, nil
}

// gatherCandidates pulls candidate recipes from the catalog: searches seeded
// by the owned ingredients' canonical cores, padded with random recipes when
// searches come up short. Individual seed failures are tolerated as long as
// at least one catalog call succeeds.
func (s *SuggestionService) gatherCandidates(
	ctx context.Context,
	ownedIngredients []string,
) ([]domain.Recipe, error) {
	seen := make(map[string]bool)
	var candidates []domain.Recipe
	var lastErr error
	succeeded := false

	for _, seed := range seedQueries(ownedIngredients) {
		if len(candidates) >= s.maxCandidates {
			break
		}

		recipes, err := s.catalog.SearchRecipes(ctx, seed)
		if err != nil {
			log.Printf("[SUGGEST] Catalog search %q failed: %v", seed, err)
			lastErr = err
			continue
		}
		succeeded = true

		for _, r := range recipes {
			if !seen[r.ID] && len(candidates) < s.maxCandidates {
				seen[r.ID] = true
				candidates = append(candidates, r)
			}
		}
	}

	// Pad with random picks so sparse inventories still get suggestions
	for attempts := 0; len(candidates) < s.maxCandidates && attempts < 10; attempts++ {
		recipe, err := s.catalog.RandomRecipe(ctx)
		if err != nil {
			lastErr = err
			break
		}
		succeeded = true
		if !seen[recipe.ID] {
			seen[recipe.ID] = true
			candidates = append(candidates, *recipe)
		}
	}

	if !succeeded && lastErr != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrCatalogFailure, lastErr)
	}

	return candidates, nil
}

// seedQueries picks the distinct canonical cores of the owned ingredients
// to use as catalog search terms
func seedQueries(ownedIngredients []string) []string {
	seen := make(map[string]bool)
	var seeds []string
	for _, owned := range ownedIngredients {
		if len(seeds) >= maxSeedQueries {
			break
		}
		core := resolveCore(owned)
		if len(core) > 2 && !seen[core] {
			seen[core] = true
			seeds = append(seeds, core)
		}
	}
	return seeds
}

// suggestionCacheKey derives a stable key from the normalized owned set.
// Format: "suggest:{sorted cores}:{limit}"
func (s *SuggestionService) suggestionCacheKey(ownedIngredients []string, limit int) string {
	cores := make([]string, 0, len(ownedIngredients))
	for _, owned := range ownedIngredients {
		if core := resolveCore(owned); core != "" {
			cores = append(cores, core)
		}
	}
	sort.Strings(cores)
	return fmt.Sprintf("suggest:%s:%d", strings.Join(cores, ","), limit)
}

// Suggestions are cached as JSON so the memory and redis backends behave
// identically.
func (s *SuggestionService) suggestionsFromCache(ctx context.Context, key string) ([]domain.RecipeSuggestion, error) {
	value, err := s.cache.Get(ctx, key)
	if err != nil {
		return nil, err
	}

	raw, ok := value.(string)
	if !ok {
		return nil, domain.ErrCacheMiss
	}

	var suggestions []domain.RecipeSuggestion
	if err := json.Unmarshal([]byte(raw), &suggestions); err != nil {
		return nil, domain.ErrCacheMiss
	}
	return suggestions, nil
}

func (s *SuggestionService) suggestionsToCache(ctx context.Context, key string, suggestions []domain.RecipeSuggestion) error {
	data, err := json.Marshal(suggestions)
	if err != nil {
		return err
	}
	return s.cache.Set(ctx, key, string(data), s.cacheTTL)
}
