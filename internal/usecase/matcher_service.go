package usecase

import (
	"log"
	"math"
	"strings"

	"github.com/shelfchef/backend/internal/domain"
)

// Default tuning values. The threshold and minimum fuzzy length have no
// derivation beyond working well in practice, so they stay configurable.
const (
	defaultSimilarityThreshold = 0.8
	defaultMinFuzzyLength      = 4
)

// MatchConfig holds configuration for the matcher service
type MatchConfig struct {
	SimilarityThreshold float64
	MinFuzzyLength      int
	EnableDebugLogging  bool
}

// MatcherService decides whether a pantry inventory satisfies recipe
// ingredient phrases. All methods are pure and safe for concurrent use;
// the only state is immutable configuration.
type MatcherService struct {
	similarityThreshold float64
	minFuzzyLength      int
	enableDebugLogging  bool
}

// NewMatcherService creates a new matcher service with the given configuration
func NewMatcherService(config MatchConfig) *MatcherService {
	threshold := config.SimilarityThreshold
	if threshold <= 0 || threshold > 1 {
		threshold = defaultSimilarityThreshold
	}

	minLen := config.MinFuzzyLength
	if minLen <= 0 {
		minLen = defaultMinFuzzyLength
	}

	return &MatcherService{
		similarityThreshold: threshold,
		minFuzzyLength:      minLen,
		enableDebugLogging:  config.EnableDebugLogging,
	}
}

// ingredientProfile caches the derived forms of one phrase so a matching
// pass computes them once per owned ingredient, not once per recipe line
type ingredientProfile struct {
	core  string
	terms []string
}

func buildProfile(phrase string) ingredientProfile {
	return ingredientProfile{
		core:  resolveCore(phrase),
		terms: resolveTerms(phrase),
	}
}

func buildProfiles(phrases []string) []ingredientProfile {
	profiles := make([]ingredientProfile, 0, len(phrases))
	for _, p := range phrases {
		profiles = append(profiles, buildProfile(p))
	}
	return profiles
}

// HasIngredient reports whether the owned ingredient list satisfies one
// recipe ingredient phrase. Staples short-circuit before any inventory
// lookup; otherwise the core identities are compared first, then the full
// term sets (exact, fuzzy, substring). Malformed input degrades to false,
// never to an error.
func (s *MatcherService) HasIngredient(recipeIngredient string, ownedIngredients []string) bool {
	return s.hasIngredient(recipeIngredient, buildProfiles(ownedIngredients))
}

func (s *MatcherService) hasIngredient(recipeIngredient string, owned []ingredientProfile) bool {
	if isAlwaysAvailable(recipeIngredient) {
		if s.enableDebugLogging {
			log.Printf("[MATCH] %q is a staple, always in stock", recipeIngredient)
		}
		return true
	}

	return s.profileMatches(buildProfile(recipeIngredient), owned)
}

// profileMatches compares one ingredient profile against the owned profiles
// without the staple shortcut. Cores are tried first, then the term-set
// cross product (exact equality; fuzzy similarity or substring containment
// for terms long enough to make those reliable).
func (s *MatcherService) profileMatches(recipe ingredientProfile, owned []ingredientProfile) bool {
	for _, user := range owned {
		// Fast path: canonical head nouns agree
		if len(recipe.core) > 2 && len(user.core) > 2 {
			if recipe.core == user.core || isSimilar(recipe.core, user.core, s.similarityThreshold) {
				if s.enableDebugLogging {
					log.Printf("[MATCH] matched on core %q ~ %q", recipe.core, user.core)
				}
				return true
			}
		}

		// Full term-set comparison
		for _, rt := range recipe.terms {
			for _, ut := range user.terms {
				if rt == ut {
					return true
				}
				if len(rt) >= s.minFuzzyLength && len(ut) >= s.minFuzzyLength {
					if isSimilar(rt, ut, s.similarityThreshold) ||
						strings.Contains(rt, ut) || strings.Contains(ut, rt) {
						if s.enableDebugLogging {
							log.Printf("[MATCH] matched on term %q ~ %q", rt, ut)
						}
						return true
					}
				}
			}
		}
	}

	return false
}

// ComputeRecipeMatch evaluates every ingredient of a recipe against the
// owned ingredient list and aggregates the results. Per-ingredient statuses
// preserve the recipe's ingredient order; an empty recipe yields all zeros.
func (s *MatcherService) ComputeRecipeMatch(
	ingredients []domain.RecipeIngredient,
	ownedIngredients []string,
) domain.MatchResult {
	return s.computeRecipeMatch(ingredients, buildProfiles(ownedIngredients))
}

// computeRecipeMatch is the profile-level variant used when one pass scores
// many recipes against the same inventory
func (s *MatcherService) computeRecipeMatch(
	ingredients []domain.RecipeIngredient,
	owned []ingredientProfile,
) domain.MatchResult {
	statuses := make([]domain.IngredientStatus, 0, len(ingredients))
	matched := 0

	for _, ing := range ingredients {
		inStock := s.hasIngredient(ing.Name, owned)
		if inStock {
			matched++
		}
		statuses = append(statuses, domain.IngredientStatus{
			Name:    ing.Name,
			Measure: ing.Measure,
			InStock: inStock,
		})
	}

	percentage := 0
	if len(ingredients) > 0 {
		percentage = int(math.Round(float64(matched) / float64(len(ingredients)) * 100))
	}

	return domain.MatchResult{
		MatchedCount:     matched,
		TotalIngredients: len(ingredients),
		MatchPercentage:  percentage,
		Ingredients:      statuses,
	}
}
