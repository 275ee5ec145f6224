package domain

import "time"

// RecipeIngredient is a single ingredient line of a recipe, as sourced from
// the catalog or authored by the user
type RecipeIngredient struct {
	Name    string `json:"name" binding:"required"`
	Measure string `json:"measure,omitempty"`
}

// IngredientStatus reports whether one recipe ingredient is covered by the
// user's inventory. Order follows the recipe's ingredient list.
type IngredientStatus struct {
	Name    string `json:"name"`
	Measure string `json:"measure,omitempty"`
	InStock bool   `json:"inStock"`
}

// MatchResult aggregates ingredient coverage for one recipe
type MatchResult struct {
	MatchedCount     int                `json:"matchedCount"`
	TotalIngredients int                `json:"totalIngredients"`
	MatchPercentage  int                `json:"matchPercentage"` // rounded 0-100
	Ingredients      []IngredientStatus `json:"ingredients"`
}

// InventoryItem is an ingredient the user owns
type InventoryItem struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	Quantity string    `json:"quantity,omitempty"`
	AddedAt  time.Time `json:"addedAt"`
}
