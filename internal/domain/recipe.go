package domain

// Recipe represents a recipe from the catalog
type Recipe struct {
	ID           string             `json:"id"`
	Name         string             `json:"name"`
	Category     string             `json:"category,omitempty"`
	Area         string             `json:"area,omitempty"`
	Thumbnail    string             `json:"thumbnail,omitempty"`
	Instructions string             `json:"instructions,omitempty"`
	Ingredients  []RecipeIngredient `json:"ingredients"`
}

// RecipeSuggestion pairs a recipe with its inventory match, ranked by
// match percentage when returned from the suggestion service
type RecipeSuggestion struct {
	Recipe Recipe      `json:"recipe"`
	Match  MatchResult `json:"match"`
}

// ReconciledLine is the result of matching one OCR'd receipt line against
// the user's inventory
type ReconciledLine struct {
	RawText     string `json:"rawText"`
	CleanedName string `json:"cleanedName"`
	InventoryID string `json:"inventoryId,omitempty"`
	Matched     bool   `json:"matched"`
}
