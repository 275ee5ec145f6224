package usecase

import "strings"

// stapleIngredients are pantry staples assumed present in any kitchen.
// Recipes near-universally call for salt, water, and cooking oil; matching
// them against inventory would produce false negatives that tank every
// recipe's percentage. Loaded once; read-only.
var stapleIngredients = []string{
	"water",
	"salt",
	"sea salt",
	"kosher salt",
	"pepper",
	"black pepper",
	"oil",
	"olive oil",
	"vegetable oil",
	"cooking oil",
}

// isAlwaysAvailable reports whether an ingredient is a pantry staple.
// The test is a bidirectional substring check against the staple set, so
// "coarse sea salt" and "salt" both qualify. Classification depends only on
// the ingredient text, never on the user's inventory.
func isAlwaysAvailable(ingredient string) bool {
	s := strings.TrimSpace(strings.ToLower(ingredient))
	if s == "" {
		return false
	}

	for _, staple := range stapleIngredients {
		if s == staple || strings.Contains(s, staple) || strings.Contains(staple, s) {
			return true
		}
	}
	return false
}
