package mealdb

import (
	"fmt"
	"strings"

	"github.com/shelfchef/backend/internal/domain"
)

// The catalog flattens each recipe's ingredient list into twenty numbered
// strIngredient/strMeasure field pairs
const maxIngredientSlots = 20

// mapMealToRecipe converts a raw catalog meal object into our domain Recipe,
// folding the numbered ingredient/measure pairs into an ordered list and
// skipping blank slots
func mapMealToRecipe(meal map[string]interface{}) domain.Recipe {
	recipe := domain.Recipe{
		ID:           stringField(meal, "idMeal"),
		Name:         stringField(meal, "strMeal"),
		Category:     stringField(meal, "strCategory"),
		Area:         stringField(meal, "strArea"),
		Thumbnail:    stringField(meal, "strMealThumb"),
		Instructions: stringField(meal, "strInstructions"),
	}

	for i := 1; i <= maxIngredientSlots; i++ {
		name := strings.TrimSpace(stringField(meal, fmt.Sprintf("strIngredient%d", i)))
		if name == "" {
			continue
		}

		recipe.Ingredients = append(recipe.Ingredients, domain.RecipeIngredient{
			Name:    name,
			Measure: strings.TrimSpace(stringField(meal, fmt.Sprintf("strMeasure%d", i))),
		})
	}

	return recipe
}

// stringField reads a string value from the raw meal object; null and
// missing fields both come back empty
func stringField(meal map[string]interface{}, key string) string {
	value, _ := meal[key].(string)
	return value
}
