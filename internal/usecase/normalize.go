package usecase

import (
	"regexp"
	"strings"
)

// unitAlternation lists measurement units longest-first so the regex engine
// never cuts a longer token short (e.g. "tablespoons" must not leave a stray
// "s" behind). Units are only recognized after a digit, so a bare "g" inside
// an ingredient name like "garlic" is never treated as grams.
const unitAlternation = `tablespoons|tablespoon|teaspoons|teaspoon|ounces|ounce|pounds|pound|grams|gram|cups|cup|tbsp|tsp|lbs|lb|oz|kg|ml|g|l`

// Package-level compiled regex patterns for performance
var (
	// leadingQuantityRegex strips a bullet/dash lead-in, a decimal or
	// fraction quantity, and an optional unit at the start of a phrase
	leadingQuantityRegex = regexp.MustCompile(`^[^a-z0-9]*\d+(?:[./]\d+)?\s*(?:(?:` + unitAlternation + `)\b)?\s*`)

	// inlineQuantityRegex strips digit+unit runs appearing anywhere else
	// (e.g. "1 lb chicken 2 cups rice" concatenations)
	inlineQuantityRegex = regexp.MustCompile(`\d+(?:[./]\d+)?\s*(?:(?:` + unitAlternation + `)\b)?`)

	// descriptorRegex removes whole-word size/texture/color/doneness and
	// preparation-state adjectives; word boundaries keep embedded
	// substrings intact (removing "ground" must not touch "background")
	descriptorRegex = regexp.MustCompile(`\b(?:` + strings.Join(descriptorWords, `|`) + `)\b`)

	// punctuationRegex runs after quantity stripping so fraction slashes
	// and decimal points are still intact when quantities are parsed
	punctuationRegex = regexp.MustCompile(`[^\w\s]`)

	spaceRunRegex = regexp.MustCompile(`\s+`)
)

// descriptorWords are adjectives that never change an ingredient's identity
var descriptorWords = []string{
	// preparation state
	"chopped", "diced", "minced", "sliced", "grated", "shredded",
	"crushed", "ground", "melted", "softened", "beaten", "peeled",
	"cubed", "halved", "quartered", "trimmed", "rinsed", "drained",
	"packed", "divided",
	// freshness / processing
	"fresh", "frozen", "canned", "dried", "cooked", "raw", "ripe",
	"toasted", "roasted", "smoked",
	// size / cut
	"large", "small", "medium", "thick", "thin", "finely", "thinly",
	"coarsely", "roughly", "lightly", "extra",
	// meat / dairy qualifiers
	"boneless", "skinless", "lean", "whole", "reduced", "unsalted",
	"salted", "sweetened", "unsweetened", "plain",
}

// normalizePhrase reduces a raw ingredient phrase to its canonical form.
// It returns the cleaned phrase plus its significant words (length > 2).
// Empty or whitespace-only input yields ("", nil). The function is pure and
// idempotent: re-normalizing an already-clean phrase is a no-op.
func normalizePhrase(phrase string) (string, []string) {
	cleaned := strings.ToLower(phrase)

	// Order matters: quantities first (units need their leading digit),
	// then descriptors on what remains.
	cleaned = leadingQuantityRegex.ReplaceAllString(cleaned, "")
	cleaned = inlineQuantityRegex.ReplaceAllString(cleaned, " ")
	cleaned = punctuationRegex.ReplaceAllString(cleaned, " ")
	cleaned = spaceRunRegex.ReplaceAllString(cleaned, " ")
	cleaned = strings.TrimSpace(cleaned)

	cleaned = descriptorRegex.ReplaceAllString(cleaned, " ")
	cleaned = spaceRunRegex.ReplaceAllString(cleaned, " ")
	cleaned = strings.TrimSpace(cleaned)

	if cleaned == "" {
		return "", nil
	}

	var words []string
	for _, w := range strings.Split(cleaned, " ") {
		if len(w) > 2 {
			words = append(words, w)
		}
	}

	return cleaned, words
}
