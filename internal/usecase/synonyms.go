package usecase

import "strings"

// synonymTable maps ingredient name variants (including common plurals) to
// one canonical name. Loaded once; read-only for the life of the process.
var synonymTable = map[string]string{
	// alliums
	"scallion": "onion", "scallions": "onion",
	"spring onion": "onion", "spring onions": "onion",
	"green onion": "onion", "green onions": "onion",
	"shallot": "onion", "shallots": "onion",
	"onions": "onion",
	"clove":  "garlic", "cloves": "garlic", "garlic clove": "garlic",
	// peppers
	"bell pepper": "pepper", "bell peppers": "pepper",
	"peppers": "pepper", "capsicum": "pepper",
	"chilli": "chili", "chillies": "chili", "chilies": "chili",
	// herbs
	"coriander": "cilantro", "coriander leaves": "cilantro",
	// produce plurals
	"tomatoes": "tomato", "potatoes": "potato", "carrots": "carrot",
	"mushrooms": "mushroom", "apples": "apple", "lemons": "lemon",
	"limes": "lime", "bananas": "banana", "onion greens": "onion",
	// legumes
	"garbanzo": "chickpea", "garbanzos": "chickpea",
	"garbanzo beans": "chickpea", "chickpeas": "chickpea",
	// dairy and eggs
	"eggs": "egg", "heavy cream": "cream", "whipping cream": "cream",
	// grains
	"noodles": "noodle", "spaghetti": "pasta", "macaroni": "pasta",
	// sugar and sweeteners
	"caster sugar": "sugar", "powdered sugar": "sugar",
	"confectioners sugar": "sugar", "icing sugar": "sugar",
	// stocks
	"broth": "stock", "chicken broth": "chicken stock",
	"beef broth": "beef stock", "vegetable broth": "vegetable stock",
}

// resolveCore extracts the single best-guess canonical identity of a phrase:
// the synonym of its last word (the presumed head noun), else the synonym of
// the full cleaned phrase, else the last word unchanged. Cheap and high
// precision, used before the full term-set comparison.
func resolveCore(phrase string) string {
	cleaned, _ := normalizePhrase(phrase)
	if cleaned == "" {
		return ""
	}

	last := cleaned
	if idx := strings.LastIndex(cleaned, " "); idx >= 0 {
		last = cleaned[idx+1:]
	}

	if canonical, ok := synonymTable[last]; ok {
		return canonical
	}
	if canonical, ok := synonymTable[cleaned]; ok {
		return canonical
	}
	return last
}

// resolveTerms returns the full candidate term set for a phrase: the cleaned
// phrase, each significant word, and the synonym-resolved form of each.
// Duplicates are collapsed; order is not significant.
func resolveTerms(phrase string) []string {
	cleaned, words := normalizePhrase(phrase)
	if cleaned == "" {
		return nil
	}

	seen := make(map[string]bool, len(words)*2+2)
	var terms []string
	add := func(term string) {
		if term != "" && !seen[term] {
			seen[term] = true
			terms = append(terms, term)
		}
	}

	add(cleaned)
	add(synonymTable[cleaned])
	for _, w := range words {
		add(w)
		add(synonymTable[w])
	}

	return terms
}
