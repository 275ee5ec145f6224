package usecase

import (
	"reflect"
	"testing"
)

func TestNormalizePhrase(t *testing.T) {
	tests := []struct {
		name        string
		phrase      string
		wantCleaned string
		wantWords   []string
	}{
		{
			name:        "quantity unit and descriptors stripped",
			phrase:      "2 tbsp finely chopped fresh garlic",
			wantCleaned: "garlic",
			wantWords:   []string{"garlic"},
		},
		{
			name:        "bare word keeps its trailing unit letter",
			phrase:      "garlic",
			wantCleaned: "garlic",
			wantWords:   []string{"garlic"},
		},
		{
			name:        "plural unit consumed whole",
			phrase:      "3 tablespoons butter",
			wantCleaned: "butter",
			wantWords:   []string{"butter"},
		},
		{
			name:        "fraction quantity",
			phrase:      "1/2 cup brown sugar",
			wantCleaned: "brown sugar",
			wantWords:   []string{"brown", "sugar"},
		},
		{
			name:        "decimal quantity",
			phrase:      "1.5 kg potatoes",
			wantCleaned: "potatoes",
			wantWords:   []string{"potatoes"},
		},
		{
			name:        "bullet lead-in",
			phrase:      "- 2 cups rice",
			wantCleaned: "rice",
			wantWords:   []string{"rice"},
		},
		{
			name:        "inline quantity runs",
			phrase:      "1 lb chicken 2 cups rice",
			wantCleaned: "chicken rice",
			wantWords:   []string{"chicken", "rice"},
		},
		{
			name:        "unit not stripped without preceding digit",
			phrase:      "ground ginger",
			wantCleaned: "ginger",
			wantWords:   []string{"ginger"},
		},
		{
			name:        "digit unit without space",
			phrase:      "250g flour",
			wantCleaned: "flour",
			wantWords:   []string{"flour"},
		},
		{
			name:        "descriptors only removed as whole words",
			phrase:      "rawhide treats", // "raw" must not be cut out of "rawhide"
			wantCleaned: "rawhide treats",
			wantWords:   []string{"rawhide", "treats"},
		},
		{
			name:        "uppercase input lowered",
			phrase:      "2 Cups FRESH Basil",
			wantCleaned: "basil",
			wantWords:   []string{"basil"},
		},
		{
			name:        "short words dropped from word list",
			phrase:      "cream of tartar",
			wantCleaned: "cream of tartar",
			wantWords:   []string{"cream", "tartar"},
		},
		{
			name:        "empty input",
			phrase:      "",
			wantCleaned: "",
			wantWords:   nil,
		},
		{
			name:        "whitespace only",
			phrase:      "   ",
			wantCleaned: "",
			wantWords:   nil,
		},
		{
			name:        "quantity only",
			phrase:      "2 cups",
			wantCleaned: "",
			wantWords:   nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cleaned, words := normalizePhrase(tt.phrase)
			if cleaned != tt.wantCleaned {
				t.Errorf("cleaned = %q, want %q", cleaned, tt.wantCleaned)
			}
			if !reflect.DeepEqual(words, tt.wantWords) {
				t.Errorf("words = %v, want %v", words, tt.wantWords)
			}
		})
	}
}

func TestNormalizePhrase_Idempotent(t *testing.T) {
	phrases := []string{
		"2 tbsp finely chopped fresh cilantro",
		"1/2 cup brown sugar",
		"garlic",
		"boneless skinless chicken breast",
		"",
	}

	for _, phrase := range phrases {
		t.Run(phrase, func(t *testing.T) {
			once, onceWords := normalizePhrase(phrase)
			twice, twiceWords := normalizePhrase(once)
			if once != twice {
				t.Errorf("normalizePhrase(%q) = %q, re-normalized = %q", phrase, once, twice)
			}
			if !reflect.DeepEqual(onceWords, twiceWords) {
				t.Errorf("words changed on re-normalization: %v vs %v", onceWords, twiceWords)
			}
		})
	}
}

func TestNormalizePhrase_Deterministic(t *testing.T) {
	phrase := "2 large ripe tomatoes, diced"
	first, firstWords := normalizePhrase(phrase)

	for i := 0; i < 10; i++ {
		cleaned, words := normalizePhrase(phrase)
		if cleaned != first || !reflect.DeepEqual(words, firstWords) {
			t.Fatalf("normalization not deterministic: got (%q, %v), want (%q, %v)",
				cleaned, words, first, firstWords)
		}
	}
}
