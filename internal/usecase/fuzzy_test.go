package usecase

import "testing"

func TestLevenshteinDistance(t *testing.T) {
	tests := []struct {
		s1, s2 string
		want   int
	}{
		{"", "", 0},
		{"abc", "", 3},
		{"", "abc", 3},
		{"tomato", "tomato", 0},
		{"tomato", "tomatoe", 1},
		{"kitten", "sitting", 3},
		{"flour", "floor", 1},
		{"onion", "union", 1},
		{"chicken", "kitchen", 4},
	}

	for _, tt := range tests {
		t.Run(tt.s1+"/"+tt.s2, func(t *testing.T) {
			if got := levenshteinDistance(tt.s1, tt.s2); got != tt.want {
				t.Errorf("levenshteinDistance(%q, %q) = %d, want %d", tt.s1, tt.s2, got, tt.want)
			}
		})
	}
}

func TestIsSimilar(t *testing.T) {
	tests := []struct {
		name      string
		a, b      string
		threshold float64
		want      bool
	}{
		{"identical strings", "tomato", "tomato", 0.8, true},
		{"both empty", "", "", 0.8, true},
		{"single typo in long word", "tomatoe", "tomato", 0.8, true},
		{"dropped letter", "zuchini", "zucchini", 0.8, true},
		{"single substitution at boundary", "flour", "floor", 0.8, true},
		{"transposition costs two edits", "recieve", "receive", 0.8, false},
		{"unrelated words", "saffron", "salt", 0.8, false},
		{"below threshold", "bread", "brick", 0.8, false},
		{"lower threshold admits transpositions", "recieve", "receive", 0.7, true},
		{"one empty one not", "tomato", "", 0.8, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isSimilar(tt.a, tt.b, tt.threshold); got != tt.want {
				t.Errorf("isSimilar(%q, %q, %v) = %v, want %v", tt.a, tt.b, tt.threshold, got, tt.want)
			}
		})
	}
}
