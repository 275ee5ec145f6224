package usecase

// isSimilar reports whether two strings are within an edit-distance-based
// similarity threshold. Similarity = 1 - distance/max(len(a), len(b)); two
// identical strings (including two empty ones) are always similar.
func isSimilar(a, b string, threshold float64) bool {
	if a == b {
		return true
	}
	if len(a) == 0 && len(b) == 0 {
		return true
	}

	longest := len(a)
	if len(b) > longest {
		longest = len(b)
	}

	distance := levenshteinDistance(a, b)
	similarity := 1.0 - float64(distance)/float64(longest)
	return similarity >= threshold
}

// levenshteinDistance calculates the edit distance between two strings.
// Insertion, deletion, and substitution all cost 1.
func levenshteinDistance(s1, s2 string) int {
	if len(s1) == 0 {
		return len(s2)
	}
	if len(s2) == 0 {
		return len(s1)
	}

	r1 := []rune(s1)
	r2 := []rune(s2)
	m := len(r1)
	n := len(r2)

	// Use two rows instead of the full matrix for space efficiency
	prev := make([]int, n+1)
	curr := make([]int, n+1)

	for j := 0; j <= n; j++ {
		prev[j] = j
	}

	for i := 1; i <= m; i++ {
		curr[0] = i
		for j := 1; j <= n; j++ {
			cost := 0
			if r1[i-1] != r2[j-1] {
				cost = 1
			}
			curr[j] = min(
				prev[j]+1,      // deletion
				curr[j-1]+1,    // insertion
				prev[j-1]+cost, // substitution
			)
		}
		prev, curr = curr, prev
	}

	return prev[n]
}
