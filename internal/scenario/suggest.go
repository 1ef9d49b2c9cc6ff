package scenario

// suggestThreshold is the largest edit distance still offered as a
// "did you mean" hint.
const suggestThreshold = 2

// Suggest returns the known name closest to name when it is close enough
// to be a likely typo. Ties keep the earlier entry, so sorted input gives
// deterministic hints.
func Suggest(name string, known []string) (string, bool) {
	best, bestDist := "", suggestThreshold+1
	for _, k := range known {
		if d := levenshtein(name, k); d < bestDist {
			best, bestDist = k, d
		}
	}

	return best, bestDist <= suggestThreshold
}

// levenshtein computes the edit distance between two strings, keeping two
// matrix rows instead of the full table.
func levenshtein(a, b string) int {
	if a == b {
		return 0
	}

	if len(a) == 0 {
		return len(b)
	}

	if len(b) == 0 {
		return len(a)
	}

	if len(a) > len(b) {
		a, b = b, a
	}

	prev := make([]int, len(a)+1)
	curr := make([]int, len(a)+1)

	for i := range prev {
		prev[i] = i
	}

	for j := 1; j <= len(b); j++ {
		curr[0] = j

		for i := 1; i <= len(a); i++ {
			cost := 0
			if a[i-1] != b[j-1] {
				cost = 1
			}

			curr[i] = min(
				prev[i]+1,      // deletion
				curr[i-1]+1,    // insertion
				prev[i-1]+cost, // substitution
			)
		}

		prev, curr = curr, prev
	}

	return prev[len(a)]
}
