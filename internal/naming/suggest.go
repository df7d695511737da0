package naming

import "strings"

// minSuggestScore is the lowest similarity for which Closest proposes a name.
const minSuggestScore = 0.6

// Levenshtein computes the Levenshtein distance (edit distance) between two strings.
// The distance is the minimum number of single-character edits (insertions, deletions,
// or substitutions) required to transform one string into the other.
func Levenshtein(a, b string) int {
	if a == b {
		return 0
	}

	if len(a) == 0 {
		return len(b)
	}

	if len(b) == 0 {
		return len(a)
	}

	// Keep a the shorter string so the rows stay small
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

// Similarity computes a score between 0 and 1 for two names after
// case-folding and separator stripping. 1.0 means the names only differ
// in case or separators.
func Similarity(a, b string) float64 {
	normA := normalize(a)
	normB := normalize(b)

	if len(normA) == 0 && len(normB) == 0 {
		return 1.0
	}

	maxLen := max(len(normA), len(normB))

	return 1.0 - float64(Levenshtein(normA, normB))/float64(maxLen)
}

// Closest returns the candidate most similar to name, if any candidate
// is similar enough to be a plausible typo. Ties keep the earlier candidate.
func Closest(name string, candidates []string) (string, bool) {
	var (
		best      string
		bestScore float64
	)

	for _, c := range candidates {
		if c == name {
			continue
		}

		score := Similarity(name, c)
		if score > bestScore {
			best, bestScore = c, score
		}
	}

	if bestScore < minSuggestScore {
		return "", false
	}

	return best, true
}

// normalize lower-cases and strips separators for fuzzy comparison.
func normalize(s string) string {
	return strings.ToLower(strings.Join(tokenizeCamelCase(s), ""))
}
