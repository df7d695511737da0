package common

// Dedupe returns the distinct elements of s in order of first occurrence.
// The input slice is never modified; the result is always a fresh slice.
func Dedupe[S ~[]E, E comparable](s S) S {
	seen := make(map[E]struct{}, len(s))
	out := make(S, 0, len(s))

	for _, v := range s {
		if _, ok := seen[v]; ok {
			continue
		}

		seen[v] = struct{}{}
		out = append(out, v)
	}

	return out
}

// Duplicates returns the elements that occur more than once in s, each
// reported once, in order of their second occurrence.
func Duplicates[S ~[]E, E comparable](s S) S {
	seen := make(map[E]int, len(s))

	var out S

	for _, v := range s {
		seen[v]++
		if seen[v] == 2 {
			out = append(out, v)
		}
	}

	return out
}
