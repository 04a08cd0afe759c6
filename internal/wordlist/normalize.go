package wordlist

import (
	"slices"
	"strings"
)

// Normalize lowercases every token, trims surrounding whitespace, drops
// empty tokens, removes duplicates and sorts the result in ascending
// lexicographic order. Lowercasing happens before deduplication, so two
// tokens differing only in case collapse into one entry.
func Normalize(words []string) []string {
	seen := make(map[string]struct{}, len(words))
	unique := make([]string, 0, len(words))

	for _, word := range words {
		word = strings.ToLower(strings.TrimSpace(word))
		if word == "" {
			continue
		}
		if _, ok := seen[word]; ok {
			continue
		}
		seen[word] = struct{}{}
		unique = append(unique, word)
	}

	slices.Sort(unique)
	return unique
}
