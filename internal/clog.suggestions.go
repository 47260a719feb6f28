package internal

import (
	"strings"

	"github.com/sahilm/fuzzy"
)

// FindSimilarStrings returns up to maxSuggestions candidates that look like
// target: candidates target fuzzily matches (best score first), followed by
// candidates that fuzzily match inside target (e.g. "upper" for "uppercase").
func FindSimilarStrings(target string, candidates []string, maxSuggestions int) []string {
	if target == "" || len(candidates) == 0 || maxSuggestions <= 0 {
		return nil
	}

	result := make([]string, 0, maxSuggestions)
	seen := make(map[string]struct{}, maxSuggestions)
	add := func(s string) bool {
		if _, ok := seen[s]; ok || s == target {
			return len(result) < maxSuggestions
		}
		seen[s] = struct{}{}
		result = append(result, s)
		return len(result) < maxSuggestions
	}

	for _, m := range fuzzy.Find(target, candidates) {
		if !add(m.Str) {
			return result
		}
	}

	lowered := []string{strings.ToLower(target)}
	for _, candidate := range candidates {
		if len(fuzzy.Find(strings.ToLower(candidate), lowered)) > 0 {
			if !add(candidate) {
				return result
			}
		}
	}

	return result
}
