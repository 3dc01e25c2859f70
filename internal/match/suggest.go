package match

import (
	"sort"

	"github.com/agnivade/levenshtein"
)

// MaxSuggestions caps the number of names returned by Suggest.
const MaxSuggestions = 3

// Similarity computes a normalized similarity score between 0 and 1.
// 1.0 means identical after normalization, 0.0 means completely different.
// The score is: 1 - (distance / max(len(a), len(b))).
func Similarity(a, b string) float64 {
	normA := NormalizeIdent(a)
	normB := NormalizeIdent(b)

	if len(normA) == 0 && len(normB) == 0 {
		return 1.0
	}

	maxLen := max(len(normA), len(normB))
	distance := levenshtein.ComputeDistance(normA, normB)

	return 1.0 - float64(distance)/float64(maxLen)
}

// Suggest returns the known names that look like a misspelling of name,
// best match first. Exact matches are not suggestions.
func Suggest(name string, known []string, threshold float64) []string {
	type scored struct {
		name  string
		score float64
	}

	var candidates []scored

	for _, k := range known {
		if k == name {
			continue
		}

		score := Similarity(name, k)
		if score >= threshold {
			candidates = append(candidates, scored{name: k, score: score})
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].score > candidates[j].score
	})

	out := make([]string, 0, min(len(candidates), MaxSuggestions))
	for i := 0; i < len(candidates) && i < MaxSuggestions; i++ {
		out = append(out, candidates[i].name)
	}

	return out
}
