package recipe

import "sort"

// Rank sorts candidates ascending by error (stable, so equal-error
// candidates keep their first-seen order), collapses duplicates by recipe
// identity, and returns at most topK distinct recipes. Zero-percentage
// components are stripped before identity comparison and final output, so a
// grid 100/0/0 split and an exact-match single-pigment candidate collapse
// into one entry. Fewer than topK distinct recipes is not an error; all of
// them are returned.
func Rank(candidates []Candidate, topK int) RecipeSet {
	ranked := make([]Candidate, len(candidates))
	for i, c := range candidates {
		ranked[i] = Candidate{
			Recipe: c.Recipe.stripZero(),
			Mixed:  c.Mixed,
			Error:  c.Error,
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Error < ranked[j].Error
	})

	seen := make(map[string]struct{}, topK)
	result := make(RecipeSet, 0, topK)
	for _, c := range ranked {
		key := c.Recipe.identity()
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		result = append(result, c)
		if len(result) == topK {
			break
		}
	}
	return result
}
