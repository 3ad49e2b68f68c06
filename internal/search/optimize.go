package search

import (
	"fmt"

	"github.com/mixtint/mixtint/internal/colour"
	"github.com/mixtint/mixtint/internal/pigment"
	"github.com/mixtint/mixtint/internal/recipe"
)

// optimizeSearch enumerates subsets of each configured size and solves each
// one exactly with the constrained least-squares minimizer. Subsets whose
// solve fails to converge are skipped silently; ErrNoFeasibleRecipe is
// returned only when every enumerated subset fails. Sizes larger than the
// available pigment pool are skipped, not errors.
func optimizeSearch(target colour.RGB, pigs []pigment.Pigment, cfg Config) ([]recipe.Candidate, error) {
	idxs := nearestIndices(target, pigs, cfg.NearestM)

	var subsets [][]int
	for _, size := range cfg.SubsetSizes {
		if size > len(idxs) {
			continue
		}
		subsets = append(subsets, enumerateSubsets(idxs, size)...)
	}
	cfg.Logger.Debug("optimizer enumeration",
		"subsets", len(subsets), "sizes", cfg.SubsetSizes, "pool", len(idxs))

	candidates := forEachSubset(cfg.Workers, subsets, func(subset []int) []recipe.Candidate {
		colours := make([]colour.RGB, len(subset))
		for i, idx := range subset {
			colours[i] = pigs[idx].Colour
		}
		weights, ok := solveSimplex(target, colours)
		if !ok {
			cfg.Logger.Debug("subset solve did not converge, skipping", "subset", subset)
			return nil
		}
		percentages := make([]float64, len(weights))
		for i, w := range weights {
			percentages[i] = w * 100
		}
		return []recipe.Candidate{subsetCandidate(target, pigs, subset, percentages)}
	})

	if len(subsets) > 0 && len(candidates) == 0 {
		return nil, fmt.Errorf("%w: all %d subsets failed to converge", ErrNoFeasibleRecipe, len(subsets))
	}
	return candidates, nil
}
