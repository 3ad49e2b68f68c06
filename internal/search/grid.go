package search

import (
	"sort"

	"gonum.org/v1/gonum/stat/combin"

	"github.com/mixtint/mixtint/internal/colour"
	"github.com/mixtint/mixtint/internal/pigment"
	"github.com/mixtint/mixtint/internal/recipe"
)

// splitEps absorbs floating-point drift when accumulating step increments.
const splitEps = 1e-9

// gridSearch enumerates every unordered pigment subset of cfg.SubsetSize and
// every percentage split on the cfg.Step grid within each subset, keeping
// the best cfg.TopK candidates per subset. Cost is C(P, size) subsets times
// O((100/step)^(size-1)) splits, so callers bound both knobs.
func gridSearch(target colour.RGB, pigs []pigment.Pigment, cfg Config) []recipe.Candidate {
	idxs := nearestIndices(target, pigs, cfg.NearestM)
	if cfg.SubsetSize > len(idxs) {
		return nil
	}
	subsets := enumerateSubsets(idxs, cfg.SubsetSize)
	cfg.Logger.Debug("grid enumeration",
		"subsets", len(subsets), "subset_size", cfg.SubsetSize, "step", cfg.Step)

	return forEachSubset(cfg.Workers, subsets, func(subset []int) []recipe.Candidate {
		best := newBestList(cfg.TopK)
		enumerateSplits(cfg.Step, len(subset), func(parts []float64) {
			best.add(subsetCandidate(target, pigs, subset, parts))
		})
		return best.items
	})
}

// enumerateSplits generates every split (p1, ..., pn) with each leading
// component a multiple of step, the last component derived as the remainder,
// and the whole summing exactly to 100. Negative derived remainders are
// discarded. The parts slice passed to emit is reused between calls.
func enumerateSplits(step float64, n int, emit func(parts []float64)) {
	parts := make([]float64, n)
	var walk func(i int, remaining float64)
	walk = func(i int, remaining float64) {
		if i == n-1 {
			if remaining < 0 {
				return
			}
			parts[i] = remaining
			emit(parts)
			return
		}
		for p := 0.0; p <= remaining+splitEps; p += step {
			if p > remaining {
				p = remaining
			}
			parts[i] = p
			walk(i+1, remaining-p)
			if p == remaining {
				break
			}
		}
	}
	walk(0, 100)
}

// enumerateSubsets returns every unordered subset of the given palette
// indices with the requested size.
func enumerateSubsets(idxs []int, size int) [][]int {
	positions := combin.Combinations(len(idxs), size)
	subsets := make([][]int, len(positions))
	for i, pos := range positions {
		subset := make([]int, size)
		for j, p := range pos {
			subset[j] = idxs[p]
		}
		subsets[i] = subset
	}
	return subsets
}

// nearestIndices returns palette indices eligible for subset enumeration.
// When m is positive and smaller than the palette, only the m pigments
// individually closest to the target are kept, in palette order. This bounds
// cost to C(m, size) at the risk of missing a pigment that is far from the
// target on its own but synergistic in combination.
func nearestIndices(target colour.RGB, pigs []pigment.Pigment, m int) []int {
	idxs := make([]int, len(pigs))
	for i := range pigs {
		idxs[i] = i
	}
	if m <= 0 || m >= len(pigs) {
		return idxs
	}

	dist := make([]float64, len(pigs))
	for i, pig := range pigs {
		dist[i] = colour.Distance(pig.Colour, target)
	}
	sort.SliceStable(idxs, func(a, b int) bool {
		return dist[idxs[a]] < dist[idxs[b]]
	})
	idxs = idxs[:m]
	sort.Ints(idxs)
	return idxs
}
