package search

import (
	"math"
	"math/rand"

	"github.com/mixtint/mixtint/internal/colour"
	"github.com/mixtint/mixtint/internal/pigment"
	"github.com/mixtint/mixtint/internal/recipe"
)

// randomSearch draws cfg.Samples uniform points on the weight simplex for
// every pigment subset and keeps the best cfg.TopK per subset. It is a
// cheaper, approximate stand-in for the exact optimizer. Each subset seeds
// its own generator from cfg.Seed and the subset's indices, so results are
// deterministic for a given seed regardless of worker scheduling.
func randomSearch(target colour.RGB, pigs []pigment.Pigment, cfg Config) []recipe.Candidate {
	idxs := nearestIndices(target, pigs, cfg.NearestM)
	if cfg.SubsetSize > len(idxs) {
		return nil
	}
	subsets := enumerateSubsets(idxs, cfg.SubsetSize)
	cfg.Logger.Debug("random sampling",
		"subsets", len(subsets), "samples", cfg.Samples, "seed", cfg.Seed)

	return forEachSubset(cfg.Workers, subsets, func(subset []int) []recipe.Candidate {
		rng := rand.New(rand.NewSource(subsetSeed(cfg.Seed, subset)))
		best := newBestList(cfg.TopK)
		parts := make([]float64, len(subset))
		for s := 0; s < cfg.Samples; s++ {
			samplePercentages(rng, parts)
			best.add(subsetCandidate(target, pigs, subset, parts))
		}
		return best.items
	})
}

// samplePercentages fills parts with a uniform point on the simplex scaled
// to percentages, via normalized exponential draws.
func samplePercentages(rng *rand.Rand, parts []float64) {
	total := 0.0
	for i := range parts {
		// -ln(U) with U in (0, 1]; 1-Float64() avoids ln(0).
		parts[i] = -math.Log(1 - rng.Float64())
		total += parts[i]
	}
	for i := range parts {
		parts[i] = parts[i] / total * 100
	}
}

// subsetSeed derives a per-subset seed from the configured seed and the
// subset's palette indices.
func subsetSeed(seed int64, subset []int) int64 {
	h := seed
	for _, idx := range subset {
		h = h*1000003 + int64(idx) + 1
	}
	return h
}
