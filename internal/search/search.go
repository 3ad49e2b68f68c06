// Package search implements the recipe search engine: given a target colour
// and a pigment palette it produces a ranked, deduplicated set of mixing
// recipes under a linear (weighted-average) mixing model.
//
// Three strategies solve the same problem at different fidelity/cost
// trade-offs: exhaustive grid enumeration, exact per-subset constrained
// least squares, and random simplex sampling. All share the exact-match
// pre-pass, the candidate shape, and the ranking step.
package search

import (
	"errors"
	"fmt"
	"time"

	"github.com/mixtint/mixtint/internal/colour"
	"github.com/mixtint/mixtint/internal/pigment"
	"github.com/mixtint/mixtint/internal/recipe"
)

// Generate runs a recipe search and returns up to cfg.TopK distinct recipes
// sorted ascending by error. The palette is read-only during the search. An
// empty result is not an error; the caller distinguishes "no recipes" from
// a failed search by the returned error.
func Generate(target colour.RGB, palette *pigment.Palette, cfg Config) (recipe.RecipeSet, error) {
	cfg = cfg.withDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if palette.Len() < cfg.minSubsetSize() {
		return nil, fmt.Errorf("%w: %d pigments cannot fill a subset of %d",
			ErrInvalidPalette, palette.Len(), cfg.minSubsetSize())
	}

	pigs := palette.Pigments()
	log := cfg.Logger

	start := time.Now()
	log.Debug("starting recipe search",
		"strategy", cfg.Strategy, "pigments", len(pigs), "target", target.Hex())

	// Exact-match pre-pass: a pigment already within the threshold of the
	// target becomes an immediate 100% candidate regardless of strategy.
	// Ranking dedup collapses it with any equivalent candidate the main
	// search produces (e.g. a grid 100/0/0 split).
	candidates := exactMatches(target, pigs, cfg.ExactMatchThreshold)
	if len(candidates) > 0 {
		log.Debug("exact matches found", "count", len(candidates))
	}

	var (
		found []recipe.Candidate
		err   error
	)
	switch cfg.Strategy {
	case StrategyGrid:
		found = gridSearch(target, pigs, cfg)
	case StrategyOptimize:
		found, err = optimizeSearch(target, pigs, cfg)
	case StrategyRandom:
		found = randomSearch(target, pigs, cfg)
	}
	if err != nil {
		// An exact match from the pre-pass is still a usable answer even
		// when every optimizer subset failed.
		if !errors.Is(err, ErrNoFeasibleRecipe) || len(candidates) == 0 {
			return nil, err
		}
	}
	candidates = append(candidates, found...)

	result := recipe.Rank(candidates, cfg.TopK)
	log.Debug("search complete",
		"candidates", len(candidates), "recipes", len(result), "elapsed", time.Since(start))
	return result, nil
}

// exactMatches emits a 100%-single-pigment candidate for every pigment whose
// direct distance to the target is below the threshold. This guarantees
// near-exact matches are surfaced even when a grid step would skip them, and
// short-circuits the trivial case for the other strategies.
func exactMatches(target colour.RGB, pigs []pigment.Pigment, threshold float64) []recipe.Candidate {
	var out []recipe.Candidate
	for _, pig := range pigs {
		d := colour.Distance(pig.Colour, target)
		if d < threshold {
			out = append(out, recipe.Candidate{
				Recipe: recipe.Recipe{Components: []recipe.Component{
					{Name: pig.Name, Percentage: 100},
				}},
				Mixed: pig.Colour,
				Error: d,
			})
		}
	}
	return out
}

// subsetCandidate scores one weighted pigment subset against the target.
// Weights are percentages; error is computed against the unrounded mix.
func subsetCandidate(target colour.RGB, pigs []pigment.Pigment, subset []int, percentages []float64) recipe.Candidate {
	colours := make([]colour.RGB, len(subset))
	components := make([]recipe.Component, len(subset))
	for i, idx := range subset {
		colours[i] = pigs[idx].Colour
		components[i] = recipe.Component{Name: pigs[idx].Name, Percentage: percentages[i]}
	}
	mixed := colour.Mix(colours, percentages)
	return recipe.Candidate{
		Recipe: recipe.Recipe{Components: components},
		Mixed:  mixed.Round(),
		Error:  mixed.DistanceTo(target),
	}
}
