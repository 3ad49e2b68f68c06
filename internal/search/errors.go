package search

import "errors"

var (
	// ErrInvalidConfiguration indicates an unusable Config (non-positive
	// step, subset size below one, topK below one, unknown strategy). It is
	// returned before any search work begins.
	ErrInvalidConfiguration = errors.New("invalid configuration")

	// ErrInvalidPalette indicates the palette cannot support the requested
	// search, e.g. it holds fewer pigments than the subset size.
	ErrInvalidPalette = errors.New("invalid palette")

	// ErrNoFeasibleRecipe indicates that every subset solve failed. A clean
	// run that simply finds nothing returns an empty RecipeSet instead.
	ErrNoFeasibleRecipe = errors.New("no feasible recipe")
)
