package search

import (
	"fmt"
	"runtime"

	"github.com/hashicorp/go-hclog"
)

// Strategy selects the search algorithm.
type Strategy string

const (
	// StrategyGrid enumerates discretized percentage splits over fixed-size
	// pigment subsets.
	StrategyGrid Strategy = "grid"

	// StrategyOptimize solves each pigment subset exactly with a constrained
	// least-squares minimizer on the weight simplex.
	StrategyOptimize Strategy = "optimize"

	// StrategyRandom samples random points on the weight simplex for each
	// subset, as a cheaper approximation of StrategyOptimize.
	StrategyRandom Strategy = "random"
)

// Defaults applied by Config.withDefaults.
const (
	DefaultStep                = 5.0
	DefaultTopK                = 3
	DefaultSubsetSize          = 3
	DefaultExactMatchThreshold = 5.0
	DefaultSamples             = 200
)

// Config controls a recipe search. The zero value plus a strategy is usable;
// unset fields take the documented defaults.
type Config struct {
	// Strategy selects the algorithm. Default: StrategyGrid.
	Strategy Strategy

	// SubsetSize is the pigment count per recipe for the grid and random
	// strategies. Default: 3.
	SubsetSize int

	// SubsetSizes lists the pigment counts tried by the optimize strategy.
	// Default: [3, 4, 5].
	SubsetSizes []int

	// Step is the percentage grid increment for the grid strategy. Valid
	// range (0, 100]; values in [4, 10] keep runtime tractable for palettes
	// of tens of pigments. Default: 5.
	Step float64

	// TopK is the number of distinct recipes to return. Default: 3.
	TopK int

	// ExactMatchThreshold is the direct distance below which a single
	// pigment is emitted as an immediate 100% candidate. Default: 5.
	ExactMatchThreshold float64

	// NearestM, when positive, restricts subset enumeration to the M
	// pigments individually closest to the target. This bounds cost to
	// C(M, size) but can miss recipes built from individually-distant
	// pigments that combine well.
	NearestM int

	// Samples is the number of simplex points drawn per subset by the
	// random strategy. Default: 200.
	Samples int

	// Seed makes the random strategy deterministic. Zero is a valid seed.
	Seed int64

	// Workers bounds the subset-evaluation worker pool. Default: NumCPU.
	Workers int

	// Logger receives debug-level search progress. Default: a disabled
	// logger.
	Logger hclog.Logger
}

// withDefaults returns a copy of the config with unset fields filled in.
func (c Config) withDefaults() Config {
	if c.Strategy == "" {
		c.Strategy = StrategyGrid
	}
	if c.SubsetSize == 0 {
		c.SubsetSize = DefaultSubsetSize
	}
	if len(c.SubsetSizes) == 0 {
		c.SubsetSizes = []int{3, 4, 5}
	}
	if c.Step == 0 {
		c.Step = DefaultStep
	}
	if c.TopK == 0 {
		c.TopK = DefaultTopK
	}
	if c.ExactMatchThreshold == 0 {
		c.ExactMatchThreshold = DefaultExactMatchThreshold
	}
	if c.Samples == 0 {
		c.Samples = DefaultSamples
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
	if c.Logger == nil {
		c.Logger = hclog.NewNullLogger()
	}
	return c
}

// validate rejects unusable configurations. Called after withDefaults.
func (c Config) validate() error {
	switch c.Strategy {
	case StrategyGrid, StrategyOptimize, StrategyRandom:
	default:
		return fmt.Errorf("%w: unknown strategy %q", ErrInvalidConfiguration, c.Strategy)
	}
	if c.TopK < 1 {
		return fmt.Errorf("%w: topK must be at least 1, got %d", ErrInvalidConfiguration, c.TopK)
	}
	if c.ExactMatchThreshold < 0 {
		return fmt.Errorf("%w: exact match threshold must not be negative, got %v", ErrInvalidConfiguration, c.ExactMatchThreshold)
	}
	switch c.Strategy {
	case StrategyGrid:
		if c.Step <= 0 || c.Step > 100 {
			return fmt.Errorf("%w: step must be in (0, 100], got %v", ErrInvalidConfiguration, c.Step)
		}
		if c.SubsetSize < 1 {
			return fmt.Errorf("%w: subset size must be at least 1, got %d", ErrInvalidConfiguration, c.SubsetSize)
		}
	case StrategyRandom:
		if c.SubsetSize < 1 {
			return fmt.Errorf("%w: subset size must be at least 1, got %d", ErrInvalidConfiguration, c.SubsetSize)
		}
		if c.Samples < 1 {
			return fmt.Errorf("%w: samples must be at least 1, got %d", ErrInvalidConfiguration, c.Samples)
		}
	case StrategyOptimize:
		for _, size := range c.SubsetSizes {
			if size < 1 {
				return fmt.Errorf("%w: subset size must be at least 1, got %d", ErrInvalidConfiguration, size)
			}
		}
	}
	if c.NearestM < 0 {
		return fmt.Errorf("%w: nearestM must not be negative, got %d", ErrInvalidConfiguration, c.NearestM)
	}
	if c.NearestM > 0 && c.NearestM < c.minSubsetSize() {
		return fmt.Errorf("%w: nearestM %d is smaller than the subset size %d", ErrInvalidConfiguration, c.NearestM, c.minSubsetSize())
	}
	return nil
}

// minSubsetSize returns the smallest subset size the configured strategy
// will enumerate.
func (c Config) minSubsetSize() int {
	if c.Strategy != StrategyOptimize {
		return c.SubsetSize
	}
	minSize := c.SubsetSizes[0]
	for _, s := range c.SubsetSizes[1:] {
		if s < minSize {
			minSize = s
		}
	}
	return minSize
}
