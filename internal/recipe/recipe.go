// Package recipe defines mixing recipes and the ranking/deduplication step
// that turns raw search candidates into the final result set.
package recipe

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/mixtint/mixtint/internal/colour"
)

// Component is one pigment's share of a recipe. Percentage is in [0, 100].
type Component struct {
	Name       string  `json:"name"`
	Percentage float64 `json:"percentage"`
}

// Recipe is an ordered list of components whose percentages sum to 100.
type Recipe struct {
	Components []Component `json:"components"`
}

// Total returns the sum of all component percentages.
func (r Recipe) Total() float64 {
	var sum float64
	for _, c := range r.Components {
		sum += c.Percentage
	}
	return sum
}

// String renders the recipe as "Name 50.0% + Name 25.0% + ...".
func (r Recipe) String() string {
	parts := make([]string, len(r.Components))
	for i, c := range r.Components {
		parts[i] = fmt.Sprintf("%s %.1f%%", c.Name, c.Percentage)
	}
	return strings.Join(parts, " + ")
}

// stripZero returns the recipe without zero-percentage components. Zero
// components may appear during search (a grid split like 100/0/0) but do not
// affect recipe identity and are dropped from final output.
func (r Recipe) stripZero() Recipe {
	out := Recipe{Components: make([]Component, 0, len(r.Components))}
	for _, c := range r.Components {
		if c.Percentage > 0 {
			out.Components = append(out.Components, c)
		}
	}
	return out
}

// identity returns a canonical key for deduplication: the unordered set of
// (name, percentage) pairs with percentage > 0. Two recipes with the same
// pigments at different splits have different identities.
func (r Recipe) identity() string {
	parts := make([]string, 0, len(r.Components))
	for _, c := range r.Components {
		if c.Percentage > 0 {
			parts = append(parts, c.Name+"="+strconv.FormatFloat(c.Percentage, 'f', 6, 64))
		}
	}
	sort.Strings(parts)
	return strings.Join(parts, "|")
}

// Candidate pairs a recipe with its computed mix and error. Error is the
// Euclidean distance between the unrounded mix and the target colour; Mixed
// is the rounded, displayable result.
type Candidate struct {
	Recipe Recipe     `json:"recipe"`
	Mixed  colour.RGB `json:"mixed"`
	Error  float64    `json:"error"`
}

// RecipeSet is the final ranked result: up to K candidates sorted ascending
// by error, pairwise distinct by recipe identity.
type RecipeSet []Candidate
