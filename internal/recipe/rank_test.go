package recipe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mixtint/mixtint/internal/colour"
)

func candidate(err float64, comps ...Component) Candidate {
	return Candidate{
		Recipe: Recipe{Components: comps},
		Mixed:  colour.RGB{},
		Error:  err,
	}
}

func TestRankSortsAscending(t *testing.T) {
	in := []Candidate{
		candidate(5, Component{Name: "A", Percentage: 100}),
		candidate(1, Component{Name: "B", Percentage: 100}),
		candidate(3, Component{Name: "C", Percentage: 100}),
	}

	got := Rank(in, 10)
	require.Len(t, got, 3)
	assert.Equal(t, "B", got[0].Recipe.Components[0].Name)
	assert.Equal(t, "C", got[1].Recipe.Components[0].Name)
	assert.Equal(t, "A", got[2].Recipe.Components[0].Name)
	for i := 1; i < len(got); i++ {
		assert.LessOrEqual(t, got[i-1].Error, got[i].Error)
	}
}

func TestRankStableOnTies(t *testing.T) {
	in := []Candidate{
		candidate(2, Component{Name: "First", Percentage: 100}),
		candidate(2, Component{Name: "Second", Percentage: 100}),
	}

	got := Rank(in, 2)
	require.Len(t, got, 2)
	assert.Equal(t, "First", got[0].Recipe.Components[0].Name)
	assert.Equal(t, "Second", got[1].Recipe.Components[0].Name)
}

func TestRankDeduplicates(t *testing.T) {
	// Same identity in different component order and with a zero-weight
	// padding component: all three collapse into one entry.
	in := []Candidate{
		candidate(1,
			Component{Name: "A", Percentage: 50},
			Component{Name: "B", Percentage: 50},
		),
		candidate(1,
			Component{Name: "B", Percentage: 50},
			Component{Name: "A", Percentage: 50},
		),
		candidate(1,
			Component{Name: "A", Percentage: 50},
			Component{Name: "B", Percentage: 50},
			Component{Name: "C", Percentage: 0},
		),
		// Same pigments at a different split stay distinct.
		candidate(2,
			Component{Name: "A", Percentage: 25},
			Component{Name: "B", Percentage: 75},
		),
	}

	got := Rank(in, 10)
	require.Len(t, got, 2)
	assert.InDelta(t, 1, got[0].Error, 1e-12)
	assert.InDelta(t, 2, got[1].Error, 1e-12)
}

func TestRankStripsZeroComponents(t *testing.T) {
	in := []Candidate{
		candidate(0,
			Component{Name: "A", Percentage: 100},
			Component{Name: "B", Percentage: 0},
			Component{Name: "C", Percentage: 0},
		),
	}

	got := Rank(in, 1)
	require.Len(t, got, 1)
	require.Len(t, got[0].Recipe.Components, 1)
	assert.Equal(t, "A", got[0].Recipe.Components[0].Name)
	assert.InDelta(t, 100, got[0].Recipe.Total(), 1e-9)
}

func TestRankTopKCut(t *testing.T) {
	var in []Candidate
	for i := 0; i < 10; i++ {
		in = append(in, candidate(float64(i),
			Component{Name: string(rune('A' + i)), Percentage: 100}))
	}

	got := Rank(in, 3)
	assert.Len(t, got, 3)
	assert.InDelta(t, 0, got[0].Error, 1e-12)
	assert.InDelta(t, 2, got[2].Error, 1e-12)
}

func TestRankFewerThanTopK(t *testing.T) {
	in := []Candidate{candidate(1, Component{Name: "A", Percentage: 100})}
	got := Rank(in, 5)
	assert.Len(t, got, 1)
}

func TestRankEmptyInput(t *testing.T) {
	got := Rank(nil, 3)
	assert.Empty(t, got)
}

func TestRecipeString(t *testing.T) {
	r := Recipe{Components: []Component{
		{Name: "Red", Percentage: 62.5},
		{Name: "Blue", Percentage: 37.5},
	}}
	assert.Equal(t, "Red 62.5% + Blue 37.5%", r.String())
}
