// Package pigment provides the immutable pigment catalogue consumed by the
// recipe search engine. A Palette is built once by an ingestion step and is
// read-only afterwards; edits produce a new Palette value.
package pigment

import (
	"fmt"

	"github.com/mixtint/mixtint/internal/colour"
)

// Pigment is a named base colour used as a mixing ingredient. Density is an
// optional physical attribute carried through to output; it never enters the
// error metric. Zero means unspecified.
type Pigment struct {
	Name    string     `json:"name"`
	Colour  colour.RGB `json:"rgb"`
	Density float64    `json:"density,omitempty"`
}

// Palette is an immutable collection of pigments with unique names.
type Palette struct {
	pigments []Pigment
	index    map[string]int
}

// NewPalette builds a palette from the given pigments. Pigment names must be
// non-empty and unique; density, when given, must be positive.
func NewPalette(pigments []Pigment) (*Palette, error) {
	p := &Palette{
		pigments: make([]Pigment, len(pigments)),
		index:    make(map[string]int, len(pigments)),
	}
	copy(p.pigments, pigments)
	for i, pig := range p.pigments {
		if pig.Name == "" {
			return nil, fmt.Errorf("pigment %d has an empty name", i)
		}
		if _, dup := p.index[pig.Name]; dup {
			return nil, fmt.Errorf("duplicate pigment name %q", pig.Name)
		}
		if pig.Density < 0 {
			return nil, fmt.Errorf("pigment %q has negative density %v", pig.Name, pig.Density)
		}
		p.index[pig.Name] = i
	}
	return p, nil
}

// Len returns the number of pigments in the palette.
func (p *Palette) Len() int {
	return len(p.pigments)
}

// At returns the pigment at the given index.
func (p *Palette) At(i int) Pigment {
	return p.pigments[i]
}

// Get returns the pigment with the given name.
func (p *Palette) Get(name string) (Pigment, bool) {
	i, ok := p.index[name]
	if !ok {
		return Pigment{}, false
	}
	return p.pigments[i], true
}

// Pigments returns a copy of the pigment list in palette order.
func (p *Palette) Pigments() []Pigment {
	out := make([]Pigment, len(p.pigments))
	copy(out, p.pigments)
	return out
}

// With returns a new palette extended by the given pigments. The receiver is
// not modified.
func (p *Palette) With(extra ...Pigment) (*Palette, error) {
	merged := make([]Pigment, 0, len(p.pigments)+len(extra))
	merged = append(merged, p.pigments...)
	merged = append(merged, extra...)
	return NewPalette(merged)
}
