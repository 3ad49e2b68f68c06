package colour

import "math"

// Mixed is an unrounded mixing result in RGB space. Search error is always
// computed against the unrounded mix so that ranking is monotonic and
// deterministic; Round produces the displayable 8-bit colour.
type Mixed struct {
	R, G, B float64
}

// Mix returns the weighted average of the given colours. Weights need not be
// normalized; the result is divided by the weight sum. A weight sum of zero
// yields pure white (255, 255, 255) rather than an error, which masks
// degenerate all-zero recipes - callers that care must check weights first.
func Mix(colours []RGB, weights []float64) Mixed {
	var r, g, b, total float64
	for i, c := range colours {
		w := weights[i]
		r += float64(c.R) * w
		g += float64(c.G) * w
		b += float64(c.B) * w
		total += w
	}
	if total == 0 {
		return Mixed{R: 255, G: 255, B: 255}
	}
	return Mixed{R: r / total, G: g / total, B: b / total}
}

// DistanceTo returns the Euclidean distance from the unrounded mix to the
// target colour.
func (m Mixed) DistanceTo(target RGB) float64 {
	dr := m.R - float64(target.R)
	dg := m.G - float64(target.G)
	db := m.B - float64(target.B)
	return math.Sqrt(dr*dr + dg*dg + db*db)
}

// Round converts the unrounded mix into a displayable RGB colour, rounding
// each channel to the nearest integer and clamping to [0, 255].
func (m Mixed) Round() RGB {
	return RGB{
		R: clampChannel(m.R),
		G: clampChannel(m.G),
		B: clampChannel(m.B),
	}
}

func clampChannel(v float64) uint8 {
	r := math.Round(v)
	if r < 0 {
		return 0
	}
	if r > 255 {
		return 255
	}
	return uint8(r)
}
