package search

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/mixtint/mixtint/internal/colour"
)

const (
	solverMaxIter = 5000
	solverTol     = 1e-10
)

// solveSimplex minimizes ||A·w - t|| over the probability simplex
// (w_i >= 0, sum w_i = 1), where the columns of A are the subset's pigment
// colours and t is the target. The problem is a convex quadratic program;
// projected gradient descent with exact Euclidean projection onto the
// simplex converges from the uniform starting point. Channels are scaled to
// [0, 1] so the gradient Lipschitz bound stays small.
//
// Returns the optimal weights and whether the solve converged. A solve that
// exhausts its iteration budget or goes non-finite reports ok=false and the
// subset is skipped by the caller.
func solveSimplex(target colour.RGB, colours []colour.RGB) (weights []float64, ok bool) {
	n := len(colours)
	if n == 0 {
		return nil, false
	}

	a := mat.NewDense(3, n, nil)
	for j, c := range colours {
		a.Set(0, j, float64(c.R)/255)
		a.Set(1, j, float64(c.G)/255)
		a.Set(2, j, float64(c.B)/255)
	}
	t := mat.NewVecDense(3, []float64{
		float64(target.R) / 255,
		float64(target.G) / 255,
		float64(target.B) / 255,
	})

	// Step size 1/L with L = 2·||A||_F^2, an upper bound on the gradient's
	// Lipschitz constant 2·λmax(AᵀA).
	lipschitz := 2 * mat.Norm(a, 2) * mat.Norm(a, 2)
	if lipschitz == 0 {
		// All-black subset against a black target is already optimal at any
		// feasible point; anything else cannot improve either.
		w := make([]float64, n)
		for i := range w {
			w[i] = 1 / float64(n)
		}
		return w, true
	}
	step := 1 / lipschitz

	w := mat.NewVecDense(n, nil)
	for i := 0; i < n; i++ {
		w.SetVec(i, 1/float64(n))
	}

	var residual, grad mat.VecDense
	next := make([]float64, n)
	for iter := 0; iter < solverMaxIter; iter++ {
		// grad = 2·Aᵀ(A·w - t)
		residual.MulVec(a, w)
		residual.SubVec(&residual, t)
		grad.MulVec(a.T(), &residual)
		grad.ScaleVec(2, &grad)

		copy(next, w.RawVector().Data)
		floats.AddScaled(next, -step, grad.RawVector().Data)
		projectSimplex(next)

		moved := 0.0
		for i, v := range next {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, false
			}
			d := v - w.AtVec(i)
			moved += d * d
			w.SetVec(i, v)
		}
		if moved < solverTol {
			return append([]float64(nil), next...), true
		}
	}
	return nil, false
}

// projectSimplex replaces v with its Euclidean projection onto the
// probability simplex, using the sort-based algorithm of Duchi et al.
func projectSimplex(v []float64) {
	n := len(v)
	u := append([]float64(nil), v...)
	sort.Sort(sort.Reverse(sort.Float64Slice(u)))

	var theta, cum float64
	for i := 0; i < n; i++ {
		cum += u[i]
		if t := (cum - 1) / float64(i+1); u[i]-t > 0 {
			theta = t
		}
	}
	for i := range v {
		v[i] = math.Max(v[i]-theta, 0)
	}
}
