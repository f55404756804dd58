package mesh

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// Grid is a square sampling grid over [-1,1]² in polar form.
// Size is the side length in samples; Rho, Theta and Mask are Size×Size.
// Mask holds 1 inside the unit disk (ρ ≤ 1) and 0 outside.
// A Grid is immutable once built; callers must treat its matrices as
// read-only.
type Grid struct {
	Size  int
	Rho   *mat.Dense
	Theta *mat.Dense
	Mask  *mat.Dense
}

// New builds a size×size sampling grid: both axes are inclusive linear
// spaces over [-1,1], converted to polar coordinates with the unit-disk
// mask precomputed. Row r, column c samples the point
// (x[c], y[r]) with x and y the same linspace.
//
// size == 1 degenerates to the single sample x = y = -1, which lies
// outside the disk and is therefore masked.
//
// Returns ErrBadSize for size < 1.
// Complexity: O(size²) time and memory.
func New(size int) (*Grid, error) {
	if size < 1 {
		return nil, ErrBadSize
	}
	axis := linspace(size)

	rho := mat.NewDense(size, size, nil)
	theta := mat.NewDense(size, size, nil)
	mask := mat.NewDense(size, size, nil)
	for r := 0; r < size; r++ {
		y := axis[r]
		for c := 0; c < size; c++ {
			x := axis[c]
			d := math.Hypot(x, y)
			rho.Set(r, c, d)
			theta.Set(r, c, math.Atan2(y, x))
			if d <= 1 {
				mask.Set(r, c, 1)
			}
		}
	}

	return &Grid{Size: size, Rho: rho, Theta: theta, Mask: mask}, nil
}

// InDisk reports whether sample (r, c) lies inside the unit disk.
// Complexity: O(1).
func (g *Grid) InDisk(r, c int) bool {
	return g.Mask.At(r, c) != 0
}

// linspace returns n evenly spaced samples over [-1,1], endpoints included.
// The midpoint of odd-length axes is exactly zero.
func linspace(n int) []float64 {
	out := make([]float64, n)
	if n == 1 {
		out[0] = -1

		return out
	}
	step := 2.0 / float64(n-1)
	for i := range out {
		out[i] = -1 + step*float64(i)
	}
	// Pin the center sample: accumulated step error must not shift 0.
	if n%2 == 1 {
		out[n/2] = 0
	}
	out[n-1] = 1

	return out
}
