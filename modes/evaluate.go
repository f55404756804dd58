package modes

import (
	"math"

	"github.com/katalvlaran/zernigo/mesh"
	"gonum.org/v1/gonum/mat"
)

// Evaluate computes one full Zernike mode over a sampling grid:
//
//	Z_n^m = N_n^m · R_n^{|m|}(ρ) · angular(m, θ)
//
// where angular is cos(mθ) for m ≥ 0 and sin(|m|θ) for m < 0, and N_n^m is
// the orthonormal OSA scaling: √(2(n+1)) for m ≠ 0, √(n+1) for m = 0.
// Unnormalized variants exist in the literature; this package always applies
// the orthonormal constant so different modes are comparably sized.
//
// The result is masked to the unit disk: samples with ρ > 1 are zero.
// The grid is read-only and shared; the returned matrix is freshly
// allocated.
//
// Errors: ErrNilGrid for a nil grid; otherwise those of Radial.
// Complexity: O(size²·n).
func Evaluate(n, m int, g *mesh.Grid) (*mat.Dense, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	rad, err := Radial(n, m, g.Rho)
	if err != nil {
		return nil, err
	}

	am := m
	if am < 0 {
		am = -am
	}
	norm := math.Sqrt(float64(n + 1))
	if m != 0 {
		norm = math.Sqrt(2 * float64(n+1))
	}
	freq := float64(am)

	out := rad // rad is freshly allocated by Radial; reuse it in place
	out.Apply(func(r, c int, v float64) float64 {
		th := g.Theta.At(r, c)
		if m >= 0 {
			return norm * v * math.Cos(freq*th)
		}

		return norm * v * math.Sin(freq*th)
	}, rad)
	out.MulElem(out, g.Mask)

	return out, nil
}
