package modes

import (
	"github.com/katalvlaran/zernigo/osa"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/combin"
)

// Radial evaluates the classical Zernike radial polynomial R_n^{|m|} over a
// matrix of radii:
//
//	R_n^{|m|}(ρ) = Σ_{k=0}^{(n−|m|)/2} (−1)^k · C(n−k, k) · C(n−2k, (n−|m|)/2 − k) · ρ^{n−2k}
//
// The sign of m does not affect the radial part. R_n^{|m|}(1) = 1 for every
// valid pair. Radii are expected in [0,1]; values outside are still defined
// and left to the caller's mask.
//
// Implementation: all powers n−2k share the parity of |m|, so the sum is
// evaluated as ρ^{|m|} · P(ρ²) with P in Horner form — one coefficient pass
// up front, then O(n) work per element over the whole matrix. Coefficients
// use exact integer binomials.
//
// Errors: osa.ErrInvalidPair for n < 0 or |m| > n; ErrIndexParity for odd
// n−|m| (unreachable through osa.ToNM); ErrNilGrid for a nil matrix.
// Complexity: O(n + size²·n).
func Radial(n, m int, rho *mat.Dense) (*mat.Dense, error) {
	if rho == nil {
		return nil, ErrNilGrid
	}
	am := m
	if am < 0 {
		am = -am
	}
	if n < 0 || am > n {
		return nil, osa.ErrInvalidPair
	}
	if (n-am)%2 != 0 {
		return nil, ErrIndexParity
	}

	// coeffs[i] multiplies ρ^(|m|+2i); i = (n−|m|)/2 − k.
	half := (n - am) / 2
	coeffs := make([]float64, half+1)
	for k := 0; k <= half; k++ {
		c := float64(combin.Binomial(n-k, k) * combin.Binomial(n-2*k, half-k))
		if k%2 == 1 {
			c = -c
		}
		coeffs[half-k] = c
	}

	r, c := rho.Dims()
	out := mat.NewDense(r, c, nil)
	out.Apply(func(_, _ int, v float64) float64 {
		t := v * v
		p := coeffs[half]
		for i := half - 1; i >= 0; i-- {
			p = p*t + coeffs[i]
		}

		return p * powi(v, am)
	}, rho)

	return out, nil
}

// powi computes x^p for p ≥ 0 by exponentiation-by-squaring.
func powi(x float64, p int) float64 {
	out := 1.0
	for p > 0 {
		if p&1 == 1 {
			out *= x
		}
		x *= x
		p >>= 1
	}

	return out
}
