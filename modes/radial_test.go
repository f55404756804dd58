package modes_test

import (
	"testing"

	"github.com/katalvlaran/zernigo/modes"
	"github.com/katalvlaran/zernigo/osa"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

// TestRadial_RimNormalization verifies the classical property
// R_n^{|m|}(1) == 1 for every valid pair up to degree 8.
func TestRadial_RimNormalization(t *testing.T) {
	rim := mat.NewDense(1, 1, []float64{1})
	for n := 0; n <= 8; n++ {
		for m := -n; m <= n; m += 2 {
			out, err := modes.Radial(n, m, rim)
			require.NoError(t, err, "Radial(%d, %d)", n, m)
			assert.InDelta(t, 1.0, out.At(0, 0), 1e-12, "R_%d^%d(1)", n, m)
		}
	}
}

// TestRadial_Piston verifies R_0^0 is the constant 1 for any radius.
func TestRadial_Piston(t *testing.T) {
	rho := mat.NewDense(1, 4, []float64{0, 0.3, 0.9, 1})
	out, err := modes.Radial(0, 0, rho)
	require.NoError(t, err)
	for c := 0; c < 4; c++ {
		assert.Equal(t, 1.0, out.At(0, c), "piston at column %d", c)
	}
}

// TestRadial_KnownPolynomials pins low-order closed forms:
// R_2^0 = 2ρ²−1, R_3^1 = 3ρ³−2ρ, R_4^0 = 6ρ⁴−6ρ²+1.
func TestRadial_KnownPolynomials(t *testing.T) {
	samples := []float64{0, 0.25, 0.5, 0.75, 1}
	rho := mat.NewDense(1, len(samples), samples)

	cases := []struct {
		n, m int
		f    func(r float64) float64
	}{
		{2, 0, func(r float64) float64 { return 2*r*r - 1 }},
		{3, 1, func(r float64) float64 { return 3*r*r*r - 2*r }},
		{4, 0, func(r float64) float64 { return 6*r*r*r*r - 6*r*r + 1 }},
	}
	for _, tc := range cases {
		out, err := modes.Radial(tc.n, tc.m, rho)
		require.NoError(t, err, "Radial(%d, %d)", tc.n, tc.m)
		for c, r := range samples {
			assert.InDelta(t, tc.f(r), out.At(0, c), 1e-12, "R_%d^%d(%g)", tc.n, tc.m, r)
		}
	}
}

// TestRadial_SignOfMIrrelevant verifies the radial part depends on |m| only.
func TestRadial_SignOfMIrrelevant(t *testing.T) {
	rho := mat.NewDense(1, 3, []float64{0.2, 0.6, 0.95})
	pos, err := modes.Radial(3, 1, rho)
	require.NoError(t, err)
	neg, err := modes.Radial(3, -1, rho)
	require.NoError(t, err)
	assert.True(t, mat.Equal(pos, neg), "R_n^m must equal R_n^{−m}")
}

// TestRadial_ParityViolation verifies odd n−|m| fails with ErrIndexParity.
func TestRadial_ParityViolation(t *testing.T) {
	rho := mat.NewDense(1, 1, []float64{0.5})
	for _, nm := range [][2]int{{3, 0}, {2, 1}, {5, -2}} {
		_, err := modes.Radial(nm[0], nm[1], rho)
		assert.ErrorIs(t, err, modes.ErrIndexParity, "Radial(%d, %d)", nm[0], nm[1])
	}
}

// TestRadial_InvalidPair verifies out-of-domain pairs fail with
// osa.ErrInvalidPair before any evaluation.
func TestRadial_InvalidPair(t *testing.T) {
	rho := mat.NewDense(1, 1, []float64{0.5})
	for _, nm := range [][2]int{{-1, 0}, {2, 3}, {1, -2}} {
		_, err := modes.Radial(nm[0], nm[1], rho)
		assert.ErrorIs(t, err, osa.ErrInvalidPair, "Radial(%d, %d)", nm[0], nm[1])
	}
}

// TestRadial_NilMatrix verifies the nil-input guard.
func TestRadial_NilMatrix(t *testing.T) {
	_, err := modes.Radial(2, 0, nil)
	assert.ErrorIs(t, err, modes.ErrNilGrid)
}
