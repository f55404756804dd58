package modes_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/zernigo/mesh"
	"github.com/katalvlaran/zernigo/modes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestEvaluate_PistonConstant verifies Z_0^0 ≡ 1 inside the unit disk and
// 0 outside — the m=0 scaling is √(0+1) = 1.
func TestEvaluate_PistonConstant(t *testing.T) {
	g, err := mesh.New(64)
	require.NoError(t, err)
	z, err := modes.Evaluate(0, 0, g)
	require.NoError(t, err)

	for r := 0; r < g.Size; r++ {
		for c := 0; c < g.Size; c++ {
			if g.InDisk(r, c) {
				assert.Equal(t, 1.0, z.At(r, c), "piston inside disk at (%d,%d)", r, c)
			} else {
				assert.Zero(t, z.At(r, c), "piston outside disk at (%d,%d)", r, c)
			}
		}
	}
}

// TestEvaluate_DefocusCenter verifies the defocus mode (n=2, m=0) at the
// grid center: √3 · (2·0² − 1) = −√3.
func TestEvaluate_DefocusCenter(t *testing.T) {
	g, err := mesh.New(33)
	require.NoError(t, err)
	z, err := modes.Evaluate(2, 0, g)
	require.NoError(t, err)
	assert.InDelta(t, -math.Sqrt(3), z.At(16, 16), 1e-12)
}

// TestEvaluate_TiltPlanes verifies the two tilt modes are scaled Cartesian
// coordinates inside the disk: Z_1^{−1} = 2y (sine term), Z_1^{1} = 2x
// (cosine term).
func TestEvaluate_TiltPlanes(t *testing.T) {
	g, err := mesh.New(5) // axis: -1, -0.5, 0, 0.5, 1
	require.NoError(t, err)

	vert, err := modes.Evaluate(1, -1, g)
	require.NoError(t, err)
	horiz, err := modes.Evaluate(1, 1, g)
	require.NoError(t, err)

	// Sample (r=3, c=2) is (x, y) = (0, 0.5), inside the disk.
	assert.InDelta(t, 1.0, vert.At(3, 2), 1e-12, "vertical tilt = 2y")
	assert.InDelta(t, 0.0, horiz.At(3, 2), 1e-12, "horizontal tilt = 2x")

	// Sample (r=2, c=1) is (x, y) = (-0.5, 0).
	assert.InDelta(t, 0.0, vert.At(2, 1), 1e-12)
	assert.InDelta(t, -1.0, horiz.At(2, 1), 1e-12)
}

// TestEvaluate_MaskedOutside verifies every sample with ρ > 1 is zero for a
// high-order mode.
func TestEvaluate_MaskedOutside(t *testing.T) {
	g, err := mesh.New(48)
	require.NoError(t, err)
	z, err := modes.Evaluate(4, -2, g)
	require.NoError(t, err)
	for r := 0; r < g.Size; r++ {
		for c := 0; c < g.Size; c++ {
			if !g.InDisk(r, c) {
				assert.Zero(t, z.At(r, c), "masked sample at (%d,%d)", r, c)
			}
		}
	}
}

// TestEvaluate_NilGrid verifies the nil-grid guard.
func TestEvaluate_NilGrid(t *testing.T) {
	_, err := modes.Evaluate(2, 0, nil)
	assert.ErrorIs(t, err, modes.ErrNilGrid)
}

// TestEvaluate_ParityPropagates verifies malformed direct pairs surface
// ErrIndexParity through Evaluate.
func TestEvaluate_ParityPropagates(t *testing.T) {
	g, err := mesh.New(8)
	require.NoError(t, err)
	_, err = modes.Evaluate(3, 0, g)
	assert.ErrorIs(t, err, modes.ErrIndexParity)
}
