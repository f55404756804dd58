package modes

import (
	"fmt"

	"github.com/katalvlaran/zernigo/mesh"
	"github.com/katalvlaran/zernigo/osa"
	"gonum.org/v1/gonum/mat"
)

// Compute evaluates the requested Zernike mode(s) on a fresh sampling grid
// and returns them as a stack ordered ascending by OSA index.
//
// Steps, in order:
//  1. Validate the grid size (mesh.ErrBadSize for size < 1).
//  2. Resolve the selection (see Selection) — all argument validation
//     completes here, before any array work.
//  3. Build the size×size sampling grid once.
//  4. Evaluate every selected index ascending, masking to the unit disk.
//  5. If a renderer was attached, hand it the finished stack. Rendering is
//     strictly last and never mutates the result; on render failure the
//     fully computed stack is returned together with the wrapped error.
//
// Defaults: DefaultSize (128) and, by convention, DefaultMode() for callers
// with no preference.
//
// Example:
//
//	st, err := modes.Compute(modes.Index(14), modes.WithAll())
//	// st.Len() == 15, each layer 128×128
//
// Complexity: O(k·size²) for k selected modes.
func Compute(mode Ref, opts ...Option) (*Stack, error) {
	o := gatherOptions(opts...)
	if o.size < 1 {
		return nil, mesh.ErrBadSize
	}
	sel, err := resolveSelection(mode, &o)
	if err != nil {
		return nil, err
	}

	g, err := mesh.New(o.size)
	if err != nil {
		return nil, err
	}

	st := &Stack{
		size:    o.size,
		indices: sel,
		layers:  make([]*mat.Dense, 0, len(sel)),
	}
	for _, j := range sel {
		n, m, err := osa.ToNM(j) // sel holds non-negative indices only
		if err != nil {
			return nil, err
		}
		z, err := Evaluate(n, m, g)
		if err != nil {
			return nil, err
		}
		st.layers = append(st.layers, z)
	}

	if o.renderer != nil {
		if err = o.renderer.Render(st); err != nil {
			return st, fmt.Errorf("modes: render: %w", err)
		}
	}

	return st, nil
}
