package modes

import (
	"fmt"
	"sort"
)

// Selection resolves a mode request into the exact list of OSA indices that
// Compute would evaluate, without touching any array:
//
//   - no selection options: just the requested mode, [M]
//   - WithAll: every mode up to and including it, [0, 1, ..., M]
//   - WithSelect: the resolved entries, deduplicated and sorted ascending;
//     each must not exceed M (M itself need not be listed)
//
// The result is always strictly ascending and duplicate-free, and never
// depends on the order selections were written in.
//
// Errors: osa.ErrNegativeIndex / osa.ErrUnknownName from reference
// resolution; ErrSelectBeyondMode, ErrEmptySelection, ErrSelectConflict.
// Complexity: O(M) for WithAll, O(k log k) for k selected entries.
func Selection(mode Ref, opts ...Option) ([]int, error) {
	o := gatherOptions(opts...)

	return resolveSelection(mode, &o)
}

// resolveSelection is the shared selector behind Selection and Compute.
func resolveSelection(mode Ref, o *options) ([]int, error) {
	top, err := mode.resolve()
	if err != nil {
		return nil, err
	}
	if o.all && o.sel != nil {
		return nil, ErrSelectConflict
	}

	switch {
	case o.all:
		out := make([]int, top+1)
		for j := range out {
			out[j] = j
		}

		return out, nil

	case o.sel != nil:
		if len(o.sel) == 0 {
			return nil, ErrEmptySelection
		}
		set := make(map[int]struct{}, len(o.sel))
		for _, ref := range o.sel {
			j, err := ref.resolve()
			if err != nil {
				return nil, err
			}
			if j > top {
				return nil, fmt.Errorf("selected mode %d exceeds requested mode %d: %w", j, top, ErrSelectBeyondMode)
			}
			set[j] = struct{}{}
		}
		out := make([]int, 0, len(set))
		for j := range set {
			out = append(out, j)
		}
		sort.Ints(out)

		return out, nil

	default:
		return []int{top}, nil
	}
}
