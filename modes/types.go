// Package modes: domain types — mode references, the output stack, and the
// renderer collaborator. Options live in options.go, sentinel errors in
// errors.go, per the package conventions.
package modes

import (
	"fmt"

	"github.com/katalvlaran/zernigo/osa"
	"gonum.org/v1/gonum/mat"
)

// Ref identifies a Zernike mode either by OSA index or by canonical name.
// Build one with Index or Name; the zero Ref is Index(0) ("piston").
type Ref struct {
	index int
	name  string
	named bool
}

// Index references a mode by its OSA/ANSI index. Any non-negative index is
// valid; negatives are rejected at resolution time with osa.ErrNegativeIndex.
func Index(j int) Ref {
	return Ref{index: j}
}

// Name references a mode by its canonical name (defined for indices 0–14,
// case-insensitive). Unknown names are rejected at resolution time with
// osa.ErrUnknownName.
func Name(s string) Ref {
	return Ref{name: s, named: true}
}

// DefaultMode is the conventional default request: "defocus" (OSA index 4).
func DefaultMode() Ref {
	return Name("defocus")
}

// resolve maps the reference to its OSA index.
func (r Ref) resolve() (int, error) {
	if r.named {
		j, err := osa.Lookup(r.name)
		if err != nil {
			return 0, fmt.Errorf("mode %q: %w", r.name, err)
		}

		return j, nil
	}
	if r.index < 0 {
		return 0, fmt.Errorf("mode %d: %w", r.index, osa.ErrNegativeIndex)
	}

	return r.index, nil
}

// String renders the reference for error messages and labels.
func (r Ref) String() string {
	if r.named {
		return r.name
	}

	return fmt.Sprintf("Z%d", r.index)
}

// Stack is the result of Compute: one size×size layer per requested mode,
// ordered ascending by OSA index. Values outside the unit disk are zero.
// A single-mode request yields Len() == 1.
type Stack struct {
	size    int
	indices []int
	layers  []*mat.Dense
}

// Len returns the number of layers (requested modes).
func (s *Stack) Len() int { return len(s.layers) }

// Size returns the side length of every layer.
func (s *Stack) Size() int { return s.size }

// Index returns the OSA index of layer k.
func (s *Stack) Index(k int) int { return s.indices[k] }

// Indices returns the OSA indices of all layers, ascending.
// The returned slice is a copy.
func (s *Stack) Indices() []int {
	out := make([]int, len(s.indices))
	copy(out, s.indices)

	return out
}

// Layer returns the k-th mode map. The matrix is owned by the stack and
// must be treated as read-only.
func (s *Stack) Layer(k int) *mat.Dense { return s.layers[k] }

// At returns the value of layer k at row r, column c.
func (s *Stack) At(r, c, k int) float64 { return s.layers[k].At(r, c) }

// Label returns the canonical name of layer k, or "Z<j>" for modes beyond
// the named 0–14 range.
func (s *Stack) Label(k int) string {
	name, err := osa.Name(s.indices[k])
	if err != nil {
		return fmt.Sprintf("Z%d", s.indices[k])
	}

	return name
}

// Renderer consumes a finished stack for display. Implementations must not
// mutate the stack; rendering is always the final step of Compute and has
// no effect on the returned values.
type Renderer interface {
	Render(*Stack) error
}
