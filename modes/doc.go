// Package modes is the Zernike polynomial engine: it evaluates single modes
// or whole mode stacks over a shared sampling grid, with orthonormal OSA
// scaling and unit-disk masking.
//
// 🚀 What is modes?
//
//	The public entry point of zernigo, tying together:
//	  • Radial — the classical radial polynomial R_n^m(ρ) over a dense matrix
//	  • Evaluate — one full mode: scaling · R_n^{|m|}(ρ) · angular(m, θ)
//	  • Selection — deterministic resolution of a mode request into an
//	    ascending, duplicate-free list of OSA indices
//	  • Compute — orchestration: validate, build the grid once, evaluate
//	    every requested mode in ascending order, optionally render
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/zernigo/modes"
//
//	// One mode, 256×256:
//	st, err := modes.Compute(modes.Name("defocus"), modes.WithSize(256))
//
//	// Every mode up to (and including) 14, rendered as a pyramid:
//	st, err = modes.Compute(modes.Index(14), modes.WithAll(),
//		modes.WithRenderer(render.New("pyramid.png")))
//
//	// An explicit subset — output order never depends on input order:
//	st, err = modes.Compute(modes.Index(10),
//		modes.WithSelect(modes.Index(7), modes.Name("defocus"), modes.Index(9)))
//	// st.Indices() == [4 7 9]
//
// Guarantees:
//
//   - Fail fast: size, mode and selection are validated before any array
//     computation; a call either fully succeeds or returns an error with
//     no partial result.
//   - Deterministic output order: stack layers are always ascending by OSA
//     index, regardless of the order selections were written in.
//   - Scaling: √(2(n+1)) for m ≠ 0 and √(n+1) for m = 0 (orthonormal OSA
//     convention), so different modes are comparably sized. The classical
//     rim normalization R_n^{|m|}(1) = 1 holds before this scaling.
//   - Rendering is strictly the last step and never mutates the stack; a
//     render failure returns the fully computed stack alongside the error.
//
// Errors:
//
//   - mesh.ErrBadSize, osa.ErrNegativeIndex, osa.ErrUnknownName — invalid
//     arguments, surfaced from the collaborating packages.
//   - ErrSelectBeyondMode — a selected index exceeds the requested mode.
//   - ErrEmptySelection — WithSelect named no modes.
//   - ErrSelectConflict — WithAll combined with WithSelect.
//   - ErrIndexParity — an (n, m) pair with odd n−|m| reached Radial; this
//     cannot happen for indices produced by osa.ToNM and signals a
//     malformed direct call.
//
// Performance: Compute is O(k·size²) for k modes; the grid is built once
// per call and shared read-only across all of them.
package modes
