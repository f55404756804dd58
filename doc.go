// Package zernigo generates Zernike polynomial basis maps — the orthogonal
// wavefront modes of the unit disk — sampled on square Cartesian grids.
//
// 🚀 What is zernigo?
//
//	A compact, deterministic library for optics simulation that brings together:
//		• OSA/ANSI indexing: the single-integer mode convention, with exact
//		  conversion to and from the (n, m) radial/azimuthal pair
//		• Canonical mode names: "piston" through "vertical quadrafoil" (0–14)
//		• Radial polynomials R_n^m(ρ) evaluated over whole gonum matrices
//		• Orthonormal OSA scaling, so different modes are comparably sized
//		• Unit-disk masking on a shared [-1,1]² sampling mesh
//		• Optional PNG rendering of single modes or whole mode pyramids
//
// ✨ Why choose zernigo?
//
//   - Deterministic – same inputs, bit-identical outputs, no global state
//   - Fail fast – every argument validated before any array work begins
//   - Pure Go on gonum – vectorized dense-matrix evaluation, no cgo
//   - Tiny API – one entry point, typed mode references, sentinel errors
//
// Everything is organized under four subpackages:
//
//	osa/    — OSA index ↔ (n, m) conversion and the canonical name table
//	mesh/   — square sampling grids in polar form with the unit-disk mask
//	modes/  — radial/angular evaluation, mode selection, the Compute entry point
//	render/ — PNG heatmaps and mode pyramids (gonum/plot)
//
// Quick example:
//
//	st, err := modes.Compute(modes.Name("defocus"), modes.WithSize(256))
//	if err != nil { ... }
//	z := st.Layer(0) // 256×256 *mat.Dense, zero outside the unit disk
//
// Dive into each package's doc.go for contracts, complexity and error sets.
//
//	go get github.com/katalvlaran/zernigo
package zernigo
