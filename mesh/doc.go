// Package mesh builds the square Cartesian sampling grid on which Zernike
// modes are evaluated, in polar form with a unit-disk mask.
//
// What:
//
//   - New(size) samples [-1,1]² with size points per axis (inclusive
//     endpoints, "xy" orientation: x varies along columns, y along rows).
//   - Grid carries ρ = hypot(x,y), θ = atan2(y,x) and the disk mask
//     (1 where ρ ≤ 1, else 0) as gonum dense matrices.
//
// Guarantees:
//
//   - Deterministic: the same size always yields a bit-identical grid.
//   - Immutable by contract: a Grid is built once per call and shared
//     read-only across every mode evaluated on it. Never write to its
//     matrices.
//
// Complexity: New is O(size²) time and memory; accessors are O(1).
//
// Errors:
//
//   - ErrBadSize: size below one.
package mesh
