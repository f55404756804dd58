// Package osa implements the OSA/ANSI single-index convention for Zernike
// modes: the bijection between the linear index j and the classical
// (n, m) pair, plus the canonical names of the first fifteen modes.
//
// What:
//
//   - ToNM converts an OSA index j to (n, m): n is the radial degree,
//     m the signed azimuthal frequency (|m| ≤ n, n−|m| even).
//   - ToIndex is the exact left inverse of ToNM.
//   - Name / Lookup translate between indices 0–14 and their canonical
//     names ("piston", "defocus", "vertical coma", ...), case-insensitively.
//
// How:
//
//	Row n of the OSA table holds the n+1 indices j = n(n+1)/2 .. n(n+1)/2+n,
//	ordered by ascending m ∈ {−n, −n+2, ..., n}, so j = (n(n+2)+m)/2.
//	ToNM recovers n from the closed form ceil((−3+√(9+8j))/2) and then
//	verifies it against the integer row bounds before deriving
//	m = 2j − n(n+2); the float result is never trusted blindly, which keeps
//	the conversion exact at triangular-number boundaries.
//
// Errors:
//
//   - ErrNegativeIndex: a negative OSA index.
//   - ErrInvalidPair: (n, m) with n < 0, |m| > n, or odd n−|m|.
//   - ErrUnknownName: a name not present in the canonical table.
//   - ErrUnnamedIndex: Name() beyond the named 0–14 range.
//
// All functions are pure; conversion is O(1), lookup is O(1).
package osa
