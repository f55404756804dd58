package osa

import "math"

// rowStart returns the first OSA index of row n, the triangular number n(n+1)/2.
// Complexity: O(1).
func rowStart(n int) int {
	return n * (n + 1) / 2
}

// ToNM converts an OSA/ANSI index j into the Zernike pair (n, m).
//
// Implementation:
//  1. Guess n from the closed form ceil((−3 + √(9+8j)) / 2).
//  2. Verify the guess against the integer row bounds
//     rowStart(n) ≤ j ≤ rowStart(n)+n and correct it by at most one step —
//     floating-point √ is not trusted at triangular-number boundaries.
//  3. Derive m = 2j − n(n+2). Within a valid row this always yields
//     |m| ≤ n with n−|m| even, matching the canonical OSA table
//     (0→(0,0), 1→(1,−1), 2→(1,1), 3→(2,−2), 4→(2,0), 5→(2,2), ...).
//
// Returns ErrNegativeIndex for j < 0. Complexity: O(1).
func ToNM(j int) (n, m int, err error) {
	if j < 0 {
		return 0, 0, ErrNegativeIndex
	}
	n = int(math.Ceil((-3.0 + math.Sqrt(9.0+8.0*float64(j))) / 2.0))
	for n > 0 && rowStart(n) > j {
		n--
	}
	for rowStart(n)+n < j {
		n++
	}
	m = 2*j - n*(n+2)

	return n, m, nil
}

// ToIndex converts a Zernike pair (n, m) into its OSA/ANSI index.
// It is the exact left inverse of ToNM: ToIndex(ToNM(j)) == j for all j ≥ 0.
//
// Returns ErrInvalidPair when n < 0, |m| > n, or n−|m| is odd.
// Complexity: O(1).
func ToIndex(n, m int) (int, error) {
	am := m
	if am < 0 {
		am = -am
	}
	if n < 0 || am > n || (n-am)%2 != 0 {
		return 0, ErrInvalidPair
	}

	return (n*(n+2) + m) / 2, nil
}
