package osa

import "errors"

// Sentinel errors for OSA index and name resolution.
var (
	// ErrNegativeIndex indicates an OSA index below zero.
	ErrNegativeIndex = errors.New("osa: mode index must be non-negative")
	// ErrInvalidPair indicates an (n, m) pair outside the Zernike domain:
	// n < 0, |m| > n, or n−|m| odd.
	ErrInvalidPair = errors.New("osa: invalid (n, m) pair")
	// ErrUnknownName indicates a mode name absent from the canonical table.
	ErrUnknownName = errors.New("osa: unknown mode name")
	// ErrUnnamedIndex indicates an index with no canonical name (only 0–14 are named).
	ErrUnnamedIndex = errors.New("osa: no canonical name for mode index")
)
