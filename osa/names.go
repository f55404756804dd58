package osa

import "strings"

// NamedModes is the number of modes with a canonical name (indices 0–14).
const NamedModes = 15

// canonicalNames lists the canonical OSA mode names in index order.
// Both lookup directions are built from this single literal at init,
// so the table cannot drift out of sync.
var canonicalNames = [NamedModes]string{
	"piston",
	"vertical tilt",
	"horizontal tilt",
	"oblique astigmatism",
	"defocus",
	"vertical astigmatism",
	"vertical trefoil",
	"vertical coma",
	"horizontal coma",
	"oblique trefoil",
	"oblique quadrafoil",
	"oblique secondary astigmatism",
	"primary spherical",
	"vertical secondary astigmatism",
	"vertical quadrafoil",
}

var nameToIndex = func() map[string]int {
	m := make(map[string]int, NamedModes)
	for j, name := range canonicalNames {
		m[name] = j
	}

	return m
}()

// Name returns the canonical name of mode j.
// Returns ErrNegativeIndex for j < 0 and ErrUnnamedIndex for j ≥ NamedModes.
// Complexity: O(1).
func Name(j int) (string, error) {
	if j < 0 {
		return "", ErrNegativeIndex
	}
	if j >= NamedModes {
		return "", ErrUnnamedIndex
	}

	return canonicalNames[j], nil
}

// Lookup resolves a canonical mode name to its OSA index, case-insensitively.
// Returns ErrUnknownName when the name is not in the table.
// Complexity: O(1).
func Lookup(name string) (int, error) {
	j, ok := nameToIndex[strings.ToLower(name)]
	if !ok {
		return 0, ErrUnknownName
	}

	return j, nil
}

// Names returns the canonical names of all named modes in index order.
// The returned slice is a copy; mutating it does not affect the table.
func Names() []string {
	out := make([]string, NamedModes)
	copy(out, canonicalNames[:])

	return out
}
