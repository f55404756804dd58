package modes

import "errors"

// Sentinel errors for mode evaluation and selection. Invalid arguments are
// reported before any numeric work begins; ErrIndexParity marks an internal
// invariant violation rather than a user-recoverable condition.
var (
	// ErrIndexParity indicates an (n, m) pair with odd n−|m| reached the
	// radial evaluator. Indices produced by osa.ToNM can never trigger it;
	// it signals a malformed direct (n, m) call.
	ErrIndexParity = errors.New("modes: radial degree and azimuthal frequency differ in parity")

	// ErrSelectBeyondMode indicates a selected index above the requested mode.
	ErrSelectBeyondMode = errors.New("modes: selected mode exceeds the requested mode")

	// ErrEmptySelection indicates WithSelect was given no modes.
	ErrEmptySelection = errors.New("modes: selection must name at least one mode")

	// ErrSelectConflict indicates WithAll combined with WithSelect.
	ErrSelectConflict = errors.New("modes: WithAll and WithSelect are mutually exclusive")

	// ErrNilGrid indicates a nil sampling grid or matrix was passed in.
	ErrNilGrid = errors.New("modes: sampling grid is nil")
)
