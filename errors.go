package qgate

import "github.com/pkg/errors"

// Sentinel errors returned by the operator synthesizers. Call sites wrap
// them with the offending indices; match with errors.Is.
var (
	// ErrInvalidQubit reports a qubit index outside [0, numQubits-1] or a
	// control colliding with a target.
	ErrInvalidQubit = errors.New("invalid qubit index")

	// ErrNotAdjacent reports an adjacency-restricted operation invoked on
	// non-adjacent qubits.
	ErrNotAdjacent = errors.New("qubits are not adjacent")

	// ErrEmptyInput reports a composition fold invoked on an empty sequence.
	ErrEmptyInput = errors.New("empty operator sequence")
)
