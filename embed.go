package qgate

import (
	"github.com/pkg/errors"

	"qgate/linalg"
)

// gateSpan returns the number of qubit slots a gate occupies: 1 for 2×2,
// 2 for 4×4, and so on. Dimensional consistency beyond this is the caller's
// responsibility.
func gateSpan(gate *linalg.Matrix) int {
	span := 0
	for d := gate.Rows; d > 1; d >>= 1 {
		span++
	}
	return span
}

// Embed places gate at the given qubit position in a numQubits register,
// tensoring identity padding on either side:
//
//	I⊗…⊗I ⊗ gate ⊗ I⊗…⊗I
//
// A 2^k-dimensional gate occupies k contiguous slots starting at target, so
// Embed also places two-qubit gates such as CNOTGate or SWAPGate on adjacent
// pairs. Returns ErrInvalidQubit when the occupied slots fall outside
// [0, numQubits-1].
func Embed(gate *linalg.Matrix, target, numQubits int) (*linalg.Matrix, error) {
	span := gateSpan(gate)
	if target < 0 || target+span > numQubits {
		return nil, errors.Wrapf(ErrInvalidQubit, "target %d (span %d) outside register of %d qubits", target, span, numQubits)
	}

	ops := make([]*linalg.Matrix, 0, numQubits)
	ops = identityRun(ops, target)
	ops = append(ops, gate)
	ops = identityRun(ops, numQubits-target-span)
	return Kron(ops)
}
