package qgate

import (
	"github.com/pkg/errors"

	"qgate/linalg"
)

// Controlled builds the numQubits-qubit operator that applies gate to the
// target qubit iff the control qubit is |1⟩, and is the identity otherwise.
// Control and target may be anywhere in the register, in either relative
// order.
//
// The decomposition follows the projector completeness relation
// |0⟩⟨0| + |1⟩⟨1| = I: a control-off term with P0 at the control and
// identity elsewhere, plus a control-on term with P1 at the control and the
// gate at the target.
func Controlled(gate *linalg.Matrix, control, target, numQubits int) (*linalg.Matrix, error) {
	if err := checkControlTarget(control, target, numQubits); err != nil {
		return nil, err
	}

	// Control-off branch: P0 at the control, identity everywhere else.
	off, err := Embed(P0, control, numQubits)
	if err != nil {
		return nil, err
	}

	// Control-on branch: walk the positions in ascending order, placing the
	// projector and the gate according to their relative order.
	ops := make([]*linalg.Matrix, 0, numQubits)
	if control < target {
		ops = identityRun(ops, control)
		ops = append(ops, P1)
		ops = identityRun(ops, target-control-1)
		ops = append(ops, gate)
		ops = identityRun(ops, numQubits-target-1)
	} else {
		ops = identityRun(ops, target)
		ops = append(ops, gate)
		ops = identityRun(ops, control-target-1)
		ops = append(ops, P1)
		ops = identityRun(ops, numQubits-control-1)
	}
	on, err := Kron(ops)
	if err != nil {
		return nil, err
	}

	return off.Add(on), nil
}

// CNOT builds the general controlled-NOT operator for arbitrary control and
// target positions. It is the projector decomposition of Controlled
// specialized to the X gate.
func CNOT(control, target, numQubits int) (*linalg.Matrix, error) {
	return Controlled(X, control, target, numQubits)
}

// AdjacentCNOT is the fast path for a control immediately above its target
// (target == control+1): it pads the 4×4 CNOT matrix directly instead of
// summing projector terms. Returns ErrNotAdjacent otherwise.
func AdjacentCNOT(control, target, numQubits int) (*linalg.Matrix, error) {
	if target != control+1 {
		return nil, errors.Wrapf(ErrNotAdjacent, "control %d, target %d", control, target)
	}
	return Embed(CNOTGate, control, numQubits)
}

// checkControlTarget validates a control/target pair against the register.
// Indices are valid in [0, numQubits-1]; the control must differ from the
// target.
func checkControlTarget(control, target, numQubits int) error {
	if control == target {
		return errors.Wrapf(ErrInvalidQubit, "control and target both %d", control)
	}
	if control < 0 || control >= numQubits {
		return errors.Wrapf(ErrInvalidQubit, "control %d outside register of %d qubits", control, numQubits)
	}
	if target < 0 || target >= numQubits {
		return errors.Wrapf(ErrInvalidQubit, "target %d outside register of %d qubits", target, numQubits)
	}
	return nil
}
