package qgate

import (
	"github.com/pkg/errors"

	"qgate/linalg"
)

// ControlledControlled builds the numQubits-qubit operator that applies gate
// to the target qubit iff both control qubits are |1⟩. The controls are
// sorted ascending and the relative target position selects one of three
// padding layouts (target after both controls, between them, or before
// both). Each layout sums four tensor-product terms, one per projector
// combination of the two controls (00, 01, 10, 11), with the gate placed at
// the target slot only in the 11 term and identity there otherwise.
func ControlledControlled(gate *linalg.Matrix, control1, control2, target, numQubits int) (*linalg.Matrix, error) {
	if control1 == target || control2 == target || control1 == control2 {
		return nil, errors.Wrapf(ErrInvalidQubit, "controls %d,%d and target %d must be distinct", control1, control2, target)
	}
	for _, q := range []int{control1, control2, target} {
		if q < 0 || q >= numQubits {
			return nil, errors.Wrapf(ErrInvalidQubit, "qubit %d outside register of %d qubits", q, numQubits)
		}
	}

	c1, c2 := control1, control2
	if c1 > c2 {
		c1, c2 = c2, c1
	}

	projectors := []*linalg.Matrix{P0, P1}
	dim := 1 << numQubits
	operator := linalg.NewMatrix(dim, dim)

	for _, pa := range projectors {
		for _, pb := range projectors {
			// The gate fires only when both controls project onto |1⟩.
			slot := I2
			if pa == P1 && pb == P1 {
				slot = gate
			}

			ops := make([]*linalg.Matrix, 0, numQubits)
			switch {
			case c2 < target:
				ops = identityRun(ops, c1)
				ops = append(ops, pa)
				ops = identityRun(ops, c2-c1-1)
				ops = append(ops, pb)
				ops = identityRun(ops, target-c2-1)
				ops = append(ops, slot)
				ops = identityRun(ops, numQubits-target-1)
			case c1 < target && target < c2:
				ops = identityRun(ops, c1)
				ops = append(ops, pa)
				ops = identityRun(ops, target-c1-1)
				ops = append(ops, slot)
				ops = identityRun(ops, c2-target-1)
				ops = append(ops, pb)
				ops = identityRun(ops, numQubits-c2-1)
			default: // target < c1
				ops = identityRun(ops, target)
				ops = append(ops, slot)
				ops = identityRun(ops, c1-target-1)
				ops = append(ops, pa)
				ops = identityRun(ops, c2-c1-1)
				ops = append(ops, pb)
				ops = identityRun(ops, numQubits-c2-1)
			}

			term, err := Kron(ops)
			if err != nil {
				return nil, err
			}
			operator = operator.Add(term)
		}
	}

	return operator, nil
}

// Toffoli builds the controlled-controlled-NOT operator: X on the target
// iff both controls are |1⟩.
func Toffoli(control1, control2, target, numQubits int) (*linalg.Matrix, error) {
	return ControlledControlled(X, control1, control2, target, numQubits)
}
