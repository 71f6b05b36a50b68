package qgate

import (
	"github.com/pkg/errors"

	"qgate/linalg"
)

// GHZState builds the numQubits-qubit GHZ state (|0…0⟩ + |1…1⟩)/√2 by
// rotating qubit 0 with a Hadamard and chaining adjacent CNOTs down the
// register. numQubits == 1 degenerates to the Hadamard-rotated single qubit
// (|0⟩+|1⟩)/√2, which carries no entanglement.
func GHZState(numQubits int) (linalg.Vector, error) {
	if numQubits < 1 {
		return nil, errors.Wrapf(ErrInvalidQubit, "register needs at least one qubit, got %d", numQubits)
	}

	zeros := make([]linalg.Vector, numQubits)
	for i := range zeros {
		zeros[i] = Zero
	}
	state, err := KronVectors(zeros)
	if err != nil {
		return nil, err
	}

	hadamard, err := Embed(H, 0, numQubits)
	if err != nil {
		return nil, err
	}
	state = hadamard.MulVec(state)

	for i := 0; i < numQubits-1; i++ {
		cnot, err := AdjacentCNOT(i, i+1, numQubits)
		if err != nil {
			return nil, err
		}
		state = cnot.MulVec(state)
	}

	return state, nil
}
