package qgate

import (
	"github.com/pkg/errors"

	"qgate/linalg"
)

// Kron left-folds the Kronecker product over ops, preserving index order:
// the first element becomes the leftmost tensor factor.
func Kron(ops []*linalg.Matrix) (*linalg.Matrix, error) {
	if len(ops) == 0 {
		return nil, errors.Wrap(ErrEmptyInput, "kron")
	}
	result := ops[0]
	for _, op := range ops[1:] {
		result = result.Kron(op)
	}
	return result, nil
}

// Dot left-folds ordinary matrix multiplication over same-dimension
// operators: Dot([A, B, C]) = (A·B)·C.
func Dot(ops []*linalg.Matrix) (*linalg.Matrix, error) {
	if len(ops) == 0 {
		return nil, errors.Wrap(ErrEmptyInput, "dot")
	}
	result := ops[0]
	for _, op := range ops[1:] {
		result = result.Mul(op)
	}
	return result, nil
}

// KronVectors left-folds the Kronecker product over basis vectors, producing
// a product state.
func KronVectors(vs []linalg.Vector) (linalg.Vector, error) {
	if len(vs) == 0 {
		return nil, errors.Wrap(ErrEmptyInput, "kron vectors")
	}
	result := vs[0]
	for _, v := range vs[1:] {
		result = result.Kron(v)
	}
	return result, nil
}

// identityRun appends count copies of the single-qubit identity to ops.
func identityRun(ops []*linalg.Matrix, count int) []*linalg.Matrix {
	for i := 0; i < count; i++ {
		ops = append(ops, I2)
	}
	return ops
}
