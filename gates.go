// Package qgate builds explicit dense unitary representations of quantum
// logic gates on an n-qubit register and composes them into full-register
// operators and example states.
//
// Qubit index 0 is the leftmost tensor factor, so for a basis state the
// register reads as the binary expansion of the amplitude index with qubit 0
// as the most significant bit. Operators grow as O(4^n) in memory, so
// practical register sizes are small.
package qgate

import (
	"math"
	"math/cmplx"

	"qgate/linalg"
)

// Basis catalog: immutable gate matrices, basis vectors, and projectors.
// Initialized once at process start and read-only thereafter; callers must
// not modify them.
var (
	// Computational and superposition basis vectors.
	Zero = linalg.Vector{1, 0}
	One  = linalg.Vector{0, 1}
	Plus = linalg.Vector{1, 1}.Scale(complex(1/math.Sqrt2, 0))

	// Projectors onto the control subspaces. P0+P1 is the 2×2 identity.
	P0 = linalg.Outer(Zero, Zero)
	P1 = linalg.Outer(One, One)

	// I2 is the single-qubit identity.
	I2 = linalg.Identity(2)

	// Pauli gates.
	X = linalg.NewMatrixFromRows([][]complex128{
		{0, 1},
		{1, 0},
	})
	Y = linalg.NewMatrixFromRows([][]complex128{
		{0, -1i},
		{1i, 0},
	})
	Z = linalg.NewMatrixFromRows([][]complex128{
		{1, 0},
		{0, -1},
	})

	// H is the Hadamard gate.
	H = linalg.NewMatrixFromRows([][]complex128{
		{1, 1},
		{1, -1},
	}).Scale(complex(1/math.Sqrt2, 0))

	// S is the phase gate, T the π/8 gate.
	S = linalg.NewMatrixFromRows([][]complex128{
		{1, 0},
		{0, 1i},
	})
	T = linalg.NewMatrixFromRows([][]complex128{
		{1, 0},
		{0, cmplx.Exp(complex(0, math.Pi/4))},
	})

	// Two-qubit gates on adjacent factors, control/first qubit leftmost.
	CNOTGate = linalg.NewMatrixFromRows([][]complex128{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 0, 1},
		{0, 0, 1, 0},
	})
	CZGate = linalg.NewMatrixFromRows([][]complex128{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, -1},
	})
	SWAPGate = linalg.NewMatrixFromRows([][]complex128{
		{1, 0, 0, 0},
		{0, 0, 1, 0},
		{0, 1, 0, 0},
		{0, 0, 0, 1},
	})
)

// RX returns the single-qubit rotation about the X axis by theta.
func RX(theta float64) *linalg.Matrix {
	c := complex(math.Cos(theta/2), 0)
	js := complex(0, -math.Sin(theta/2))
	return linalg.NewMatrixFromRows([][]complex128{
		{c, js},
		{js, c},
	})
}

// RY returns the single-qubit rotation about the Y axis by theta.
func RY(theta float64) *linalg.Matrix {
	c := complex(math.Cos(theta/2), 0)
	s := complex(math.Sin(theta/2), 0)
	return linalg.NewMatrixFromRows([][]complex128{
		{c, -s},
		{s, c},
	})
}

// RZ returns the single-qubit phase rotation diag(1, e^{iθ}).
func RZ(theta float64) *linalg.Matrix {
	return linalg.NewMatrixFromRows([][]complex128{
		{1, 0},
		{0, cmplx.Exp(complex(0, theta))},
	})
}
