package linalg

import (
	"fmt"
	"math"
	"math/cmplx"
)

// Vector is a dense complex vector of computational-basis amplitudes.
type Vector []complex128

// NewBasisVector returns the dim-length vector with a single 1 at index.
func NewBasisVector(dim, index int) Vector {
	if index < 0 || index >= dim {
		panic(fmt.Sprintf("linalg: basis index %d out of range for dim %d", index, dim))
	}
	v := make(Vector, dim)
	v[index] = 1
	return v
}

// Clone returns a copy of v.
func (v Vector) Clone() Vector {
	out := make(Vector, len(v))
	copy(out, v)
	return out
}

// Kron returns the Kronecker product v⊗w, with the receiver as the leftmost
// factor.
func (v Vector) Kron(w Vector) Vector {
	out := make(Vector, len(v)*len(w))
	for i, a := range v {
		if a == 0 {
			continue
		}
		for j, b := range w {
			out[i*len(w)+j] = a * b
		}
	}
	return out
}

// Scale returns v with every amplitude multiplied by s.
func (v Vector) Scale(s complex128) Vector {
	out := make(Vector, len(v))
	for i, a := range v {
		out[i] = s * a
	}
	return out
}

// Outer returns the outer product |v⟩⟨w| as a len(v)×len(w) matrix.
func Outer(v, w Vector) *Matrix {
	out := NewMatrix(len(v), len(w))
	for r, a := range v {
		for c, b := range w {
			out.Set(r, c, a*cmplx.Conj(b))
		}
	}
	return out
}

// Prob returns |v[i]|², the probability of measuring basis state i.
func (v Vector) Prob(i int) float64 {
	a := v[i]
	return real(a * cmplx.Conj(a))
}

// Norm returns the Euclidean norm of v.
func (v Vector) Norm() float64 {
	sum := 0.0
	for i := range v {
		sum += v.Prob(i)
	}
	return math.Sqrt(sum)
}

// EqualApprox reports whether every amplitude of v and w differs by less
// than tol in absolute value.
func (v Vector) EqualApprox(w Vector, tol float64) bool {
	if len(v) != len(w) {
		return false
	}
	for i := range v {
		if cmplx.Abs(v[i]-w[i]) >= tol {
			return false
		}
	}
	return true
}
