package linalg

import (
	"math"
	"testing"
)

const tol = 1e-9

func TestIdentity(t *testing.T) {
	id := Identity(3)
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			want := complex128(0)
			if r == c {
				want = 1
			}
			if id.At(r, c) != want {
				t.Errorf("Identity(3)[%d][%d] = %v, want %v", r, c, id.At(r, c), want)
			}
		}
	}
}

func TestMul(t *testing.T) {
	a := NewMatrixFromRows([][]complex128{
		{1, 2},
		{3, 4},
	})
	b := NewMatrixFromRows([][]complex128{
		{5, 6},
		{7, 8},
	})
	want := NewMatrixFromRows([][]complex128{
		{19, 22},
		{43, 50},
	})
	if got := a.Mul(b); !got.EqualApprox(want, tol) {
		t.Errorf("Mul:\n%v\nwant:\n%v", got, want)
	}

	// Multiplying by the identity changes nothing.
	if got := a.Mul(Identity(2)); !got.EqualApprox(a, tol) {
		t.Errorf("a·I != a:\n%v", got)
	}
}

func TestMulVec(t *testing.T) {
	swap := NewMatrixFromRows([][]complex128{
		{0, 1},
		{1, 0},
	})
	v := Vector{2, 3i}
	got := swap.MulVec(v)
	if !got.EqualApprox(Vector{3i, 2}, tol) {
		t.Errorf("MulVec = %v, want [3i, 2]", got)
	}
}

func TestKron(t *testing.T) {
	a := NewMatrixFromRows([][]complex128{
		{1, 0},
		{0, 1},
	})
	b := NewMatrixFromRows([][]complex128{
		{0, 1},
		{1, 0},
	})
	got := a.Kron(b)
	want := NewMatrixFromRows([][]complex128{
		{0, 1, 0, 0},
		{1, 0, 0, 0},
		{0, 0, 0, 1},
		{0, 0, 1, 0},
	})
	if !got.EqualApprox(want, tol) {
		t.Errorf("I⊗X:\n%v\nwant:\n%v", got, want)
	}
	if got.Rows != 4 || got.Cols != 4 {
		t.Errorf("I⊗X shape = %dx%d, want 4x4", got.Rows, got.Cols)
	}
}

func TestDagger(t *testing.T) {
	m := NewMatrixFromRows([][]complex128{
		{1, 2i},
		{3, 4},
	})
	got := m.Dagger()
	want := NewMatrixFromRows([][]complex128{
		{1, 3},
		{-2i, 4},
	})
	if !got.EqualApprox(want, tol) {
		t.Errorf("Dagger:\n%v\nwant:\n%v", got, want)
	}
}

func TestIsUnitary(t *testing.T) {
	h := 1 / math.Sqrt2
	hadamard := NewMatrixFromRows([][]complex128{
		{complex(h, 0), complex(h, 0)},
		{complex(h, 0), complex(-h, 0)},
	})
	if !hadamard.IsUnitary(tol) {
		t.Error("Hadamard should be unitary")
	}

	notUnitary := NewMatrixFromRows([][]complex128{
		{1, 1},
		{0, 1},
	})
	if notUnitary.IsUnitary(tol) {
		t.Error("upper triangular ones matrix should not be unitary")
	}
}

func TestOuter(t *testing.T) {
	one := Vector{0, 1}
	got := Outer(one, one)
	want := NewMatrixFromRows([][]complex128{
		{0, 0},
		{0, 1},
	})
	if !got.EqualApprox(want, tol) {
		t.Errorf("|1⟩⟨1|:\n%v\nwant:\n%v", got, want)
	}

	// Outer conjugates the second argument.
	v := Vector{1i}
	if Outer(v, v).At(0, 0) != 1 {
		t.Errorf("|i⟩⟨i| = %v, want 1", Outer(v, v).At(0, 0))
	}
}

func TestVectorKron(t *testing.T) {
	zero := Vector{1, 0}
	one := Vector{0, 1}
	got := zero.Kron(one)
	if !got.EqualApprox(Vector{0, 1, 0, 0}, tol) {
		t.Errorf("|0⟩⊗|1⟩ = %v, want |01⟩", got)
	}
}

func TestVectorProbNorm(t *testing.T) {
	v := Vector{complex(1/math.Sqrt2, 0), 0, 0, complex(0, 1/math.Sqrt2)}
	if p := v.Prob(0); math.Abs(p-0.5) > tol {
		t.Errorf("Prob(0) = %v, want 0.5", p)
	}
	if p := v.Prob(3); math.Abs(p-0.5) > tol {
		t.Errorf("Prob(3) = %v, want 0.5", p)
	}
	if n := v.Norm(); math.Abs(n-1) > tol {
		t.Errorf("Norm = %v, want 1", n)
	}
}

func TestNewBasisVector(t *testing.T) {
	v := NewBasisVector(8, 5)
	for i := range v {
		want := complex128(0)
		if i == 5 {
			want = 1
		}
		if v[i] != want {
			t.Errorf("basis vector[%d] = %v, want %v", i, v[i], want)
		}
	}
}
