package qgate

import (
	"errors"
	"testing"

	"qgate/linalg"
)

const tol = 1e-9

func TestKronSingleElement(t *testing.T) {
	got, err := Kron([]*linalg.Matrix{X})
	if err != nil {
		t.Fatalf("Kron error: %v", err)
	}
	if !got.EqualApprox(X, tol) {
		t.Errorf("Kron([X]) != X:\n%v", got)
	}
}

func TestKronAssociative(t *testing.T) {
	abc, err := Kron([]*linalg.Matrix{X, H, Z})
	if err != nil {
		t.Fatalf("Kron error: %v", err)
	}
	ab, err := Kron([]*linalg.Matrix{X, H})
	if err != nil {
		t.Fatalf("Kron error: %v", err)
	}
	nested, err := Kron([]*linalg.Matrix{ab, Z})
	if err != nil {
		t.Fatalf("Kron error: %v", err)
	}
	if !abc.EqualApprox(nested, tol) {
		t.Error("kron([X,H,Z]) != kron([kron([X,H]), Z])")
	}
	if abc.Rows != 8 {
		t.Errorf("three-factor product has dim %d, want 8", abc.Rows)
	}
}

func TestKronEmpty(t *testing.T) {
	if _, err := Kron(nil); !errors.Is(err, ErrEmptyInput) {
		t.Errorf("Kron(nil) error = %v, want ErrEmptyInput", err)
	}
}

func TestDot(t *testing.T) {
	// X·X = I
	got, err := Dot([]*linalg.Matrix{X, X})
	if err != nil {
		t.Fatalf("Dot error: %v", err)
	}
	if !got.EqualApprox(I2, tol) {
		t.Errorf("X·X != I:\n%v", got)
	}

	// H·Z·H = X
	got, err = Dot([]*linalg.Matrix{H, Z, H})
	if err != nil {
		t.Fatalf("Dot error: %v", err)
	}
	if !got.EqualApprox(X, tol) {
		t.Errorf("H·Z·H != X:\n%v", got)
	}
}

func TestDotEmpty(t *testing.T) {
	if _, err := Dot([]*linalg.Matrix{}); !errors.Is(err, ErrEmptyInput) {
		t.Errorf("Dot([]) error = %v, want ErrEmptyInput", err)
	}
}

func TestKronVectors(t *testing.T) {
	got, err := KronVectors([]linalg.Vector{One, Zero, One})
	if err != nil {
		t.Fatalf("KronVectors error: %v", err)
	}
	// |101⟩ is index 5.
	if !got.EqualApprox(linalg.NewBasisVector(8, 5), tol) {
		t.Errorf("|1⟩⊗|0⟩⊗|1⟩ = %v, want |101⟩", got)
	}

	if _, err := KronVectors(nil); !errors.Is(err, ErrEmptyInput) {
		t.Errorf("KronVectors(nil) error = %v, want ErrEmptyInput", err)
	}
}
