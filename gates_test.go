package qgate

import (
	"math"
	"testing"

	"qgate/linalg"
)

func TestCatalogUnitary(t *testing.T) {
	gates := map[string]*linalg.Matrix{
		"I2":   I2,
		"X":    X,
		"Y":    Y,
		"Z":    Z,
		"H":    H,
		"S":    S,
		"T":    T,
		"CNOT": CNOTGate,
		"CZ":   CZGate,
		"SWAP": SWAPGate,
		"RX":   RX(math.Pi / 3),
		"RY":   RY(math.Pi / 5),
		"RZ":   RZ(2 * math.Pi / 7),
	}
	for name, g := range gates {
		if !g.IsUnitary(tol) {
			t.Errorf("%s is not unitary", name)
		}
	}
}

func TestProjectorCompleteness(t *testing.T) {
	if !P0.Add(P1).EqualApprox(I2, tol) {
		t.Error("|0⟩⟨0| + |1⟩⟨1| != I")
	}

	// Projectors are idempotent and orthogonal.
	if !P0.Mul(P0).EqualApprox(P0, tol) {
		t.Error("P0·P0 != P0")
	}
	if !P1.Mul(P1).EqualApprox(P1, tol) {
		t.Error("P1·P1 != P1")
	}
	if !P0.Mul(P1).EqualApprox(linalg.NewMatrix(2, 2), tol) {
		t.Error("P0·P1 != 0")
	}
}

func TestBasisVectors(t *testing.T) {
	if !Zero.EqualApprox(linalg.Vector{1, 0}, tol) {
		t.Errorf("Zero = %v", Zero)
	}
	if !One.EqualApprox(linalg.Vector{0, 1}, tol) {
		t.Errorf("One = %v", One)
	}
	inv := complex(1/math.Sqrt2, 0)
	if !Plus.EqualApprox(linalg.Vector{inv, inv}, tol) {
		t.Errorf("Plus = %v", Plus)
	}
	if n := Plus.Norm(); math.Abs(n-1) > tol {
		t.Errorf("Plus norm = %v, want 1", n)
	}
}

func TestHadamardAction(t *testing.T) {
	// H|0⟩ = |+⟩
	if got := H.MulVec(Zero); !got.EqualApprox(Plus, tol) {
		t.Errorf("H|0⟩ = %v, want |+⟩", got)
	}
	// H·H = I
	if !H.Mul(H).EqualApprox(I2, tol) {
		t.Error("H·H != I")
	}
}

func TestRotationSpecialAngles(t *testing.T) {
	// RX(π) is X up to a global phase of -i.
	if got := RX(math.Pi).Scale(1i); !got.EqualApprox(X, tol) {
		t.Errorf("i·RX(π) != X:\n%v", got)
	}
	// RZ(π) is diag(1, -1) = Z.
	if got := RZ(math.Pi); !got.EqualApprox(Z, tol) {
		t.Errorf("RZ(π) != Z:\n%v", got)
	}
	// RY(0) is the identity.
	if got := RY(0); !got.EqualApprox(I2, tol) {
		t.Errorf("RY(0) != I:\n%v", got)
	}
}
