// Package linalg supplies the dense complex matrix and vector primitives
// used by the operator composition engine: element-wise arithmetic, matrix
// multiplication, Kronecker and outer products, and identity construction.
//
// All operations are pure: they allocate fresh results and never modify
// their receivers or arguments. Dimension mismatches panic, since every
// composition in this module constructs dimensionally consistent operands.
package linalg

import (
	"fmt"
	"math"
	"math/cmplx"
)

// Matrix is a dense complex matrix stored row-major.
type Matrix struct {
	Rows int
	Cols int
	Data []complex128
}

// NewMatrix returns a zero matrix of the given shape.
func NewMatrix(rows, cols int) *Matrix {
	if rows <= 0 || cols <= 0 {
		panic(fmt.Sprintf("linalg: invalid matrix shape %dx%d", rows, cols))
	}
	return &Matrix{
		Rows: rows,
		Cols: cols,
		Data: make([]complex128, rows*cols),
	}
}

// NewMatrixFromRows builds a matrix from row slices. All rows must have the
// same length.
func NewMatrixFromRows(rows [][]complex128) *Matrix {
	m := NewMatrix(len(rows), len(rows[0]))
	for r, row := range rows {
		if len(row) != m.Cols {
			panic(fmt.Sprintf("linalg: ragged row %d: %d != %d", r, len(row), m.Cols))
		}
		copy(m.Data[r*m.Cols:(r+1)*m.Cols], row)
	}
	return m
}

// Identity returns the n×n identity matrix.
func Identity(n int) *Matrix {
	m := NewMatrix(n, n)
	for i := 0; i < n; i++ {
		m.Data[i*n+i] = 1
	}
	return m
}

// At returns the element at row r, column c.
func (m *Matrix) At(r, c int) complex128 {
	return m.Data[r*m.Cols+c]
}

// Set assigns the element at row r, column c.
func (m *Matrix) Set(r, c int, v complex128) {
	m.Data[r*m.Cols+c] = v
}

// Clone returns a deep copy.
func (m *Matrix) Clone() *Matrix {
	out := NewMatrix(m.Rows, m.Cols)
	copy(out.Data, m.Data)
	return out
}

// Mul returns the matrix product m·b.
func (m *Matrix) Mul(b *Matrix) *Matrix {
	if m.Cols != b.Rows {
		panic(fmt.Sprintf("linalg: Mul shape mismatch %dx%d · %dx%d", m.Rows, m.Cols, b.Rows, b.Cols))
	}
	out := NewMatrix(m.Rows, b.Cols)
	for r := 0; r < m.Rows; r++ {
		for k := 0; k < m.Cols; k++ {
			a := m.Data[r*m.Cols+k]
			if a == 0 {
				continue
			}
			for c := 0; c < b.Cols; c++ {
				out.Data[r*b.Cols+c] += a * b.Data[k*b.Cols+c]
			}
		}
	}
	return out
}

// MulVec returns the matrix-vector product m·v.
func (m *Matrix) MulVec(v Vector) Vector {
	if m.Cols != len(v) {
		panic(fmt.Sprintf("linalg: MulVec shape mismatch %dx%d · %d", m.Rows, m.Cols, len(v)))
	}
	out := make(Vector, m.Rows)
	for r := 0; r < m.Rows; r++ {
		var sum complex128
		for c := 0; c < m.Cols; c++ {
			sum += m.Data[r*m.Cols+c] * v[c]
		}
		out[r] = sum
	}
	return out
}

// Add returns the element-wise sum m+b.
func (m *Matrix) Add(b *Matrix) *Matrix {
	if m.Rows != b.Rows || m.Cols != b.Cols {
		panic(fmt.Sprintf("linalg: Add shape mismatch %dx%d + %dx%d", m.Rows, m.Cols, b.Rows, b.Cols))
	}
	out := NewMatrix(m.Rows, m.Cols)
	for i := range m.Data {
		out.Data[i] = m.Data[i] + b.Data[i]
	}
	return out
}

// Scale returns m with every element multiplied by s.
func (m *Matrix) Scale(s complex128) *Matrix {
	out := NewMatrix(m.Rows, m.Cols)
	for i := range m.Data {
		out.Data[i] = s * m.Data[i]
	}
	return out
}

// Kron returns the Kronecker product m⊗b. The receiver is the leftmost
// (outer) factor.
func (m *Matrix) Kron(b *Matrix) *Matrix {
	out := NewMatrix(m.Rows*b.Rows, m.Cols*b.Cols)
	for r := 0; r < m.Rows; r++ {
		for c := 0; c < m.Cols; c++ {
			a := m.Data[r*m.Cols+c]
			if a == 0 {
				continue
			}
			for br := 0; br < b.Rows; br++ {
				for bc := 0; bc < b.Cols; bc++ {
					out.Set(r*b.Rows+br, c*b.Cols+bc, a*b.At(br, bc))
				}
			}
		}
	}
	return out
}

// Dagger returns the conjugate transpose m†.
func (m *Matrix) Dagger() *Matrix {
	out := NewMatrix(m.Cols, m.Rows)
	for r := 0; r < m.Rows; r++ {
		for c := 0; c < m.Cols; c++ {
			out.Set(c, r, cmplx.Conj(m.At(r, c)))
		}
	}
	return out
}

// EqualApprox reports whether every element of m and b differs by less than
// tol in absolute value.
func (m *Matrix) EqualApprox(b *Matrix, tol float64) bool {
	if m.Rows != b.Rows || m.Cols != b.Cols {
		return false
	}
	for i := range m.Data {
		if cmplx.Abs(m.Data[i]-b.Data[i]) >= tol {
			return false
		}
	}
	return true
}

// IsUnitary reports whether m·m† is the identity within tol.
func (m *Matrix) IsUnitary(tol float64) bool {
	if m.Rows != m.Cols {
		return false
	}
	return m.Mul(m.Dagger()).EqualApprox(Identity(m.Rows), tol)
}

// String formats the matrix with aligned rows, for debugging and the
// workbench's operator preview.
func (m *Matrix) String() string {
	s := ""
	for r := 0; r < m.Rows; r++ {
		for c := 0; c < m.Cols; c++ {
			if c > 0 {
				s += "  "
			}
			s += FormatComplex(m.At(r, c), 3)
		}
		s += "\n"
	}
	return s
}

// FormatComplex renders a complex value compactly, dropping a zero imaginary
// or real part and trimming -0 noise.
func FormatComplex(v complex128, prec int) string {
	re, im := real(v), imag(v)
	if math.Abs(re) < 1e-12 {
		re = 0
	}
	if math.Abs(im) < 1e-12 {
		im = 0
	}
	switch {
	case im == 0:
		return fmt.Sprintf("%.*g", prec, re)
	case re == 0:
		return fmt.Sprintf("%.*gi", prec, im)
	default:
		return fmt.Sprintf("%.*g%+.*gi", prec, re, prec, im)
	}
}
