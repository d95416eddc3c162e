// Package finvect is the category of finite-dimensional real vector spaces:
// objects are dimensions, morphisms dense row-major matrices. The tensor is
// the Kronecker product (strictly associative on the flat layout, so the
// base associator components are identities) and the coproduct is the direct
// sum. It exists alongside finset to keep the engine honest about being
// generic over the capability set, and to exercise tolerance-based morphism
// equality.
//
// Kernels are deterministic: fixed loop orders, no pivoting, no allocation
// surprises. Equality is AllClose with a fixed tolerance.
package finvect

import "fmt"

// Eps is the comparison tolerance for morphism equality.
const Eps = 1e-9

// Mat is a dense rows×cols matrix, row-major. As a morphism it maps the
// cols-dimensional space to the rows-dimensional one.
type Mat struct {
	Rows, Cols int
	A          []float64
}

// Zeros returns the zero rows×cols matrix.
func Zeros(rows, cols int) Mat {
	if rows < 0 || cols < 0 {
		panic(fmt.Sprintf("finvect: negative shape %dx%d", rows, cols))
	}
	return Mat{Rows: rows, Cols: cols, A: make([]float64, rows*cols)}
}

// Eye returns the n×n identity.
func Eye(n int) Mat {
	m := Zeros(n, n)
	for i := 0; i < n; i++ {
		m.A[i*n+i] = 1
	}
	return m
}

// At returns the (i, j) entry.
func (m Mat) At(i, j int) float64 { return m.A[i*m.Cols+j] }

// Set assigns the (i, j) entry.
func (m Mat) Set(i, j int, v float64) { m.A[i*m.Cols+j] = v }

// Mul returns the matrix product a·b.
func Mul(a, b Mat) Mat {
	if a.Cols != b.Rows {
		panic(fmt.Sprintf("finvect: product shape mismatch %dx%d · %dx%d", a.Rows, a.Cols, b.Rows, b.Cols))
	}
	out := Zeros(a.Rows, b.Cols)
	for i := 0; i < a.Rows; i++ {
		for l := 0; l < a.Cols; l++ {
			v := a.A[i*a.Cols+l]
			if v == 0 {
				continue
			}
			for j := 0; j < b.Cols; j++ {
				out.A[i*b.Cols+j] += v * b.A[l*b.Cols+j]
			}
		}
	}
	return out
}

// Kron returns the Kronecker product a⊗b.
func Kron(a, b Mat) Mat {
	out := Zeros(a.Rows*b.Rows, a.Cols*b.Cols)
	for ia := 0; ia < a.Rows; ia++ {
		for ja := 0; ja < a.Cols; ja++ {
			v := a.A[ia*a.Cols+ja]
			if v == 0 {
				continue
			}
			for ib := 0; ib < b.Rows; ib++ {
				for jb := 0; jb < b.Cols; jb++ {
					out.Set(ia*b.Rows+ib, ja*b.Cols+jb, v*b.At(ib, jb))
				}
			}
		}
	}
	return out
}

// AllClose reports elementwise equality within Eps. Shapes must match for a
// true result.
func AllClose(a, b Mat) bool {
	if a.Rows != b.Rows || a.Cols != b.Cols {
		return false
	}
	for i := range a.A {
		d := a.A[i] - b.A[i]
		if d > Eps || d < -Eps {
			return false
		}
	}
	return true
}
