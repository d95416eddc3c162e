package finvect

import (
	"fmt"

	"tensorloom/internal/cat"
)

// Cat is the category structure on finite-dimensional spaces. The zero space
// is initial (it is in fact a zero object, but the engine only needs the
// initial half).
type Cat struct{}

// Identity returns the identity on the d-dimensional space.
func (Cat) Identity(d int) Mat { return Eye(d) }

// Compose returns f then g, i.e. the product g·f.
func (Cat) Compose(f, g Mat) Mat {
	if g.Cols != f.Rows {
		panic(fmt.Sprintf("finvect: compose endpoint mismatch: cod %d vs dom %d", f.Rows, g.Cols))
	}
	return Mul(g, f)
}

// Equal is tolerant elementwise equality.
func (Cat) Equal(f, g Mat) bool { return AllClose(f, g) }

// Initial returns the zero space.
func (Cat) Initial() int { return 0 }

// Out returns the unique map out of an initial source. Absorption makes any
// tensor with the zero space zero-dimensional itself, so src must be 0.
func (Cat) Out(src, dst int) Mat {
	if src != 0 {
		panic(fmt.Sprintf("finvect: Out from non-initial source of dimension %d", src))
	}
	return Zeros(dst, 0)
}

// KronTensor is the Kronecker product as a monoidal structure. On the dense
// row-major layout it is strictly associative and strictly unital, so every
// structure iso component is an identity matrix.
type KronTensor struct{}

var _ cat.Unital[int, Mat] = KronTensor{}

// Ob multiplies dimensions.
func (KronTensor) Ob(x, y int) int { return x * y }

// Hom is the Kronecker product of morphisms.
func (KronTensor) Hom(f, g Mat) Mat { return Kron(f, g) }

// Associator is the identity: (x⊗y)⊗z and x⊗(y⊗z) coincide on the flat
// layout.
func (KronTensor) Associator(x, y, z int) cat.Iso[Mat] {
	id := Eye(x * y * z)
	return cat.Iso[Mat]{Hom: id, Inv: id}
}

// Unit is the 1-dimensional space.
func (KronTensor) Unit() int { return 1 }

// LeftUnit is the identity on x.
func (KronTensor) LeftUnit(x int) cat.Iso[Mat] {
	id := Eye(x)
	return cat.Iso[Mat]{Hom: id, Inv: id}
}

// RightUnit is the identity on x.
func (KronTensor) RightUnit(x int) cat.Iso[Mat] {
	id := Eye(x)
	return cat.Iso[Mat]{Hom: id, Inv: id}
}
