// Package monoidal bundles the graded tensor, associator, and unitors into a
// single monoidal structure, and verifies the coherence laws that structure
// must satisfy: functoriality of the tensor, associator invertibility and
// naturality, and the pentagon and triangle identities.
//
// Every law is discharged the same way: reduce an equality of morphisms out
// of a coproduct-indexed object to one equality per canonical injection, then
// close each component with the corresponding base-category fact. The checker
// never unfolds how a coproduct is realized.
package monoidal

import (
	"tensorloom/internal/graded"
	"tensorloom/internal/tensor"
	"tensorloom/internal/unitor"
)

// Structure is the law-abiding monoidal structure on graded objects: the
// full export surface of the engine. Unit data is optional; a structure
// without it still has the tensor and associator, but no unitors and no
// triangle obligation.
type Structure[I comparable, Ob, Mor any] struct {
	tb *tensor.Builder[I, Ob, Mor]
	ub *unitor.Builder[I, Ob, Mor]
}

// New bundles a tensor builder and an optional unitor builder. tb must not
// be nil.
func New[I comparable, Ob, Mor any](tb *tensor.Builder[I, Ob, Mor], ub *unitor.Builder[I, Ob, Mor]) *Structure[I, Ob, Mor] {
	if tb == nil {
		panic("monoidal: nil tensor builder")
	}
	return &Structure[I, Ob, Mor]{tb: tb, ub: ub}
}

// Tensor returns the underlying tensor builder.
func (s *Structure[I, Ob, Mor]) Tensor() *tensor.Builder[I, Ob, Mor] { return s.tb }

// HasUnits reports whether unit data was supplied.
func (s *Structure[I, Ob, Mor]) HasUnits() bool { return s.ub != nil }

// TensorObj is the graded tensor product of x and y.
func (s *Structure[I, Ob, Mor]) TensorObj(x, y graded.Obj[I, Ob]) graded.Obj[I, Ob] {
	return s.tb.Product(x, y).Obj()
}

// TensorHom lifts pointwise families to the graded tensor.
func (s *Structure[I, Ob, Mor]) TensorHom(x, x2, y, y2 graded.Obj[I, Ob], f, g graded.Hom[I, Mor]) graded.Hom[I, Mor] {
	return s.tb.Hom(s.tb.Product(x, y), s.tb.Product(x2, y2), f, g)
}

// Associator is the graded associator isomorphism.
func (s *Structure[I, Ob, Mor]) Associator(x, y, z graded.Obj[I, Ob]) graded.Iso[I, Mor] {
	return s.tb.Associator(x, y, z)
}

// UnitObj is the unit graded object. Requires unit data.
func (s *Structure[I, Ob, Mor]) UnitObj() graded.Obj[I, Ob] {
	return s.units().UnitObj()
}

// LeftUnitor is unit⊗x ≅ x. Requires unit data.
func (s *Structure[I, Ob, Mor]) LeftUnitor(x graded.Obj[I, Ob]) graded.Iso[I, Mor] {
	return s.units().LeftUnitor(x)
}

// RightUnitor is x⊗unit ≅ x. Requires unit data.
func (s *Structure[I, Ob, Mor]) RightUnitor(x graded.Obj[I, Ob]) graded.Iso[I, Mor] {
	return s.units().RightUnitor(x)
}

func (s *Structure[I, Ob, Mor]) units() *unitor.Builder[I, Ob, Mor] {
	if s.ub == nil {
		panic("monoidal: unit data not supplied")
	}
	return s.ub
}
