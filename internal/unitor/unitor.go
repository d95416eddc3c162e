// Package unitor builds the unit graded object and the left/right unitor
// isomorphisms. The unit is concentrated at index zero: the base unit object
// there, the initial object everywhere else. Tensoring with it therefore
// collapses every fiber to its zero-indexed summand, because all other
// summands absorb the initial object and contribute nothing.
package unitor

import (
	"tensorloom/internal/cat"
	"tensorloom/internal/graded"
	"tensorloom/internal/index"
	"tensorloom/internal/tensor"
)

// Builder derives unitors on top of a tensor builder. It additionally needs
// the unit data of the base tensor and an initial object.
type Builder[I comparable, Ob, Mor any] struct {
	tb  *tensor.Builder[I, Ob, Mor]
	u   cat.Unital[Ob, Mor]
	ini cat.HasInitial[Ob, Mor]
}

// NewBuilder validates the capability set and returns a unitor builder. The
// unital structure must be the same tensor the base builder was constructed
// with.
func NewBuilder[I comparable, Ob, Mor any](
	tb *tensor.Builder[I, Ob, Mor],
	u cat.Unital[Ob, Mor],
	ini cat.HasInitial[Ob, Mor],
) *Builder[I, Ob, Mor] {
	switch {
	case tb == nil:
		panic("unitor: nil tensor builder")
	case u == nil:
		panic("unitor: nil unit data")
	case ini == nil:
		panic("unitor: nil initial-object capability")
	}
	return &Builder[I, Ob, Mor]{tb: tb, u: u, ini: ini}
}

// UnitObj is the unit graded object: the base unit at index zero, initial
// elsewhere. Index equality is decidable because indexes are comparable.
func (b *Builder[I, Ob, Mor]) UnitObj() graded.Obj[I, Ob] {
	zero := b.tb.Index().Zero()
	return func(i I) Ob {
		if i == zero {
			return b.u.Unit()
		}
		return b.ini.Initial()
	}
}

// LeftUnitor builds unit⊗x ≅ x. The forward direction descends from the
// product's fiber: the zero summand goes through the base left unit iso, and
// every other summand is a map out of an initial object.
func (b *Builder[I, Ob, Mor]) LeftUnitor(x graded.Obj[I, Ob]) graded.Iso[I, Mor] {
	c := b.tb.Category()
	idx := b.tb.Index()
	zero := idx.Zero()
	p := b.tb.Product(b.UnitObj(), x)

	hom := func(k I) Mor {
		return p.Witness(k).Desc(x(k), func(pr index.Pair[I]) Mor {
			if pr.A == zero {
				return b.u.LeftUnit(x(pr.B)).Hom
			}
			return b.ini.Out(b.u.Ob(b.ini.Initial(), x(pr.B)), x(k))
		})
	}
	inv := func(k I) Mor {
		return c.Compose(b.u.LeftUnit(x(k)).Inv, p.In(index.Pair[I]{A: zero, B: k}))
	}
	return graded.Iso[I, Mor]{Hom: hom, Inv: inv}
}

// RightUnitor builds x⊗unit ≅ x, mirror image of LeftUnitor.
func (b *Builder[I, Ob, Mor]) RightUnitor(x graded.Obj[I, Ob]) graded.Iso[I, Mor] {
	c := b.tb.Category()
	idx := b.tb.Index()
	zero := idx.Zero()
	p := b.tb.Product(x, b.UnitObj())

	hom := func(k I) Mor {
		return p.Witness(k).Desc(x(k), func(pr index.Pair[I]) Mor {
			if pr.B == zero {
				return b.u.RightUnit(x(pr.A)).Hom
			}
			return b.ini.Out(b.u.Ob(x(pr.A), b.ini.Initial()), x(k))
		})
	}
	inv := func(k I) Mor {
		return c.Compose(b.u.RightUnit(x(k)).Inv, p.In(index.Pair[I]{A: k, B: zero}))
	}
	return graded.Iso[I, Mor]{Hom: hom, Inv: inv}
}
