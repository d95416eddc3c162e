// Package tensor assembles the graded tensor product: the pointwise-indexed
// convolution of two graded objects over the fibers of the index monoid,
// together with its action on morphisms and the associator relating the two
// bracketings of a triple product.
//
// The construction is one-shot and deterministic. A Builder holds the index
// splitter, the ambient category, the tensor data, and the coproduct
// capabilities; every derived object and morphism is rebuilt on demand from
// those, so re-deriving a witness always reproduces the same structure.
// Ternary and 4-ary coproduct presentations are obtained from the binary one
// by nesting, never hand-assembled per arity.
package tensor

import (
	"tensorloom/internal/cat"
	"tensorloom/internal/coproduct"
	"tensorloom/internal/graded"
	"tensorloom/internal/index"
)

// Builder carries everything needed to form graded tensor products over a
// fixed index monoid and ambient category. A nil capability is a missing
// precondition and fails immediately at construction, not mid-derivation.
type Builder[I comparable, Ob, Mor any] struct {
	idx   index.Splitter[I]
	c     cat.Category[Ob, Mor]
	t     cat.Associative[Ob, Mor]
	co    coproduct.HasCoproducts[index.Pair[I], Ob, Mor]
	dist2 coproduct.Distributive[index.Pair[I], Ob, Mor]
	dist3 coproduct.Distributive[index.Triple[I], Ob, Mor]
}

// NewBuilder validates the capability set and returns a builder.
func NewBuilder[I comparable, Ob, Mor any](
	idx index.Splitter[I],
	c cat.Category[Ob, Mor],
	t cat.Associative[Ob, Mor],
	co coproduct.HasCoproducts[index.Pair[I], Ob, Mor],
	dist2 coproduct.Distributive[index.Pair[I], Ob, Mor],
	dist3 coproduct.Distributive[index.Triple[I], Ob, Mor],
) *Builder[I, Ob, Mor] {
	switch {
	case idx == nil:
		panic("tensor: nil index splitter")
	case c == nil:
		panic("tensor: nil category")
	case t == nil:
		panic("tensor: nil tensor data")
	case co == nil:
		panic("tensor: nil coproduct capability")
	case dist2 == nil:
		panic("tensor: nil binary distributivity capability")
	case dist3 == nil:
		panic("tensor: nil ternary distributivity capability")
	}
	return &Builder[I, Ob, Mor]{idx: idx, c: c, t: t, co: co, dist2: dist2, dist3: dist3}
}

// Index returns the index splitter.
func (b *Builder[I, Ob, Mor]) Index() index.Splitter[I] { return b.idx }

// Category returns the ambient category.
func (b *Builder[I, Ob, Mor]) Category() cat.Category[Ob, Mor] { return b.c }

// Tensor returns the base tensor data.
func (b *Builder[I, Ob, Mor]) Tensor() cat.Associative[Ob, Mor] { return b.t }

// Product is the graded tensor product of two graded objects. Its value at k
// is the coproduct, over all (i, j) with i+j = k, of x(i)⊗y(j).
type Product[I comparable, Ob, Mor any] struct {
	b *Builder[I, Ob, Mor]
	x graded.Obj[I, Ob]
	y graded.Obj[I, Ob]
}

// Product forms the graded tensor of x and y.
func (b *Builder[I, Ob, Mor]) Product(x, y graded.Obj[I, Ob]) *Product[I, Ob, Mor] {
	return &Product[I, Ob, Mor]{b: b, x: x, y: y}
}

// Witness presents the product's value at k as a coproduct over the binary
// fiber of k.
func (p *Product[I, Ob, Mor]) Witness(k I) coproduct.Witness[index.Pair[I], Ob, Mor] {
	return p.b.co.Coproduct(index.Fiber2(p.b.idx, k), func(pr index.Pair[I]) Ob {
		return p.b.t.Ob(p.x(pr.A), p.y(pr.B))
	})
}

// Obj returns the product as a graded object.
func (p *Product[I, Ob, Mor]) Obj() graded.Obj[I, Ob] {
	return func(k I) Ob { return p.Witness(k).Ob() }
}

// In is the canonical injection x(i)⊗y(j) → (x⊗y)(i+j). The target index is
// computed from the tuple, so an injection into the wrong fiber cannot be
// requested.
func (p *Product[I, Ob, Mor]) In(pr index.Pair[I]) Mor {
	return p.Witness(pr.Sum(p.b.idx)).In(pr)
}

// Hom lifts pointwise families f : x → x′ and g : y → y′ to a family
// src → dst between the corresponding products: each (i, j) component is
// sent through f(i)⊗g(j) and injected into the target fiber.
func (b *Builder[I, Ob, Mor]) Hom(src, dst *Product[I, Ob, Mor], f, g graded.Hom[I, Mor]) graded.Hom[I, Mor] {
	return func(k I) Mor {
		w := src.Witness(k)
		target := dst.Witness(k)
		return w.Desc(target.Ob(), func(pr index.Pair[I]) Mor {
			return b.c.Compose(b.t.Hom(f(pr.A), g(pr.B)), target.In(pr))
		})
	}
}
