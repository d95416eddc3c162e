// Package coproduct models coproducts over fibers through their universal
// property: an object, a canonical injection per fiber tuple, a mediating
// morphism out of the coproduct (Desc), and extensionality (Ext). The engine
// never inspects how a concrete category realizes the coproduct; everything
// downstream of assembly goes through a Witness.
//
// Higher-arity presentations are never hand-built. Nest composes a coproduct
// of coproducts into a single witness over the joined fiber, and Distributive
// transports a witness across the tensor, so the ternary and 4-ary machinery
// is derived from the binary one.
package coproduct

import (
	"tensorloom/internal/cat"
	"tensorloom/internal/index"
)

// Witness is a coproduct presented by its universal property.
//
// Keys enumerates the fiber in the witness's canonical order. In(t) is the
// canonical injection of the summand at t. Desc produces the unique morphism
// to dst whose restriction along every injection is the given leg. Ext
// decides equality of two morphisms out of the coproduct by comparing them
// after every injection, which is exactly the uniqueness half of the
// universal property.
type Witness[T comparable, Ob, Mor any] interface {
	Ob() Ob
	Keys() index.Seq[T]
	In(t T) Mor
	Desc(dst Ob, leg func(T) Mor) Mor
	Ext(f, g Mor) bool
}

// HasCoproducts is the capability that the category admits coproducts over
// the fibers the engine asks for. It is supplied by the caller per concrete
// category; requesting an assembly without it fails at the call site, never
// inside the engine.
type HasCoproducts[T comparable, Ob, Mor any] interface {
	Coproduct(fiber index.Seq[T], at func(T) Ob) Witness[T, Ob, Mor]
}

// Distributive is the capability that tensoring preserves coproducts: given
// a witness w, the object w.Ob()⊗z is again a coproduct over the same fiber,
// with injections In(t)⊗id. This is what makes a nested graded tensor a
// coproduct over the flattened fiber.
type Distributive[T comparable, Ob, Mor any] interface {
	TensorRightWith(w Witness[T, Ob, Mor], z Ob) Witness[T, Ob, Mor]
	TensorLeftWith(x Ob, w Witness[T, Ob, Mor]) Witness[T, Ob, Mor]
}

// ExtBy is the canonical Ext implementation: f = g iff they agree after
// every injection. Concrete witnesses delegate to it.
func ExtBy[T comparable, Ob, Mor any](c cat.Category[Ob, Mor], w Witness[T, Ob, Mor], f, g Mor) bool {
	for t := range w.Keys() {
		if !c.Equal(c.Compose(w.In(t), f), c.Compose(w.In(t), g)) {
			return false
		}
	}
	return true
}

// nested is a coproduct-of-coproducts flattened over the joined fiber.
type nested[S, T, U comparable, Ob, Mor any] struct {
	c     cat.Category[Ob, Mor]
	outer Witness[S, Ob, Mor]
	inner func(S) Witness[T, Ob, Mor]
	join  func(S, T) U
	split func(U) (S, T)
}

// Nest presents a two-level coproduct as a single witness over the joined
// key set. inner(s) must witness the summand of outer at s as a coproduct in
// its own right (typically via Distributive), and join/split must be inverse
// bijections between the joined keys and the (outer, inner) key pairs.
func Nest[S, T, U comparable, Ob, Mor any](
	c cat.Category[Ob, Mor],
	outer Witness[S, Ob, Mor],
	inner func(S) Witness[T, Ob, Mor],
	join func(S, T) U,
	split func(U) (S, T),
) Witness[U, Ob, Mor] {
	return nested[S, T, U, Ob, Mor]{c: c, outer: outer, inner: inner, join: join, split: split}
}

func (n nested[S, T, U, Ob, Mor]) Ob() Ob {
	return n.outer.Ob()
}

func (n nested[S, T, U, Ob, Mor]) Keys() index.Seq[U] {
	return func(yield func(U) bool) {
		for s := range n.outer.Keys() {
			for t := range n.inner(s).Keys() {
				if !yield(n.join(s, t)) {
					return
				}
			}
		}
	}
}

func (n nested[S, T, U, Ob, Mor]) In(u U) Mor {
	s, t := n.split(u)
	return n.c.Compose(n.inner(s).In(t), n.outer.In(s))
}

func (n nested[S, T, U, Ob, Mor]) Desc(dst Ob, leg func(U) Mor) Mor {
	return n.outer.Desc(dst, func(s S) Mor {
		return n.inner(s).Desc(dst, func(t T) Mor {
			return leg(n.join(s, t))
		})
	})
}

func (n nested[S, T, U, Ob, Mor]) Ext(f, g Mor) bool {
	return ExtBy[U](n.c, n, f, g)
}
