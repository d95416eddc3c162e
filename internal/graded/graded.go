// Package graded defines graded objects — total families of category objects
// indexed by a monoid — and their pointwise morphism families. There is no
// structure beyond totality: a graded object is a function, built once and
// never mutated, and graded morphisms compose index by index.
package graded

import "tensorloom/internal/cat"

// Obj assigns an object of the category to every index.
type Obj[I comparable, Ob any] func(I) Ob

// Hom is a pointwise family of morphisms between two graded objects: one
// morphism G(i) → H(i) per index.
type Hom[I comparable, Mor any] func(I) Mor

// Iso is a pointwise family of isomorphisms.
type Iso[I comparable, Mor any] struct {
	Hom Hom[I, Mor]
	Inv Hom[I, Mor]
}

// Identity is the identity morphism family on x.
func Identity[I comparable, Ob, Mor any](c cat.Category[Ob, Mor], x Obj[I, Ob]) Hom[I, Mor] {
	return func(i I) Mor { return c.Identity(x(i)) }
}

// Compose composes two morphism families pointwise, diagrammatically.
func Compose[I comparable, Ob, Mor any](c cat.Category[Ob, Mor], f, g Hom[I, Mor]) Hom[I, Mor] {
	return func(i I) Mor { return c.Compose(f(i), g(i)) }
}

// EqualAt reports whether two morphism families agree at every sampled
// index. Equality over the whole (possibly infinite) index set is not
// decidable in general; the checker fixes a sample and this is the pointwise
// comparison it uses.
func EqualAt[I comparable, Ob, Mor any](c cat.Category[Ob, Mor], f, g Hom[I, Mor], sample ...I) bool {
	for _, i := range sample {
		if !c.Equal(f(i), g(i)) {
			return false
		}
	}
	return true
}

// Finite builds a finitely supported graded object: at(i) where given, def
// everywhere else. def is typically the category's initial or empty object.
func Finite[I comparable, Ob any](def Ob, at map[I]Ob) Obj[I, Ob] {
	return func(i I) Ob {
		if x, ok := at[i]; ok {
			return x
		}
		return def
	}
}
