// Package cat declares the contract an ambient category must satisfy for the
// graded engine to build tensor products over it. The engine never looks
// inside objects or morphisms; everything it does is phrased through these
// capabilities, supplied once per concrete category.
//
// Morphism equality is part of the category contract. The reference system
// discharges equations at type-check time; here they become checkable
// obligations, and Equal is what decides them.
package cat

// Category is a category with decidable morphism equality. Compose is
// diagrammatic: Compose(f, g) is "f then g". Composing morphisms whose
// endpoints do not match is a construction bug and implementations are
// expected to panic rather than return a junk morphism.
type Category[Ob, Mor any] interface {
	Identity(x Ob) Mor
	Compose(f, g Mor) Mor
	Equal(f, g Mor) bool
}

// Iso is an isomorphism presented by its two directions. Whether Hom and Inv
// actually invert each other is an obligation the checker verifies, not a
// structural guarantee.
type Iso[Mor any] struct {
	Hom Mor
	Inv Mor
}

// Tensor is a bifunctor on the category: a binary operation on objects with
// a componentwise action on morphisms. Functoriality in both arguments is
// assumed of implementations and re-verified by the checker on the graded
// side.
type Tensor[Ob, Mor any] interface {
	Ob(x, y Ob) Ob
	Hom(f, g Mor) Mor
}

// Associative is a tensor together with its associator: for each triple of
// objects, an isomorphism (x⊗y)⊗z ≅ x⊗(y⊗z), natural in all three arguments
// and satisfying the base pentagon law.
type Associative[Ob, Mor any] interface {
	Tensor[Ob, Mor]
	Associator(x, y, z Ob) Iso[Mor]
}

// Unital is an associative tensor with a unit object and unit isomorphisms
// unit⊗x ≅ x and x⊗unit ≅ x, satisfying the base triangle law.
type Unital[Ob, Mor any] interface {
	Associative[Ob, Mor]
	Unit() Ob
	LeftUnit(x Ob) Iso[Mor]
	RightUnit(x Ob) Iso[Mor]
}

// HasInitial supplies an initial object. Out returns the unique morphism
// src → dst for a source that is initial; the unitor builder also calls it
// with sources of the form initial⊗x and x⊗initial, so implementations must
// treat tensoring with the initial object as absorbing. Calling Out on a
// source that is not initial in that sense is a construction bug.
type HasInitial[Ob, Mor any] interface {
	Initial() Ob
	Out(src, dst Ob) Mor
}
