package finset

import "tensorloom/internal/cat"

// Pair renders the element of a product set formed from a and b. Element
// names must not contain the separator characters; the scenario loader
// rejects names that would make pairing ambiguous.
func Pair(a, b string) string { return "(" + a + "," + b + ")" }

// ProductTensor is the cartesian product as a monoidal structure on finite
// sets: unit is a one-point set, the associator reshapes ((a,b),c) into
// (a,(b,c)).
type ProductTensor struct{}

var _ cat.Unital[Set, Fn] = ProductTensor{}

// Ob returns the product set of x and y.
func (ProductTensor) Ob(x, y Set) Set {
	elems := make([]string, 0, x.Len()*y.Len())
	for _, a := range x.Elems() {
		for _, b := range y.Elems() {
			elems = append(elems, Pair(a, b))
		}
	}
	return NewSet(elems...)
}

// Hom applies f and g componentwise.
func (t ProductTensor) Hom(f, g Fn) Fn {
	dom := t.Ob(f.Dom(), g.Dom())
	cod := t.Ob(f.Cod(), g.Cod())
	m := make(map[string]string, dom.Len())
	for _, a := range f.Dom().Elems() {
		for _, b := range g.Dom().Elems() {
			m[Pair(a, b)] = Pair(f.At(a), g.At(b))
		}
	}
	return Fn{dom: dom, cod: cod, m: m}
}

// Associator is the canonical reshape (x×y)×z ≅ x×(y×z).
func (t ProductTensor) Associator(x, y, z Set) cat.Iso[Fn] {
	src := t.Ob(t.Ob(x, y), z)
	dst := t.Ob(x, t.Ob(y, z))
	hom := make(map[string]string, src.Len())
	inv := make(map[string]string, dst.Len())
	for _, a := range x.Elems() {
		for _, b := range y.Elems() {
			for _, c := range z.Elems() {
				l := Pair(Pair(a, b), c)
				r := Pair(a, Pair(b, c))
				hom[l] = r
				inv[r] = l
			}
		}
	}
	return cat.Iso[Fn]{
		Hom: Fn{dom: src, cod: dst, m: hom},
		Inv: Fn{dom: dst, cod: src, m: inv},
	}
}

// Unit is a one-point set.
func (ProductTensor) Unit() Set { return NewSet("*") }

// LeftUnit is unit×x ≅ x.
func (t ProductTensor) LeftUnit(x Set) cat.Iso[Fn] {
	src := t.Ob(t.Unit(), x)
	hom := make(map[string]string, x.Len())
	inv := make(map[string]string, x.Len())
	for _, a := range x.Elems() {
		hom[Pair("*", a)] = a
		inv[a] = Pair("*", a)
	}
	return cat.Iso[Fn]{
		Hom: Fn{dom: src, cod: x, m: hom},
		Inv: Fn{dom: x, cod: src, m: inv},
	}
}

// RightUnit is x×unit ≅ x.
func (t ProductTensor) RightUnit(x Set) cat.Iso[Fn] {
	src := t.Ob(x, t.Unit())
	hom := make(map[string]string, x.Len())
	inv := make(map[string]string, x.Len())
	for _, a := range x.Elems() {
		hom[Pair(a, "*")] = a
		inv[a] = Pair(a, "*")
	}
	return cat.Iso[Fn]{
		Hom: Fn{dom: src, cod: x, m: hom},
		Inv: Fn{dom: x, cod: src, m: inv},
	}
}
