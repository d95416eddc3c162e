package finset

import (
	"fmt"

	"tensorloom/internal/coproduct"
	"tensorloom/internal/index"
)

// witness realizes a coproduct as a tagged union. All universal-property
// operations are derived from the injections, which must tile the coproduct
// object exactly (disjoint, jointly surjective); newWitness enforces that.
type witness[T comparable] struct {
	obj  Set
	keys []T
	inj  map[T]Fn
}

func newWitness[T comparable](obj Set, keys []T, inj map[T]Fn) *witness[T] {
	covered := make(map[string]bool, obj.Len())
	for _, t := range keys {
		f := inj[t]
		if !f.Cod().Equal(obj) {
			panic(fmt.Sprintf("finset: injection at %v targets %v, not %v", t, f.Cod(), obj))
		}
		for _, e := range f.Dom().Elems() {
			img := f.At(e)
			if covered[img] {
				panic(fmt.Sprintf("finset: injections overlap at %q", img))
			}
			covered[img] = true
		}
	}
	if len(covered) != obj.Len() {
		panic(fmt.Sprintf("finset: injections cover %d of %d elements", len(covered), obj.Len()))
	}
	return &witness[T]{obj: obj, keys: keys, inj: inj}
}

func (w *witness[T]) Ob() Set { return w.obj }

func (w *witness[T]) Keys() index.Seq[T] {
	return func(yield func(T) bool) {
		for _, t := range w.keys {
			if !yield(t) {
				return
			}
		}
	}
}

func (w *witness[T]) In(t T) Fn {
	f, ok := w.inj[t]
	if !ok {
		panic(fmt.Sprintf("finset: no injection at %v", t))
	}
	return f
}

// Desc builds the mediating morphism by reading each element back through
// the injection that produced it.
func (w *witness[T]) Desc(dst Set, leg func(T) Fn) Fn {
	m := make(map[string]string, w.obj.Len())
	for _, t := range w.keys {
		inj := w.inj[t]
		l := leg(t)
		if !l.Dom().Equal(inj.Dom()) {
			panic(fmt.Sprintf("finset: leg at %v has domain %v, want %v", t, l.Dom(), inj.Dom()))
		}
		if !l.Cod().Equal(dst) {
			panic(fmt.Sprintf("finset: leg at %v has codomain %v, want %v", t, l.Cod(), dst))
		}
		for _, e := range inj.Dom().Elems() {
			m[inj.At(e)] = l.At(e)
		}
	}
	return Fn{dom: w.obj, cod: dst, m: m}
}

func (w *witness[T]) Ext(f, g Fn) bool {
	return coproduct.ExtBy[T, Set, Fn](Cat{}, w, f, g)
}

// tag names the copy of elem contributed by the summand at key.
func tag[T comparable](key T, elem string) string {
	return fmt.Sprintf("%v·%s", key, elem)
}

type coproducts[T comparable] struct{}

// Coproducts is the HasCoproducts capability for finite sets, for any
// comparable fiber key type. The fiber must be finite.
func Coproducts[T comparable]() coproduct.HasCoproducts[T, Set, Fn] {
	return coproducts[T]{}
}

func (coproducts[T]) Coproduct(fiber index.Seq[T], at func(T) Set) coproduct.Witness[T, Set, Fn] {
	keys := index.Collect(fiber)
	var elems []string
	for _, t := range keys {
		for _, e := range at(t).Elems() {
			elems = append(elems, tag(t, e))
		}
	}
	obj := NewSet(elems...)
	inj := make(map[T]Fn, len(keys))
	for _, t := range keys {
		src := at(t)
		m := make(map[string]string, src.Len())
		for _, e := range src.Elems() {
			m[e] = tag(t, e)
		}
		inj[t] = Fn{dom: src, cod: obj, m: m}
	}
	return newWitness(obj, keys, inj)
}

type distrib[T comparable] struct{}

// Distrib is the Distributive capability: the cartesian product distributes
// over tagged unions, so tensoring a witness re-presents it over the same
// fiber.
func Distrib[T comparable]() coproduct.Distributive[T, Set, Fn] {
	return distrib[T]{}
}

func (distrib[T]) TensorRightWith(w coproduct.Witness[T, Set, Fn], z Set) coproduct.Witness[T, Set, Fn] {
	var t ProductTensor
	var c Cat
	obj := t.Ob(w.Ob(), z)
	keys := index.Collect(w.Keys())
	inj := make(map[T]Fn, len(keys))
	for _, k := range keys {
		inj[k] = t.Hom(w.In(k), c.Identity(z))
	}
	return newWitness(obj, keys, inj)
}

func (distrib[T]) TensorLeftWith(x Set, w coproduct.Witness[T, Set, Fn]) coproduct.Witness[T, Set, Fn] {
	var t ProductTensor
	var c Cat
	obj := t.Ob(x, w.Ob())
	keys := index.Collect(w.Keys())
	inj := make(map[T]Fn, len(keys))
	for _, k := range keys {
		inj[k] = t.Hom(c.Identity(x), w.In(k))
	}
	return newWitness(obj, keys, inj)
}
