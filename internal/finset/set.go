// Package finset is the category of finite sets, the primary concrete
// instance the engine is verified against. Objects are canonically sorted
// element sets, morphisms are total functions, the tensor is the cartesian
// product and the coproduct is a tagged disjoint union.
//
// Everything here is deterministic: sets keep a sorted canonical form, all
// loops run in that order, and rebuilding the same coproduct yields the same
// object and injections. The engine depends on that when it re-derives
// witnesses.
package finset

import (
	"fmt"
	"sort"
	"strings"
)

// Set is a finite set of named elements in sorted canonical form.
type Set struct {
	elems []string
}

// NewSet builds a set from the given elements, deduplicating and sorting.
func NewSet(elems ...string) Set {
	seen := make(map[string]bool, len(elems))
	out := make([]string, 0, len(elems))
	for _, e := range elems {
		if !seen[e] {
			seen[e] = true
			out = append(out, e)
		}
	}
	sort.Strings(out)
	return Set{elems: out}
}

// Elems returns the elements in canonical order. The slice is shared; do not
// mutate it.
func (s Set) Elems() []string { return s.elems }

// Len returns the number of elements.
func (s Set) Len() int { return len(s.elems) }

// Has reports membership.
func (s Set) Has(e string) bool {
	i := sort.SearchStrings(s.elems, e)
	return i < len(s.elems) && s.elems[i] == e
}

// Equal reports whether two sets have the same elements.
func (s Set) Equal(t Set) bool {
	if len(s.elems) != len(t.elems) {
		return false
	}
	for i := range s.elems {
		if s.elems[i] != t.elems[i] {
			return false
		}
	}
	return true
}

func (s Set) String() string {
	return "{" + strings.Join(s.elems, ",") + "}"
}

// Fn is a total function between finite sets.
type Fn struct {
	dom, cod Set
	m        map[string]string
}

// NewFn builds a function from dom to cod. The mapping must be total on dom
// and land in cod; a violation is a construction bug and panics.
func NewFn(dom, cod Set, m map[string]string) Fn {
	for _, e := range dom.Elems() {
		v, ok := m[e]
		if !ok {
			panic(fmt.Sprintf("finset: function undefined at %q (dom %v)", e, dom))
		}
		if !cod.Has(v) {
			panic(fmt.Sprintf("finset: image %q of %q outside codomain %v", v, e, cod))
		}
	}
	if len(m) != dom.Len() {
		panic(fmt.Sprintf("finset: mapping has %d entries for domain of size %d", len(m), dom.Len()))
	}
	return Fn{dom: dom, cod: cod, m: m}
}

// Dom returns the domain.
func (f Fn) Dom() Set { return f.dom }

// Cod returns the codomain.
func (f Fn) Cod() Set { return f.cod }

// At applies the function.
func (f Fn) At(e string) string {
	v, ok := f.m[e]
	if !ok {
		panic(fmt.Sprintf("finset: %q not in domain %v", e, f.dom))
	}
	return v
}

func (f Fn) String() string {
	parts := make([]string, 0, len(f.m))
	for _, e := range f.dom.Elems() {
		parts = append(parts, e+"↦"+f.m[e])
	}
	return "[" + strings.Join(parts, " ") + "]"
}

// Cat is the category structure: identity, diagrammatic composition,
// extensional equality. It also carries the initial object (the empty set).
type Cat struct{}

// Identity returns the identity function on x.
func (Cat) Identity(x Set) Fn {
	m := make(map[string]string, x.Len())
	for _, e := range x.Elems() {
		m[e] = e
	}
	return Fn{dom: x, cod: x, m: m}
}

// Compose returns f then g. The endpoints must match.
func (Cat) Compose(f, g Fn) Fn {
	if !f.cod.Equal(g.dom) {
		panic(fmt.Sprintf("finset: compose endpoint mismatch: cod %v vs dom %v", f.cod, g.dom))
	}
	m := make(map[string]string, f.dom.Len())
	for _, e := range f.dom.Elems() {
		m[e] = g.m[f.m[e]]
	}
	return Fn{dom: f.dom, cod: g.cod, m: m}
}

// Equal is extensional: same domain, same codomain, same values.
func (Cat) Equal(f, g Fn) bool {
	if !f.dom.Equal(g.dom) || !f.cod.Equal(g.cod) {
		return false
	}
	for _, e := range f.dom.Elems() {
		if f.m[e] != g.m[e] {
			return false
		}
	}
	return true
}

// Initial returns the empty set.
func (Cat) Initial() Set { return NewSet() }

// Out returns the unique function out of an initial source. The source must
// be empty; the unitor builder only calls this with the initial object or a
// product absorbing it.
func (Cat) Out(src, dst Set) Fn {
	if src.Len() != 0 {
		panic(fmt.Sprintf("finset: Out from non-initial source %v", src))
	}
	return Fn{dom: src, cod: dst, m: map[string]string{}}
}

// Collapse is the endomorphism sending every element of x to its least
// element (the identity on the empty set). It is the stock non-identity
// arrow used when exercising functoriality.
func Collapse(x Set) Fn {
	m := make(map[string]string, x.Len())
	for _, e := range x.Elems() {
		m[e] = x.Elems()[0]
	}
	return Fn{dom: x, cod: x, m: m}
}
