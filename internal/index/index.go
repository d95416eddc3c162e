// Package index defines the additive index sets that grade every object in
// the engine, the tuple shapes the reindexer works over, and the fiber
// enumeration that groups tuples by their component sum.
//
// An index set is a commutative monoid. Fibers are exposed as lazy sequences
// rather than slices so that index sets with large or unbounded fibers stay
// representable; nothing in this package assumes a fiber is finite, only that
// the Splitter can enumerate it.
package index

// Seq is a lazy sequence of values. It follows the range-over-func shape, so
// callers iterate with a plain for-range loop. A sequence may be consumed any
// number of times and must yield the same values in the same order each time;
// the engine relies on that determinism when it re-derives a coproduct.
type Seq[T any] func(yield func(T) bool)

// Collect drains a sequence into a slice. Only call this on sequences known
// to be finite, e.g. fibers of ℕ.
func Collect[T any](s Seq[T]) []T {
	var out []T
	for v := range s {
		out = append(out, v)
	}
	return out
}

// Monoid is a commutative additive monoid structure on I. Implementations
// must satisfy associativity, commutativity, and Zero as two-sided identity;
// the fiber machinery is only coherent under those laws.
type Monoid[I comparable] interface {
	Zero() I
	Add(a, b I) I
}

// Splitter extends a monoid with enumeration of its binary sum
// decompositions. Split(k) yields every pair (i, j) with i+j = k, in a fixed
// deterministic order. All higher-arity fibers are derived from Split.
type Splitter[I comparable] interface {
	Monoid[I]
	Split(k I) Seq[Pair[I]]
}

// Pair is a 2-tuple of indexes.
type Pair[I comparable] struct{ A, B I }

// Triple is a 3-tuple of indexes.
type Triple[I comparable] struct{ A, B, C I }

// Quad is a 4-tuple of indexes.
type Quad[I comparable] struct{ A, B, C, D I }

// Sum returns A+B.
func (p Pair[I]) Sum(m Monoid[I]) I { return m.Add(p.A, p.B) }

// Sum returns A+B+C.
func (t Triple[I]) Sum(m Monoid[I]) I { return m.Add(m.Add(t.A, t.B), t.C) }

// Sum returns A+B+C+D.
func (q Quad[I]) Sum(m Monoid[I]) I { return m.Add(m.Add(m.Add(q.A, q.B), q.C), q.D) }

// Fiber2 enumerates the binary fiber of k: all pairs summing to k.
func Fiber2[I comparable](s Splitter[I], k I) Seq[Pair[I]] {
	return s.Split(k)
}

// Fiber3 enumerates the ternary fiber of k: all triples (i, j, l) with
// i+j+l = k. The order nests Split left-first, grouping (i, j) before l,
// which matches the left-bracketed coproduct presentation.
func Fiber3[I comparable](s Splitter[I], k I) Seq[Triple[I]] {
	return func(yield func(Triple[I]) bool) {
		for outer := range s.Split(k) {
			for inner := range s.Split(outer.A) {
				if !yield(Triple[I]{inner.A, inner.B, outer.B}) {
					return
				}
			}
		}
	}
}

// Fiber4 enumerates the 4-ary fiber of k, nesting left-first like Fiber3.
func Fiber4[I comparable](s Splitter[I], k I) Seq[Quad[I]] {
	return func(yield func(Quad[I]) bool) {
		for outer := range s.Split(k) {
			for t := range Fiber3(s, outer.A) {
				if !yield(Quad[I]{t.A, t.B, t.C, outer.B}) {
					return
				}
			}
		}
	}
}
