package tensor

import (
	"tensorloom/internal/coproduct"
	"tensorloom/internal/graded"
	"tensorloom/internal/index"
)

// TripleLeft presents ((x⊗y)⊗z)(k) as a coproduct over the ternary fiber of
// k. The outer binary witness is refined through distributivity: each
// summand (x⊗y)(a)⊗z(c) is itself a coproduct over the decompositions of a.
func (b *Builder[I, Ob, Mor]) TripleLeft(x, y, z graded.Obj[I, Ob], k I) coproduct.Witness[index.Triple[I], Ob, Mor] {
	xy := b.Product(x, y)
	outer := b.Product(xy.Obj(), z).Witness(k)
	return coproduct.Nest(b.c, outer,
		func(s index.Pair[I]) coproduct.Witness[index.Pair[I], Ob, Mor] {
			return b.dist2.TensorRightWith(xy.Witness(s.A), z(s.B))
		},
		func(s, t index.Pair[I]) index.Triple[I] {
			return index.Triple[I]{A: t.A, B: t.B, C: s.B}
		},
		func(u index.Triple[I]) (index.Pair[I], index.Pair[I]) {
			return index.Pair[I]{A: b.idx.Add(u.A, u.B), B: u.C}, index.Pair[I]{A: u.A, B: u.B}
		},
	)
}

// TripleRight presents (x⊗(y⊗z))(k) over the same ternary fiber, refining
// each summand x(a)⊗(y⊗z)(c) through left distributivity.
func (b *Builder[I, Ob, Mor]) TripleRight(x, y, z graded.Obj[I, Ob], k I) coproduct.Witness[index.Triple[I], Ob, Mor] {
	yz := b.Product(y, z)
	outer := b.Product(x, yz.Obj()).Witness(k)
	return coproduct.Nest(b.c, outer,
		func(s index.Pair[I]) coproduct.Witness[index.Pair[I], Ob, Mor] {
			return b.dist2.TensorLeftWith(x(s.A), yz.Witness(s.B))
		},
		func(s, t index.Pair[I]) index.Triple[I] {
			return index.Triple[I]{A: s.A, B: t.A, C: t.B}
		},
		func(u index.Triple[I]) (index.Pair[I], index.Pair[I]) {
			return index.Pair[I]{A: u.A, B: b.idx.Add(u.B, u.C)}, index.Pair[I]{A: u.B, B: u.C}
		},
	)
}

// In3Left is the three-fold injection (x(i)⊗y(j))⊗z(l) → ((x⊗y)⊗z)(i+j+l).
func (b *Builder[I, Ob, Mor]) In3Left(x, y, z graded.Obj[I, Ob], t index.Triple[I]) Mor {
	return b.TripleLeft(x, y, z, t.Sum(b.idx)).In(t)
}

// In3Right is the three-fold injection x(i)⊗(y(j)⊗z(l)) → (x⊗(y⊗z))(i+j+l).
func (b *Builder[I, Ob, Mor]) In3Right(x, y, z graded.Obj[I, Ob], t index.Triple[I]) Mor {
	return b.TripleRight(x, y, z, t.Sum(b.idx)).In(t)
}

// Associator builds the graded associator (x⊗y)⊗z ≅ x⊗(y⊗z). Each direction
// descends from one ternary presentation to the other, threading the base
// associator component at every triple.
func (b *Builder[I, Ob, Mor]) Associator(x, y, z graded.Obj[I, Ob]) graded.Iso[I, Mor] {
	hom := func(k I) Mor {
		left := b.TripleLeft(x, y, z, k)
		right := b.TripleRight(x, y, z, k)
		return left.Desc(right.Ob(), func(t index.Triple[I]) Mor {
			base := b.t.Associator(x(t.A), y(t.B), z(t.C))
			return b.c.Compose(base.Hom, right.In(t))
		})
	}
	inv := func(k I) Mor {
		left := b.TripleLeft(x, y, z, k)
		right := b.TripleRight(x, y, z, k)
		return right.Desc(left.Ob(), func(t index.Triple[I]) Mor {
			base := b.t.Associator(x(t.A), y(t.B), z(t.C))
			return b.c.Compose(base.Inv, left.In(t))
		})
	}
	return graded.Iso[I, Mor]{Hom: hom, Inv: inv}
}

// QuadLeft presents ((((w⊗x)⊗y)⊗z))(k) over the 4-ary fiber of k, nesting
// the left ternary presentation one level further. The pentagon obligation
// is discharged by extensionality against this witness.
func (b *Builder[I, Ob, Mor]) QuadLeft(w, x, y, z graded.Obj[I, Ob], k I) coproduct.Witness[index.Quad[I], Ob, Mor] {
	wxy := b.Product(b.Product(w, x).Obj(), y)
	outer := b.Product(wxy.Obj(), z).Witness(k)
	return coproduct.Nest(b.c, outer,
		func(s index.Pair[I]) coproduct.Witness[index.Triple[I], Ob, Mor] {
			return b.dist3.TensorRightWith(b.TripleLeft(w, x, y, s.A), z(s.B))
		},
		func(s index.Pair[I], t index.Triple[I]) index.Quad[I] {
			return index.Quad[I]{A: t.A, B: t.B, C: t.C, D: s.B}
		},
		func(u index.Quad[I]) (index.Pair[I], index.Triple[I]) {
			outerKey := index.Pair[I]{A: b.idx.Add(b.idx.Add(u.A, u.B), u.C), B: u.D}
			return outerKey, index.Triple[I]{A: u.A, B: u.B, C: u.C}
		},
	)
}
