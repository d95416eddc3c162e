package tensor_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tensorloom/internal/finset"
	"tensorloom/internal/graded"
	"tensorloom/internal/index"
	"tensorloom/internal/tensor"
)

func newBuilder() *tensor.Builder[int, finset.Set, finset.Fn] {
	return tensor.NewBuilder[int, finset.Set, finset.Fn](
		index.Nat{}, finset.Cat{}, finset.ProductTensor{},
		finset.Coproducts[index.Pair[int]](),
		finset.Distrib[index.Pair[int]](),
		finset.Distrib[index.Triple[int]](),
	)
}

func supported(at map[int]finset.Set) graded.Obj[int, finset.Set] {
	return graded.Finite(finset.NewSet(), at)
}

func TestNewBuilderRejectsMissingCapabilities(t *testing.T) {
	assert.Panics(t, func() {
		tensor.NewBuilder[int, finset.Set, finset.Fn](
			index.Nat{}, finset.Cat{}, finset.ProductTensor{},
			nil,
			finset.Distrib[index.Pair[int]](),
			finset.Distrib[index.Triple[int]](),
		)
	})
	assert.Panics(t, func() {
		tensor.NewBuilder[int, finset.Set, finset.Fn](
			nil, finset.Cat{}, finset.ProductTensor{},
			finset.Coproducts[index.Pair[int]](),
			finset.Distrib[index.Pair[int]](),
			finset.Distrib[index.Triple[int]](),
		)
	})
}

func TestProductObject(t *testing.T) {
	b := newBuilder()
	x := supported(map[int]finset.Set{0: finset.NewSet("a"), 1: finset.NewSet("a1")})
	y := supported(map[int]finset.Set{0: finset.NewSet("b")})
	p := b.Product(x, y)

	t.Run("fiber cardinalities convolve", func(t *testing.T) {
		assert.Equal(t, 1, p.Obj()(0).Len()) // only (0,0) contributes
		assert.Equal(t, 1, p.Obj()(1).Len()) // only (1,0)
		assert.Equal(t, 0, p.Obj()(2).Len())
	})

	t.Run("witness is stable under rederivation", func(t *testing.T) {
		var c finset.Cat
		w1 := p.Witness(1)
		w2 := p.Witness(1)
		assert.True(t, w1.Ob().Equal(w2.Ob()))
		assert.True(t, c.Equal(w1.In(index.Pair[int]{A: 1, B: 0}), w2.In(index.Pair[int]{A: 1, B: 0})))
	})

	t.Run("injection lands in the summed fiber", func(t *testing.T) {
		in := p.In(index.Pair[int]{A: 1, B: 0})
		assert.True(t, in.Cod().Equal(p.Obj()(1)))
	})
}

func TestHomRestrictsAlongInjections(t *testing.T) {
	var c finset.Cat
	var pt finset.ProductTensor
	b := newBuilder()
	x := supported(map[int]finset.Set{0: finset.NewSet("a1", "a2")})
	y := supported(map[int]finset.Set{0: finset.NewSet("b"), 1: finset.NewSet("b2")})
	p := b.Product(x, y)

	fx := func(i int) finset.Fn { return finset.Collapse(x(i)) }
	idy := graded.Identity[int, finset.Set, finset.Fn](c, y)
	h := b.Hom(p, p, fx, idy)

	for _, k := range []int{0, 1} {
		w := p.Witness(k)
		for pr := range w.Keys() {
			lhs := c.Compose(w.In(pr), h(k))
			rhs := c.Compose(pt.Hom(fx(pr.A), idy(pr.B)), p.In(pr))
			require.True(t, c.Equal(lhs, rhs), "component %v at %d", pr, k)
		}
	}
}

func TestTriplePresentationsAgreeOnObjects(t *testing.T) {
	b := newBuilder()
	x := supported(map[int]finset.Set{0: finset.NewSet("a"), 1: finset.NewSet("a1")})
	y := supported(map[int]finset.Set{0: finset.NewSet("b")})
	z := supported(map[int]finset.Set{1: finset.NewSet("c")})

	left := b.Product(b.Product(x, y).Obj(), z)
	right := b.Product(x, b.Product(y, z).Obj())

	for k := 0; k <= 3; k++ {
		wl := b.TripleLeft(x, y, z, k)
		wr := b.TripleRight(x, y, z, k)

		assert.True(t, wl.Ob().Equal(left.Obj()(k)), "left presentation at %d", k)
		assert.True(t, wr.Ob().Equal(right.Obj()(k)), "right presentation at %d", k)

		// Same ternary fiber underneath both bracketings.
		lk := index.Collect(wl.Keys())
		rk := index.Collect(wr.Keys())
		assert.ElementsMatch(t, lk, rk, "fibers at %d", k)
	}
}

func TestIn3MatchesNestedInjections(t *testing.T) {
	var c finset.Cat
	var pt finset.ProductTensor
	b := newBuilder()
	x := supported(map[int]finset.Set{1: finset.NewSet("a")})
	y := supported(map[int]finset.Set{0: finset.NewSet("b")})
	z := supported(map[int]finset.Set{1: finset.NewSet("c")})

	tr := index.Triple[int]{A: 1, B: 0, C: 1}
	xy := b.Product(x, y)

	got := b.In3Left(x, y, z, tr)
	outer := b.Product(xy.Obj(), z)
	want := c.Compose(
		pt.Hom(xy.In(index.Pair[int]{A: 1, B: 0}), c.Identity(z(1))),
		outer.In(index.Pair[int]{A: 1, B: 1}),
	)
	assert.True(t, c.Equal(got, want))
}

func TestAssociatorComponents(t *testing.T) {
	var c finset.Cat
	b := newBuilder()
	x := supported(map[int]finset.Set{0: finset.NewSet("a"), 1: finset.NewSet("p", "q")})
	y := supported(map[int]finset.Set{0: finset.NewSet("b")})
	z := supported(map[int]finset.Set{0: finset.NewSet("c")})

	a := b.Associator(x, y, z)

	t.Run("per-injection component is the base associator", func(t *testing.T) {
		for _, k := range []int{0, 1} {
			wl := b.TripleLeft(x, y, z, k)
			for tr := range wl.Keys() {
				base := finset.ProductTensor{}.Associator(x(tr.A), y(tr.B), z(tr.C))
				lhs := c.Compose(wl.In(tr), a.Hom(k))
				rhs := c.Compose(base.Hom, b.In3Right(x, y, z, tr))
				require.True(t, c.Equal(lhs, rhs), "triple %v at %d", tr, k)
			}
		}
	})

	t.Run("round trip is the identity", func(t *testing.T) {
		for _, k := range []int{0, 1, 2} {
			wl := b.TripleLeft(x, y, z, k)
			wr := b.TripleRight(x, y, z, k)
			assert.True(t, wl.Ext(c.Compose(a.Hom(k), a.Inv(k)), c.Identity(wl.Ob())), "hom;inv at %d", k)
			assert.True(t, wr.Ext(c.Compose(a.Inv(k), a.Hom(k)), c.Identity(wr.Ob())), "inv;hom at %d", k)
		}
	})
}

func TestQuadLeftCoversTheFourFoldFiber(t *testing.T) {
	b := newBuilder()
	x := supported(map[int]finset.Set{0: finset.NewSet("a"), 1: finset.NewSet("a1")})
	y := supported(map[int]finset.Set{0: finset.NewSet("b")})
	z := supported(map[int]finset.Set{0: finset.NewSet("c")})
	w := supported(map[int]finset.Set{0: finset.NewSet("d")})

	q := b.QuadLeft(x, y, z, w, 1)
	keys := index.Collect(q.Keys())
	assert.NotEmpty(t, keys)
	for _, u := range keys {
		assert.Equal(t, 1, u.Sum(index.Nat{}))
	}

	obj := b.Product(b.Product(b.Product(x, y).Obj(), z).Obj(), w).Obj()(1)
	assert.True(t, q.Ob().Equal(obj))
}
