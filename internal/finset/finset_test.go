package finset

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tensorloom/internal/index"
)

func TestSetCanonicalForm(t *testing.T) {
	s := NewSet("b", "a", "b", "c")
	assert.Empty(t, cmp.Diff([]string{"a", "b", "c"}, s.Elems()))
	assert.True(t, s.Has("b"))
	assert.False(t, s.Has("d"))
	assert.True(t, s.Equal(NewSet("c", "a", "b")))
}

func TestCatLaws(t *testing.T) {
	var c Cat
	x := NewSet("a", "b")
	y := NewSet("u", "v")
	f := NewFn(x, y, map[string]string{"a": "u", "b": "v"})

	t.Run("identity is neutral", func(t *testing.T) {
		assert.True(t, c.Equal(f, c.Compose(c.Identity(x), f)))
		assert.True(t, c.Equal(f, c.Compose(f, c.Identity(y))))
	})

	t.Run("compose mismatched endpoints panics", func(t *testing.T) {
		g := NewFn(x, x, map[string]string{"a": "a", "b": "a"})
		assert.Panics(t, func() { c.Compose(f, g) })
	})

	t.Run("out of non-initial panics", func(t *testing.T) {
		assert.Panics(t, func() { c.Out(x, y) })
	})
}

func TestNewFnValidation(t *testing.T) {
	x := NewSet("a", "b")
	y := NewSet("u")

	assert.Panics(t, func() { NewFn(x, y, map[string]string{"a": "u"}) }, "partial map")
	assert.Panics(t, func() { NewFn(x, y, map[string]string{"a": "u", "b": "w"}) }, "image outside codomain")
}

func TestProductTensor(t *testing.T) {
	var pt ProductTensor
	x := NewSet("a")
	y := NewSet("b")
	z := NewSet("c")

	t.Run("object", func(t *testing.T) {
		assert.True(t, pt.Ob(x, y).Equal(NewSet("(a,b)")))
	})

	t.Run("associator reshapes", func(t *testing.T) {
		iso := pt.Associator(x, y, z)
		assert.Equal(t, "(a,(b,c))", iso.Hom.At("((a,b),c)"))
		assert.Equal(t, "((a,b),c)", iso.Inv.At("(a,(b,c))"))
	})

	t.Run("associator round-trips", func(t *testing.T) {
		var c Cat
		iso := pt.Associator(NewSet("a", "a2"), y, z)
		assert.True(t, c.Equal(c.Compose(iso.Hom, iso.Inv), c.Identity(iso.Hom.Dom())))
		assert.True(t, c.Equal(c.Compose(iso.Inv, iso.Hom), c.Identity(iso.Hom.Cod())))
	})

	t.Run("unit isos", func(t *testing.T) {
		var c Cat
		lu := pt.LeftUnit(x)
		require.Equal(t, "a", lu.Hom.At("(*,a)"))
		assert.True(t, c.Equal(c.Compose(lu.Inv, lu.Hom), c.Identity(x)))
		ru := pt.RightUnit(x)
		require.Equal(t, "a", ru.Hom.At("(a,*)"))
	})

	t.Run("base triangle", func(t *testing.T) {
		var c Cat
		a := pt.Associator(x, pt.Unit(), y)
		lhs := c.Compose(a.Hom, pt.Hom(c.Identity(x), pt.LeftUnit(y).Hom))
		rhs := pt.Hom(pt.RightUnit(x).Hom, c.Identity(y))
		assert.True(t, c.Equal(lhs, rhs))
	})
}

func fiberOf[T comparable](keys ...T) index.Seq[T] {
	return func(yield func(T) bool) {
		for _, k := range keys {
			if !yield(k) {
				return
			}
		}
	}
}

func TestCoproduct(t *testing.T) {
	var c Cat
	co := Coproducts[int]()
	at := func(k int) Set {
		if k == 0 {
			return NewSet("a", "b")
		}
		return NewSet("z")
	}
	w := co.Coproduct(fiberOf(0, 1), at)

	t.Run("object is the tagged union", func(t *testing.T) {
		assert.Equal(t, 3, w.Ob().Len())
	})

	t.Run("injections are disjoint sections", func(t *testing.T) {
		in0 := w.In(0)
		in1 := w.In(1)
		assert.True(t, in0.Dom().Equal(NewSet("a", "b")))
		assert.NotEqual(t, in0.At("a"), in1.At("z"))
	})

	t.Run("desc restricts to its legs", func(t *testing.T) {
		dst := NewSet("p", "q")
		leg := func(k int) Fn {
			if k == 0 {
				return NewFn(at(0), dst, map[string]string{"a": "p", "b": "q"})
			}
			return NewFn(at(1), dst, map[string]string{"z": "q"})
		}
		d := w.Desc(dst, leg)
		assert.True(t, c.Equal(c.Compose(w.In(0), d), leg(0)))
		assert.True(t, c.Equal(c.Compose(w.In(1), d), leg(1)))
	})

	t.Run("ext separates distinct maps", func(t *testing.T) {
		dst := NewSet("p", "q")
		d1 := w.Desc(dst, func(k int) Fn {
			if k == 0 {
				return NewFn(at(0), dst, map[string]string{"a": "p", "b": "q"})
			}
			return NewFn(at(1), dst, map[string]string{"z": "q"})
		})
		d2 := w.Desc(dst, func(k int) Fn {
			if k == 0 {
				return NewFn(at(0), dst, map[string]string{"a": "p", "b": "q"})
			}
			return NewFn(at(1), dst, map[string]string{"z": "p"})
		})
		assert.True(t, w.Ext(d1, d1))
		assert.False(t, w.Ext(d1, d2))
	})
}

func TestDistrib(t *testing.T) {
	var c Cat
	var pt ProductTensor
	co := Coproducts[int]()
	at := func(k int) Set { return NewSet("e") }
	w := co.Coproduct(fiberOf(0, 1), at)
	z := NewSet("z1", "z2")

	right := Distrib[int]().TensorRightWith(w, z)
	assert.True(t, right.Ob().Equal(pt.Ob(w.Ob(), z)))
	assert.True(t, c.Equal(right.In(0), pt.Hom(w.In(0), c.Identity(z))))

	left := Distrib[int]().TensorLeftWith(z, w)
	assert.True(t, left.Ob().Equal(pt.Ob(z, w.Ob())))
	assert.True(t, c.Equal(left.In(1), pt.Hom(c.Identity(z), w.In(1))))
}

func TestCollapse(t *testing.T) {
	x := NewSet("m", "n")
	f := Collapse(x)
	assert.Equal(t, "m", f.At("n"))
	assert.Equal(t, "m", f.At("m"))
}
