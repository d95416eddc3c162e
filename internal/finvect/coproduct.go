package finvect

import (
	"fmt"

	"tensorloom/internal/coproduct"
	"tensorloom/internal/index"
)

// witness realizes a direct sum through basis injections: every injection
// column is a standard basis vector of the sum, the images are disjoint, and
// together they span. Desc reads each summand's columns back through that
// basis correspondence.
type witness[T comparable] struct {
	obj  int
	keys []T
	inj  map[T]Mat
}

func newWitness[T comparable](obj int, keys []T, inj map[T]Mat) *witness[T] {
	covered := make(map[int]bool, obj)
	for _, t := range keys {
		m := inj[t]
		if m.Rows != obj {
			panic(fmt.Sprintf("finvect: injection at %v has codomain %d, want %d", t, m.Rows, obj))
		}
		for j := 0; j < m.Cols; j++ {
			r := basisRow(m, j)
			if covered[r] {
				panic(fmt.Sprintf("finvect: injections overlap at basis vector %d", r))
			}
			covered[r] = true
		}
	}
	if len(covered) != obj {
		panic(fmt.Sprintf("finvect: injections span %d of %d dimensions", len(covered), obj))
	}
	return &witness[T]{obj: obj, keys: keys, inj: inj}
}

// basisRow returns the unique row in which column j carries a 1. Injections
// must be basis maps; anything else is a construction bug.
func basisRow(m Mat, j int) int {
	row := -1
	for i := 0; i < m.Rows; i++ {
		v := m.At(i, j)
		switch {
		case v == 0:
		case v == 1 && row < 0:
			row = i
		default:
			panic(fmt.Sprintf("finvect: injection column %d is not a basis vector", j))
		}
	}
	if row < 0 {
		panic(fmt.Sprintf("finvect: injection column %d is zero", j))
	}
	return row
}

func (w *witness[T]) Ob() int { return w.obj }

func (w *witness[T]) Keys() index.Seq[T] {
	return func(yield func(T) bool) {
		for _, t := range w.keys {
			if !yield(t) {
				return
			}
		}
	}
}

func (w *witness[T]) In(t T) Mat {
	m, ok := w.inj[t]
	if !ok {
		panic(fmt.Sprintf("finvect: no injection at %v", t))
	}
	return m
}

func (w *witness[T]) Desc(dst int, leg func(T) Mat) Mat {
	out := Zeros(dst, w.obj)
	for _, t := range w.keys {
		inj := w.inj[t]
		l := leg(t)
		if l.Rows != dst || l.Cols != inj.Cols {
			panic(fmt.Sprintf("finvect: leg at %v has shape %dx%d, want %dx%d", t, l.Rows, l.Cols, dst, inj.Cols))
		}
		for j := 0; j < inj.Cols; j++ {
			r := basisRow(inj, j)
			for i := 0; i < dst; i++ {
				out.Set(i, r, l.At(i, j))
			}
		}
	}
	return out
}

func (w *witness[T]) Ext(f, g Mat) bool {
	return coproduct.ExtBy[T, int, Mat](Cat{}, w, f, g)
}

type coproducts[T comparable] struct{}

// Coproducts is the direct-sum capability for any comparable fiber key type.
// The fiber must be finite.
func Coproducts[T comparable]() coproduct.HasCoproducts[T, int, Mat] {
	return coproducts[T]{}
}

func (coproducts[T]) Coproduct(fiber index.Seq[T], at func(T) int) coproduct.Witness[T, int, Mat] {
	keys := index.Collect(fiber)
	total := 0
	for _, t := range keys {
		total += at(t)
	}
	inj := make(map[T]Mat, len(keys))
	off := 0
	for _, t := range keys {
		d := at(t)
		m := Zeros(total, d)
		for j := 0; j < d; j++ {
			m.Set(off+j, j, 1)
		}
		inj[t] = m
		off += d
	}
	return newWitness(total, keys, inj)
}

type distrib[T comparable] struct{}

// Distrib is the Distributive capability: Kronecker products of basis
// injections are again basis injections over the same fiber.
func Distrib[T comparable]() coproduct.Distributive[T, int, Mat] {
	return distrib[T]{}
}

func (distrib[T]) TensorRightWith(w coproduct.Witness[T, int, Mat], z int) coproduct.Witness[T, int, Mat] {
	keys := index.Collect(w.Keys())
	inj := make(map[T]Mat, len(keys))
	for _, t := range keys {
		inj[t] = Kron(w.In(t), Eye(z))
	}
	return newWitness(w.Ob()*z, keys, inj)
}

func (distrib[T]) TensorLeftWith(x int, w coproduct.Witness[T, int, Mat]) coproduct.Witness[T, int, Mat] {
	keys := index.Collect(w.Keys())
	inj := make(map[T]Mat, len(keys))
	for _, t := range keys {
		inj[t] = Kron(Eye(x), w.In(t))
	}
	return newWitness(x*w.Ob(), keys, inj)
}
