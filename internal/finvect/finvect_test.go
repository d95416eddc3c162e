package finvect_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tensorloom/internal/finvect"
	"tensorloom/internal/graded"
	"tensorloom/internal/index"
	"tensorloom/internal/monoidal"
	"tensorloom/internal/tensor"
	"tensorloom/internal/unitor"
)

func TestKernels(t *testing.T) {
	t.Run("mul against a known product", func(t *testing.T) {
		a := finvect.Mat{Rows: 2, Cols: 2, A: []float64{1, 2, 3, 4}}
		b := finvect.Mat{Rows: 2, Cols: 1, A: []float64{5, 6}}
		got := finvect.Mul(a, b)
		assert.True(t, finvect.AllClose(got, finvect.Mat{Rows: 2, Cols: 1, A: []float64{17, 39}}))
	})

	t.Run("kron shape and entries", func(t *testing.T) {
		a := finvect.Mat{Rows: 1, Cols: 2, A: []float64{1, 2}}
		b := finvect.Mat{Rows: 2, Cols: 1, A: []float64{3, 4}}
		got := finvect.Kron(a, b)
		require.Equal(t, 2, got.Rows)
		require.Equal(t, 2, got.Cols)
		assert.True(t, finvect.AllClose(got, finvect.Mat{Rows: 2, Cols: 2, A: []float64{3, 6, 4, 8}}))
	})

	t.Run("kron is strictly associative", func(t *testing.T) {
		a := finvect.Eye(2)
		b := finvect.Mat{Rows: 2, Cols: 1, A: []float64{1, -1}}
		c := finvect.Mat{Rows: 1, Cols: 3, A: []float64{2, 0, 1}}
		assert.True(t, finvect.AllClose(
			finvect.Kron(finvect.Kron(a, b), c),
			finvect.Kron(a, finvect.Kron(b, c)),
		))
	})

	t.Run("mismatched product panics", func(t *testing.T) {
		assert.Panics(t, func() { finvect.Mul(finvect.Eye(2), finvect.Eye(3)) })
	})
}

func TestDirectSumWitness(t *testing.T) {
	var c finvect.Cat
	co := finvect.Coproducts[int]()
	dims := map[int]int{0: 2, 1: 1, 2: 3}
	fiber := func(yield func(int) bool) {
		for _, k := range []int{0, 1, 2} {
			if !yield(k) {
				return
			}
		}
	}
	w := co.Coproduct(fiber, func(k int) int { return dims[k] })

	require.Equal(t, 6, w.Ob())

	t.Run("desc restricts to legs", func(t *testing.T) {
		leg := func(k int) finvect.Mat {
			m := finvect.Zeros(2, dims[k])
			for j := 0; j < dims[k]; j++ {
				m.Set(0, j, float64(k+1))
			}
			return m
		}
		d := w.Desc(2, leg)
		for _, k := range []int{0, 1, 2} {
			assert.True(t, c.Equal(c.Compose(w.In(k), d), leg(k)), "leg %d", k)
		}
	})

	t.Run("ext distinguishes", func(t *testing.T) {
		f := w.Desc(1, func(k int) finvect.Mat { return finvect.Zeros(1, dims[k]) })
		g := w.Desc(1, func(k int) finvect.Mat {
			m := finvect.Zeros(1, dims[k])
			if k == 1 {
				m.Set(0, 0, 1)
			}
			return m
		})
		assert.True(t, w.Ext(f, f))
		assert.False(t, w.Ext(f, g))
	})
}

func newStructure() *monoidal.Structure[int, int, finvect.Mat] {
	tb := tensor.NewBuilder[int, int, finvect.Mat](
		index.Nat{}, finvect.Cat{}, finvect.KronTensor{},
		finvect.Coproducts[index.Pair[int]](),
		finvect.Distrib[index.Pair[int]](),
		finvect.Distrib[index.Triple[int]](),
	)
	ub := unitor.NewBuilder[int, int, finvect.Mat](tb, finvect.KronTensor{}, finvect.Cat{})
	return monoidal.New(tb, ub)
}

func TestGradedDimensionsConvolve(t *testing.T) {
	s := newStructure()
	// Graded dimensions resemble polynomial coefficients; the tensor product
	// multiplies the polynomials.
	x := graded.Finite(0, map[int]int{0: 1, 1: 2})
	y := graded.Finite(0, map[int]int{0: 3, 2: 1})

	p := s.TensorObj(x, y)
	assert.Equal(t, 3, p(0))  // 1·3
	assert.Equal(t, 6, p(1))  // 2·3
	assert.Equal(t, 1, p(2))  // 1·1
	assert.Equal(t, 2, p(3))  // 2·1
	assert.Equal(t, 0, p(4))
}

func TestVerifyOverVectorSpaces(t *testing.T) {
	s := newStructure()

	x := graded.Finite(0, map[int]int{0: 2, 1: 1})
	y := graded.Finite(0, map[int]int{0: 1, 1: 2})
	z := graded.Finite(0, map[int]int{0: 1})
	w := graded.Finite(0, map[int]int{1: 1})

	// A non-identity endomorphism family on x: scale each fiber by 2.
	fx := graded.Hom[int, finvect.Mat](func(i int) finvect.Mat {
		d := x(i)
		m := finvect.Eye(d)
		for j := range m.A {
			m.A[j] *= 2
		}
		return m
	})

	checker := monoidal.NewChecker(s, nil, 2)
	report, err := checker.Verify(context.Background(),
		monoidal.Suite[int, int, finvect.Mat]{X: x, Y: y, Z: z, W: w, FX: fx},
		[]int{0, 1, 2})
	require.NoError(t, err)
	assert.Len(t, report.Obligations, 30)
	assert.True(t, report.OK(), "failed obligations: %v", report.Failed())
}
