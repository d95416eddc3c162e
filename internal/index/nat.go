package index

// Nat is the natural numbers under addition, the standard grading monoid.
// Indexes are non-negative ints; Split of a negative index is empty.
type Nat struct{}

// Zero returns 0.
func (Nat) Zero() int { return 0 }

// Add returns a+b.
func (Nat) Add(a, b int) int { return a + b }

// Split yields (0,k), (1,k-1), ..., (k,0).
func (Nat) Split(k int) Seq[Pair[int]] {
	return func(yield func(Pair[int]) bool) {
		for i := 0; i <= k; i++ {
			if !yield(Pair[int]{i, k - i}) {
				return
			}
		}
	}
}
