package segtree

import (
	"math"
	"math/rand/v2"
	"testing"
)

func TestPlusMaxScenarioS4(t *testing.T) {
	tree := New[int](8, PlusMax[int](math.MinInt))
	tree.Insert(2, 5, 3)
	tree.Insert(4, 7, 2)

	tests := []struct {
		l, r, want int
	}{
		{0, 7, 5},
		{0, 1, 0},
		{6, 7, 2},
	}
	for _, tt := range tests {
		if got := tree.Query(tt.l, tt.r); got != tt.want {
			t.Errorf("Query(%d,%d) = %d, want %d", tt.l, tt.r, got, tt.want)
		}
	}
}

func TestPlusPlusSums(t *testing.T) {
	tree := New[int](8, PlusPlus[int]())
	tree.Insert(0, 7, 1)
	if got := tree.Query(0, 7); got != 8 {
		t.Errorf("Query(0,7) = %d, want 8", got)
	}
	tree.Insert(2, 4, 5)
	if got := tree.Query(2, 4); got != 3*6 {
		t.Errorf("Query(2,4) = %d, want %d", got, 3*6)
	}
	if got := tree.Query(0, 1); got != 2 {
		t.Errorf("Query(0,1) = %d, want 2", got)
	}
}

// TestAgainstNaiveReference checks property 3: range-insert/query results
// on both monoid instantiations match a naive per-index array.
func TestAgainstNaiveReference(t *testing.T) {
	const n = 100
	rng := rand.New(rand.NewPCG(3, 4))

	t.Run("plus-plus", func(t *testing.T) {
		tree := New[int](n, PlusPlus[int]())
		ref := make([]int, n)

		for i := 0; i < 500; i++ {
			l, r := randRange(rng, n)
			switch rng.IntN(2) {
			case 0:
				v := rng.IntN(10) - 5
				tree.Insert(l, r, v)
				for k := l; k <= r; k++ {
					ref[k] += v
				}
			default:
				want := 0
				for k := l; k <= r; k++ {
					want += ref[k]
				}
				if got := tree.Query(l, r); got != want {
					t.Fatalf("step %d: Query(%d,%d) = %d, want %d", i, l, r, got, want)
				}
			}
		}
	})

	t.Run("plus-max", func(t *testing.T) {
		tree := New[int](n, PlusMax[int](math.MinInt))
		ref := make([]int, n) // untouched indices start at 0, matching the tree's zero-valued leaves

		for i := 0; i < 500; i++ {
			l, r := randRange(rng, n)
			switch rng.IntN(2) {
			case 0:
				v := rng.IntN(10)
				tree.Insert(l, r, v)
				for k := l; k <= r; k++ {
					ref[k] += v
				}
			default:
				want := ref[l]
				for k := l; k <= r; k++ {
					if ref[k] > want {
						want = ref[k]
					}
				}
				if got := tree.Query(l, r); got != want {
					t.Fatalf("step %d: Query(%d,%d) = %d, want %d", i, l, r, got, want)
				}
			}
		}
	})
}

func randRange(rng *rand.Rand, n int) (int, int) {
	a := rng.IntN(n)
	b := rng.IntN(n)
	if a > b {
		a, b = b, a
	}
	return a, b
}

func TestQueryPanicsOutOfRange(t *testing.T) {
	tree := New[int](4, PlusPlus[int]())
	defer func() {
		if recover() == nil {
			t.Error("expected panic for out-of-range query")
		}
	}()
	tree.Query(0, 4)
}
