package interval

import (
	"math/rand/v2"
	"slices"
	"testing"
)

func TestContainsAndOverlap(t *testing.T) {
	tree := New()
	tree.Insert(2, 5)
	tree.Insert(4, 7)
	tree.Insert(10, 12)

	if !tree.Contains(2, 5) {
		t.Error("Contains(2,5) = false, want true")
	}
	if tree.Contains(3, 6) {
		t.Error("Contains(3,6) = true, want false (not stored exactly)")
	}

	got := tree.GetClashes(4, 4)
	want := []Range{{2, 5}, {4, 7}}
	if !sameMultiset(got, want) {
		t.Errorf("GetClashes(4,4) = %v, want %v", got, want)
	}

	if got := tree.CountClashes(100, 200); got != 0 {
		t.Errorf("CountClashes(100,200) = %d, want 0", got)
	}
}

func TestRemove(t *testing.T) {
	tree := New()
	tree.Insert(1, 2)
	tree.Insert(1, 2)
	tree.Remove(1, 2)
	if tree.Len() != 1 {
		t.Errorf("Len() = %d, want 1", tree.Len())
	}
	if !tree.Contains(1, 2) {
		t.Error("Contains(1,2) = false after removing one of two duplicates")
	}
	tree.Remove(1, 2)
	if tree.Contains(1, 2) {
		t.Error("Contains(1,2) = true after removing both duplicates")
	}
	tree.Remove(99, 99) // no-op, must not panic
}

// TestOverlapMatchesReference checks property 2: getClashes(q) equals the
// naive multiset of overlapping stored intervals, for a random collection.
func TestOverlapMatchesReference(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))
	tree := New()
	var reference []Range

	for i := 0; i < 300; i++ {
		low := rng.IntN(50)
		high := low + rng.IntN(10)
		tree.Insert(low, high)
		reference = append(reference, Range{low, high})
	}

	for q := 0; q < 50; q++ {
		qlow := rng.IntN(50)
		qhigh := qlow + rng.IntN(10)
		query := Range{qlow, qhigh}

		var want []Range
		for _, r := range reference {
			if overlaps(r, query) {
				want = append(want, r)
			}
		}
		got := tree.GetClashes(qlow, qhigh)
		if !sameMultiset(got, want) {
			t.Fatalf("query %v: GetClashes = %v, want %v", query, got, want)
		}
		if tree.CountClashes(qlow, qhigh) != len(want) {
			t.Fatalf("query %v: CountClashes = %d, want %d", query, tree.CountClashes(qlow, qhigh), len(want))
		}
	}
}

func sameMultiset(a, b []Range) bool {
	if len(a) != len(b) {
		return false
	}
	a, b = slices.Clone(a), slices.Clone(b)
	sortRanges(a)
	sortRanges(b)
	return slices.Equal(a, b)
}

func sortRanges(rs []Range) {
	slices.SortFunc(rs, func(x, y Range) int {
		if x.Low != y.Low {
			return x.Low - y.Low
		}
		return x.High - y.High
	})
}

func TestInsertPanicsOnInvalidRange(t *testing.T) {
	tree := New()
	defer func() {
		if recover() == nil {
			t.Error("expected panic for low > high")
		}
	}()
	tree.Insert(5, 2)
}
