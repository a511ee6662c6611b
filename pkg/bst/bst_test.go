package bst

import (
	"math/rand/v2"
	"slices"
	"testing"
)

func TestInsertNth(t *testing.T) {
	// Scenario S5 from the specification.
	tree := New[int]()
	for _, k := range []int{5, 3, 8, 3, 1} {
		tree.Insert(k)
	}

	tests := []struct {
		n    int
		want int
	}{
		{0, 1},
		{1, 3},
		{2, 3},
		{3, 5},
		{4, 8},
	}
	for _, tt := range tests {
		if got := tree.Nth(tt.n); got != tt.want {
			t.Errorf("Nth(%d) = %d, want %d", tt.n, got, tt.want)
		}
	}

	tree.Remove(3)
	if got := tree.Nth(1); got != 3 {
		t.Errorf("Nth(1) after remove = %d, want 3", got)
	}
	if got := tree.Nth(2); got != 5 {
		t.Errorf("Nth(2) after remove = %d, want 5", got)
	}
}

func TestMinMaxEmpty(t *testing.T) {
	tree := New[int]()

	assertPanics(t, "Min", func() { tree.Min() })
	assertPanics(t, "Max", func() { tree.Max() })
	assertPanics(t, "Nth", func() { tree.Nth(0) })
}

func assertPanics(t *testing.T, name string, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Errorf("%s: expected panic, got none", name)
		}
	}()
	fn()
}

func TestRemoveAbsentIsNoop(t *testing.T) {
	tree := New[int]()
	tree.Insert(1)
	tree.Remove(42)
	if tree.Len() != 1 {
		t.Errorf("Len() = %d, want 1", tree.Len())
	}
}

// TestAgainstReferenceMultiset drives a random sequence of inserts and
// removes on a small key alphabet against a slice-based reference multiset,
// checking order-statistics (property 1 in the specification).
func TestAgainstReferenceMultiset(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	tree := New[int]()
	var reference []int

	for i := 0; i < 2000; i++ {
		key := rng.IntN(20)
		if rng.IntN(2) == 0 || len(reference) == 0 {
			tree.Insert(key)
			reference = append(reference, key)
		} else {
			idx := rng.IntN(len(reference))
			key = reference[idx]
			tree.Remove(key)
			reference = append(reference[:idx], reference[idx+1:]...)
		}

		if tree.Len() != len(reference) {
			t.Fatalf("step %d: Len() = %d, want %d", i, tree.Len(), len(reference))
		}

		sorted := slices.Clone(reference)
		slices.Sort(sorted)
		for n, want := range sorted {
			if got := tree.Nth(n); got != want {
				t.Fatalf("step %d: Nth(%d) = %d, want %d", i, n, got, want)
			}
		}
		for n := 1; n < len(sorted); n++ {
			if tree.Nth(n-1) > tree.Nth(n) {
				t.Fatalf("step %d: Nth not nondecreasing at %d", i, n)
			}
		}

		for _, k := range []int{-1, 0, 5, 19, 20} {
			want := slices.Contains(reference, k)
			if got := tree.Contains(k); got != want {
				t.Fatalf("step %d: Contains(%d) = %v, want %v", i, k, got, want)
			}
		}
	}
}

func TestCollectMatchesSize(t *testing.T) {
	tree := New[int]()
	for _, k := range []int{4, 2, 7, 1, 3} {
		tree.Insert(k)
	}
	if got := len(tree.Collect()); got != tree.Len() {
		t.Errorf("len(Collect()) = %d, want %d", got, tree.Len())
	}
}
