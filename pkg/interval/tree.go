// Package interval implements an augmented AVL tree that stores [low, high]
// ranges and answers overlap queries, as described by Cormen et al.
package interval

// Range is a closed [Low, High] interval, Low <= High.
type Range struct {
	Low, High int
}

// less orders ranges lexicographically on (Low, High), matching the
// original's pair<int,int> comparison.
func less(a, b Range) bool {
	if a.Low != b.Low {
		return a.Low < b.Low
	}
	return a.High < b.High
}

func equal(a, b Range) bool {
	return a.Low == b.Low && a.High == b.High
}

type node struct {
	rng         Range
	highest     int // max High over the subtree
	height      int
	left, right *node
}

// Tree is an AVL-balanced multiset of Ranges supporting overlap queries.
type Tree struct {
	root  *node
	count int
}

// New returns an empty interval tree.
func New() *Tree {
	return &Tree{}
}

// Len returns the number of intervals stored, counting duplicates.
func (t *Tree) Len() int {
	return t.count
}

func height(n *node) int {
	if n == nil {
		return 0
	}
	return n.height
}

func highest(n *node) int {
	if n == nil {
		return 0
	}
	return n.highest
}

func updateAux(n *node) {
	h := height(n.left)
	if rh := height(n.right); rh > h {
		h = rh
	}
	n.height = 1 + h

	hi := n.rng.High
	if lh := highest(n.left); lh > hi {
		hi = lh
	}
	if rh := highest(n.right); rh > hi {
		hi = rh
	}
	n.highest = hi
}

func rotateRight(n *node) *node {
	root := n.left
	n.left = root.right
	root.right = n
	updateAux(n)
	updateAux(root)
	return root
}

func rotateLeft(n *node) *node {
	root := n.right
	n.right = root.left
	root.left = n
	updateAux(n)
	updateAux(root)
	return root
}

func balance(n *node) *node {
	factor := height(n.left) - height(n.right)
	switch {
	case factor == 2:
		left := n.left
		if height(left.left)-height(left.right) < 0 {
			n.left = rotateLeft(left)
		}
		return rotateRight(n)
	case factor == -2:
		right := n.right
		if height(right.left)-height(right.right) > 0 {
			n.right = rotateRight(right)
		}
		return rotateLeft(n)
	default:
		return n
	}
}

// Insert adds a new [low, high] interval. Duplicate intervals are allowed.
//
// Insert panics if low > high.
func (t *Tree) Insert(low, high int) {
	if low > high {
		panic("interval: low > high")
	}
	t.root = insertHelper(t.root, Range{low, high})
	t.count++
}

func insertHelper(n *node, r Range) *node {
	if n == nil {
		return &node{rng: r, highest: r.High, height: 1}
	}
	if !less(n.rng, r) {
		n.left = insertHelper(n.left, r)
	} else {
		n.right = insertHelper(n.right, r)
	}
	updateAux(n)
	return balance(n)
}

// Remove deletes one occurrence of the [low, high] interval, if present.
//
// Remove panics if low > high.
func (t *Tree) Remove(low, high int) {
	if low > high {
		panic("interval: low > high")
	}
	var removed bool
	t.root, removed = removeHelper(t.root, Range{low, high})
	if removed {
		t.count--
	}
}

func removeHelper(n *node, target Range) (*node, bool) {
	if n == nil {
		return nil, false
	}
	switch {
	case less(target, n.rng):
		var removed bool
		n.left, removed = removeHelper(n.left, target)
		updateAux(n)
		return balance(n), removed
	case less(n.rng, target):
		var removed bool
		n.right, removed = removeHelper(n.right, target)
		updateAux(n)
		return balance(n), removed
	default:
		left, right := n.left, n.right
		if left == nil || right == nil {
			if left == nil {
				return right, true
			}
			return left, true
		}
		successor := minNode(right)
		newRight := dropMin(right)
		successor.right = newRight
		successor.left = left
		updateAux(successor)
		return balance(successor), true
	}
}

func dropMin(n *node) *node {
	if n.left == nil {
		return n.right
	}
	n.left = dropMin(n.left)
	updateAux(n)
	return balance(n)
}

func minNode(n *node) *node {
	for n.left != nil {
		n = n.left
	}
	return n
}

// Contains reports whether the [low, high] interval is stored in the tree.
//
// Contains panics if low > high.
func (t *Tree) Contains(low, high int) bool {
	if low > high {
		panic("interval: low > high")
	}
	target := Range{low, high}
	n := t.root
	for n != nil {
		if equal(n.rng, target) {
			return true
		}
		if less(target, n.rng) {
			n = n.left
		} else {
			n = n.right
		}
	}
	return false
}

// overlaps reports whether a and b have a nonempty intersection.
func overlaps(a, b Range) bool {
	return a.Low <= b.High && b.Low <= a.High
}

// GetClashes returns every stored interval overlapping [low, high].
//
// GetClashes panics if low > high.
func (t *Tree) GetClashes(low, high int) []Range {
	if low > high {
		panic("interval: low > high")
	}
	query := Range{low, high}
	var result []Range
	collectClashes(t.root, query, &result)
	return result
}

func collectClashes(n *node, query Range, result *[]Range) {
	if n == nil {
		return
	}
	if n.highest < query.Low {
		return
	}
	collectClashes(n.left, query, result)
	if overlaps(n.rng, query) {
		*result = append(*result, n.rng)
	}
	if n.rng.Low <= query.High {
		collectClashes(n.right, query, result)
	}
}

// CountClashes returns the number of stored intervals overlapping [low, high].
func (t *Tree) CountClashes(low, high int) int {
	return len(t.GetClashes(low, high))
}
