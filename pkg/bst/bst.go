// Package bst implements an order-statistics balanced binary search tree.
//
// The tree is an AVL-balanced ordered multiset: duplicate keys are allowed,
// and every node carries a subtree size so that the n-th smallest key can be
// retrieved in O(log n) alongside the usual insert/remove/contains.
package bst

import "cmp"

// node is one AVL node. count is the subtree size (including node itself);
// height is the longest root-to-leaf path length in the subtree.
type node[K cmp.Ordered] struct {
	key         K
	count       int
	height      int
	left, right *node[K]
}

// Tree is an AVL-balanced ordered multiset over keys of type K.
type Tree[K cmp.Ordered] struct {
	root  *node[K]
	count int
}

// New returns an empty tree.
func New[K cmp.Ordered]() *Tree[K] {
	return &Tree[K]{}
}

// Len returns the number of keys currently stored, counting duplicates.
func (t *Tree[K]) Len() int {
	return t.count
}

func count[K cmp.Ordered](n *node[K]) int {
	if n == nil {
		return 0
	}
	return n.count
}

func height[K cmp.Ordered](n *node[K]) int {
	if n == nil {
		return 0
	}
	return n.height
}

func updateAux[K cmp.Ordered](n *node[K]) {
	n.count = 1 + count(n.left) + count(n.right)
	h := height(n.left)
	if rh := height(n.right); rh > h {
		h = rh
	}
	n.height = 1 + h
}

func rotateRight[K cmp.Ordered](n *node[K]) *node[K] {
	root := n.left
	n.left = root.right
	root.right = n
	updateAux(n)
	updateAux(root)
	return root
}

func rotateLeft[K cmp.Ordered](n *node[K]) *node[K] {
	root := n.right
	n.right = root.left
	root.left = n
	updateAux(n)
	updateAux(root)
	return root
}

// balance rebalances a node whose children were just updated. The balance
// factor here is always within [-2, 2]; anything outside that range would
// indicate a bug in the surrounding insert/remove logic.
func balance[K cmp.Ordered](n *node[K]) *node[K] {
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

// Insert adds key, allowing multiple occurrences of the same key.
func (t *Tree[K]) Insert(key K) {
	t.root = insertHelper(t.root, key)
	t.count++
}

func insertHelper[K cmp.Ordered](n *node[K], key K) *node[K] {
	if n == nil {
		return &node[K]{key: key, count: 1, height: 1}
	}
	if n.key >= key {
		n.left = insertHelper(n.left, key)
	} else {
		n.right = insertHelper(n.right, key)
	}
	updateAux(n)
	return balance(n)
}

// Remove deletes one occurrence of key. It is a no-op if key is absent.
func (t *Tree[K]) Remove(key K) {
	var removed bool
	t.root, removed = removeHelper(t.root, key)
	if removed {
		t.count--
	}
}

func removeHelper[K cmp.Ordered](n *node[K], key K) (*node[K], bool) {
	if n == nil {
		return nil, false
	}
	switch {
	case n.key > key:
		var removed bool
		n.left, removed = removeHelper(n.left, key)
		updateAux(n)
		return balance(n), removed
	case n.key < key:
		var removed bool
		n.right, removed = removeHelper(n.right, key)
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

// dropMin returns the subtree rooted at n with its smallest key removed.
func dropMin[K cmp.Ordered](n *node[K]) *node[K] {
	if n.left == nil {
		return n.right
	}
	n.left = dropMin(n.left)
	updateAux(n)
	return balance(n)
}

func minNode[K cmp.Ordered](n *node[K]) *node[K] {
	for n.left != nil {
		n = n.left
	}
	return n
}

func maxNode[K cmp.Ordered](n *node[K]) *node[K] {
	for n.right != nil {
		n = n.right
	}
	return n
}

// Contains reports whether key is stored in the tree.
func (t *Tree[K]) Contains(key K) bool {
	n := t.root
	for n != nil {
		switch {
		case n.key == key:
			return true
		case n.key > key:
			n = n.left
		default:
			n = n.right
		}
	}
	return false
}

// Min returns the smallest key in the tree.
//
// Min panics if the tree is empty; calling it on an empty tree is a
// precondition violation, not a runtime condition to recover from.
func (t *Tree[K]) Min() K {
	if t.root == nil {
		panic("bst: tree is empty")
	}
	return minNode(t.root).key
}

// Max returns the largest key in the tree.
//
// Max panics if the tree is empty, for the same reason as [Tree.Min].
func (t *Tree[K]) Max() K {
	if t.root == nil {
		panic("bst: tree is empty")
	}
	return maxNode(t.root).key
}

// Nth returns the n-th smallest key (0-indexed), with duplicates repeated.
//
// Nth panics if n is out of range ([0, Len())), a precondition violation.
func (t *Tree[K]) Nth(n int) K {
	if n < 0 || n >= t.count {
		panic("bst: index out of range")
	}
	return searchNth(t.root, n).key
}

func searchNth[K cmp.Ordered](n *node[K], idx int) *node[K] {
	leftCount := count(n.left)
	switch {
	case leftCount == idx:
		return n
	case leftCount > idx:
		return searchNth(n.left, idx)
	default:
		return searchNth(n.right, idx-leftCount-1)
	}
}

// Collect returns all keys stored in the tree in pre-order traversal.
func (t *Tree[K]) Collect() []K {
	result := make([]K, 0, t.count)
	var walk func(*node[K])
	walk = func(n *node[K]) {
		if n == nil {
			return
		}
		result = append(result, n.key)
		walk(n.left)
		walk(n.right)
	}
	walk(t.root)
	return result
}
