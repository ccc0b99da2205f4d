// SPDX-License-Identifier: MIT
// Package: lvkd/kdtree
//
// iterator.go — bidirectional in-order iterator and range-over-func adapters.
//
// Order: iteration follows the in-order walk of the tree (left, node, right),
// using parent links, so no sorting or auxiliary stack is needed. End() is the
// one-past-the-last sentinel; Prev from End() lands on the last element.

package kdtree

import (
	"iter"

	"golang.org/x/exp/constraints"
)

// Iterator points at one entry of a Tree, or at the End() sentinel.
// Iterators are small values; copying one yields an independent cursor.
type Iterator[C constraints.Ordered, V any] struct {
	tree *Tree[C, V]
	node *node[C, V]
}

// Begin returns an iterator to the first entry in iteration order, or End() when empty.
// Complexity: O(height).
func (t *Tree[C, V]) Begin() Iterator[C, V] {
	n := t.root
	if n == nil {
		return t.End()
	}
	for n.left != nil {
		n = n.left
	}
	return Iterator[C, V]{tree: t, node: n}
}

// End returns the one-past-the-last sentinel.
// Complexity: O(1).
func (t *Tree[C, V]) End() Iterator[C, V] {
	return Iterator[C, V]{tree: t}
}

// Root returns an iterator to the root node, or End() when empty.
// Complexity: O(1).
func (t *Tree[C, V]) Root() Iterator[C, V] {
	return Iterator[C, V]{tree: t, node: t.root}
}

// Valid reports whether it points at an entry (i.e. is not End()).
// Complexity: O(1).
func (it Iterator[C, V]) Valid() bool { return it.node != nil }

// Equal reports whether both iterators point at the same position.
// Complexity: O(1).
func (it Iterator[C, V]) Equal(other Iterator[C, V]) bool {
	return it.node == other.node && (it.node != nil || it.tree == other.tree)
}

// Key returns a copy of the entry's key, or nil at End().
// Complexity: O(K).
func (it Iterator[C, V]) Key() []C {
	if it.node == nil {
		return nil
	}
	return cloneKey(it.node.key)
}

// Value returns the entry's value, or the zero value at End().
// Complexity: O(1).
func (it Iterator[C, V]) Value() V {
	if it.node == nil {
		var zero V
		return zero
	}
	return it.node.value
}

// SetValue overwrites the entry's value in place and reports whether it did.
// Keys cannot be changed through an iterator.
// Complexity: O(1).
func (it Iterator[C, V]) SetValue(v V) bool {
	if it.node == nil {
		return false
	}
	it.node.value = v
	return true
}

// Next returns the iterator to the following entry, or End() after the last one.
// Advancing End() is a contract violation; it returns End() unchanged.
//
// Complexity: O(height) worst case, amortized O(1) over a full walk.
func (it Iterator[C, V]) Next() Iterator[C, V] {
	n := it.node
	if n == nil {
		return it
	}
	if n.right != nil {
		n = n.right
		for n.left != nil {
			n = n.left
		}
		return Iterator[C, V]{tree: it.tree, node: n}
	}
	// climb while we are not a left child; the parent we stop under is next
	for n.parent != nil && n.parent.left != n {
		n = n.parent
	}
	return Iterator[C, V]{tree: it.tree, node: n.parent}
}

// Prev returns the iterator to the preceding entry. From End() it moves to the
// last entry. Calling Prev on the first entry is a contract violation; the
// iterator is returned unchanged.
//
// Complexity: O(height) worst case, amortized O(1) over a full walk.
func (it Iterator[C, V]) Prev() Iterator[C, V] {
	n := it.node
	if n == nil {
		if it.tree == nil || it.tree.root == nil {
			return it
		}
		n = it.tree.root
		for n.right != nil {
			n = n.right
		}
		return Iterator[C, V]{tree: it.tree, node: n}
	}
	if n.left != nil {
		n = n.left
		for n.right != nil {
			n = n.right
		}
		return Iterator[C, V]{tree: it.tree, node: n}
	}
	for n.parent != nil && n.parent.left == n {
		n = n.parent
	}
	if n.parent == nil {
		return it
	}
	return Iterator[C, V]{tree: it.tree, node: n.parent}
}

// Left returns the left child of the current node, or End().
// Complexity: O(1).
func (it Iterator[C, V]) Left() Iterator[C, V] {
	if it.node == nil {
		return it
	}
	return Iterator[C, V]{tree: it.tree, node: it.node.left}
}

// Right returns the right child of the current node, or End().
// Complexity: O(1).
func (it Iterator[C, V]) Right() Iterator[C, V] {
	if it.node == nil {
		return it
	}
	return Iterator[C, V]{tree: it.tree, node: it.node.right}
}

// Parent returns the parent of the current node, or End() at the root.
// Complexity: O(1).
func (it Iterator[C, V]) Parent() Iterator[C, V] {
	if it.node == nil {
		return it
	}
	return Iterator[C, V]{tree: it.tree, node: it.node.parent}
}

// Depth returns the node's distance from the root (root = 0), or -1 at End().
// Complexity: O(depth).
func (it Iterator[C, V]) Depth() int {
	if it.node == nil {
		return -1
	}
	depth := 0
	for p := it.node.parent; p != nil; p = p.parent {
		depth++
	}
	return depth
}

// Dim returns the node's branching dimension (Depth mod K), or -1 at End().
// Complexity: O(depth).
func (it Iterator[C, V]) Dim() int {
	if it.node == nil {
		return -1
	}
	return it.Depth() % it.tree.k
}

// All yields every entry in iteration order, which is the tree's in-order walk
// (left subtree, node, right subtree). Only for K == 1 is that sorted key order;
// for K >= 2 it is NOT lexicographic, so sort the output of Entries if needed.
// Keys are copies. The tree must not be mutated while ranging.
// Complexity: O(n·K) for a full walk.
func (t *Tree[C, V]) All() iter.Seq2[[]C, V] {
	return func(yield func([]C, V) bool) {
		for it := t.Begin(); it.Valid(); it = it.Next() {
			if !yield(it.Key(), it.node.value) {
				return
			}
		}
	}
}

// Backward yields every entry in reverse iteration order.
// Complexity: O(n·K) for a full walk.
func (t *Tree[C, V]) Backward() iter.Seq2[[]C, V] {
	return func(yield func([]C, V) bool) {
		it := t.End().Prev()
		for it.Valid() {
			if !yield(it.Key(), it.node.value) {
				return
			}
			prev := it.Prev()
			if prev.Equal(it) {
				return
			}
			it = prev
		}
	}
}

// Entries returns a snapshot of all entries in iteration order (see All).
// Complexity: O(n·K).
func (t *Tree[C, V]) Entries() []Entry[C, V] {
	out := make([]Entry[C, V], 0, t.size)
	for k, v := range t.All() {
		out = append(out, Entry[C, V]{Key: k, Value: v})
	}
	return out
}
