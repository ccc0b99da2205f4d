// SPDX-License-Identifier: MIT
// Package: lvkd/kdtree
//
// tree.go — construction, lookup, insertion and whole-tree lifecycle
// (Clone / CopyFrom / Clear).
//
// Descent rule (shared by Find, Insert and Erase):
//   • full key match            → stop at this node;
//   • node.key[d] <= key[d]     → go right;
//   • otherwise                 → go left.
// Equality on the branching dimension routes right, matching the half-open
// partition invariant documented in doc.go.

package kdtree

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// New returns an empty tree over k-dimensional keys.
//
// Errors:
//   - ErrZeroDimension if k < 1.
//
// Complexity: O(1).
func New[C constraints.Ordered, V any](k int) (*Tree[C, V], error) {
	if k < 1 {
		return nil, fmt.Errorf("New(k=%d): %w", k, ErrZeroDimension)
	}
	return &Tree[C, V]{k: k}, nil
}

// Len returns the number of distinct keys stored.
// Complexity: O(1).
func (t *Tree[C, V]) Len() int { return t.size }

// Dims returns K, the number of coordinates per key.
// Complexity: O(1).
func (t *Tree[C, V]) Dims() int { return t.k }

// nextDim returns the branching dimension one level below d.
func (t *Tree[C, V]) nextDim(d int) int {
	d++
	if d == t.k {
		return 0
	}
	return d
}

// normDim reduces an arbitrary caller-supplied dimension into [0, K).
func (t *Tree[C, V]) normDim(d int) int {
	d %= t.k
	if d < 0 {
		d += t.k
	}
	return d
}

// find locates the node holding key and returns it with its branching dimension.
func (t *Tree[C, V]) find(key []C) (*node[C, V], int) {
	n, d := t.root, 0
	for n != nil {
		if equalKeys(key, n.key) {
			return n, d
		}
		if n.key[d] <= key[d] {
			n = n.right
		} else {
			n = n.left
		}
		d = t.nextDim(d)
	}
	return nil, 0
}

// Find returns an iterator positioned at key, or End() if key is absent.
// A key of the wrong length is never present.
//
// Complexity: O(K·log n) expected, O(K·n) worst case.
func (t *Tree[C, V]) Find(key []C) Iterator[C, V] {
	if len(key) != t.k {
		return t.End()
	}
	n, _ := t.find(key)
	return Iterator[C, V]{tree: t, node: n}
}

// Contains reports whether key is stored in the tree.
// Complexity: O(K·log n) expected, O(K·n) worst case.
func (t *Tree[C, V]) Contains(key []C) bool {
	return t.Find(key).Valid()
}

// Get returns the value stored under key and whether it was found.
// Complexity: O(K·log n) expected, O(K·n) worst case.
func (t *Tree[C, V]) Get(key []C) (V, bool) {
	it := t.Find(key)
	if !it.Valid() {
		var zero V
		return zero, false
	}
	return it.node.value, true
}

// Insert stores value under key.
//
// Behavior:
//   - key absent:  a new leaf is linked below the last visited node; returns true.
//   - key present: only the value is overwritten, Len() is unchanged; returns false.
//
// No rebalancing happens: the tree's shape depends on insertion order.
// The key slice is copied, so callers may reuse it afterwards.
//
// Errors:
//   - ErrKeyDimension if len(key) != Dims().
//
// Complexity: O(K·log n) expected, O(K·n) worst case.
func (t *Tree[C, V]) Insert(key []C, value V) (bool, error) {
	if len(key) != t.k {
		return false, fmt.Errorf("Insert: len(key)=%d, want %d: %w", len(key), t.k, ErrKeyDimension)
	}

	var parent *node[C, V]
	link := &t.root
	d := 0
	for *link != nil {
		n := *link
		if equalKeys(key, n.key) {
			n.value = value
			return false, nil
		}
		parent = n
		if n.key[d] <= key[d] {
			link = &n.right
		} else {
			link = &n.left
		}
		d = t.nextDim(d)
	}

	*link = &node[C, V]{key: cloneKey(key), value: value, parent: parent}
	t.size++
	return true, nil
}

// Height returns the number of levels in the tree (0 for an empty tree).
//
// Complexity: O(n).
func (t *Tree[C, V]) Height() int {
	return height(t.root)
}

func height[C constraints.Ordered, V any](n *node[C, V]) int {
	if n == nil {
		return 0
	}
	return 1 + max(height(n.left), height(n.right))
}

// Clone returns an independent deep copy of t with identical shape.
// Values are copied by assignment; reference-typed values stay shared.
//
// Complexity: O(n).
func (t *Tree[C, V]) Clone() *Tree[C, V] {
	return &Tree[C, V]{
		root: copyNodes(t.root, nil),
		k:    t.k,
		size: t.size,
	}
}

// CopyFrom replaces the contents of t with a deep copy of src, adopting
// src's dimension count. The previous node set is released first.
// Copying a tree onto itself is a no-op.
//
// Complexity: O(n + m), n = old size of t, m = size of src.
func (t *Tree[C, V]) CopyFrom(src *Tree[C, V]) {
	if t == src {
		return
	}
	t.release()
	t.k = src.k
	t.root = copyNodes(src.root, nil)
	t.size = src.size
}

// Clear releases every node; the tree stays usable and keeps its dimension count.
//
// Complexity: O(n).
func (t *Tree[C, V]) Clear() {
	t.release()
}

func (t *Tree[C, V]) release() {
	releaseNodes(t.root)
	t.root = nil
	t.size = 0
}

// copyNodes duplicates the subtree rooted at src, wiring parent links to parent.
func copyNodes[C constraints.Ordered, V any](src, parent *node[C, V]) *node[C, V] {
	if src == nil {
		return nil
	}
	n := &node[C, V]{key: cloneKey(src.key), value: src.value, parent: parent}
	n.left = copyNodes(src.left, n)
	n.right = copyNodes(src.right, n)
	return n
}

// releaseNodes unlinks every node of the subtree so stale iterators cannot
// keep the old graph reachable.
func releaseNodes[C constraints.Ordered, V any](n *node[C, V]) {
	if n == nil {
		return
	}
	releaseNodes(n.left)
	releaseNodes(n.right)
	n.parent, n.left, n.right = nil, nil, nil
}
