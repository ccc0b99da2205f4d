// SPDX-License-Identifier: MIT
// Package: lvkd/kdtree
//
// minmax.go — dimension-wise extreme queries.
//
// Pruning rule: at a node whose branching dimension equals the target
// dimension c, only one subtree can hold a smaller (left) or larger (right)
// coordinate on c, so the other subtree is skipped. Otherwise both subtrees
// are searched. The node itself is always a candidate. Ties on c are broken
// by full key order, which keeps the result deterministic.

package kdtree

import "golang.org/x/exp/constraints"

// FindMin returns an iterator to the entry with the smallest coordinate on
// dimension dim. dim is reduced modulo Dims(). Returns End() on an empty tree.
//
// Complexity: O(n^(1-1/K)) on a balanced tree, O(n) worst case.
func (t *Tree[C, V]) FindMin(dim int) Iterator[C, V] {
	n, _ := t.minNode(t.root, t.normDim(dim), 0)
	return Iterator[C, V]{tree: t, node: n}
}

// FindMax returns an iterator to the entry with the largest coordinate on
// dimension dim. dim is reduced modulo Dims(). Returns End() on an empty tree.
//
// Complexity: O(n^(1-1/K)) on a balanced tree, O(n) worst case.
func (t *Tree[C, V]) FindMax(dim int) Iterator[C, V] {
	n, _ := t.maxNode(t.root, t.normDim(dim), 0)
	return Iterator[C, V]{tree: t, node: n}
}

// minNode returns the smallest node on dimension c within the subtree rooted
// at n, whose branching dimension is d, together with that node's own
// branching dimension.
func (t *Tree[C, V]) minNode(n *node[C, V], c, d int) (*node[C, V], int) {
	if n == nil {
		return nil, 0
	}
	nd := t.nextDim(d)
	best, bestDim := t.minNode(n.left, c, nd)
	if d != c {
		r, rd := t.minNode(n.right, c, nd)
		best, bestDim = pick(best, bestDim, r, rd, c, -1)
	}
	return pick(n, d, best, bestDim, c, -1)
}

// maxNode mirrors minNode for the largest node on dimension c.
func (t *Tree[C, V]) maxNode(n *node[C, V], c, d int) (*node[C, V], int) {
	if n == nil {
		return nil, 0
	}
	nd := t.nextDim(d)
	best, bestDim := t.maxNode(n.right, c, nd)
	if d != c {
		l, ld := t.maxNode(n.left, c, nd)
		best, bestDim = pick(best, bestDim, l, ld, c, 1)
	}
	return pick(n, d, best, bestDim, c, 1)
}

// pick returns whichever of a, b compares toward sign (-1 for min, +1 for max)
// on dimension c; nil candidates lose.
func pick[C constraints.Ordered, V any](a *node[C, V], ad int, b *node[C, V], bd int, c, sign int) (*node[C, V], int) {
	if a == nil {
		return b, bd
	}
	if b == nil {
		return a, ad
	}
	if compareOn(a.key, b.key, c)*sign >= 0 {
		return a, ad
	}
	return b, bd
}
