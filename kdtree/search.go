// SPDX-License-Identifier: MIT
// Package: lvkd/kdtree
//
// search.go — spatial queries on top of the partition invariant:
//   • Range:   orthogonal (axis-aligned box) query, inclusive on every bound;
//   • Nearest: nearest neighbour by squared Euclidean distance, numeric keys only.

package kdtree

import (
	"fmt"
	"iter"
	"math"

	"golang.org/x/exp/constraints"
)

// Number is the coordinate constraint for distance-based queries.
type Number interface {
	constraints.Integer | constraints.Float
}

// Range yields, in iteration order, every entry whose key k satisfies
// lo[i] <= k[i] <= hi[i] for all i. Bounds of the wrong length yield nothing.
//
// Complexity: O(n^(1-1/K) + m) on a balanced tree, m = number of matches.
func (t *Tree[C, V]) Range(lo, hi []C) iter.Seq2[[]C, V] {
	return func(yield func([]C, V) bool) {
		if len(lo) != t.k || len(hi) != t.k {
			return
		}
		t.rangeWalk(t.root, 0, lo, hi, yield)
	}
}

func (t *Tree[C, V]) rangeWalk(n *node[C, V], d int, lo, hi []C, yield func([]C, V) bool) bool {
	if n == nil {
		return true
	}
	nd := t.nextDim(d)
	// left subtree only holds coordinates strictly below n.key[d]
	if lo[d] < n.key[d] {
		if !t.rangeWalk(n.left, nd, lo, hi, yield) {
			return false
		}
	}
	if inBox(n.key, lo, hi) {
		if !yield(cloneKey(n.key), n.value) {
			return false
		}
	}
	if hi[d] >= n.key[d] {
		return t.rangeWalk(n.right, nd, lo, hi, yield)
	}
	return true
}

func inBox[C constraints.Ordered](key, lo, hi []C) bool {
	for i := range key {
		if key[i] < lo[i] || key[i] > hi[i] {
			return false
		}
	}
	return true
}

// Nearest returns the entry closest to query by Euclidean distance together
// with the squared distance. On an empty tree it returns End() and +Inf.
// Equidistant candidates resolve to the first one reached by the search.
//
// Errors:
//   - ErrKeyDimension if len(query) != t.Dims().
//
// Complexity: O(log n) expected for well-spread data, O(n) worst case.
func Nearest[C Number, V any](t *Tree[C, V], query []C) (Iterator[C, V], float64, error) {
	if len(query) != t.k {
		return t.End(), math.Inf(1), fmt.Errorf("Nearest: len(query)=%d, want %d: %w", len(query), t.k, ErrKeyDimension)
	}

	s := nearestSearch[C, V]{t: t, query: query, bestDist: math.Inf(1)}
	s.walk(t.root, 0)
	return Iterator[C, V]{tree: t, node: s.best}, s.bestDist, nil
}

type nearestSearch[C Number, V any] struct {
	t        *Tree[C, V]
	query    []C
	best     *node[C, V]
	bestDist float64
}

func (s *nearestSearch[C, V]) walk(n *node[C, V], d int) {
	if n == nil {
		return
	}

	if dist := sqDist(s.query, n.key); dist < s.bestDist {
		s.best, s.bestDist = n, dist
	}

	// coordinates are converted before subtracting so unsigned keys cannot wrap
	diff := float64(s.query[d]) - float64(n.key[d])
	near, far := n.right, n.left
	if diff < 0 {
		near, far = n.left, n.right
	}

	nd := s.t.nextDim(d)
	s.walk(near, nd)
	// only cross the splitting plane if it is closer than the current best
	if diff*diff < s.bestDist {
		s.walk(far, nd)
	}
}

func sqDist[C Number](a, b []C) float64 {
	var sum float64
	for i := range a {
		diff := float64(a[i]) - float64(b[i])
		sum += diff * diff
	}
	return sum
}
