// SPDX-License-Identifier: MIT
// Package: lvkd/kdtree
//
// build.go — balanced bulk construction.
//
// Pipeline:
//   1. validate and copy the input (caller's slice is never reordered);
//   2. stable-sort by full key order, then collapse runs of equal keys keeping
//      the LAST occurrence in input order;
//   3. recursively pick the median of each span on the current dimension with
//      quickselect, make it the subtree root, recurse on both halves with the
//      next dimension.
//
// Median settling: elements that tie with the median coordinate may land on
// the left of the selected position. The root is therefore moved to the first
// element of its tie group so that the left span is strictly less on the
// branching dimension, as Find and Insert expect.

package kdtree

import (
	"fmt"
	"slices"

	"golang.org/x/exp/constraints"
)

// Build returns a tree holding entries, built by recursive median partitioning.
// Duplicate keys keep the value of their last occurrence.
//
// Errors:
//   - ErrZeroDimension if k < 1.
//   - ErrKeyDimension if any entry key has a length other than k.
//
// Complexity: O(K·n log n) expected time, O(n) extra space.
func Build[C constraints.Ordered, V any](k int, entries []Entry[C, V]) (*Tree[C, V], error) {
	t, err := New[C, V](k)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return t, nil
	}

	items := make([]Entry[C, V], len(entries))
	for i, e := range entries {
		if len(e.Key) != k {
			return nil, fmt.Errorf("Build: entry %d has len(key)=%d, want %d: %w", i, len(e.Key), k, ErrKeyDimension)
		}
		items[i] = Entry[C, V]{Key: cloneKey(e.Key), Value: e.Value}
	}

	slices.SortStableFunc(items, func(a, b Entry[C, V]) int {
		return compareKeys(a.Key, b.Key)
	})
	items = dedupKeepLast(items)

	t.root = t.build(items, 0, nil)
	t.size = len(items)
	return t, nil
}

// dedupKeepLast collapses adjacent equal keys of a sorted slice in place,
// retaining the last element of each run.
func dedupKeepLast[C constraints.Ordered, V any](items []Entry[C, V]) []Entry[C, V] {
	out := items[:0]
	for i := range items {
		if i+1 < len(items) && equalKeys(items[i].Key, items[i+1].Key) {
			continue
		}
		out = append(out, items[i])
	}
	return out
}

func (t *Tree[C, V]) build(span []Entry[C, V], d int, parent *node[C, V]) *node[C, V] {
	if len(span) == 0 {
		return nil
	}

	mid := (len(span) - 1) / 2
	selectNth(span, mid, d)
	p := settleMedian(span, mid, d)

	n := &node[C, V]{key: span[p].Key, value: span[p].Value, parent: parent}
	nd := t.nextDim(d)
	n.left = t.build(span[:p], nd, n)
	n.right = t.build(span[p+1:], nd, n)
	return n
}

// selectNth reorders span so that span[nth] holds the element that would sit
// there if span were sorted by dimension order on d, every element before it
// compares less and every element after it compares greater.
func selectNth[C constraints.Ordered, V any](span []Entry[C, V], nth, d int) {
	lo, hi := 0, len(span)-1
	for lo < hi {
		p := partition(span, lo, hi, d)
		switch {
		case p == nth:
			return
		case nth < p:
			hi = p - 1
		default:
			lo = p + 1
		}
	}
}

// partition is a Lomuto partition around a median-of-three pivot over span[lo..hi].
func partition[C constraints.Ordered, V any](span []Entry[C, V], lo, hi, d int) int {
	less := func(i, j int) bool { return compareOn(span[i].Key, span[j].Key, d) < 0 }

	mid := lo + (hi-lo)/2
	if less(mid, lo) {
		span[mid], span[lo] = span[lo], span[mid]
	}
	if less(hi, lo) {
		span[hi], span[lo] = span[lo], span[hi]
	}
	if less(mid, hi) {
		span[mid], span[hi] = span[hi], span[mid]
	}

	pivot := span[hi].Key
	i := lo
	for j := lo; j < hi; j++ {
		if compareOn(span[j].Key, pivot, d) < 0 {
			span[i], span[j] = span[j], span[i]
			i++
		}
	}
	span[i], span[hi] = span[hi], span[i]
	return i
}

// settleMedian moves every element of span[:mid] that ties with span[mid] on
// d behind the strictly smaller ones and returns the index of the smallest
// tied element, which becomes the subtree root.
func settleMedian[C constraints.Ordered, V any](span []Entry[C, V], mid, d int) int {
	c := span[mid].Key[d]
	i := 0
	for j := 0; j < mid; j++ {
		if span[j].Key[d] < c {
			span[i], span[j] = span[j], span[i]
			i++
		}
	}
	if i == mid {
		return mid
	}
	// span[i..mid] all hold coordinate c; the key-order minimum leads
	best := i
	for j := i + 1; j <= mid; j++ {
		if compareKeys(span[j].Key, span[best].Key) < 0 {
			best = j
		}
	}
	span[i], span[best] = span[best], span[i]
	return i
}
