// SPDX-License-Identifier: MIT
// Package: lvkd/kdtree
//
// erase.go — deletion by key and by iterator.
//
// Algorithm (replace-and-recurse), at node n with branching dimension d:
//   1. n is a leaf        → unlink it; done.
//   2. n has a right child → m = min on d in n.right; copy m's key/value into n;
//                            continue with m.
//   3. n has only a left child:
//        m = max on d in n.left; copy into n; continue with m.
//      If another node of n.left shares m's coordinate on d, the max would leave an
//      equal coordinate on the left side. In that case m = min on d in n.left is
//      used instead and the left subtree is moved to the right slot.
// Each step moves one level down, so the loop ends at a physical leaf removal.

package kdtree

// Erase removes key from the tree and reports whether it was present.
// An absent key (or a key of the wrong length) leaves the tree unchanged.
//
// Complexity: O(K·log n) to locate plus O(FindMin) per transplant level.
func (t *Tree[C, V]) Erase(key []C) bool {
	if len(key) != t.k {
		return false
	}
	n, d := t.find(key)
	if n == nil {
		return false
	}
	t.remove(n, d)
	return true
}

// EraseAt removes the entry at it and returns an iterator to the first entry
// not yet visited by a forward walk that reached it, or End() if none is left.
// Passing End() is a no-op that returns End().
//
// When the erased node has a right child, a key from that subtree is
// transplanted into the same node, so the returned iterator points at that
// node again. Otherwise the node's old successor is returned. Either way the
// loop
//
//	for it := t.Begin(); it.Valid(); {
//		if drop(it) {
//			it = t.EraseAt(it)
//		} else {
//			it = it.Next()
//		}
//	}
//
// visits every remaining entry exactly once. Other outstanding iterators are
// invalidated.
func (t *Tree[C, V]) EraseAt(it Iterator[C, V]) Iterator[C, V] {
	if it.node == nil || it.tree != t {
		return t.End()
	}

	n := it.node
	if n.right != nil {
		// every moved key stays inside n.right, so n still leads the unvisited part
		t.remove(n, it.Dim())
		return Iterator[C, V]{tree: t, node: n}
	}

	// the successor is an ancestor, which removal below n never touches
	next := it.Next()
	t.remove(n, it.Dim())
	return next
}

// remove deletes the entry held by n, whose branching dimension is d.
func (t *Tree[C, V]) remove(n *node[C, V], d int) {
	for {
		nd := t.nextDim(d)
		var m *node[C, V]
		var md int

		switch {
		case n.left == nil && n.right == nil:
			t.unlink(n)
			t.size--
			return
		case n.right != nil:
			m, md = t.minNode(n.right, d, nd)
		default:
			m, md = t.maxNode(n.left, d, nd)
			if t.hasTwin(n.left, m, d, nd) {
				m, md = t.minNode(n.left, d, nd)
				n.left, n.right = nil, n.left
			}
		}

		// transplant; key slices are never mutated in place, so sharing is safe
		n.key, n.value = m.key, m.value
		n, d = m, md
	}
}

// unlink detaches a leaf from its parent (or from the root slot).
func (t *Tree[C, V]) unlink(n *node[C, V]) {
	switch p := n.parent; {
	case p == nil:
		t.root = nil
	case p.left == n:
		p.left = nil
	default:
		p.right = nil
	}
	n.parent = nil
}

// hasTwin reports whether the subtree rooted at n (branching dimension d)
// holds a node other than m whose coordinate on c equals m.key[c].
func (t *Tree[C, V]) hasTwin(n, m *node[C, V], c, d int) bool {
	if n == nil {
		return false
	}
	v := m.key[c]
	if n != m && n.key[c] == v {
		return true
	}
	nd := t.nextDim(d)
	if d == c {
		// left holds coordinates < n.key[c], right holds >= n.key[c]
		if v < n.key[c] {
			return t.hasTwin(n.left, m, c, nd)
		}
		return t.hasTwin(n.right, m, c, nd)
	}
	return t.hasTwin(n.left, m, c, nd) || t.hasTwin(n.right, m, c, nd)
}
