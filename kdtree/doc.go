// Package kdtree implements a k-dimensional search tree (KD-tree) keyed by
// fixed-arity tuples of ordered coordinates.
//
// 🚀 What is a KD-tree?
//
//	A binary search tree whose nodes are split by a different coordinate at
//	every level: the root splits on dimension 0, its children on dimension 1,
//	and so on, cycling through all K dimensions by depth (depth mod K).
//
//	At a node of branching dimension d:
//	  • every key in the left subtree has key[d] <  node.key[d]
//	  • every key in the right subtree has key[d] >= node.key[d]
//
// ✨ Key features:
//   - exact-key lookup, insertion with value overwrite, deletion by key or iterator
//   - per-dimension FindMin / FindMax with subtree pruning
//   - bidirectional in-order iterator (Begin / End / Next / Prev) and range-over-func helpers
//   - balanced bulk construction by recursive median selection
//   - orthogonal Range queries and Nearest neighbour search for numeric keys
//   - deep Clone / CopyFrom with independent node graphs
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/lvkd/kdtree"
//
//	t, err := kdtree.Build(2, []kdtree.Entry[int, string]{
//		{Key: []int{3, 1}, Value: "x"},
//		{Key: []int{1, 2}, Value: "y"},
//	})
//	if err != nil {
//		// handle ErrZeroDimension / ErrKeyDimension
//	}
//	it := t.FindMin(0) // entry with key (1,2)
//
// Concurrency:
//
//	A Tree is not safe for concurrent mutation. Callers sharing a Tree across
//	goroutines must serialize access externally.
//
// Iteration order:
//
//	Begin/Next, All and Entries follow the in-order walk of the tree. For K == 1
//	this is ascending key order; for K >= 2 it depends on the tree's shape and is
//	not lexicographic. Sort Entries() when a key order is required.
//
// Iterator validity:
//
//	Iterators reference nodes of their tree. Erase may transplant keys between
//	nodes, so any mutation invalidates outstanding iterators except the one
//	returned by EraseAt, which continues a forward walk without skipping entries.
//	Clear and CopyFrom invalidate all of them.
//
// Performance (n elements, K dimensions):
//
//   - Find / Insert / Erase (locate): O(K·log n) expected, O(K·n) on a degenerate tree
//   - FindMin / FindMax: O(n^(1-1/K)) on a balanced tree
//   - Build: O(K·n log n) expected
//   - Next / Prev: O(log n) on a balanced tree
package kdtree
