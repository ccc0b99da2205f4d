// SPDX-License-Identifier: MIT
// Package kdtree: test-only exports of private structure checks.

package kdtree

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// CheckInvariants validates the whole node graph of t:
//   - every node at branching dimension d has left-subtree keys with key[d] < node.key[d]
//     and right-subtree keys with key[d] >= node.key[d];
//   - parent links mirror child links;
//   - every key has exactly Dims() coordinates and keys are pairwise distinct;
//   - the node count equals Len().
func CheckInvariants[C constraints.Ordered, V any](t *Tree[C, V]) error {
	if t.root != nil && t.root.parent != nil {
		return fmt.Errorf("root has a parent")
	}
	count := 0
	seen := make(map[string]struct{})
	var walk func(n *node[C, V], d int) error
	walk = func(n *node[C, V], d int) error {
		if n == nil {
			return nil
		}
		count++
		if len(n.key) != t.k {
			return fmt.Errorf("key %v has %d coordinates, want %d", n.key, len(n.key), t.k)
		}
		id := fmt.Sprint(n.key)
		if _, dup := seen[id]; dup {
			return fmt.Errorf("duplicate key %v", n.key)
		}
		seen[id] = struct{}{}
		if n.left != nil && n.left.parent != n {
			return fmt.Errorf("broken parent link under %v (left)", n.key)
		}
		if n.right != nil && n.right.parent != n {
			return fmt.Errorf("broken parent link under %v (right)", n.key)
		}
		if err := checkSide(n.left, n.key[d], d, true); err != nil {
			return fmt.Errorf("node %v: %w", n.key, err)
		}
		if err := checkSide(n.right, n.key[d], d, false); err != nil {
			return fmt.Errorf("node %v: %w", n.key, err)
		}
		nd := t.nextDim(d)
		if err := walk(n.left, nd); err != nil {
			return err
		}
		return walk(n.right, nd)
	}
	if err := walk(t.root, 0); err != nil {
		return err
	}
	if count != t.size {
		return fmt.Errorf("counted %d nodes, Len() = %d", count, t.size)
	}
	return nil
}

func checkSide[C constraints.Ordered, V any](n *node[C, V], pivot C, d int, left bool) error {
	if n == nil {
		return nil
	}
	if left && !(n.key[d] < pivot) {
		return fmt.Errorf("left descendant %v not < %v on dim %d", n.key, pivot, d)
	}
	if !left && n.key[d] < pivot {
		return fmt.Errorf("right descendant %v < %v on dim %d", n.key, pivot, d)
	}
	if err := checkSide(n.left, pivot, d, left); err != nil {
		return err
	}
	return checkSide(n.right, pivot, d, left)
}
