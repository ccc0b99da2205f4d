// SPDX-License-Identifier: MIT
// Package: lvkd/kdtree
//
// types.go — core data model: Entry, Tree and the internal node.
//
// Ownership:
//   • Tree owns root; every node owns its left and right subtrees.
//   • parent is a back-reference used for iterator traversal only.
//   • Keys are copied on the way in and never mutated in place; erase's
//     transplant step replaces a node's key slice wholesale.

package kdtree

import "golang.org/x/exp/constraints"

// Entry is a key/value pair used by bulk construction and iteration helpers.
// Key must hold exactly K coordinates for the target tree.
type Entry[C constraints.Ordered, V any] struct {
	Key   []C
	Value V
}

// Tree is a KD-tree over K-dimensional keys of coordinate type C holding values of type V.
//
// The zero value is not usable; construct with New or Build.
type Tree[C constraints.Ordered, V any] struct {
	root *node[C, V]
	k    int // number of dimensions, fixed at construction
	size int // number of distinct keys stored
}

type node[C constraints.Ordered, V any] struct {
	key    []C
	value  V
	parent *node[C, V]
	left   *node[C, V]
	right  *node[C, V]
}
