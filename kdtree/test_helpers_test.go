// SPDX-License-Identifier: MIT
// Package kdtree_test contains shared fixtures for kdtree tests.

package kdtree_test

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvkd/kdtree"
)

// Common fixture sizes (avoid magic numbers in test bodies).
const (
	Dims2 = 2
	Dims3 = 3

	NSmall  = 64
	NMedium = 500

	// CoordSpan keeps coordinates in a narrow range so ties on a dimension are frequent.
	CoordSpan = 6
)

// newTree builds an empty tree and fails the test on error.
func newTree[V any](t *testing.T, k int) *kdtree.Tree[int, V] {
	t.Helper()
	tr, err := kdtree.New[int, V](k)
	require.NoError(t, err)
	return tr
}

// mustInsert inserts and fails on error; it returns the inserted flag.
func mustInsert[V any](t *testing.T, tr *kdtree.Tree[int, V], key []int, v V) bool {
	t.Helper()
	ok, err := tr.Insert(key, v)
	require.NoError(t, err)
	return ok
}

// requireValid fails the test if any structural invariant is broken.
func requireValid[C int | float64, V any](t *testing.T, tr *kdtree.Tree[C, V]) {
	t.Helper()
	require.NoError(t, kdtree.CheckInvariants(tr))
}

// randomKeys returns n random keys in [0, span)^k drawn from rng (duplicates possible).
func randomKeys(rng *rand.Rand, n, k, span int) [][]int {
	out := make([][]int, n)
	for i := range out {
		key := make([]int, k)
		for j := range key {
			key[j] = rng.Intn(span)
		}
		out[i] = key
	}
	return out
}

// keyID renders a small int key as a map key.
func keyID(key []int) [4]int {
	var id [4]int
	copy(id[:], key)
	return id
}

// keysOf collects the keys of a tree in forward iteration order.
func keysOf[V any](tr *kdtree.Tree[int, V]) [][]int {
	var out [][]int
	for k := range tr.All() {
		out = append(out, k)
	}
	return out
}

// lexLess orders int keys lexicographically.
func lexLess(a, b []int) int {
	return slices.Compare(a, b)
}
