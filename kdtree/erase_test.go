// SPDX-License-Identifier: MIT

package kdtree_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestErase_LeafRootAndAbsent(t *testing.T) {
	tr := newTree[string](t, Dims2)
	require.False(t, tr.Erase([]int{1, 1}), "erasing from an empty tree")

	mustInsert(t, tr, []int{5, 5}, "root")
	mustInsert(t, tr, []int{2, 2}, "leaf")

	require.False(t, tr.Erase([]int{9, 9}))
	require.False(t, tr.Erase([]int{5}), "wrong length key is absent")
	require.Equal(t, 2, tr.Len())

	require.True(t, tr.Erase([]int{2, 2}))
	require.Equal(t, 1, tr.Len())
	require.False(t, tr.Find([]int{2, 2}).Valid())

	require.True(t, tr.Erase([]int{5, 5}))
	require.Zero(t, tr.Len())
	require.False(t, tr.Root().Valid())
	require.False(t, tr.Erase([]int{5, 5}), "second erase of the same key")
}

func TestErase_RightSubtreeSuccessor(t *testing.T) {
	tr := newTree[string](t, Dims2)
	mustInsert(t, tr, []int{5, 5}, "root")
	mustInsert(t, tr, []int{8, 1}, "r")
	mustInsert(t, tr, []int{6, 9}, "rr")
	mustInsert(t, tr, []int{2, 3}, "l")

	require.True(t, tr.Erase([]int{5, 5}))
	// minimum on dim 0 in the right subtree is (6,9)
	require.Equal(t, []int{6, 9}, tr.Root().Key())
	require.Equal(t, "rr", tr.Root().Value())
	require.Equal(t, 3, tr.Len())
	requireValid(t, tr)
}

// Left-only node whose left-subtree maximum is unique on the branching dimension:
// the maximum is transplanted and the left subtree stays on the left.
func TestErase_LeftOnlyUsesMaximum(t *testing.T) {
	tr := newTree[string](t, Dims2)
	mustInsert(t, tr, []int{5, 0}, "root")
	mustInsert(t, tr, []int{3, 0}, "l")
	mustInsert(t, tr, []int{2, 7}, "lr")

	require.True(t, tr.Erase([]int{5, 0}))
	require.Equal(t, []int{3, 0}, tr.Root().Key())
	require.Equal(t, []int{2, 7}, tr.Root().Left().Key())
	require.False(t, tr.Root().Right().Valid())
	requireValid(t, tr)
}

// Left-only node whose left subtree holds two keys tied on the branching
// dimension: transplanting the maximum would leave an equal coordinate on the
// left, so the minimum is used and the subtree moves right.
func TestErase_LeftOnlyWithTiedCoordinate(t *testing.T) {
	tr := newTree[string](t, Dims2)
	mustInsert(t, tr, []int{5, 0}, "root")
	mustInsert(t, tr, []int{3, 0}, "a")
	mustInsert(t, tr, []int{3, 5}, "b")

	require.True(t, tr.Erase([]int{5, 0}))
	requireValid(t, tr)
	require.Equal(t, []int{3, 0}, tr.Root().Key())
	require.False(t, tr.Root().Left().Valid())
	require.Equal(t, []int{3, 5}, tr.Root().Right().Key())

	require.Equal(t, "a", tr.Find([]int{3, 0}).Value())
	require.Equal(t, "b", tr.Find([]int{3, 5}).Value())
}

func TestErase_RandomAgainstModel(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for _, k := range []int{1, Dims2, Dims3} {
		tr := newTree[int](t, k)
		model := make(map[[4]int]int)

		for step := 0; step < 2000; step++ {
			key := randomKeys(rng, 1, k, CoordSpan)[0]
			if rng.Intn(3) == 0 {
				_, present := model[keyID(key)]
				require.Equal(t, present, tr.Erase(key), "k=%d step=%d key=%v", k, step, key)
				delete(model, keyID(key))
				require.False(t, tr.Contains(key))
			} else {
				mustInsert(t, tr, key, step)
				model[keyID(key)] = step
			}
			require.Equal(t, len(model), tr.Len())
			requireValid(t, tr)
		}

		for id, v := range model {
			got, ok := tr.Get(id[:k])
			require.True(t, ok)
			require.Equal(t, v, got)
		}
	}
}

func TestEraseAt(t *testing.T) {
	tr := newTree[string](t, Dims2)
	require.True(t, tr.EraseAt(tr.End()).Equal(tr.End()))

	//	(5,5)
	//	├─ (2,8)
	//	│  └─ (1,1)
	//	└─ (7,1)
	//	   └─ (6,6)
	//	      └─ (9,3)
	for _, k := range [][]int{{5, 5}, {2, 8}, {7, 1}, {6, 6}, {1, 1}, {9, 3}} {
		mustInsert(t, tr, k, "v")
	}
	require.Equal(t, [][]int{{1, 1}, {2, 8}, {5, 5}, {7, 1}, {6, 6}, {9, 3}}, keysOf(tr))

	// right child present: (6,6) moves into the root slot and is returned
	got := tr.EraseAt(tr.Find([]int{5, 5}))
	require.Equal(t, []int{6, 6}, got.Key())
	require.True(t, got.Equal(tr.Root()))
	requireValid(t, tr)

	// no right child: the old successor is returned
	got = tr.EraseAt(tr.Find([]int{2, 8}))
	require.Equal(t, []int{6, 6}, got.Key())
	requireValid(t, tr)

	got = tr.EraseAt(tr.Find([]int{9, 3}))
	require.False(t, got.Valid(), "erasing the last entry returns End")
	require.Equal(t, [][]int{{1, 1}, {6, 6}, {7, 1}}, keysOf(tr))
}

func TestEraseAt_FilterWhileIterating(t *testing.T) {
	const (
		trees = 200
		keys  = 40
		span  = 20
	)
	for seed := int64(0); seed < trees; seed++ {
		rng := rand.New(rand.NewSource(seed))
		tr := newTree[int](t, Dims2)
		all := make(map[[4]int]bool)
		for i, key := range randomKeys(rng, keys, Dims2, span) {
			mustInsert(t, tr, key, i)
			all[keyID(key)] = true
		}

		visited := make(map[[4]int]int)
		for it := tr.Begin(); it.Valid(); {
			key := it.Key()
			visited[keyID(key)]++
			if key[0]%2 == 0 {
				it = tr.EraseAt(it)
			} else {
				it = it.Next()
			}
		}
		requireValid(t, tr)

		require.Len(t, visited, len(all), "seed %d", seed)
		for id, n := range visited {
			require.True(t, all[id], "seed %d: visited unknown key %v", seed, id)
			require.Equal(t, 1, n, "seed %d: key %v visited %d times", seed, id, n)
		}
		for _, key := range keysOf(tr) {
			require.Equal(t, 1, key[0]%2, "seed %d: even key %v survived", seed, key)
		}
	}
}

func TestEraseAt_DrainsTree(t *testing.T) {
	rng := rand.New(rand.NewSource(9))
	tr := newTree[int](t, Dims3)
	for i, key := range randomKeys(rng, NMedium, Dims3, CoordSpan) {
		mustInsert(t, tr, key, i)
	}

	for tr.Len() > 0 {
		before := tr.Len()
		key := tr.Begin().Key()
		tr.EraseAt(tr.Begin())
		require.Equal(t, before-1, tr.Len())
		require.False(t, tr.Contains(key))
		requireValid(t, tr)
	}
}
