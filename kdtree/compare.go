// SPDX-License-Identifier: MIT
// Package: lvkd/kdtree
//
// compare.go — key ordering primitives.
//
// Two orders are used throughout the package:
//   • full key order: lexicographic over all K coordinates (left to right);
//   • dimension order on d: coordinate d first, ties broken by full key order.
// Since stored keys are distinct, dimension order is a strict total order.

package kdtree

import "golang.org/x/exp/constraints"

// compareCoord returns -1, 0 or +1 as a is less than, equal to, or greater than b.
// Complexity: O(1).
func compareCoord[C constraints.Ordered](a, b C) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// compareKeys orders two keys of equal length lexicographically.
// Complexity: O(K).
func compareKeys[C constraints.Ordered](a, b []C) int {
	for i := range a {
		if c := compareCoord(a[i], b[i]); c != 0 {
			return c
		}
	}
	return 0
}

// compareOn orders two keys on dimension d, breaking ties by full key order.
// Complexity: O(K).
func compareOn[C constraints.Ordered](a, b []C, d int) int {
	if c := compareCoord(a[d], b[d]); c != 0 {
		return c
	}
	return compareKeys(a, b)
}

// equalKeys reports whether a and b hold the same coordinates.
// Complexity: O(K).
func equalKeys[C constraints.Ordered](a, b []C) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// cloneKey returns an independent copy of key.
// Complexity: O(K).
func cloneKey[C constraints.Ordered](key []C) []C {
	out := make([]C, len(key))
	copy(out, key)
	return out
}
