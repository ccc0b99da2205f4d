// SPDX-License-Identifier: MIT
// Package: lvkd/kdtree
//
// errors.go — sentinel errors for the kdtree package.
//
// Error policy:
//   • A missing key is NOT an error: lookups return End(), erasures return false.
//   • Only configuration/shape violations surface as errors.
//   • Callers MUST branch with errors.Is; implementations attach context with %w.

package kdtree

import "errors"

// ErrZeroDimension is returned when a tree is requested with fewer than one dimension.
var ErrZeroDimension = errors.New("kdtree: dimension count must be >= 1")

// ErrKeyDimension is returned when a key's length differs from the tree's dimension count.
var ErrKeyDimension = errors.New("kdtree: key length does not match tree dimensions")
