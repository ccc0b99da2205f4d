// SPDX-License-Identifier: MIT
// Package: lvkd/dataset
//
// generators.go — point-set generators.
//
// Contract (all generators):
//   • k ≥ 1 (else ErrBadDimension), validated by Generate before dispatch.
//   • At most MaxPoints points per batch (else ErrTooManyPoints).
//   • Parameters are validated before any RNG draw (fail fast, no partial output).
//   • Points are emitted in a stable order; label i is produced for the i-th point.
//   • Coordinates are drawn dimension by dimension, point by point.

package dataset

import (
	"fmt"

	"github.com/katalvlaran/lvkd/kdtree"
)

// Point is the concrete entry type produced by this package.
type Point = kdtree.Entry[float64, string]

// Generator produces a batch of k-dimensional points under cfg.
type Generator func(k int, cfg config) ([]Point, error)

// MaxPoints caps the size of a single generated batch.
const MaxPoints = 1 << 26

// Method tags used in error context.
const (
	methodGenerate  = "Generate"
	methodUniform   = "Uniform"
	methodGrid      = "Grid"
	methodClustered = "Clustered"
)

// Generate runs gen for k dimensions with the given options.
//
// Errors:
//   - ErrBadDimension if k < 1, plus whatever gen reports.
func Generate(k int, gen Generator, opts ...Option) ([]Point, error) {
	if k < 1 {
		return nil, wrapf(methodGenerate, fmt.Sprintf("k=%d", k), ErrBadDimension)
	}
	return gen(k, newConfig(opts...))
}

// Uniform draws n points uniformly from the half-open box [lo, hi)^k.
// Requires an RNG; n ≥ 1; lo < hi.
func Uniform(n int, lo, hi float64) Generator {
	return func(k int, cfg config) ([]Point, error) {
		if n < 1 {
			return nil, wrapf(methodUniform, fmt.Sprintf("n=%d", n), ErrTooFewPoints)
		}
		if n > MaxPoints {
			return nil, wrapf(methodUniform, fmt.Sprintf("n=%d", n), ErrTooManyPoints)
		}
		if !(lo < hi) {
			return nil, wrapf(methodUniform, fmt.Sprintf("lo=%g hi=%g", lo, hi), ErrBadBounds)
		}
		if cfg.rng == nil {
			return nil, wrapf(methodUniform, "rng", ErrNeedRandSource)
		}

		out := make([]Point, n)
		for i := range out {
			key := make([]float64, k)
			for d := range key {
				key[d] = lo + cfg.rng.Float64()*(hi-lo)
			}
			out[i] = Point{Key: key, Value: cfg.labelFn(i, key)}
		}
		return out, nil
	}
}

// Grid emits the regular lattice {0..side-1}^k in row-major order
// (last dimension varies fastest). Deterministic; no RNG needed.
// side^k must not exceed MaxPoints.
func Grid(side int) Generator {
	return func(k int, cfg config) ([]Point, error) {
		if side < 1 {
			return nil, wrapf(methodGrid, fmt.Sprintf("side=%d", side), ErrTooFewPoints)
		}

		// side^k, checked before each step so it can neither overflow nor exceed the cap
		total := 1
		for d := 0; d < k; d++ {
			if total > MaxPoints/side {
				return nil, wrapf(methodGrid, fmt.Sprintf("side=%d k=%d", side, k), ErrTooManyPoints)
			}
			total *= side
		}

		out := make([]Point, total)
		idx := make([]int, k) // odometer over the lattice
		for i := range out {
			key := make([]float64, k)
			for d := range key {
				key[d] = float64(idx[d])
			}
			out[i] = Point{Key: key, Value: cfg.labelFn(i, key)}

			for d := k - 1; d >= 0; d-- {
				idx[d]++
				if idx[d] < side {
					break
				}
				idx[d] = 0
			}
		}
		return out, nil
	}
}

// Clustered draws n points around `centers` random cluster centers placed
// uniformly in [0, 100)^k, each coordinate offset by Gaussian noise with
// standard deviation spread. Points are assigned to centers round-robin.
// Requires an RNG; n ≥ 1; centers ≥ 1; spread ≥ 0 (NaN rejected).
func Clustered(n, centers int, spread float64) Generator {
	return func(k int, cfg config) ([]Point, error) {
		if n < 1 {
			return nil, wrapf(methodClustered, fmt.Sprintf("n=%d", n), ErrTooFewPoints)
		}
		if n > MaxPoints {
			return nil, wrapf(methodClustered, fmt.Sprintf("n=%d", n), ErrTooManyPoints)
		}
		if centers < 1 {
			return nil, wrapf(methodClustered, fmt.Sprintf("centers=%d", centers), ErrTooFewPoints)
		}
		if !(spread >= 0) {
			return nil, wrapf(methodClustered, fmt.Sprintf("spread=%g", spread), ErrBadBounds)
		}
		if cfg.rng == nil {
			return nil, wrapf(methodClustered, "rng", ErrNeedRandSource)
		}

		const span = 100.0
		mids := make([][]float64, centers)
		for c := range mids {
			mids[c] = make([]float64, k)
			for d := range mids[c] {
				mids[c][d] = cfg.rng.Float64() * span
			}
		}

		out := make([]Point, n)
		for i := range out {
			mid := mids[i%centers]
			key := make([]float64, k)
			for d := range key {
				key[d] = mid[d] + cfg.rng.NormFloat64()*spread
			}
			out[i] = Point{Key: key, Value: cfg.labelFn(i, key)}
		}
		return out, nil
	}
}

// wrapf attaches method and parameter context to a sentinel.
func wrapf(method, detail string, err error) error {
	return fmt.Errorf("%s(%s): %w", method, detail, err)
}
