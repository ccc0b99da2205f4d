// SPDX-License-Identifier: MIT
// Package: lvkd/dataset
//
// errors.go — sentinel errors for the dataset package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers use errors.Is.
//   • Implementations attach context with %w (see wrapf in generators.go).
//   • Generators never panic; option constructors panic on nonsensical input.

package dataset

import "errors"

// ErrBadDimension indicates a dimension count below 1.
var ErrBadDimension = errors.New("dataset: dimension count must be >= 1")

// ErrTooFewPoints indicates a size parameter (points, side, centers) below its minimum.
var ErrTooFewPoints = errors.New("dataset: parameter too small")

// ErrTooManyPoints indicates a request for more than MaxPoints points.
var ErrTooManyPoints = errors.New("dataset: too many points requested")

// ErrBadBounds indicates an empty or inverted coordinate interval, or a negative spread.
var ErrBadBounds = errors.New("dataset: invalid coordinate bounds")

// ErrNeedRandSource indicates a stochastic generator was run without an RNG
// (use WithSeed or WithRand).
var ErrNeedRandSource = errors.New("dataset: rng is required")

// ErrDecode indicates a malformed dataset document.
var ErrDecode = errors.New("dataset: malformed document")
