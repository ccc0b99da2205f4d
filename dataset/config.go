// SPDX-License-Identifier: MIT
// Package: lvkd/dataset
//
// config.go — internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • rng     = nil                     (stochastic generators require WithSeed/WithRand)
//   • labelFn = indexLabel              ("p0","p1","p2",...)

package dataset

import (
	"math/rand"
	"strconv"
)

// config aggregates all knobs used by generators.
// It is passed by VALUE to generators (immutable to callers).
type config struct {
	// RNG for stochastic generators; nil means "no randomness".
	rng *rand.Rand
	// Label strategy: (index, key) -> value stored with the point.
	labelFn func(i int, key []float64) string
}

const defaultLabelPrefix = "p"

// newConfig applies options in order on top of the defaults (last wins).
func newConfig(opts ...Option) config {
	cfg := config{
		rng:     nil,
		labelFn: indexLabel,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// indexLabel renders an index as "p<i>".
func indexLabel(i int, _ []float64) string {
	return defaultLabelPrefix + strconv.Itoa(i)
}
