// SPDX-License-Identifier: MIT
// Package: lvkd/dataset
//
// options.go — functional options for generators.
//
// Contract:
//   • Option constructors VALIDATE and PANIC on meaningless inputs (nil funcs, nil RNG).
//   • Generators themselves never panic.

package dataset

import (
	"math/rand"

	"github.com/brianvoe/gofakeit/v6"
)

// Option customizes a generator run by mutating the internal config.
type Option func(*config)

// WithRand provides an explicit RNG. Panics on nil; prefer WithSeed.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("dataset: WithRand(nil)")
	}
	return func(c *config) {
		c.rng = r
	}
}

// WithSeed attaches a fresh RNG seeded with seed, for reproducible batches.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithLabelFn overrides how point values are produced. Panics on nil.
func WithLabelFn(fn func(i int, key []float64) string) Option {
	if fn == nil {
		panic("dataset: WithLabelFn(nil)")
	}
	return func(c *config) {
		c.labelFn = fn
	}
}

// WithFakeLabels labels points with fake city names drawn from a faker
// seeded with seed, so labels are reproducible but human-friendly.
func WithFakeLabels(seed int64) Option {
	return func(c *config) {
		faker := gofakeit.New(seed)
		c.labelFn = func(int, []float64) string {
			return faker.City()
		}
	}
}
