// SPDX-License-Identifier: MIT
// Package: netlistx/builder
//
// options.go — functional options for the builder package.
//
// Contract:
//   • Options are functional (type Option func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs;
//     constructors themselves never panic at runtime.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import "math/rand"

// Option customizes constructor behavior by mutating a builderConfig
// instance before construction begins.
// Complexity: applying N options costs O(N).
type Option func(*builderConfig)

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
// Use this in tests and examples to lock outcomes.
func WithSeed(seed int64) Option {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand provides an explicit RNG for stochastic constructors.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithModulePrefix sets the module label prefix. Empty means "use default".
func WithModulePrefix(prefix string) Option {
	return func(c *builderConfig) {
		c.modulePrefix = prefix
	}
}

// WithNetPrefix sets the net label prefix. Empty means "use default".
func WithNetPrefix(prefix string) Option {
	return func(c *builderConfig) {
		c.netPrefix = prefix
	}
}

// WithModuleWeightFn annotates every constructed module with a weight drawn
// from fn. The function receives the (possibly nil) RNG and must be pure
// with respect to its state to preserve determinism. Panics on nil.
func WithModuleWeightFn(fn func(*rand.Rand) int64) Option {
	if fn == nil {
		panic("builder: WithModuleWeightFn(nil)")
	}
	return func(c *builderConfig) {
		c.moduleWeightFn = fn
	}
}

// WithNetWeightFn annotates every constructed net with a weight drawn from
// fn. Panics on nil.
func WithNetWeightFn(fn func(*rand.Rand) int64) Option {
	if fn == nil {
		panic("builder: WithNetWeightFn(nil)")
	}
	return func(c *builderConfig) {
		c.netWeightFn = fn
	}
}
