// SPDX-License-Identifier: MIT
// Package: netlistx/builder
//
// config.go — internal configuration and deterministic defaults.
//
// Design:
//   • builderConfig is the single source of truth for all builder knobs.
//   • Defaults are deterministic and documented; no globals.
//   • newBuilderConfig applies options in order (later overrides earlier).

package builder

import (
	"math/rand"
	"strconv"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors (immutable to callers).
type builderConfig struct {
	// Label schemes: prefix + decimal index (deterministic).
	modulePrefix string
	netPrefix    string

	// RNG for stochastic choices; nil means "no randomness".
	rng *rand.Rand

	// Optional weight generators; nil means "leave unweighted".
	moduleWeightFn func(*rand.Rand) int64
	netWeightFn    func(*rand.Rand) int64
}

// Deterministic defaults (named, no magic numbers).
const (
	defaultModulePrefix = "m" // module labels "m0","m1",...
	defaultNetPrefix    = "n" // net labels "n0","n1",...
)

// newBuilderConfig constructs a config with deterministic defaults and
// applies all options in order. Empty prefixes resolve to the defaults so
// downstream code stays branch-free.
// Complexity: O(len(opts)).
func newBuilderConfig(opts ...Option) builderConfig {
	cfg := builderConfig{
		modulePrefix: defaultModulePrefix,
		netPrefix:    defaultNetPrefix,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.modulePrefix == "" {
		cfg.modulePrefix = defaultModulePrefix
	}
	if cfg.netPrefix == "" {
		cfg.netPrefix = defaultNetPrefix
	}

	return cfg
}

// moduleLabel renders the i-th module label ("m0","m1",...).
func (c builderConfig) moduleLabel(i int) string {
	return c.modulePrefix + strconv.Itoa(i)
}

// netLabel renders the j-th net label ("n0","n1",...).
func (c builderConfig) netLabel(j int) string {
	return c.netPrefix + strconv.Itoa(j)
}
