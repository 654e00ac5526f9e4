// SPDX-License-Identifier: MIT
// Package: netlistx/builder
//
// api.go — thin public entry-point for the builder package.
//
// Design contract:
//   - One orchestrator: Build(nopts, bopts, cons...). Creates the netlist,
//     resolves the configuration, runs constructors in order.
//   - All public factories are declared in impl_*.go; each returns a
//     Constructor closure.
//   - Functional options (Option) resolve into an immutable builderConfig.
//   - Determinism: same inputs/options/seed and constructor order ⇒
//     identical netlists.
//   - Safety: never panic at runtime; return sentinel errors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/netlistx/netlist"
)

// Constructor applies a deterministic netlist mutation using the resolved
// builderConfig. Constructors MUST:
//   - Validate parameters early and return sentinel errors (no panics).
//   - Register every referenced module and net before connecting it.
//   - Preserve determinism for the same config and call order.
type Constructor func(nl *netlist.Netlist, cfg builderConfig) error

// Build creates a new netlist.Netlist with options nopts, resolves the
// builder configuration from bopts, and applies all constructors in order.
// Any constructor error is wrapped with "Build: %w" and returned
// immediately; no partial cleanup is attempted.
//
// Errors: wraps constructor errors via %w; branch with errors.Is against
// the builder sentinels (ErrTooFewModules, ErrInvalidProbability, ...).
// Complexity: O(len(bopts)) resolution + Σ cost of each constructor.
func Build(nopts []netlist.Option, bopts []Option, cons ...Constructor) (*netlist.Netlist, error) {
	nl := netlist.New(nopts...)
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("Build: nil constructor at index %d: %w", i, ErrBuildFailed)
		}
		if err := fn(nl, cfg); err != nil {
			return nil, fmt.Errorf("Build: %w", err)
		}
	}

	return nl, nil
}

// addModules registers count modules under cfg's label scheme and applies
// the optional module weight function. Shared by all constructors.
func addModules(nl *netlist.Netlist, cfg builderConfig, method string, count int) error {
	for i := 0; i < count; i++ {
		label := cfg.moduleLabel(i)
		if err := nl.AddModule(label); err != nil {
			return fmt.Errorf("%s: AddModule(%s): %w", method, label, err)
		}
		if cfg.moduleWeightFn != nil {
			if err := nl.SetModuleWeight(label, cfg.moduleWeightFn(cfg.rng)); err != nil {
				return fmt.Errorf("%s: SetModuleWeight(%s): %w", method, label, err)
			}
		}
	}

	return nil
}

// addNets registers count nets under cfg's label scheme and applies the
// optional net weight function. Shared by all constructors.
func addNets(nl *netlist.Netlist, cfg builderConfig, method string, count int) error {
	for j := 0; j < count; j++ {
		label := cfg.netLabel(j)
		if err := nl.AddNet(label); err != nil {
			return fmt.Errorf("%s: AddNet(%s): %w", method, label, err)
		}
		if cfg.netWeightFn != nil {
			if err := nl.SetNetWeight(label, cfg.netWeightFn(cfg.rng)); err != nil {
				return fmt.Errorf("%s: SetNetWeight(%s): %w", method, label, err)
			}
		}
	}

	return nil
}
