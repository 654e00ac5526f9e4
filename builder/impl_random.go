// SPDX-License-Identifier: MIT
// Package: netlistx/builder
//
// impl_random.go — implementation of Random(m, n, p).
//
// Contract:
//   • m ≥ 1 and n ≥ 1 (else ErrTooFewModules / ErrTooFewNets).
//   • p ∈ [0,1] (else ErrInvalidProbability).
//   • Requires an RNG (WithSeed/WithRand), else ErrNeedRandSource.
//   • Each (net j, module i) pin is drawn independently with probability p.
//
// Determinism:
//   • For a fixed seed, draw order is j ascending over nets, inner i
//     ascending over modules, so outcomes are reproducible.
//
// Complexity: O(m + n) entities + O(m·n) draws.

package builder

import (
	"fmt"

	"github.com/katalvlaran/netlistx/netlist"
)

const (
	methodRandom = "Random"
	minRandomDim = 1
	minPinProb   = 0.0
	maxPinProb   = 1.0
)

// Random returns a Constructor for a randomized sparse netlist: m modules,
// n nets, each possible pin present with probability p.
func Random(m, n int, p float64) Constructor {
	return func(nl *netlist.Netlist, cfg builderConfig) error {
		if m < minRandomDim {
			return fmt.Errorf("%s: m=%d (must be ≥ %d): %w",
				methodRandom, m, minRandomDim, ErrTooFewModules)
		}
		if n < minRandomDim {
			return fmt.Errorf("%s: n=%d (must be ≥ %d): %w",
				methodRandom, n, minRandomDim, ErrTooFewNets)
		}
		if p < minPinProb || p > maxPinProb {
			return fmt.Errorf("%s: p=%v (must be in [%v,%v]): %w",
				methodRandom, p, minPinProb, maxPinProb, ErrInvalidProbability)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", methodRandom, ErrNeedRandSource)
		}
		if err := addModules(nl, cfg, methodRandom, m); err != nil {
			return err
		}
		if err := addNets(nl, cfg, methodRandom, n); err != nil {
			return err
		}
		for j := 0; j < n; j++ {
			net := cfg.netLabel(j)
			for i := 0; i < m; i++ {
				if cfg.rng.Float64() >= p {
					continue
				}
				if err := nl.Connect(net, cfg.moduleLabel(i)); err != nil {
					return fmt.Errorf("%s: Connect(%s): %w", methodRandom, net, err)
				}
			}
		}

		return nil
	}
}
