// SPDX-License-Identifier: MIT
// Package: netlistx/builder
//
// impl_star.go — implementation of Star(n).
//
// Contract:
//   • n ≥ 2 (else ErrTooFewModules).
//   • Registers modules "<mp>0".."<mp>{n-1}" and a single net "<np>0"
//     touching every module — the densest possible single hyperedge.
//
// Determinism:
//   • Pins emitted in ascending module index order.
//
// Complexity: O(n) entities + O(n) pins.

package builder

import (
	"fmt"

	"github.com/katalvlaran/netlistx/netlist"
)

const (
	methodStar  = "Star"
	minStarSize = 2
)

// Star returns a Constructor for a single net touching all n modules.
// After construction, MaxNetDegree equals n.
func Star(n int) Constructor {
	return func(nl *netlist.Netlist, cfg builderConfig) error {
		if n < minStarSize {
			return fmt.Errorf("%s: n=%d (must be ≥ %d): %w",
				methodStar, n, minStarSize, ErrTooFewModules)
		}
		if err := addModules(nl, cfg, methodStar, n); err != nil {
			return err
		}
		if err := addNets(nl, cfg, methodStar, 1); err != nil {
			return err
		}
		net := cfg.netLabel(0)
		for i := 0; i < n; i++ {
			if err := nl.Connect(net, cfg.moduleLabel(i)); err != nil {
				return fmt.Errorf("%s: Connect(%s): %w", methodStar, net, err)
			}
		}

		return nil
	}
}
