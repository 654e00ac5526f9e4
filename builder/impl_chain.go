// SPDX-License-Identifier: MIT
// Package: netlistx/builder
//
// impl_chain.go — implementation of Chain(n).
//
// Contract:
//   • n ≥ 2 (else ErrTooFewModules).
//   • Registers modules "<mp>0".."<mp>{n-1}" and nets "<np>0".."<np>{n-2}".
//   • Net j touches modules j and j+1 (a two-pin chain).
//
// Determinism:
//   • Deterministic labels via (prefix, index); pins emitted j ascending.
//
// Complexity: O(n) entities + O(2(n-1)) pins.

package builder

import (
	"fmt"

	"github.com/katalvlaran/netlistx/netlist"
)

const (
	methodChain    = "Chain"
	minChainLength = 2
)

// Chain returns a Constructor for a linear chain of n modules linked by
// n-1 two-pin nets: the classic known-optimal-cut partitioning fixture.
func Chain(n int) Constructor {
	return func(nl *netlist.Netlist, cfg builderConfig) error {
		if n < minChainLength {
			return fmt.Errorf("%s: n=%d (must be ≥ %d): %w",
				methodChain, n, minChainLength, ErrTooFewModules)
		}
		if err := addModules(nl, cfg, methodChain, n); err != nil {
			return err
		}
		if err := addNets(nl, cfg, methodChain, n-1); err != nil {
			return err
		}
		for j := 0; j < n-1; j++ {
			net := cfg.netLabel(j)
			if err := nl.Connect(net, cfg.moduleLabel(j)); err != nil {
				return fmt.Errorf("%s: Connect(%s): %w", methodChain, net, err)
			}
			if err := nl.Connect(net, cfg.moduleLabel(j+1)); err != nil {
				return fmt.Errorf("%s: Connect(%s): %w", methodChain, net, err)
			}
		}

		return nil
	}
}
